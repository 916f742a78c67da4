package sip

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/types"
)

// RenderOptions is an alias of [header.RenderOptions].
type RenderOptions = types.RenderOptions

// Method is a SIP request method.
// Known methods are kept in canonical upper case, extension methods verbatim.
type Method = types.Method

// Request methods.
const (
	MethodAck       = types.MethodAck
	MethodBye       = types.MethodBye
	MethodCancel    = types.MethodCancel
	MethodInfo      = types.MethodInfo
	MethodInvite    = types.MethodInvite
	MethodMessage   = types.MethodMessage
	MethodNotify    = types.MethodNotify
	MethodOptions   = types.MethodOptions
	MethodPrack     = types.MethodPrack
	MethodPublish   = types.MethodPublish
	MethodRefer     = types.MethodRefer
	MethodRegister  = types.MethodRegister
	MethodSubscribe = types.MethodSubscribe
	MethodUpdate    = types.MethodUpdate
)

// ParseMethod returns the known method matching s case-insensitively or s verbatim.
func ParseMethod(s string) Method { return types.ParseMethod(s) }

// Version is a SIP protocol version.
type Version struct {
	Major, Minor uint8
}

// Version20 is the SIP/2.0 version, the only one the package emits.
var Version20 = Version{2, 0}

// String returns the version in the "SIP/2.0" form.
func (v Version) String() string {
	return "SIP/" + strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}

// Format implements [fmt.Formatter].
func (v Version) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && (f.Flag('+') || f.Flag('#')) {
			type hideMethods Version
			type Version hideMethods
			fmt.Fprintf(f, fmt.FormatString(f, verb), Version(v))
			return
		}
		io.WriteString(f, v.String()) //nolint:errcheck
	case 'q':
		io.WriteString(f, strconv.Quote(v.String())) //nolint:errcheck
	default:
		fmt.Fprintf(f, "%%!%c(sip.Version=%s)", verb, v)
	}
}

// Equal compares the version with [Version] or *[Version].
func (v Version) Equal(val any) bool {
	switch o := val.(type) {
	case Version:
		return v == o
	case *Version:
		return o != nil && v == *o
	default:
		return false
	}
}

// IsValid reports whether the version is SIP/2.0.
func (v Version) IsValid() bool { return v == Version20 }

// IsZero reports whether the version is not set.
func (v Version) IsZero() bool { return v == Version{} }

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Version) UnmarshalText(data []byte) error {
	ver, ok := parseVersion(string(data))
	if !ok {
		return errtrace.Wrap(newStartLineErr("version %q", data))
	}
	*v = ver
	return nil
}

// parseVersion parses the "SIP/" DIGIT "." DIGIT form.
// The "SIP" literal is matched case-insensitively.
func parseVersion(s string) (Version, bool) {
	if len(s) != 7 || !isSIPLiteral(s) || s[3] != '/' || s[5] != '.' || !isDigit(s[4]) || !isDigit(s[6]) {
		return Version{}, false
	}
	return Version{s[4] - '0', s[6] - '0'}, true
}

func isSIPLiteral(s string) bool {
	return len(s) >= 3 && (s[0]|0x20) == 's' && (s[1]|0x20) == 'i' && (s[2]|0x20) == 'p'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Message is a SIP message, either [*Request] or [*Response].
type Message interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
	// MessageHeaders returns the message headers in wire order.
	MessageHeaders() *Headers
	// MessageBody returns the message body.
	MessageBody() []byte
	// SetBody replaces the body and keeps the Content-Length header in sync.
	SetBody(body []byte)
	// Validate checks the start line and mandatory headers.
	Validate() error
	Clone() Message
	String() string

	message()
}

// IsRequest reports whether msg is a request.
func IsRequest(msg Message) bool {
	_, ok := msg.(*Request)
	return ok
}

// IsResponse reports whether msg is a response.
func IsResponse(msg Message) bool {
	_, ok := msg.(*Response)
	return ok
}

// AsRequest returns msg as [*Request] and reports whether it is one.
func AsRequest(msg Message) (*Request, bool) {
	req, ok := msg.(*Request)
	return req, ok
}

// AsResponse returns msg as [*Response] and reports whether it is one.
func AsResponse(msg Message) (*Response, bool) {
	res, ok := msg.(*Response)
	return res, ok
}

var (
	_ Message = (*Request)(nil)
	_ Message = (*Response)(nil)
)
