package header

//go:generate go tool errtrace -w .

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// RenderOptions contains options for rendering headers.
type RenderOptions = types.RenderOptions

// Method represents a SIP request method (INVITE, ACK, BYE, etc.).
type Method = types.Method

// Header represents a generic SIP header.
type Header interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
	// Kind returns the header kind, [KindOther] for headers unknown to the package.
	Kind() Kind
	CanonicName() Name
	CompactName() Name
	// RenderValue returns the header value without the name prefix.
	RenderValue() string
	Clone() Header
}

// Name represents a SIP header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
// Compact and full names of the same known header are equal,
// unknown names are compared as is.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	k1, k2 := KindOf(n), KindOf(other)
	if k1 != KindOther || k2 != KindOther {
		return k1 == k2
	}
	return n == other
}

// CanonicName converts name to the canonical form.
// Known names, including compact ones, resolve to the header canonical name,
// i.e. "i" and "call-id" both become "Call-ID".
// Other names are canonicalized with [textproto.CanonicalMIMEHeaderKey].
func CanonicName[T ~string](name T) Name {
	n := util.TrimSP(string(name))
	if k := KindOf(n); k != KindOther {
		return k.CanonicName()
	}
	return Name(textproto.CanonicalMIMEHeaderKey(n))
}

// ErrInvalidHeader is returned when a header value can not be parsed.
const ErrInvalidHeader errorutil.GrammarError = "invalid header"

// ParseError describes a header that failed to parse.
type ParseError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("parse header %q: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Grammar reports that the error is a grammar error.
func (*ParseError) Grammar() bool { return true }

func newInvalidPartErr(format string, args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidHeader, fmt.Sprintf("invalid "+format, args...)) //errtrace:skip
}

// renderHdr writes the "Name: value" line of a header.
func renderHdr(w io.Writer, hdr Header, opts *RenderOptions, value func(io.Writer) (int, error)) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if opts.IsCompact() {
		cw.WriteString(string(hdr.CompactName()))
	} else {
		cw.WriteString(string(hdr.CanonicName()))
	}
	cw.WriteString(": ")
	cw.Call(value)
	return errtrace.Wrap2(cw.Result())
}

func renderStr(fn func(io.Writer) (int, error)) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fn(sb) //nolint:errcheck
	return sb.String()
}

func render(hdr Header, opts *RenderOptions) string {
	return renderStr(func(w io.Writer) (int, error) { return errtrace.Wrap2(hdr.RenderTo(w, opts)) })
}

// formatHdr implements fmt.Formatter for headers.
//
//   - %s and %v print the value;
//   - %+s and %+v print the whole header line;
//   - %q and %+q print quoted forms of the above.
func formatHdr(f fmt.State, verb rune, hdr Header) {
	var s string
	if f.Flag('+') {
		s = hdr.Render(nil)
	} else {
		s = hdr.RenderValue()
	}
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, s)
	case 'q':
		fmt.Fprint(f, strconv.Quote(s))
	default:
		fmt.Fprintf(f, "%%!%c(%s=%s)", verb, hdr.CanonicName(), s)
	}
}

func renderList[E any](w io.Writer, list []E, fn func(io.Writer, E) (int, error)) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, e := range list {
		if i > 0 {
			cw.WriteString(", ")
		}
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(fn(w, e)) })
	}
	return errtrace.Wrap2(cw.Result())
}

func renderEntries[E interface{ RenderTo(io.Writer) (int, error) }](w io.Writer, list []E) (int, error) {
	return errtrace.Wrap2(renderList(w, list, func(w io.Writer, e E) (int, error) {
		return errtrace.Wrap2(e.RenderTo(w))
	}))
}

func renderStrings[S ~string](w io.Writer, list []S) (int, error) {
	return errtrace.Wrap2(renderList(w, list, func(w io.Writer, s S) (int, error) {
		return errtrace.Wrap2(io.WriteString(w, string(s)))
	}))
}

func cloneList[H ~[]E, E interface{ Clone() E }](hdr H) H {
	if hdr == nil {
		return nil
	}
	hdr2 := make(H, len(hdr))
	for i := range hdr {
		hdr2[i] = hdr[i].Clone()
	}
	return hdr2
}

func equalList[E types.Equalable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalStrings[S ~string](a, b []S, fold bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if fold && !util.EqFold(a[i], b[i]) || !fold && a[i] != b[i] {
			return false
		}
	}
	return true
}

func allValid[E types.ValidFlag](list []E) bool {
	for _, e := range list {
		if !e.IsValid() {
			return false
		}
	}
	return true
}

func allTokens[S ~string](list []S) bool {
	for _, s := range list {
		if !grammar.IsToken(s) {
			return false
		}
	}
	return true
}

// eqHdr extracts a header of type H from val given as H or *H.
func eqHdr[H any](val any) (H, bool) {
	switch v := val.(type) {
	case H:
		return v, true
	case *H:
		if v != nil {
			return *v, true
		}
	}
	var zero H
	return zero, false
}

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToJSON marshals the header as a {"name", "value"} JSON object.
// The value keeps the wire text, i.e. angle brackets are not escaped.
func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.CanonicName()),
			Value: hdr.RenderValue(),
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

var errNotHeaderJSON errorutil.Error = "not a header JSON"

// FromJSON parses a header marshaled by [ToJSON].
func FromJSON[T ~string | ~[]byte](data T) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal([]byte(data), &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, errtrace.Wrap(errNotHeaderJSON)
	}
	return errtrace.Wrap2(ParseValue(hd.Name, hd.Value))
}

// unmarshalHdr decodes JSON data into a header of type H.
// JSON null leaves the zero value.
func unmarshalHdr[H Header](data []byte) (H, error) {
	var zero H
	gh, err := FromJSON(data)
	if err != nil {
		if errors.Is(err, errNotHeaderJSON) {
			return zero, nil
		}
		return zero, errtrace.Wrap(err)
	}
	h, ok := gh.(H)
	if !ok {
		return zero, errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, zero))
	}
	return h, nil
}
