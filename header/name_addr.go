package header

import (
	"io"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/uri"
)

// NameAddr represents a single element of From, To, Contact, Route and similar headers.
// It contains a display name, URI, and parameters.
type NameAddr struct {
	// DisplayName holds the display name as it appears on the wire,
	// a quoted display name keeps its quotes. See [NameAddr.Display].
	DisplayName string
	URI         uri.URI
	Params      Params
}

// Display returns the unquoted display name.
func (addr NameAddr) Display() string { return grammar.Unquote(addr.DisplayName) }

// SetDisplay sets the display name, it is always rendered quoted.
func (addr *NameAddr) SetDisplay(name string) {
	if name == "" {
		addr.DisplayName = ""
		return
	}
	addr.DisplayName = grammar.Quote(name)
}

// RenderTo writes the element in the name-addr form.
func (addr NameAddr) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if addr.DisplayName != "" {
		cw.WriteString(addr.DisplayName)
		cw.WriteString(" ")
	}
	cw.WriteString("<")
	if addr.URI != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(addr.URI.RenderTo(w, nil)) })
	}
	cw.WriteString(">")
	cw.Call(addr.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the NameAddr.
func (addr NameAddr) String() string { return renderStr(addr.RenderTo) }

// Equal compares this NameAddr with another for equality.
func (addr NameAddr) Equal(val any) bool {
	other, ok := eqHdr[NameAddr](val)
	if !ok {
		return false
	}
	return addr.Display() == other.Display() &&
		types.IsEqual(addr.URI, other.URI) &&
		addr.Params.Equal(other.Params)
}

// IsValid checks whether the NameAddr is syntactically valid.
func (addr NameAddr) IsValid() bool {
	return types.IsValid(addr.URI) && addr.Params.IsValid()
}

// IsZero checks whether the NameAddr is empty.
func (addr NameAddr) IsZero() bool {
	return addr.DisplayName == "" && addr.URI == nil && len(addr.Params) == 0
}

// Clone returns a copy of the NameAddr.
func (addr NameAddr) Clone() NameAddr {
	if addr.URI != nil {
		addr.URI = addr.URI.Clone()
	}
	addr.Params = addr.Params.Clone()
	return addr
}

// MarshalText implements [encoding.TextMarshaler].
func (addr NameAddr) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (addr *NameAddr) UnmarshalText(data []byte) error {
	a, err := parseNameAddr(string(data))
	*addr = a
	return errtrace.Wrap(err)
}

// Tag returns the tag parameter.
func (addr NameAddr) Tag() (string, bool) { return addr.Params.Get("tag") }

// Q returns the q parameter.
func (addr NameAddr) Q() (float64, bool) { return addr.Params.QValue() }

// SetQ sets the q parameter, see [FormatQValue].
func (addr *NameAddr) SetQ(q float64) { addr.Params = addr.Params.SetQValue(q) }

// Expires returns the expires parameter.
func (addr NameAddr) Expires() (time.Duration, bool) {
	v, ok := addr.Params.Get("expires")
	if !ok {
		return 0, false
	}
	sec, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return time.Duration(sec) * time.Second, true
}

// parseNameAddr parses name-addr or addr-spec followed by parameters.
// In the addr-spec form everything after the first ';' is a header parameter.
func parseNameAddr(s string) (NameAddr, error) {
	s = grammar.TrimLWS(s)
	if s == "" {
		return NameAddr{}, errtrace.Wrap(errEmptyValue())
	}

	var (
		addr     NameAddr
		uriStr   string
		paramStr string
	)
	if grammar.IndexUnquoted(s, '<') >= 0 {
		display, spec, rest, ok := grammar.CutNameAddr(s)
		if !ok {
			return NameAddr{}, errtrace.Wrap(newInvalidPartErr("name-addr %q", s))
		}
		addr.DisplayName = display
		uriStr = spec
		paramStr = grammar.TrimLWS(rest)
		if paramStr != "" && paramStr[0] != ';' {
			return NameAddr{}, errtrace.Wrap(newInvalidPartErr("name-addr %q", s))
		}
	} else {
		uriStr, paramStr, _ = strings.Cut(s, ";")
		if strings.ContainsAny(uriStr, " \t") {
			return NameAddr{}, errtrace.Wrap(newInvalidPartErr("addr-spec %q", uriStr))
		}
	}

	u := uri.New(grammar.TrimLWS(uriStr))
	if !u.IsValid() {
		return NameAddr{}, errtrace.Wrap(newInvalidPartErr("URI %q", uriStr))
	}
	addr.URI = u

	ps, err := parseParams(paramStr)
	if err != nil {
		return NameAddr{}, errtrace.Wrap(err)
	}
	addr.Params = ps
	return addr, nil
}
