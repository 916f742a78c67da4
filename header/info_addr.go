package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/uri"
)

// InfoAddr represents a single element of Alert-Info, Call-Info and Error-Info headers,
// an URI in angle brackets followed by parameters.
type InfoAddr struct {
	URI    uri.URI
	Params Params
}

// RenderTo writes the element.
func (addr InfoAddr) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("<")
	if addr.URI != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(addr.URI.RenderTo(w, nil)) })
	}
	cw.WriteString(">")
	cw.Call(addr.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the InfoAddr.
func (addr InfoAddr) String() string { return renderStr(addr.RenderTo) }

// Equal compares this InfoAddr with another for equality.
func (addr InfoAddr) Equal(val any) bool {
	other, ok := eqHdr[InfoAddr](val)
	if !ok {
		return false
	}
	return types.IsEqual(addr.URI, other.URI) && addr.Params.Equal(other.Params)
}

// IsValid checks whether the InfoAddr is syntactically valid.
func (addr InfoAddr) IsValid() bool {
	return types.IsValid(addr.URI) && addr.Params.IsValid()
}

// Clone returns a copy of the InfoAddr.
func (addr InfoAddr) Clone() InfoAddr {
	if addr.URI != nil {
		addr.URI = addr.URI.Clone()
	}
	addr.Params = addr.Params.Clone()
	return addr
}

// Purpose returns the purpose parameter used by Call-Info.
func (addr InfoAddr) Purpose() (string, bool) { return addr.Params.Get("purpose") }

func parseInfoAddr(s string) (InfoAddr, error) {
	s = grammar.TrimLWS(s)
	if len(s) < 2 || s[0] != '<' {
		return InfoAddr{}, errtrace.Wrap(newInvalidPartErr("info %q: missing '<'", s))
	}
	_, spec, rest, ok := grammar.CutNameAddr(s)
	if !ok {
		return InfoAddr{}, errtrace.Wrap(newInvalidPartErr("info %q: missing '>'", s))
	}
	u := uri.New(grammar.TrimLWS(spec))
	if !u.IsValid() {
		return InfoAddr{}, errtrace.Wrap(newInvalidPartErr("URI %q", spec))
	}
	rest = grammar.TrimLWS(rest)
	if rest != "" && rest[0] != ';' {
		return InfoAddr{}, errtrace.Wrap(newInvalidPartErr("info %q", s))
	}
	ps, err := parseParams(rest)
	if err != nil {
		return InfoAddr{}, errtrace.Wrap(err)
	}
	return InfoAddr{URI: u, Params: ps}, nil
}
