package header

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// AuthParams is an ordered list of authentication parameters.
// Values keep their quoting as they appear on the wire.
// Unlike [Params], names are compared case-insensitively.
type AuthParams []Param

// Get returns the raw value of the first parameter with the name.
func (ps AuthParams) Get(name string) (string, bool) {
	for _, p := range ps {
		if util.EqFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Value returns the unquoted value of the first parameter with the name.
func (ps AuthParams) Value(name string) (string, bool) {
	v, ok := ps.Get(name)
	return grammar.Unquote(v), ok
}

// Set replaces the raw value of the first parameter with the name or appends a new one.
func (ps AuthParams) Set(name, value string) AuthParams {
	for i := range ps {
		if util.EqFold(ps[i].Name, name) {
			ps[i].Value = value
			return ps
		}
	}
	return append(ps, Param{name, value})
}

// SetQuoted sets the parameter value as a quoted string.
func (ps AuthParams) SetQuoted(name, value string) AuthParams {
	return ps.Set(name, grammar.Quote(value))
}

// Del removes all parameters with the name.
func (ps AuthParams) Del(name string) AuthParams {
	out := ps[:0]
	for _, p := range ps {
		if !util.EqFold(p.Name, name) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Clone returns a copy of the parameters.
func (ps AuthParams) Clone() AuthParams {
	return AuthParams(Params(ps).Clone())
}

// Equal compares names case-insensitively and values exactly, order matters.
func (ps AuthParams) Equal(val any) bool {
	other, ok := eqHdr[AuthParams](val)
	if !ok || len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if !util.EqFold(ps[i].Name, other[i].Name) || ps[i].Value != other[i].Value {
			return false
		}
	}
	return true
}

// IsValid checks whether all parameters are name=value pairs with well formed values.
func (ps AuthParams) IsValid() bool {
	for _, p := range ps {
		if !grammar.IsToken(p.Name) || p.Value == "" || !isAuthValue(p.Value) {
			return false
		}
	}
	return true
}

// RenderTo writes parameters separated by ", ".
func (ps AuthParams) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderList(w, ps, func(w io.Writer, p Param) (int, error) {
		return errtrace.Wrap2(fmt.Fprint(w, p.Name, "=", p.Value))
	}))
}

// String returns parameters separated by ", ".
func (ps AuthParams) String() string { return renderStr(ps.RenderTo) }

func (ps AuthParams) nc() (uint32, bool) {
	v, ok := ps.Get("nc")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func (ps AuthParams) setNC(nc uint32) AuthParams { return ps.Set("nc", fmt.Sprintf("%08x", nc)) }

func (ps AuthParams) stale() (bool, bool) {
	v, ok := ps.Value("stale")
	if !ok {
		return false, false
	}
	return util.EqFold(v, "true"), true
}

func (ps AuthParams) setStale(stale bool) AuthParams {
	return ps.Set("stale", strconv.FormatBool(stale))
}

func isAuthValue(v string) bool {
	return grammar.IsQuoted(v) || grammar.IsToken(v)
}

// parseAuthParams parses a comma-separated list of auth-param pairs.
func parseAuthParams(s string) (AuthParams, error) {
	parts := grammar.SplitList(s, ',')
	if len(parts) == 0 {
		return nil, nil
	}
	ps := make(AuthParams, 0, len(parts))
	for _, part := range parts {
		name, value, ok := strings.Cut(part, "=")
		name, value = grammar.TrimLWS(name), grammar.TrimLWS(value)
		if !ok || !grammar.IsToken(name) || !isAuthValue(value) {
			return nil, errtrace.Wrap(newInvalidPartErr("auth parameter %q", part))
		}
		ps = append(ps, Param{name, value})
	}
	return ps, nil
}

// parseSchemeAuth parses the "scheme auth-param *(, auth-param)" form.
func parseSchemeAuth(s string) (string, AuthParams, error) {
	if s == "" {
		return "", nil, errtrace.Wrap(errEmptyValue())
	}
	scheme, rest := grammar.Token(s)
	if scheme == "" || rest != "" && !grammar.IsWS(rest[0]) {
		return "", nil, errtrace.Wrap(newInvalidPartErr("auth scheme in %q", s))
	}
	ps, err := parseAuthParams(rest)
	if err != nil {
		return "", nil, errtrace.Wrap(err)
	}
	return scheme, ps, nil
}

func renderSchemeAuth(w io.Writer, scheme string, ps AuthParams) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(scheme)
	if len(ps) > 0 {
		cw.WriteString(" ")
		cw.Call(ps.RenderTo)
	}
	return errtrace.Wrap2(cw.Result())
}

// Credentials holds the value of Authorization and Proxy-Authorization headers.
type Credentials struct {
	Scheme string
	Params AuthParams
}

// RenderTo writes the credentials.
func (crd Credentials) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderSchemeAuth(w, crd.Scheme, crd.Params))
}

// String returns the string representation of the credentials.
func (crd Credentials) String() string { return renderStr(crd.RenderTo) }

// Equal compares schemes case-insensitively and parameters.
func (crd Credentials) Equal(val any) bool {
	other, ok := eqHdr[Credentials](val)
	if !ok {
		return false
	}
	return util.EqFold(crd.Scheme, other.Scheme) && crd.Params.Equal(other.Params)
}

// IsValid checks whether the credentials are syntactically valid.
func (crd Credentials) IsValid() bool { return grammar.IsToken(crd.Scheme) && crd.Params.IsValid() }

// Clone returns a copy of the credentials.
func (crd Credentials) Clone() Credentials {
	crd.Params = crd.Params.Clone()
	return crd
}

func (crd Credentials) Username() (string, bool)  { return crd.Params.Value("username") }
func (crd Credentials) Realm() (string, bool)     { return crd.Params.Value("realm") }
func (crd Credentials) Nonce() (string, bool)     { return crd.Params.Value("nonce") }
func (crd Credentials) URI() (string, bool)       { return crd.Params.Value("uri") }
func (crd Credentials) Response() (string, bool)  { return crd.Params.Value("response") }
func (crd Credentials) Opaque() (string, bool)    { return crd.Params.Value("opaque") }
func (crd Credentials) CNonce() (string, bool)    { return crd.Params.Value("cnonce") }
func (crd Credentials) Algorithm() (string, bool) { return crd.Params.Value("algorithm") }
func (crd Credentials) QOP() (string, bool)       { return crd.Params.Value("qop") }

// NC returns the nonce count.
func (crd Credentials) NC() (uint32, bool) { return crd.Params.nc() }

func (crd *Credentials) SetUsername(v string)  { crd.Params = crd.Params.SetQuoted("username", v) }
func (crd *Credentials) SetRealm(v string)     { crd.Params = crd.Params.SetQuoted("realm", v) }
func (crd *Credentials) SetNonce(v string)     { crd.Params = crd.Params.SetQuoted("nonce", v) }
func (crd *Credentials) SetURI(v string)       { crd.Params = crd.Params.SetQuoted("uri", v) }
func (crd *Credentials) SetResponse(v string)  { crd.Params = crd.Params.SetQuoted("response", v) }
func (crd *Credentials) SetOpaque(v string)    { crd.Params = crd.Params.SetQuoted("opaque", v) }
func (crd *Credentials) SetCNonce(v string)    { crd.Params = crd.Params.SetQuoted("cnonce", v) }
func (crd *Credentials) SetAlgorithm(v string) { crd.Params = crd.Params.Set("algorithm", v) }
func (crd *Credentials) SetQOP(v string)       { crd.Params = crd.Params.Set("qop", v) }

// SetNC sets the nonce count, it is rendered as 8 hex digits.
func (crd *Credentials) SetNC(nc uint32) { crd.Params = crd.Params.setNC(nc) }

// Challenge holds the value of WWW-Authenticate and Proxy-Authenticate headers.
type Challenge struct {
	Scheme string
	Params AuthParams
}

// RenderTo writes the challenge.
func (cln Challenge) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderSchemeAuth(w, cln.Scheme, cln.Params))
}

// String returns the string representation of the challenge.
func (cln Challenge) String() string { return renderStr(cln.RenderTo) }

// Equal compares schemes case-insensitively and parameters.
func (cln Challenge) Equal(val any) bool {
	other, ok := eqHdr[Challenge](val)
	if !ok {
		return false
	}
	return util.EqFold(cln.Scheme, other.Scheme) && cln.Params.Equal(other.Params)
}

// IsValid checks whether the challenge is syntactically valid.
func (cln Challenge) IsValid() bool { return grammar.IsToken(cln.Scheme) && cln.Params.IsValid() }

// Clone returns a copy of the challenge.
func (cln Challenge) Clone() Challenge {
	cln.Params = cln.Params.Clone()
	return cln
}

func (cln Challenge) Realm() (string, bool)     { return cln.Params.Value("realm") }
func (cln Challenge) Domain() (string, bool)    { return cln.Params.Value("domain") }
func (cln Challenge) Nonce() (string, bool)     { return cln.Params.Value("nonce") }
func (cln Challenge) Opaque() (string, bool)    { return cln.Params.Value("opaque") }
func (cln Challenge) Algorithm() (string, bool) { return cln.Params.Value("algorithm") }

// QOP returns the unquoted list of quality of protection options, i.e. "auth,auth-int".
func (cln Challenge) QOP() (string, bool) { return cln.Params.Value("qop") }

// Stale returns the stale flag.
func (cln Challenge) Stale() (stale, ok bool) { return cln.Params.stale() }

func (cln *Challenge) SetRealm(v string)     { cln.Params = cln.Params.SetQuoted("realm", v) }
func (cln *Challenge) SetDomain(v string)    { cln.Params = cln.Params.SetQuoted("domain", v) }
func (cln *Challenge) SetNonce(v string)     { cln.Params = cln.Params.SetQuoted("nonce", v) }
func (cln *Challenge) SetOpaque(v string)    { cln.Params = cln.Params.SetQuoted("opaque", v) }
func (cln *Challenge) SetAlgorithm(v string) { cln.Params = cln.Params.Set("algorithm", v) }
func (cln *Challenge) SetQOP(v string)       { cln.Params = cln.Params.SetQuoted("qop", v) }
func (cln *Challenge) SetStale(stale bool)   { cln.Params = cln.Params.setStale(stale) }
