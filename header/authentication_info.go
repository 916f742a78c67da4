package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AuthenticationInfo represents the Authentication-Info header field.
// The Authentication-Info header field provides for mutual authentication with HTTP Digest.
type AuthenticationInfo struct {
	Params AuthParams
}

// Kind returns [KindAuthenticationInfo].
func (*AuthenticationInfo) Kind() Kind { return KindAuthenticationInfo }

// CanonicName returns the canonical name of the header.
func (*AuthenticationInfo) CanonicName() Name { return KindAuthenticationInfo.CanonicName() }

// CompactName returns the compact name of the header.
func (*AuthenticationInfo) CompactName() Name { return KindAuthenticationInfo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *AuthenticationInfo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *AuthenticationInfo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *AuthenticationInfo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *AuthenticationInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *AuthenticationInfo) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *AuthenticationInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &AuthenticationInfo{hdr.Params.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *AuthenticationInfo) Equal(val any) bool {
	other, ok := eqHdr[AuthenticationInfo](val)
	return ok && hdr != nil && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *AuthenticationInfo) IsValid() bool {
	return hdr != nil && len(hdr.Params) > 0 && hdr.Params.IsValid()
}

func (hdr *AuthenticationInfo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AuthenticationInfo) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*AuthenticationInfo](data)
	if err != nil || h == nil {
		*hdr = AuthenticationInfo{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *AuthenticationInfo) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(hdr.Params.RenderTo(w))
}

func (hdr *AuthenticationInfo) NextNonce() (string, bool) { return hdr.Params.Value("nextnonce") }
func (hdr *AuthenticationInfo) RspAuth() (string, bool)   { return hdr.Params.Value("rspauth") }
func (hdr *AuthenticationInfo) QOP() (string, bool)       { return hdr.Params.Value("qop") }
func (hdr *AuthenticationInfo) CNonce() (string, bool)    { return hdr.Params.Value("cnonce") }

// NC returns the nonce count.
func (hdr *AuthenticationInfo) NC() (uint32, bool) { return hdr.Params.nc() }

func (hdr *AuthenticationInfo) SetNextNonce(v string) {
	hdr.Params = hdr.Params.SetQuoted("nextnonce", v)
}
func (hdr *AuthenticationInfo) SetRspAuth(v string) { hdr.Params = hdr.Params.SetQuoted("rspauth", v) }
func (hdr *AuthenticationInfo) SetQOP(v string)     { hdr.Params = hdr.Params.Set("qop", v) }
func (hdr *AuthenticationInfo) SetCNonce(v string)  { hdr.Params = hdr.Params.SetQuoted("cnonce", v) }

// SetNC sets the nonce count, it is rendered as 8 hex digits.
func (hdr *AuthenticationInfo) SetNC(nc uint32) { hdr.Params = hdr.Params.setNC(nc) }

func parseAuthenticationInfo(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	ps, err := parseAuthParams(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &AuthenticationInfo{ps}, nil
}
