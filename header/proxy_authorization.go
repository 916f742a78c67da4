package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ProxyAuthorization represents the Proxy-Authorization header field.
// The Proxy-Authorization header field allows the client to identify itself to a proxy that requires authentication.
type ProxyAuthorization struct {
	Credentials
}

// Kind returns [KindProxyAuthorization].
func (*ProxyAuthorization) Kind() Kind { return KindProxyAuthorization }

// CanonicName returns the canonical name of the header.
func (*ProxyAuthorization) CanonicName() Name { return KindProxyAuthorization.CanonicName() }

// CompactName returns the compact name of the header.
func (*ProxyAuthorization) CompactName() Name { return KindProxyAuthorization.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *ProxyAuthorization) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *ProxyAuthorization) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ProxyAuthorization) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *ProxyAuthorization) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ProxyAuthorization) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *ProxyAuthorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ProxyAuthorization{hdr.Credentials.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthorization) Equal(val any) bool {
	other, ok := eqHdr[ProxyAuthorization](val)
	return ok && hdr != nil && hdr.Credentials.Equal(other.Credentials)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ProxyAuthorization) IsValid() bool { return hdr != nil && hdr.Credentials.IsValid() }

func (hdr *ProxyAuthorization) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ProxyAuthorization) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*ProxyAuthorization](data)
	if err != nil || h == nil {
		*hdr = ProxyAuthorization{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *ProxyAuthorization) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(hdr.Credentials.RenderTo(w))
}

func parseProxyAuthorization(value string) (Header, error) {
	scheme, ps, err := parseSchemeAuth(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ProxyAuthorization{Credentials{Scheme: scheme, Params: ps}}, nil
}
