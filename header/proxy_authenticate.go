package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ProxyAuthenticate represents the Proxy-Authenticate header field.
// A Proxy-Authenticate header field value contains an authentication challenge.
type ProxyAuthenticate struct {
	Challenge
}

// Kind returns [KindProxyAuthenticate].
func (*ProxyAuthenticate) Kind() Kind { return KindProxyAuthenticate }

// CanonicName returns the canonical name of the header.
func (*ProxyAuthenticate) CanonicName() Name { return KindProxyAuthenticate.CanonicName() }

// CompactName returns the compact name of the header.
func (*ProxyAuthenticate) CompactName() Name { return KindProxyAuthenticate.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *ProxyAuthenticate) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *ProxyAuthenticate) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ProxyAuthenticate) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *ProxyAuthenticate) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ProxyAuthenticate) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *ProxyAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ProxyAuthenticate{hdr.Challenge.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthenticate) Equal(val any) bool {
	other, ok := eqHdr[ProxyAuthenticate](val)
	return ok && hdr != nil && hdr.Challenge.Equal(other.Challenge)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ProxyAuthenticate) IsValid() bool { return hdr != nil && hdr.Challenge.IsValid() }

func (hdr *ProxyAuthenticate) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ProxyAuthenticate) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*ProxyAuthenticate](data)
	if err != nil || h == nil {
		*hdr = ProxyAuthenticate{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *ProxyAuthenticate) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(hdr.Challenge.RenderTo(w))
}

func parseProxyAuthenticate(value string) (Header, error) {
	scheme, ps, err := parseSchemeAuth(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ProxyAuthenticate{Challenge{Scheme: scheme, Params: ps}}, nil
}
