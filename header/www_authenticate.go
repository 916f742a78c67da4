package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// WWWAuthenticate represents the WWW-Authenticate header field.
// The WWW-Authenticate header field consists of at least one challenge that indicates the authentication scheme(s)
// and parameters applicable to the Request-URI.
type WWWAuthenticate struct {
	Challenge
}

// Kind returns [KindWWWAuthenticate].
func (*WWWAuthenticate) Kind() Kind { return KindWWWAuthenticate }

// CanonicName returns the canonical name of the header.
func (*WWWAuthenticate) CanonicName() Name { return KindWWWAuthenticate.CanonicName() }

// CompactName returns the compact name of the header.
func (*WWWAuthenticate) CompactName() Name { return KindWWWAuthenticate.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *WWWAuthenticate) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *WWWAuthenticate) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *WWWAuthenticate) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *WWWAuthenticate) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *WWWAuthenticate) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *WWWAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &WWWAuthenticate{hdr.Challenge.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *WWWAuthenticate) Equal(val any) bool {
	other, ok := eqHdr[WWWAuthenticate](val)
	return ok && hdr != nil && hdr.Challenge.Equal(other.Challenge)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *WWWAuthenticate) IsValid() bool { return hdr != nil && hdr.Challenge.IsValid() }

func (hdr *WWWAuthenticate) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *WWWAuthenticate) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*WWWAuthenticate](data)
	if err != nil || h == nil {
		*hdr = WWWAuthenticate{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *WWWAuthenticate) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(hdr.Challenge.RenderTo(w))
}

func parseWWWAuthenticate(value string) (Header, error) {
	scheme, ps, err := parseSchemeAuth(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &WWWAuthenticate{Challenge{Scheme: scheme, Params: ps}}, nil
}
