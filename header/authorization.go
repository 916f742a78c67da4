package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Authorization represents the Authorization header field.
// The Authorization header field contains authentication credentials of a UA.
type Authorization struct {
	Credentials
}

// Kind returns [KindAuthorization].
func (*Authorization) Kind() Kind { return KindAuthorization }

// CanonicName returns the canonical name of the header.
func (*Authorization) CanonicName() Name { return KindAuthorization.CanonicName() }

// CompactName returns the compact name of the header.
func (*Authorization) CompactName() Name { return KindAuthorization.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *Authorization) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *Authorization) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Authorization) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *Authorization) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Authorization) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *Authorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Authorization{hdr.Credentials.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *Authorization) Equal(val any) bool {
	other, ok := eqHdr[Authorization](val)
	return ok && hdr != nil && hdr.Credentials.Equal(other.Credentials)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Authorization) IsValid() bool { return hdr != nil && hdr.Credentials.IsValid() }

func (hdr *Authorization) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Authorization) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*Authorization](data)
	if err != nil || h == nil {
		*hdr = Authorization{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *Authorization) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(hdr.Credentials.RenderTo(w))
}

func parseAuthorization(value string) (Header, error) {
	scheme, ps, err := parseSchemeAuth(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Authorization{Credentials{Scheme: scheme, Params: ps}}, nil
}
