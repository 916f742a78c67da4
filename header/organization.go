package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Organization represents the Organization header field.
// The Organization header field conveys the name of the organization to which the SIP element issuing
// the request or response belongs.
type Organization string

// Kind returns [KindOrganization].
func (Organization) Kind() Kind { return KindOrganization }

// CanonicName returns the canonical name of the header.
func (Organization) CanonicName() Name { return KindOrganization.CanonicName() }

// CompactName returns the compact name of the header.
func (Organization) CompactName() Name { return KindOrganization.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Organization) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Organization) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Organization) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Organization) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Organization) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Organization) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr Organization) Equal(val any) bool {
	other, ok := eqHdr[Organization](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr Organization) IsValid() bool { return hdr == "" || isText(string(hdr)) }

func (hdr Organization) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Organization) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Organization](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Organization) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

func parseOrganization(value string) (Header, error) {
	if !(value == "" || isText(string(value))) {
		return nil, errtrace.Wrap(newInvalidPartErr("value %q", value))
	}
	return Organization(value), nil
}
