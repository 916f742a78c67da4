package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Subject represents the Subject header field.
// The Subject header field provides a summary or indicates the nature of the call.
type Subject string

// Kind returns [KindSubject].
func (Subject) Kind() Kind { return KindSubject }

// CanonicName returns the canonical name of the header.
func (Subject) CanonicName() Name { return KindSubject.CanonicName() }

// CompactName returns the compact name of the header.
func (Subject) CompactName() Name { return KindSubject.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Subject) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Subject) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Subject) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Subject) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Subject) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Subject) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr Subject) Equal(val any) bool {
	other, ok := eqHdr[Subject](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr Subject) IsValid() bool { return hdr == "" || isText(string(hdr)) }

func (hdr Subject) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Subject) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Subject](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Subject) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

func parseSubject(value string) (Header, error) {
	if !(value == "" || isText(string(value))) {
		return nil, errtrace.Wrap(newInvalidPartErr("value %q", value))
	}
	return Subject(value), nil
}
