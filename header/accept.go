package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Accept represents the Accept header field.
// The Accept header field lists media ranges acceptable in the response body.
type Accept []MIMEType

// Kind returns [KindAccept].
func (Accept) Kind() Kind { return KindAccept }

// CanonicName returns the canonical name of the header.
func (Accept) CanonicName() Name { return KindAccept.CanonicName() }

// CompactName returns the compact name of the header.
func (Accept) CompactName() Name { return KindAccept.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Accept) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Accept) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Accept) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Accept) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Accept) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Accept) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr Accept) Equal(val any) bool {
	other, ok := eqHdr[Accept](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Accept) IsValid() bool { return allValid(hdr) }

func (hdr Accept) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Accept) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Accept](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Accept) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseAccept(value string) (Header, error) {
	list, err := parseList(value, parseMIMEType)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Accept(list), nil
}
