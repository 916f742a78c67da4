package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AcceptEncoding represents the Accept-Encoding header field.
// The Accept-Encoding header field restricts the content codings that are acceptable in the response.
type AcceptEncoding []TokenParams

// Kind returns [KindAcceptEncoding].
func (AcceptEncoding) Kind() Kind { return KindAcceptEncoding }

// CanonicName returns the canonical name of the header.
func (AcceptEncoding) CanonicName() Name { return KindAcceptEncoding.CanonicName() }

// CompactName returns the compact name of the header.
func (AcceptEncoding) CompactName() Name { return KindAcceptEncoding.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr AcceptEncoding) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr AcceptEncoding) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptEncoding) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr AcceptEncoding) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AcceptEncoding) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr AcceptEncoding) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptEncoding) Equal(val any) bool {
	other, ok := eqHdr[AcceptEncoding](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr AcceptEncoding) IsValid() bool { return allValid(hdr) }

func (hdr AcceptEncoding) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AcceptEncoding) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[AcceptEncoding](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr AcceptEncoding) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseAcceptEncoding(value string) (Header, error) {
	list, err := parseList(value, parseTokenParams)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return AcceptEncoding(list), nil
}
