package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
)

// ContentLength represents the Content-Length header field.
// The Content-Length header field indicates the size of the message body, in decimal number of octets.
type ContentLength uint

// Kind returns [KindContentLength].
func (ContentLength) Kind() Kind { return KindContentLength }

// CanonicName returns the canonical name of the header.
func (ContentLength) CanonicName() Name { return KindContentLength.CanonicName() }

// CompactName returns the compact name of the header.
func (ContentLength) CompactName() Name { return KindContentLength.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr ContentLength) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr ContentLength) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ContentLength) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr ContentLength) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentLength) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr ContentLength) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr ContentLength) Equal(val any) bool {
	other, ok := eqHdr[ContentLength](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr ContentLength) IsValid() bool { return true }

func (hdr ContentLength) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentLength) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[ContentLength](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr ContentLength) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatUint(uint64(hdr), 10)))
}

func parseContentLength(value string) (Header, error) {
	n, err := parseUint(value, strconv.IntSize)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ContentLength(n), nil
}
