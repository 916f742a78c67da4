package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
)

// RSeq represents the RSeq header field, the sequence number of a reliable provisional response.
type RSeq uint32

// Kind returns [KindRSeq].
func (RSeq) Kind() Kind { return KindRSeq }

// CanonicName returns the canonical name of the header.
func (RSeq) CanonicName() Name { return KindRSeq.CanonicName() }

// CompactName returns the compact name of the header.
func (RSeq) CompactName() Name { return KindRSeq.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr RSeq) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr RSeq) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr RSeq) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr RSeq) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr RSeq) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr RSeq) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr RSeq) Equal(val any) bool {
	other, ok := eqHdr[RSeq](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr RSeq) IsValid() bool { return true }

func (hdr RSeq) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *RSeq) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[RSeq](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr RSeq) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatUint(uint64(hdr), 10)))
}

func parseRSeq(value string) (Header, error) {
	n, err := parseUint(value, 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return RSeq(n), nil
}
