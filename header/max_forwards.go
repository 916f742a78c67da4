package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
)

// MaxForwards represents the Max-Forwards header field.
// The Max-Forwards header field limits the number of proxies or gateways that can forward the request.
type MaxForwards uint

// Kind returns [KindMaxForwards].
func (MaxForwards) Kind() Kind { return KindMaxForwards }

// CanonicName returns the canonical name of the header.
func (MaxForwards) CanonicName() Name { return KindMaxForwards.CanonicName() }

// CompactName returns the compact name of the header.
func (MaxForwards) CompactName() Name { return KindMaxForwards.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr MaxForwards) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr MaxForwards) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr MaxForwards) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr MaxForwards) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr MaxForwards) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr MaxForwards) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr MaxForwards) Equal(val any) bool {
	other, ok := eqHdr[MaxForwards](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr MaxForwards) IsValid() bool { return true }

func (hdr MaxForwards) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *MaxForwards) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[MaxForwards](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr MaxForwards) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatUint(uint64(hdr), 10)))
}

func parseMaxForwards(value string) (Header, error) {
	n, err := parseUint(value, strconv.IntSize)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return MaxForwards(n), nil
}
