package header

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"braces.dev/errtrace"
)

// MinExpires represents the Min-Expires header field.
// The Min-Expires header field conveys the minimum refresh interval supported for soft-state elements
// managed by that server.
type MinExpires uint32

// Kind returns [KindMinExpires].
func (MinExpires) Kind() Kind { return KindMinExpires }

// CanonicName returns the canonical name of the header.
func (MinExpires) CanonicName() Name { return KindMinExpires.CanonicName() }

// CompactName returns the compact name of the header.
func (MinExpires) CompactName() Name { return KindMinExpires.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr MinExpires) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr MinExpires) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr MinExpires) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr MinExpires) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr MinExpires) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr MinExpires) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr MinExpires) Equal(val any) bool {
	other, ok := eqHdr[MinExpires](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr MinExpires) IsValid() bool { return true }

func (hdr MinExpires) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *MinExpires) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[MinExpires](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr MinExpires) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatUint(uint64(hdr), 10)))
}

// Duration returns the header value as [time.Duration].
func (hdr MinExpires) Duration() time.Duration { return time.Duration(hdr) * time.Second }

func parseMinExpires(value string) (Header, error) {
	n, err := parseUint(value, 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return MinExpires(n), nil
}
