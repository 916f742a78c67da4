package header

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"braces.dev/errtrace"
)

// Expires represents the Expires header field, a relative time in seconds.
type Expires uint32

// Kind returns [KindExpires].
func (Expires) Kind() Kind { return KindExpires }

// CanonicName returns the canonical name of the header.
func (Expires) CanonicName() Name { return KindExpires.CanonicName() }

// CompactName returns the compact name of the header.
func (Expires) CompactName() Name { return KindExpires.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Expires) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Expires) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Expires) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Expires) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Expires) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Expires) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr Expires) Equal(val any) bool {
	other, ok := eqHdr[Expires](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr Expires) IsValid() bool { return true }

func (hdr Expires) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Expires) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Expires](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Expires) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatUint(uint64(hdr), 10)))
}

// Duration returns the header value as [time.Duration].
func (hdr Expires) Duration() time.Duration { return time.Duration(hdr) * time.Second }

func parseExpires(value string) (Header, error) {
	n, err := parseUint(value, 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Expires(n), nil
}
