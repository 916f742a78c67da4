package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Priority represents the Priority header field.
// The Priority header field indicates the urgency of the request as perceived by the client,
// i.e. "emergency", "urgent", "normal" or "non-urgent".
type Priority string

// Kind returns [KindPriority].
func (Priority) Kind() Kind { return KindPriority }

// CanonicName returns the canonical name of the header.
func (Priority) CanonicName() Name { return KindPriority.CanonicName() }

// CompactName returns the compact name of the header.
func (Priority) CompactName() Name { return KindPriority.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Priority) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Priority) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Priority) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Priority) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Priority) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Priority) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr Priority) Equal(val any) bool {
	other, ok := eqHdr[Priority](val)
	return ok && util.EqFold(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Priority) IsValid() bool { return grammar.IsToken(hdr) }

func (hdr Priority) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Priority) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Priority](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Priority) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

func parsePriority(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	if !(grammar.IsToken(value)) {
		return nil, errtrace.Wrap(newInvalidPartErr("value %q", value))
	}
	return Priority(value), nil
}
