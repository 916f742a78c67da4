package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"
)

// InReplyTo represents the In-Reply-To header field.
// The In-Reply-To header field enumerates the Call-IDs that this call references or returns.
type InReplyTo []CallID

// Kind returns [KindInReplyTo].
func (InReplyTo) Kind() Kind { return KindInReplyTo }

// CanonicName returns the canonical name of the header.
func (InReplyTo) CanonicName() Name { return KindInReplyTo.CanonicName() }

// CompactName returns the compact name of the header.
func (InReplyTo) CompactName() Name { return KindInReplyTo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr InReplyTo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr InReplyTo) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr InReplyTo) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr InReplyTo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr InReplyTo) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr InReplyTo) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr InReplyTo) Equal(val any) bool {
	other, ok := eqHdr[InReplyTo](val)
	return ok && equalStrings(hdr, other, false)
}

// IsValid checks whether the header is syntactically valid.
func (hdr InReplyTo) IsValid() bool { return allValid(hdr) }

func (hdr InReplyTo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *InReplyTo) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[InReplyTo](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr InReplyTo) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

func parseInReplyTo(value string) (Header, error) {
	list, err := parseTokenList(value, isCallID)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := make(InReplyTo, len(list))
	for i := range list {
		hdr[i] = CallID(list[i])
	}
	return hdr, nil
}
