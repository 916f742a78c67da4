package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ReplyTo represents the Reply-To header field.
// The Reply-To header field contains a logical return URI that may be different from the From header field.
type ReplyTo NameAddr

// Kind returns [KindReplyTo].
func (*ReplyTo) Kind() Kind { return KindReplyTo }

// CanonicName returns the canonical name of the header.
func (*ReplyTo) CanonicName() Name { return KindReplyTo.CanonicName() }

// CompactName returns the compact name of the header.
func (*ReplyTo) CompactName() Name { return KindReplyTo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *ReplyTo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *ReplyTo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ReplyTo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *ReplyTo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ReplyTo) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *ReplyTo) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := ReplyTo(NameAddr(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *ReplyTo) Equal(val any) bool {
	other, ok := eqHdr[ReplyTo](val)
	return ok && hdr != nil && NameAddr(*hdr).Equal(NameAddr(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ReplyTo) IsValid() bool { return hdr != nil && NameAddr(*hdr).IsValid() }

func (hdr *ReplyTo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ReplyTo) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*ReplyTo](data)
	if err != nil || h == nil {
		*hdr = ReplyTo{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *ReplyTo) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(NameAddr(*hdr).RenderTo(w))
}

func parseReplyTo(value string) (Header, error) {
	addr, err := parseNameAddr(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := ReplyTo(addr)
	return &hdr, nil
}
