package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ReferTo represents the Refer-To header field.
// It carries the URI the recipient of a REFER request should contact.
type ReferTo NameAddr

// Kind returns [KindReferTo].
func (*ReferTo) Kind() Kind { return KindReferTo }

// CanonicName returns the canonical name of the header.
func (*ReferTo) CanonicName() Name { return KindReferTo.CanonicName() }

// CompactName returns the compact name of the header.
func (*ReferTo) CompactName() Name { return KindReferTo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *ReferTo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *ReferTo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ReferTo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *ReferTo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ReferTo) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *ReferTo) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := ReferTo(NameAddr(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *ReferTo) Equal(val any) bool {
	other, ok := eqHdr[ReferTo](val)
	return ok && hdr != nil && NameAddr(*hdr).Equal(NameAddr(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ReferTo) IsValid() bool { return hdr != nil && NameAddr(*hdr).IsValid() }

func (hdr *ReferTo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ReferTo) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*ReferTo](data)
	if err != nil || h == nil {
		*hdr = ReferTo{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *ReferTo) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(NameAddr(*hdr).RenderTo(w))
}

func parseReferTo(value string) (Header, error) {
	addr, err := parseNameAddr(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := ReferTo(addr)
	return &hdr, nil
}
