package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ReferredBy represents the Referred-By header field.
type ReferredBy NameAddr

// Kind returns [KindReferredBy].
func (*ReferredBy) Kind() Kind { return KindReferredBy }

// CanonicName returns the canonical name of the header.
func (*ReferredBy) CanonicName() Name { return KindReferredBy.CanonicName() }

// CompactName returns the compact name of the header.
func (*ReferredBy) CompactName() Name { return KindReferredBy.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *ReferredBy) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *ReferredBy) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ReferredBy) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *ReferredBy) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ReferredBy) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *ReferredBy) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := ReferredBy(NameAddr(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *ReferredBy) Equal(val any) bool {
	other, ok := eqHdr[ReferredBy](val)
	return ok && hdr != nil && NameAddr(*hdr).Equal(NameAddr(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ReferredBy) IsValid() bool { return hdr != nil && NameAddr(*hdr).IsValid() }

func (hdr *ReferredBy) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ReferredBy) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*ReferredBy](data)
	if err != nil || h == nil {
		*hdr = ReferredBy{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *ReferredBy) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(NameAddr(*hdr).RenderTo(w))
}

func parseReferredBy(value string) (Header, error) {
	addr, err := parseNameAddr(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := ReferredBy(addr)
	return &hdr, nil
}
