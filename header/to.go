package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// To represents the To header field.
// The To header field specifies the logical recipient of the request.
type To NameAddr

// Kind returns [KindTo].
func (*To) Kind() Kind { return KindTo }

// CanonicName returns the canonical name of the header.
func (*To) CanonicName() Name { return KindTo.CanonicName() }

// CompactName returns the compact name of the header.
func (*To) CompactName() Name { return KindTo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *To) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *To) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *To) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *To) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *To) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *To) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := To(NameAddr(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *To) Equal(val any) bool {
	other, ok := eqHdr[To](val)
	return ok && hdr != nil && NameAddr(*hdr).Equal(NameAddr(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *To) IsValid() bool { return hdr != nil && NameAddr(*hdr).IsValid() }

func (hdr *To) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *To) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*To](data)
	if err != nil || h == nil {
		*hdr = To{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *To) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(NameAddr(*hdr).RenderTo(w))
}

// Display returns the unquoted display name.
func (hdr *To) Display() string {
	if hdr == nil {
		return ""
	}
	return NameAddr(*hdr).Display()
}

// Tag returns the tag parameter.
func (hdr *To) Tag() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Get("tag")
}

// SetTag sets the tag parameter, an empty tag removes it.
func (hdr *To) SetTag(tag string) {
	if tag == "" {
		hdr.Params = hdr.Params.Del("tag")
		return
	}
	hdr.Params = hdr.Params.Set("tag", tag)
}

func parseTo(value string) (Header, error) {
	addr, err := parseNameAddr(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := To(addr)
	return &hdr, nil
}
