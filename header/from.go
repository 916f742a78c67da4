package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// From represents the From header field.
// The From header field indicates the logical identity of the initiator of the request.
type From NameAddr

// Kind returns [KindFrom].
func (*From) Kind() Kind { return KindFrom }

// CanonicName returns the canonical name of the header.
func (*From) CanonicName() Name { return KindFrom.CanonicName() }

// CompactName returns the compact name of the header.
func (*From) CompactName() Name { return KindFrom.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *From) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *From) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *From) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *From) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *From) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *From) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := From(NameAddr(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *From) Equal(val any) bool {
	other, ok := eqHdr[From](val)
	return ok && hdr != nil && NameAddr(*hdr).Equal(NameAddr(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *From) IsValid() bool { return hdr != nil && NameAddr(*hdr).IsValid() }

func (hdr *From) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *From) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*From](data)
	if err != nil || h == nil {
		*hdr = From{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *From) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(NameAddr(*hdr).RenderTo(w))
}

// Display returns the unquoted display name.
func (hdr *From) Display() string {
	if hdr == nil {
		return ""
	}
	return NameAddr(*hdr).Display()
}

// Tag returns the tag parameter.
func (hdr *From) Tag() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Get("tag")
}

// SetTag sets the tag parameter, an empty tag removes it.
func (hdr *From) SetTag(tag string) {
	if tag == "" {
		hdr.Params = hdr.Params.Del("tag")
		return
	}
	hdr.Params = hdr.Params.Set("tag", tag)
}

func parseFrom(value string) (Header, error) {
	addr, err := parseNameAddr(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := From(addr)
	return &hdr, nil
}
