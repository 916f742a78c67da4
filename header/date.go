package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
)

// Date represents the Date header field.
// The Date header field reflects the time when the request or response is first sent.
// It is always rendered in GMT, see [DateLayout].
type Date struct {
	time.Time
}

// Kind returns [KindDate].
func (*Date) Kind() Kind { return KindDate }

// CanonicName returns the canonical name of the header.
func (*Date) CanonicName() Name { return KindDate.CanonicName() }

// CompactName returns the compact name of the header.
func (*Date) CompactName() Name { return KindDate.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *Date) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *Date) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Date) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *Date) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Date) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *Date) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := *hdr
	return &h
}

// Equal compares this header with another for equality.
func (hdr *Date) Equal(val any) bool {
	other, ok := eqHdr[Date](val)
	return ok && hdr != nil && hdr.Time.Equal(other.Time)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Date) IsValid() bool { return hdr != nil && !hdr.IsZero() }

func (hdr *Date) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Date) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*Date](data)
	if err != nil || h == nil {
		*hdr = Date{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *Date) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, hdr.UTC().Format(DateLayout)))
}

// DateLayout is the RFC 1123 layout of the Date header.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

func parseDate(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		if t, err = time.Parse(time.RFC1123, value); err != nil {
			return nil, errtrace.Wrap(newInvalidPartErr("date %q", value))
		}
	}
	return &Date{t.UTC()}, nil
}
