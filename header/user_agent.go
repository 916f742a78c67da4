package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// UserAgent represents the User-Agent header field.
// The User-Agent header field contains information about the UAC originating the request.
type UserAgent string

// Kind returns [KindUserAgent].
func (UserAgent) Kind() Kind { return KindUserAgent }

// CanonicName returns the canonical name of the header.
func (UserAgent) CanonicName() Name { return KindUserAgent.CanonicName() }

// CompactName returns the compact name of the header.
func (UserAgent) CompactName() Name { return KindUserAgent.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr UserAgent) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr UserAgent) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr UserAgent) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr UserAgent) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr UserAgent) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr UserAgent) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr UserAgent) Equal(val any) bool {
	other, ok := eqHdr[UserAgent](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr UserAgent) IsValid() bool { return isText(string(hdr)) }

func (hdr UserAgent) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *UserAgent) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[UserAgent](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr UserAgent) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

func parseUserAgent(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	if !(isText(string(value))) {
		return nil, errtrace.Wrap(newInvalidPartErr("value %q", value))
	}
	return UserAgent(value), nil
}
