package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// ContentType represents the Content-Type header field.
// The Content-Type header field indicates the media type of the message body sent to the recipient.
type ContentType MIMEType

// Kind returns [KindContentType].
func (*ContentType) Kind() Kind { return KindContentType }

// CanonicName returns the canonical name of the header.
func (*ContentType) CanonicName() Name { return KindContentType.CanonicName() }

// CompactName returns the compact name of the header.
func (*ContentType) CompactName() Name { return KindContentType.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *ContentType) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *ContentType) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentType) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *ContentType) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentType) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *ContentType) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := ContentType(MIMEType(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *ContentType) Equal(val any) bool {
	other, ok := eqHdr[ContentType](val)
	return ok && hdr != nil && MIMEType(*hdr).Equal(MIMEType(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ContentType) IsValid() bool { return hdr != nil && MIMEType(*hdr).IsValid() }

func (hdr *ContentType) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentType) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*ContentType](data)
	if err != nil || h == nil {
		*hdr = ContentType{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *ContentType) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(MIMEType(*hdr).RenderTo(w))
}

// Charset returns the charset parameter.
func (hdr *ContentType) Charset() (string, bool) {
	if hdr == nil {
		return "", false
	}
	v, ok := hdr.Params.Get("charset")
	return grammar.Unquote(v), ok
}

func parseContentType(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	mt, err := parseMIMEType(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := ContentType(mt)
	return &hdr, nil
}
