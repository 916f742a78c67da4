package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ContentDisposition represents the Content-Disposition header field.
// The Content-Disposition header field describes how the message body should be interpreted by the UAC or UAS.
type ContentDisposition TokenParams

// Kind returns [KindContentDisposition].
func (*ContentDisposition) Kind() Kind { return KindContentDisposition }

// CanonicName returns the canonical name of the header.
func (*ContentDisposition) CanonicName() Name { return KindContentDisposition.CanonicName() }

// CompactName returns the compact name of the header.
func (*ContentDisposition) CompactName() Name { return KindContentDisposition.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *ContentDisposition) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *ContentDisposition) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentDisposition) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *ContentDisposition) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentDisposition) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *ContentDisposition) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := ContentDisposition(TokenParams(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *ContentDisposition) Equal(val any) bool {
	other, ok := eqHdr[ContentDisposition](val)
	return ok && hdr != nil && TokenParams(*hdr).Equal(TokenParams(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ContentDisposition) IsValid() bool { return hdr != nil && TokenParams(*hdr).IsValid() }

func (hdr *ContentDisposition) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentDisposition) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*ContentDisposition](data)
	if err != nil || h == nil {
		*hdr = ContentDisposition{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *ContentDisposition) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(TokenParams(*hdr).RenderTo(w))
}

// Handling returns the handling parameter, "required" or "optional".
func (hdr *ContentDisposition) Handling() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Get("handling")
}

func parseContentDisposition(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	tp, err := parseTokenParams(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := ContentDisposition(tp)
	return &hdr, nil
}
