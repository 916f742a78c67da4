package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ErrorInfo represents the Error-Info header field.
// The Error-Info header field provides a pointer to additional information about the error status response.
type ErrorInfo []InfoAddr

// Kind returns [KindErrorInfo].
func (ErrorInfo) Kind() Kind { return KindErrorInfo }

// CanonicName returns the canonical name of the header.
func (ErrorInfo) CanonicName() Name { return KindErrorInfo.CanonicName() }

// CompactName returns the compact name of the header.
func (ErrorInfo) CompactName() Name { return KindErrorInfo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr ErrorInfo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr ErrorInfo) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ErrorInfo) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr ErrorInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ErrorInfo) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr ErrorInfo) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr ErrorInfo) Equal(val any) bool {
	other, ok := eqHdr[ErrorInfo](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr ErrorInfo) IsValid() bool { return allValid(hdr) }

func (hdr ErrorInfo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ErrorInfo) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[ErrorInfo](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr ErrorInfo) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseErrorInfo(value string) (Header, error) {
	list, err := parseList(value, parseInfoAddr)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ErrorInfo(list), nil
}
