package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// CallInfo represents the Call-Info header field.
// The Call-Info header field provides additional information about the caller or callee.
type CallInfo []InfoAddr

// Kind returns [KindCallInfo].
func (CallInfo) Kind() Kind { return KindCallInfo }

// CanonicName returns the canonical name of the header.
func (CallInfo) CanonicName() Name { return KindCallInfo.CanonicName() }

// CompactName returns the compact name of the header.
func (CallInfo) CompactName() Name { return KindCallInfo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr CallInfo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr CallInfo) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr CallInfo) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr CallInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr CallInfo) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr CallInfo) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr CallInfo) Equal(val any) bool {
	other, ok := eqHdr[CallInfo](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr CallInfo) IsValid() bool { return allValid(hdr) }

func (hdr CallInfo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *CallInfo) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[CallInfo](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr CallInfo) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseCallInfo(value string) (Header, error) {
	list, err := parseList(value, parseInfoAddr)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return CallInfo(list), nil
}
