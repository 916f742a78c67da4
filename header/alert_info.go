package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AlertInfo represents the Alert-Info header field.
// The Alert-Info header field specifies an alternative ring tone to the UAS or ringback tone to the UAC.
type AlertInfo []InfoAddr

// Kind returns [KindAlertInfo].
func (AlertInfo) Kind() Kind { return KindAlertInfo }

// CanonicName returns the canonical name of the header.
func (AlertInfo) CanonicName() Name { return KindAlertInfo.CanonicName() }

// CompactName returns the compact name of the header.
func (AlertInfo) CompactName() Name { return KindAlertInfo.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr AlertInfo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr AlertInfo) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr AlertInfo) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr AlertInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AlertInfo) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr AlertInfo) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr AlertInfo) Equal(val any) bool {
	other, ok := eqHdr[AlertInfo](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr AlertInfo) IsValid() bool { return allValid(hdr) }

func (hdr AlertInfo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AlertInfo) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[AlertInfo](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr AlertInfo) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseAlertInfo(value string) (Header, error) {
	list, err := parseList(value, parseInfoAddr)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return AlertInfo(list), nil
}
