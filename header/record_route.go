package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// RecordRoute represents the Record-Route header field.
// The Record-Route header field is inserted by proxies in a request to force future requests
// in the dialog to be routed through the proxy.
type RecordRoute []NameAddr

// Kind returns [KindRecordRoute].
func (RecordRoute) Kind() Kind { return KindRecordRoute }

// CanonicName returns the canonical name of the header.
func (RecordRoute) CanonicName() Name { return KindRecordRoute.CanonicName() }

// CompactName returns the compact name of the header.
func (RecordRoute) CompactName() Name { return KindRecordRoute.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr RecordRoute) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr RecordRoute) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr RecordRoute) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr RecordRoute) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr RecordRoute) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr RecordRoute) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr RecordRoute) Equal(val any) bool {
	other, ok := eqHdr[RecordRoute](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr RecordRoute) IsValid() bool { return allValid(hdr) }

func (hdr RecordRoute) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *RecordRoute) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[RecordRoute](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr RecordRoute) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseRecordRoute(value string) (Header, error) {
	list, err := parseList(value, parseNameAddr)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return RecordRoute(list), nil
}
