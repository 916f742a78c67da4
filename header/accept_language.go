package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AcceptLanguage represents the Accept-Language header field.
// The Accept-Language header field indicates the preferred languages for reason phrases,
// session descriptions and status responses.
type AcceptLanguage []TokenParams

// Kind returns [KindAcceptLanguage].
func (AcceptLanguage) Kind() Kind { return KindAcceptLanguage }

// CanonicName returns the canonical name of the header.
func (AcceptLanguage) CanonicName() Name { return KindAcceptLanguage.CanonicName() }

// CompactName returns the compact name of the header.
func (AcceptLanguage) CompactName() Name { return KindAcceptLanguage.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr AcceptLanguage) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr AcceptLanguage) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptLanguage) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr AcceptLanguage) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AcceptLanguage) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr AcceptLanguage) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptLanguage) Equal(val any) bool {
	other, ok := eqHdr[AcceptLanguage](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr AcceptLanguage) IsValid() bool { return allValid(hdr) }

func (hdr AcceptLanguage) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AcceptLanguage) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[AcceptLanguage](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr AcceptLanguage) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseAcceptLanguage(value string) (Header, error) {
	list, err := parseList(value, parseTokenParams)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return AcceptLanguage(list), nil
}
