package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// ContentLanguage represents the Content-Language header field.
type ContentLanguage []string

// Kind returns [KindContentLanguage].
func (ContentLanguage) Kind() Kind { return KindContentLanguage }

// CanonicName returns the canonical name of the header.
func (ContentLanguage) CanonicName() Name { return KindContentLanguage.CanonicName() }

// CompactName returns the compact name of the header.
func (ContentLanguage) CompactName() Name { return KindContentLanguage.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr ContentLanguage) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr ContentLanguage) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ContentLanguage) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr ContentLanguage) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentLanguage) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr ContentLanguage) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr ContentLanguage) Equal(val any) bool {
	other, ok := eqHdr[ContentLanguage](val)
	return ok && equalStrings(hdr, other, true)
}

// IsValid checks whether the header is syntactically valid.
func (hdr ContentLanguage) IsValid() bool { return allTokens(hdr) }

func (hdr ContentLanguage) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentLanguage) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[ContentLanguage](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr ContentLanguage) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

func parseContentLanguage(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ContentLanguage(list), nil
}
