package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// ContentEncoding represents the Content-Encoding header field.
// The Content-Encoding header field is used as a modifier to the "media-type".
type ContentEncoding []string

// Kind returns [KindContentEncoding].
func (ContentEncoding) Kind() Kind { return KindContentEncoding }

// CanonicName returns the canonical name of the header.
func (ContentEncoding) CanonicName() Name { return KindContentEncoding.CanonicName() }

// CompactName returns the compact name of the header.
func (ContentEncoding) CompactName() Name { return KindContentEncoding.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr ContentEncoding) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr ContentEncoding) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ContentEncoding) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr ContentEncoding) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentEncoding) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr ContentEncoding) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr ContentEncoding) Equal(val any) bool {
	other, ok := eqHdr[ContentEncoding](val)
	return ok && equalStrings(hdr, other, true)
}

// IsValid checks whether the header is syntactically valid.
func (hdr ContentEncoding) IsValid() bool { return allTokens(hdr) }

func (hdr ContentEncoding) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentEncoding) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[ContentEncoding](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr ContentEncoding) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

// Has reports whether the list contains the option, compared case-insensitively.
func (hdr ContentEncoding) Has(opt string) bool {
	return slices.ContainsFunc(hdr, func(s string) bool { return util.EqFold(s, opt) })
}

func parseContentEncoding(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ContentEncoding(list), nil
}
