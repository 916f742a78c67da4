package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Unsupported represents the Unsupported header field.
// The Unsupported header field lists the features not supported by the UAS.
type Unsupported []string

// Kind returns [KindUnsupported].
func (Unsupported) Kind() Kind { return KindUnsupported }

// CanonicName returns the canonical name of the header.
func (Unsupported) CanonicName() Name { return KindUnsupported.CanonicName() }

// CompactName returns the compact name of the header.
func (Unsupported) CompactName() Name { return KindUnsupported.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Unsupported) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Unsupported) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Unsupported) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Unsupported) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Unsupported) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Unsupported) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Unsupported) Equal(val any) bool {
	other, ok := eqHdr[Unsupported](val)
	return ok && equalStrings(hdr, other, true)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Unsupported) IsValid() bool { return allTokens(hdr) }

func (hdr Unsupported) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Unsupported) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Unsupported](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Unsupported) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

// Has reports whether the list contains the option, compared case-insensitively.
func (hdr Unsupported) Has(opt string) bool {
	return slices.ContainsFunc(hdr, func(s string) bool { return util.EqFold(s, opt) })
}

func parseUnsupported(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Unsupported(list), nil
}
