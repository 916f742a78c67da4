package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Supported represents the Supported header field.
// The Supported header field enumerates all the extensions supported by the UAC or UAS.
type Supported []string

// Kind returns [KindSupported].
func (Supported) Kind() Kind { return KindSupported }

// CanonicName returns the canonical name of the header.
func (Supported) CanonicName() Name { return KindSupported.CanonicName() }

// CompactName returns the compact name of the header.
func (Supported) CompactName() Name { return KindSupported.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Supported) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Supported) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Supported) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Supported) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Supported) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Supported) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Supported) Equal(val any) bool {
	other, ok := eqHdr[Supported](val)
	return ok && equalStrings(hdr, other, true)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Supported) IsValid() bool { return allTokens(hdr) }

func (hdr Supported) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Supported) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Supported](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Supported) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

// Has reports whether the list contains the option, compared case-insensitively.
func (hdr Supported) Has(opt string) bool {
	return slices.ContainsFunc(hdr, func(s string) bool { return util.EqFold(s, opt) })
}

func parseSupported(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Supported(list), nil
}
