package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Require represents the Require header field.
// The Require header field is used by UACs to tell UASs about options that the UAC expects the UAS
// to support in order to process the request.
type Require []string

// Kind returns [KindRequire].
func (Require) Kind() Kind { return KindRequire }

// CanonicName returns the canonical name of the header.
func (Require) CanonicName() Name { return KindRequire.CanonicName() }

// CompactName returns the compact name of the header.
func (Require) CompactName() Name { return KindRequire.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Require) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Require) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Require) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Require) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Require) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Require) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Require) Equal(val any) bool {
	other, ok := eqHdr[Require](val)
	return ok && equalStrings(hdr, other, true)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Require) IsValid() bool { return allTokens(hdr) }

func (hdr Require) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Require) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Require](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Require) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

// Has reports whether the list contains the option, compared case-insensitively.
func (hdr Require) Has(opt string) bool {
	return slices.ContainsFunc(hdr, func(s string) bool { return util.EqFold(s, opt) })
}

func parseRequire(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Require(list), nil
}
