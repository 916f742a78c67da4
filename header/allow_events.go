package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// AllowEvents represents the Allow-Events header field.
// It lists the event packages supported by the client.
type AllowEvents []string

// Kind returns [KindAllowEvents].
func (AllowEvents) Kind() Kind { return KindAllowEvents }

// CanonicName returns the canonical name of the header.
func (AllowEvents) CanonicName() Name { return KindAllowEvents.CanonicName() }

// CompactName returns the compact name of the header.
func (AllowEvents) CompactName() Name { return KindAllowEvents.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr AllowEvents) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr AllowEvents) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr AllowEvents) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr AllowEvents) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AllowEvents) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr AllowEvents) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr AllowEvents) Equal(val any) bool {
	other, ok := eqHdr[AllowEvents](val)
	return ok && equalStrings(hdr, other, true)
}

// IsValid checks whether the header is syntactically valid.
func (hdr AllowEvents) IsValid() bool { return allTokens(hdr) }

func (hdr AllowEvents) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AllowEvents) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[AllowEvents](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr AllowEvents) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

// Has reports whether the list contains the option, compared case-insensitively.
func (hdr AllowEvents) Has(opt string) bool {
	return slices.ContainsFunc(hdr, func(s string) bool { return util.EqFold(s, opt) })
}

func parseAllowEvents(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return AllowEvents(list), nil
}
