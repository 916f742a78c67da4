package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/types"
)

// Allow represents the Allow header field.
// The Allow header field lists the set of methods supported by the UA generating the message.
type Allow []Method

// Kind returns [KindAllow].
func (Allow) Kind() Kind { return KindAllow }

// CanonicName returns the canonical name of the header.
func (Allow) CanonicName() Name { return KindAllow.CanonicName() }

// CompactName returns the compact name of the header.
func (Allow) CompactName() Name { return KindAllow.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Allow) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Allow) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Allow) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Allow) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Allow) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Allow) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Allow) Equal(val any) bool {
	other, ok := eqHdr[Allow](val)
	return ok && slices.EqualFunc(hdr, other, func(m1, m2 Method) bool { return m1.Equal(m2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr Allow) IsValid() bool { return allValid(hdr) }

func (hdr Allow) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Allow) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Allow](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Allow) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

// Has reports whether the method is allowed.
func (hdr Allow) Has(m Method) bool {
	return slices.ContainsFunc(hdr, func(m2 Method) bool { return m2.Equal(m) })
}

func parseAllow(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := make(Allow, len(list))
	for i := range list {
		hdr[i] = types.ParseMethod(list[i])
	}
	return hdr, nil
}
