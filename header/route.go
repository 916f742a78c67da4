package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Route represents the Route header field.
// The Route header field is used to force routing for a request through the listed set of proxies.
type Route []NameAddr

// Kind returns [KindRoute].
func (Route) Kind() Kind { return KindRoute }

// CanonicName returns the canonical name of the header.
func (Route) CanonicName() Name { return KindRoute.CanonicName() }

// CompactName returns the compact name of the header.
func (Route) CompactName() Name { return KindRoute.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Route) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Route) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Route) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Route) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Route) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Route) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr Route) Equal(val any) bool {
	other, ok := eqHdr[Route](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Route) IsValid() bool { return allValid(hdr) }

func (hdr Route) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Route) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Route](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Route) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parseRoute(value string) (Header, error) {
	list, err := parseList(value, parseNameAddr)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Route(list), nil
}
