package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Path represents the Path header field.
// It records the proxies a REGISTER request traversed.
type Path []NameAddr

// Kind returns [KindPath].
func (Path) Kind() Kind { return KindPath }

// CanonicName returns the canonical name of the header.
func (Path) CanonicName() Name { return KindPath.CanonicName() }

// CompactName returns the compact name of the header.
func (Path) CompactName() Name { return KindPath.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Path) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Path) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Path) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Path) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Path) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Path) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr Path) Equal(val any) bool {
	other, ok := eqHdr[Path](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Path) IsValid() bool { return allValid(hdr) }

func (hdr Path) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Path) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Path](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Path) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

func parsePath(value string) (Header, error) {
	list, err := parseList(value, parseNameAddr)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Path(list), nil
}
