package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Contact represents the Contact header field.
// The Contact header field provides a SIP or SIPS URI that can be used to contact that specific instance
// of the UA for subsequent requests.
//
// An empty non-nil Contact is the wildcard "*" form used to remove all bindings.
type Contact []NameAddr

// Kind returns [KindContact].
func (Contact) Kind() Kind { return KindContact }

// CanonicName returns the canonical name of the header.
func (Contact) CanonicName() Name { return KindContact.CanonicName() }

// CompactName returns the compact name of the header.
func (Contact) CompactName() Name { return KindContact.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Contact) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Contact) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Contact) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Contact) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Contact) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Contact) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr Contact) Equal(val any) bool {
	other, ok := eqHdr[Contact](val)
	return ok && hdr.IsStar() == other.IsStar() && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Contact) IsValid() bool { return allValid(hdr) }

func (hdr Contact) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Contact) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Contact](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Contact) renderValueTo(w io.Writer) (int, error) {
	if hdr.IsStar() {
		return errtrace.Wrap2(io.WriteString(w, "*"))
	}
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// IsStar reports whether the header is the wildcard "*" form.
func (hdr Contact) IsStar() bool { return hdr != nil && len(hdr) == 0 }

func parseContact(value string) (Header, error) {
	if value == "*" {
		return Contact{}, nil
	}
	if value == "" {
		return Contact(nil), nil
	}
	list, err := parseList(value, parseNameAddr)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Contact(list), nil
}
