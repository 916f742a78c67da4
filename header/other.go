package header

import (
	"encoding/json"
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// Other holds a header unknown to the package.
// Name and value are kept verbatim and rendered unchanged.
type Other struct {
	Name  string
	Value string
}

// Kind returns [KindOther].
func (*Other) Kind() Kind { return KindOther }

// CanonicName returns the canonical form of the header name.
func (hdr *Other) CanonicName() Name {
	if hdr == nil {
		return ""
	}
	return CanonicName(hdr.Name)
}

// CompactName returns the canonical form of the header name, unknown headers have no compact form.
func (hdr *Other) CompactName() Name { return hdr.CanonicName() }

// RenderTo writes the header to the provided writer, the name is written as is.
func (hdr *Other) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.Name, ": ", hdr.Value))
}

// Render returns the string representation of the header.
func (hdr *Other) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Other) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.Value
}

// String returns the header value.
func (hdr *Other) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Other) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *Other) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := *hdr
	return &h
}

// Equal reports whether both headers have byte-identical names and values.
func (hdr *Other) Equal(val any) bool {
	other, ok := eqHdr[Other](val)
	return ok && hdr != nil && Name(hdr.Name).Equal(Name(other.Name)) && hdr.Value == other.Value
}

// IsValid checks whether the header name is a token.
func (hdr *Other) IsValid() bool { return hdr != nil && grammar.IsToken(hdr.Name) }

func (hdr *Other) MarshalJSON() ([]byte, error) {
	if hdr == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(headerData{hdr.Name, hdr.Value}))
}

func (hdr *Other) UnmarshalJSON(data []byte) error {
	var hd *headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		*hdr = Other{}
		return errtrace.Wrap(err)
	}
	if hd == nil {
		*hdr = Other{}
		return nil
	}
	*hdr = Other{hd.Name, hd.Value}
	return nil
}
