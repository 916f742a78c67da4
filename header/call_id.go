package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// CallID represents the Call-ID header field.
// The Call-ID header field uniquely identifies a particular invitation or all registrations of a particular client.
type CallID string

// Kind returns [KindCallID].
func (CallID) Kind() Kind { return KindCallID }

// CanonicName returns the canonical name of the header.
func (CallID) CanonicName() Name { return KindCallID.CanonicName() }

// CompactName returns the compact name of the header.
func (CallID) CompactName() Name { return KindCallID.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr CallID) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr CallID) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr CallID) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr CallID) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr CallID) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr CallID) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr CallID) Equal(val any) bool {
	other, ok := eqHdr[CallID](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr CallID) IsValid() bool { return isCallID(hdr) }

func (hdr CallID) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *CallID) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[CallID](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr CallID) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

// isCallID checks the "word [@ word]" form.
func isCallID[T ~string](s T) bool {
	l, r, ok := strings.Cut(string(s), "@")
	return grammar.IsWord(l) && (!ok || grammar.IsWord(r))
}

func parseCallID(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	if !(isCallID(value)) {
		return nil, errtrace.Wrap(newInvalidPartErr("value %q", value))
	}
	return CallID(value), nil
}
