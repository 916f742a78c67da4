package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Event represents the Event header field.
// It names the event package of a SUBSCRIBE or NOTIFY request.
type Event TokenParams

// Kind returns [KindEvent].
func (*Event) Kind() Kind { return KindEvent }

// CanonicName returns the canonical name of the header.
func (*Event) CanonicName() Name { return KindEvent.CanonicName() }

// CompactName returns the compact name of the header.
func (*Event) CompactName() Name { return KindEvent.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *Event) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *Event) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Event) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *Event) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Event) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *Event) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := Event(TokenParams(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *Event) Equal(val any) bool {
	other, ok := eqHdr[Event](val)
	return ok && hdr != nil && TokenParams(*hdr).Equal(TokenParams(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Event) IsValid() bool { return hdr != nil && TokenParams(*hdr).IsValid() }

func (hdr *Event) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Event) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*Event](data)
	if err != nil || h == nil {
		*hdr = Event{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *Event) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(TokenParams(*hdr).RenderTo(w))
}

// ID returns the id parameter.
func (hdr *Event) ID() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Get("id")
}

func parseEvent(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	tp, err := parseTokenParams(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := Event(tp)
	return &hdr, nil
}
