package header

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"braces.dev/errtrace"
)

// SubscriptionState represents the Subscription-State header field.
// The value is the subscription state, "active", "pending" or "terminated", with parameters.
type SubscriptionState TokenParams

// Kind returns [KindSubscriptionState].
func (*SubscriptionState) Kind() Kind { return KindSubscriptionState }

// CanonicName returns the canonical name of the header.
func (*SubscriptionState) CanonicName() Name { return KindSubscriptionState.CanonicName() }

// CompactName returns the compact name of the header.
func (*SubscriptionState) CompactName() Name { return KindSubscriptionState.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *SubscriptionState) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *SubscriptionState) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *SubscriptionState) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *SubscriptionState) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *SubscriptionState) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *SubscriptionState) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := SubscriptionState(TokenParams(*hdr).Clone())
	return &h
}

// Equal compares this header with another for equality.
func (hdr *SubscriptionState) Equal(val any) bool {
	other, ok := eqHdr[SubscriptionState](val)
	return ok && hdr != nil && TokenParams(*hdr).Equal(TokenParams(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr *SubscriptionState) IsValid() bool { return hdr != nil && TokenParams(*hdr).IsValid() }

func (hdr *SubscriptionState) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *SubscriptionState) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*SubscriptionState](data)
	if err != nil || h == nil {
		*hdr = SubscriptionState{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *SubscriptionState) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(TokenParams(*hdr).RenderTo(w))
}

// Expires returns the expires parameter.
func (hdr *SubscriptionState) Expires() (time.Duration, bool) {
	if hdr == nil {
		return 0, false
	}
	v, ok := hdr.Params.Get("expires")
	if !ok {
		return 0, false
	}
	sec, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return time.Duration(sec) * time.Second, true
}

// Reason returns the reason parameter.
func (hdr *SubscriptionState) Reason() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Get("reason")
}

func parseSubscriptionState(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	tp, err := parseTokenParams(value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdr := SubscriptionState(tp)
	return &hdr, nil
}
