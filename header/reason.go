package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/util"
)

// Reason represents the Reason header field.
// Every entry is a protocol token with cause and text parameters, i.e. "SIP;cause=200;text=\"Call completed elsewhere\"".
type Reason []TokenParams

// Kind returns [KindReason].
func (Reason) Kind() Kind { return KindReason }

// CanonicName returns the canonical name of the header.
func (Reason) CanonicName() Name { return KindReason.CanonicName() }

// CompactName returns the compact name of the header.
func (Reason) CompactName() Name { return KindReason.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Reason) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Reason) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Reason) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Reason) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Reason) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Reason) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr Reason) Equal(val any) bool {
	other, ok := eqHdr[Reason](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Reason) IsValid() bool { return allValid(hdr) }

func (hdr Reason) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Reason) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Reason](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Reason) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Cause returns the cause parameter of the first entry with the protocol.
func (hdr Reason) Cause(proto string) (uint, bool) {
	for _, r := range hdr {
		if !util.EqFold(r.Value, proto) {
			continue
		}
		v, ok := r.Params.Get("cause")
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}

func parseReason(value string) (Header, error) {
	list, err := parseList(value, parseTokenParams)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Reason(list), nil
}
