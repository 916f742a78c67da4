package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/types"
)

// RAck represents the RAck header field.
// It acknowledges a reliable provisional response by its RSeq and the request CSeq.
type RAck struct {
	RSeq   uint32
	CSeq   uint32
	Method Method
}

// Kind returns [KindRAck].
func (*RAck) Kind() Kind { return KindRAck }

// CanonicName returns the canonical name of the header.
func (*RAck) CanonicName() Name { return KindRAck.CanonicName() }

// CompactName returns the compact name of the header.
func (*RAck) CompactName() Name { return KindRAck.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *RAck) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *RAck) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *RAck) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *RAck) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *RAck) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *RAck) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := *hdr
	return &h
}

// Equal compares this header with another for equality.
func (hdr *RAck) Equal(val any) bool {
	other, ok := eqHdr[RAck](val)
	return ok && hdr != nil && hdr.RSeq == other.RSeq && hdr.CSeq == other.CSeq && hdr.Method.Equal(other.Method)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *RAck) IsValid() bool { return hdr != nil && hdr.Method.IsValid() }

func (hdr *RAck) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *RAck) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*RAck](data)
	if err != nil || h == nil {
		*hdr = RAck{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *RAck) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.RSeq, " ", hdr.CSeq, " ", hdr.Method))
}

func parseRAck(value string) (Header, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return nil, errtrace.Wrap(newInvalidPartErr("RAck %q", value))
	}
	rseq, err := parseUint(fields[0], 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	cseq, err := parseUint(fields[1], 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !grammar.IsToken(fields[2]) {
		return nil, errtrace.Wrap(newInvalidPartErr("method %q", fields[2]))
	}
	return &RAck{uint32(rseq), uint32(cseq), types.ParseMethod(fields[2])}, nil
}
