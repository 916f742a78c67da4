package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/types"
)

// CSeq represents the CSeq header field.
// The CSeq header field serves as a way to identify and order transactions.
type CSeq struct {
	SeqNum uint32
	Method Method
}

// Kind returns [KindCSeq].
func (*CSeq) Kind() Kind { return KindCSeq }

// CanonicName returns the canonical name of the header.
func (*CSeq) CanonicName() Name { return KindCSeq.CanonicName() }

// CompactName returns the compact name of the header.
func (*CSeq) CompactName() Name { return KindCSeq.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *CSeq) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *CSeq) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *CSeq) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *CSeq) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *CSeq) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *CSeq) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := *hdr
	return &h
}

// Equal compares this header with another for equality.
func (hdr *CSeq) Equal(val any) bool {
	other, ok := eqHdr[CSeq](val)
	return ok && hdr != nil && hdr.SeqNum == other.SeqNum && hdr.Method.Equal(other.Method)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *CSeq) IsValid() bool { return hdr != nil && hdr.Method.IsValid() }

func (hdr *CSeq) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *CSeq) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*CSeq](data)
	if err != nil || h == nil {
		*hdr = CSeq{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *CSeq) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.SeqNum, " ", hdr.Method))
}

func parseCSeq(value string) (Header, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return nil, errtrace.Wrap(newInvalidPartErr("CSeq %q", value))
	}
	n, err := parseUint(fields[0], 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !grammar.IsToken(fields[1]) {
		return nil, errtrace.Wrap(newInvalidPartErr("method %q", fields[1]))
	}
	return &CSeq{uint32(n), types.ParseMethod(fields[1])}, nil
}
