package header

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
)

// Timestamp represents the Timestamp header field.
// The Timestamp header field describes when the UAC sent the request to the UAS,
// with an optional delay added by the UAS.
type Timestamp struct {
	Value float64
	Delay float64
}

// Kind returns [KindTimestamp].
func (*Timestamp) Kind() Kind { return KindTimestamp }

// CanonicName returns the canonical name of the header.
func (*Timestamp) CanonicName() Name { return KindTimestamp.CanonicName() }

// CompactName returns the compact name of the header.
func (*Timestamp) CompactName() Name { return KindTimestamp.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *Timestamp) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *Timestamp) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Timestamp) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *Timestamp) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Timestamp) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *Timestamp) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := *hdr
	return &h
}

// Equal compares this header with another for equality.
func (hdr *Timestamp) Equal(val any) bool {
	other, ok := eqHdr[Timestamp](val)
	return ok && hdr != nil && hdr.Value == other.Value && hdr.Delay == other.Delay
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Timestamp) IsValid() bool { return hdr != nil && hdr.Value >= 0 && hdr.Delay >= 0 }

func (hdr *Timestamp) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Timestamp) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*Timestamp](data)
	if err != nil || h == nil {
		*hdr = Timestamp{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *Timestamp) renderValueTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(strconv.FormatFloat(hdr.Value, 'f', -1, 64))
	if hdr.Delay > 0 {
		cw.WriteString(" ")
		cw.WriteString(strconv.FormatFloat(hdr.Delay, 'f', -1, 64))
	}
	return errtrace.Wrap2(cw.Result())
}

func parseTimestamp(value string) (Header, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, errtrace.Wrap(newInvalidPartErr("timestamp %q", value))
	}
	var nums [2]float64
	for i, f := range fields {
		if !isDecimal(f) {
			return nil, errtrace.Wrap(newInvalidPartErr("timestamp %q", value))
		}
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errtrace.Wrap(newInvalidPartErr("timestamp %q", value))
		}
		nums[i] = n
	}
	return &Timestamp{nums[0], nums[1]}, nil
}

// isDecimal checks the "1*DIGIT [ "." *DIGIT ]" form.
func isDecimal(s string) bool {
	i, f, _ := strings.Cut(s, ".")
	return grammar.IsDigits(i) && (f == "" || grammar.IsDigits(f))
}
