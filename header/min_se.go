package header

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
)

// MinSE represents the Min-SE header field, the minimum session interval in seconds.
type MinSE struct {
	Delta  uint32
	Params Params
}

// Kind returns [KindMinSE].
func (*MinSE) Kind() Kind { return KindMinSE }

// CanonicName returns the canonical name of the header.
func (*MinSE) CanonicName() Name { return KindMinSE.CanonicName() }

// CompactName returns the compact name of the header.
func (*MinSE) CompactName() Name { return KindMinSE.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *MinSE) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *MinSE) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *MinSE) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *MinSE) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *MinSE) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *MinSE) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &MinSE{hdr.Delta, hdr.Params.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *MinSE) Equal(val any) bool {
	other, ok := eqHdr[MinSE](val)
	return ok && hdr != nil && hdr.Delta == other.Delta && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *MinSE) IsValid() bool { return hdr != nil && hdr.Params.IsValid() }

func (hdr *MinSE) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *MinSE) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*MinSE](data)
	if err != nil || h == nil {
		*hdr = MinSE{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *MinSE) renderValueTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(strconv.FormatUint(uint64(hdr.Delta), 10))
	cw.Call(hdr.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// Duration returns the minimum session interval as [time.Duration].
func (hdr *MinSE) Duration() time.Duration {
	if hdr == nil {
		return 0
	}
	return time.Duration(hdr.Delta) * time.Second
}

func parseMinSE(value string) (Header, error) {
	delta, rest, _ := grammar.Cut(value, ';')
	n, err := parseUint(grammar.TrimLWS(delta), 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	ps, err := parseParams(rest)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &MinSE{uint32(n), ps}, nil
}
