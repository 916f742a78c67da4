package header

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
)

// RetryAfter represents the Retry-After header field.
// The Retry-After header field can be used with a 500 (Server Internal Error) or 503 (Service Unavailable)
// response to indicate how long the service is expected to be unavailable to the requesting client.
type RetryAfter struct {
	Delay   time.Duration
	Comment string
	Params  Params
}

// Kind returns [KindRetryAfter].
func (*RetryAfter) Kind() Kind { return KindRetryAfter }

// CanonicName returns the canonical name of the header.
func (*RetryAfter) CanonicName() Name { return KindRetryAfter.CanonicName() }

// CompactName returns the compact name of the header.
func (*RetryAfter) CompactName() Name { return KindRetryAfter.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *RetryAfter) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *RetryAfter) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *RetryAfter) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *RetryAfter) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *RetryAfter) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *RetryAfter) Clone() Header {
	if hdr == nil {
		return nil
	}
	h := *hdr
	h.Params = hdr.Params.Clone()
	return &h
}

// Equal compares this header with another for equality.
func (hdr *RetryAfter) Equal(val any) bool {
	other, ok := eqHdr[RetryAfter](val)
	return ok && hdr != nil && hdr.Delay/time.Second == other.Delay/time.Second && hdr.Comment == other.Comment && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *RetryAfter) IsValid() bool { return hdr != nil && hdr.Delay >= 0 && hdr.Params.IsValid() }

func (hdr *RetryAfter) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *RetryAfter) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*RetryAfter](data)
	if err != nil || h == nil {
		*hdr = RetryAfter{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *RetryAfter) renderValueTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(strconv.FormatInt(int64(hdr.Delay/time.Second), 10))
	if hdr.Comment != "" {
		cw.WriteString(" (")
		cw.WriteString(hdr.Comment)
		cw.WriteString(")")
	}
	cw.Call(hdr.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// Duration returns the duration parameter, the period the called party will be available.
func (hdr *RetryAfter) Duration() (time.Duration, bool) {
	if hdr == nil {
		return 0, false
	}
	v, ok := hdr.Params.Get("duration")
	if !ok {
		return 0, false
	}
	sec, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return time.Duration(sec) * time.Second, true
}

func parseRetryAfter(value string) (Header, error) {
	delta, rest, _ := grammar.Cut(value, ';')
	delta = grammar.TrimLWS(delta)
	var comment string
	if i := strings.IndexByte(delta, '('); i >= 0 {
		j := strings.LastIndexByte(delta, ')')
		if j < i {
			return nil, errtrace.Wrap(newInvalidPartErr("comment in %q", value))
		}
		comment = delta[i+1 : j]
		delta = grammar.TrimLWS(delta[:i])
	}
	n, err := parseUint(delta, 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	ps, err := parseParams(rest)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &RetryAfter{time.Duration(n) * time.Second, comment, ps}, nil
}
