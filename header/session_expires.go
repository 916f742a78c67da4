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

// SessionExpires represents the Session-Expires header field.
// It conveys the session interval in seconds and an optional refresher parameter.
type SessionExpires struct {
	Delta  uint32
	Params Params
}

// Kind returns [KindSessionExpires].
func (*SessionExpires) Kind() Kind { return KindSessionExpires }

// CanonicName returns the canonical name of the header.
func (*SessionExpires) CanonicName() Name { return KindSessionExpires.CanonicName() }

// CompactName returns the compact name of the header.
func (*SessionExpires) CompactName() Name { return KindSessionExpires.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr *SessionExpires) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr *SessionExpires) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *SessionExpires) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderStr(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *SessionExpires) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *SessionExpires) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr *SessionExpires) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &SessionExpires{hdr.Delta, hdr.Params.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *SessionExpires) Equal(val any) bool {
	other, ok := eqHdr[SessionExpires](val)
	return ok && hdr != nil && hdr.Delta == other.Delta && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *SessionExpires) IsValid() bool { return hdr != nil && hdr.Params.IsValid() }

func (hdr *SessionExpires) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *SessionExpires) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[*SessionExpires](data)
	if err != nil || h == nil {
		*hdr = SessionExpires{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}

func (hdr *SessionExpires) renderValueTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(strconv.FormatUint(uint64(hdr.Delta), 10))
	cw.Call(hdr.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// Duration returns the session interval as [time.Duration].
func (hdr *SessionExpires) Duration() time.Duration {
	if hdr == nil {
		return 0
	}
	return time.Duration(hdr.Delta) * time.Second
}

// Refresher returns the refresher parameter, "uac" or "uas".
func (hdr *SessionExpires) Refresher() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Get("refresher")
}

func parseSessionExpires(value string) (Header, error) {
	delta, rest, _ := grammar.Cut(value, ';')
	n, err := parseUint(grammar.TrimLWS(delta), 32)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	ps, err := parseParams(rest)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &SessionExpires{uint32(n), ps}, nil
}
