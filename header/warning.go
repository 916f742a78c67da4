package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Warning represents the Warning header field.
// The Warning header field is used to carry additional information about the status of a response.
type Warning []WarningValue

// Kind returns [KindWarning].
func (Warning) Kind() Kind { return KindWarning }

// CanonicName returns the canonical name of the header.
func (Warning) CanonicName() Name { return KindWarning.CanonicName() }

// CompactName returns the compact name of the header.
func (Warning) CompactName() Name { return KindWarning.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Warning) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Warning) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Warning) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Warning) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Warning) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Warning) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Warning) Equal(val any) bool {
	other, ok := eqHdr[Warning](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Warning) IsValid() bool { return allValid(hdr) }

func (hdr Warning) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Warning) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Warning](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Warning) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// WarningValue is a single warning of the Warning header.
type WarningValue struct {
	Code  uint16
	Agent string
	// Text is the unquoted warning text.
	Text string
}

// RenderTo writes the warning, i.e. `307 isi.edu "Session parameter 'foo' not understood"`.
func (wv WarningValue) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(fmt.Fprintf(w, "%03d %s %s", wv.Code, wv.Agent, grammar.Quote(wv.Text)))
}

// String returns the string representation of the warning.
func (wv WarningValue) String() string { return renderStr(wv.RenderTo) }

// Equal compares this warning with another for equality.
func (wv WarningValue) Equal(val any) bool {
	other, ok := eqHdr[WarningValue](val)
	if !ok {
		return false
	}
	return wv.Code == other.Code && util.EqFold(wv.Agent, other.Agent) && wv.Text == other.Text
}

// IsValid checks whether the warning is syntactically valid.
func (wv WarningValue) IsValid() bool {
	return 100 <= wv.Code && wv.Code <= 999 && wv.Agent != "" && !strings.ContainsAny(wv.Agent, " \t,")
}

// Clone returns a copy of the warning.
func (wv WarningValue) Clone() WarningValue { return wv }

func parseWarningValue(s string) (WarningValue, error) {
	code, rest := grammar.Token(s)
	if len(code) != 3 || !grammar.IsDigits(code) {
		return WarningValue{}, errtrace.Wrap(newInvalidPartErr("warning code in %q", s))
	}
	n, _ := strconv.ParseUint(code, 10, 16)
	rest = grammar.TrimLWS(rest)
	i := strings.IndexAny(rest, " \t")
	if i <= 0 {
		return WarningValue{}, errtrace.Wrap(newInvalidPartErr("warning %q", s))
	}
	agent, text := rest[:i], grammar.TrimLWS(rest[i:])
	if !grammar.IsQuoted(text) {
		return WarningValue{}, errtrace.Wrap(newInvalidPartErr("warning %q", s))
	}
	return WarningValue{uint16(n), agent, grammar.Unquote(text)}, nil
}

func parseWarning(value string) (Header, error) {
	list, err := parseList(value, parseWarningValue)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Warning(list), nil
}
