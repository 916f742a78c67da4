package header

import (
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Param is a single header parameter.
// Value holds the parameter value as it appears on the wire, quoted strings keep their quotes.
// An empty value means a flag parameter like ";lr".
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Params is an ordered list of header parameters.
// Names are compared case-sensitively and duplicates are preserved.
type Params []Param

// Get returns the value of the first parameter with the name.
func (ps Params) Get(name string) (string, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether a parameter with the name exists.
func (ps Params) Has(name string) bool {
	_, ok := ps.Get(name)
	return ok
}

// Set replaces the value of the first parameter with the name or appends a new one.
func (ps Params) Set(name, value string) Params {
	for i := range ps {
		if ps[i].Name == name {
			ps[i].Value = value
			return ps
		}
	}
	return append(ps, Param{name, value})
}

// Append appends a parameter even if one with the same name already exists.
func (ps Params) Append(name, value string) Params {
	return append(ps, Param{name, value})
}

// Del removes all parameters with the name.
func (ps Params) Del(name string) Params {
	out := ps[:0]
	for _, p := range ps {
		if p.Name != name {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Clone returns a copy of the parameters.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	ps2 := make(Params, len(ps))
	copy(ps2, ps)
	return ps2
}

// Equal reports whether both lists hold the same parameters in the same order.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if ps[i] != other[i] {
			return false
		}
	}
	return true
}

// IsValid checks parameter names to be tokens and values to be well formed.
func (ps Params) IsValid() bool {
	for _, p := range ps {
		if !grammar.IsToken(p.Name) || !isParamValue(p.Value) {
			return false
		}
	}
	return true
}

// RenderTo writes parameters in the ";name=value" form.
func (ps Params) RenderTo(w io.Writer) (int, error) {
	if len(ps) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, p := range ps {
		cw.WriteString(";")
		cw.WriteString(p.Name)
		if p.Value != "" {
			cw.WriteString("=")
			cw.WriteString(p.Value)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns parameters in the ";name=value" form.
func (ps Params) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ps.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func isParamValue(v string) bool { return v == "" || grammar.IsGenValue(v) }

// parseParams parses the ";name=value" list that follows a header value.
// The leading ';' is optional.
func parseParams(s string) (Params, error) {
	parts := grammar.SplitList(s, ';')
	if len(parts) == 0 {
		return nil, nil
	}

	ps := make(Params, 0, len(parts))
	for _, part := range parts {
		name, value, ok := grammar.ParseParam(part)
		if !ok {
			return nil, errtrace.Wrap(newInvalidPartErr("parameter %q", part))
		}
		ps = append(ps, Param{name, value})
	}
	return ps, nil
}

// QValue returns the q parameter value.
func (ps Params) QValue() (float64, bool) {
	v, ok := ps.Get("q")
	if !ok {
		return 0, false
	}
	q, err := strconv.ParseFloat(v, 64)
	if err != nil || q < 0 || q > 1 {
		return 0, false
	}
	return q, true
}

// SetQValue sets the q parameter, see [FormatQValue].
func (ps Params) SetQValue(q float64) Params {
	return ps.Set("q", FormatQValue(q))
}

// FormatQValue formats a quality value with up to three fractional digits,
// trailing zeros are stripped keeping at least one, so 1 is "1.0" and 0.125 is "0.125".
// Values are clamped to the [0, 1] range.
func FormatQValue(q float64) string {
	q = min(max(q, 0), 1)
	s := strconv.FormatFloat(q, 'f', 3, 64)
	for len(s) > 3 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}
