package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// TokenParams is a token followed by parameters, i.e. "gzip;q=0.5" or "attachment;handling=required".
type TokenParams struct {
	Value  string
	Params Params
}

// RenderTo writes the token and parameters.
func (tp TokenParams) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(tp.Value)
	cw.Call(tp.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the TokenParams.
func (tp TokenParams) String() string { return renderStr(tp.RenderTo) }

// Equal compares tokens case-insensitively and parameters exactly.
func (tp TokenParams) Equal(val any) bool {
	other, ok := eqHdr[TokenParams](val)
	if !ok {
		return false
	}
	return util.EqFold(tp.Value, other.Value) && tp.Params.Equal(other.Params)
}

// IsValid checks whether the TokenParams is syntactically valid.
func (tp TokenParams) IsValid() bool { return grammar.IsToken(tp.Value) && tp.Params.IsValid() }

// Clone returns a copy of the TokenParams.
func (tp TokenParams) Clone() TokenParams {
	tp.Params = tp.Params.Clone()
	return tp
}

// Q returns the q parameter.
func (tp TokenParams) Q() (float64, bool) { return tp.Params.QValue() }

// SetQ sets the q parameter, see [FormatQValue].
func (tp *TokenParams) SetQ(q float64) { tp.Params = tp.Params.SetQValue(q) }
