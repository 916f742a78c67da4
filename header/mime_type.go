package header

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// MIMEType represents a media type with parameters, i.e. "application/sdp;charset=utf-8".
// It is used by Content-Type and as a media range of Accept, where "*" wildcards are allowed.
type MIMEType struct {
	Type    string
	Subtype string
	Params  Params
}

// RenderTo writes the media type.
func (mt MIMEType) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(mt.Type)
	cw.WriteString("/")
	cw.WriteString(mt.Subtype)
	cw.Call(mt.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the MIMEType.
func (mt MIMEType) String() string { return renderStr(mt.RenderTo) }

// Equal compares type and subtype case-insensitively and parameters exactly.
func (mt MIMEType) Equal(val any) bool {
	other, ok := eqHdr[MIMEType](val)
	if !ok {
		return false
	}
	return util.EqFold(mt.Type, other.Type) &&
		util.EqFold(mt.Subtype, other.Subtype) &&
		mt.Params.Equal(other.Params)
}

// IsValid checks whether the MIMEType is syntactically valid.
func (mt MIMEType) IsValid() bool {
	return grammar.IsToken(mt.Type) && grammar.IsToken(mt.Subtype) && mt.Params.IsValid()
}

// IsZero checks whether the MIMEType is empty.
func (mt MIMEType) IsZero() bool { return mt.Type == "" && mt.Subtype == "" && len(mt.Params) == 0 }

// Clone returns a copy of the MIMEType.
func (mt MIMEType) Clone() MIMEType {
	mt.Params = mt.Params.Clone()
	return mt
}

// Q returns the q parameter of a media range.
func (mt MIMEType) Q() (float64, bool) { return mt.Params.QValue() }

// SetQ sets the q parameter, see [FormatQValue].
func (mt *MIMEType) SetQ(q float64) { mt.Params = mt.Params.SetQValue(q) }

// MarshalText implements [encoding.TextMarshaler].
func (mt MIMEType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (mt *MIMEType) UnmarshalText(data []byte) error {
	m, err := parseMIMEType(string(data))
	*mt = m
	return errtrace.Wrap(err)
}

func parseMIMEType(s string) (MIMEType, error) {
	typ, rest, _ := grammar.Cut(s, ';')
	t, st, ok := strings.Cut(grammar.TrimLWS(typ), "/")
	t, st = grammar.TrimLWS(t), grammar.TrimLWS(st)
	if !ok || !grammar.IsToken(t) || !grammar.IsToken(st) {
		return MIMEType{}, errtrace.Wrap(newInvalidPartErr("media type %q", typ))
	}
	ps, err := parseParams(rest)
	if err != nil {
		return MIMEType{}, errtrace.Wrap(err)
	}
	return MIMEType{Type: t, Subtype: st, Params: ps}, nil
}
