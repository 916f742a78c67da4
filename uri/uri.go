package uri

//go:generate go tool errtrace -w .

import (
	"net/url"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// ErrInvalidURI is returned by the parse functions for text that does not form a valid URI.
const ErrInvalidURI errorutil.GrammarError = "invalid URI"

// PortUnspecified is returned by [SIP.IntPort] when the URI carries no explicit port.
const PortUnspecified = -1

const (
	DefaultSIPPort  = 5060
	DefaultSIPSPort = 5061
)

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

// URI represents generic URI (SIP, SIPS, Tel, ...etc).
//
// URI values are immutable and safe for concurrent use.
type URI interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
	// Scheme returns the lower-cased scheme.
	Scheme() string
	// Spec returns the canonical form of a valid URI or an empty string.
	Spec() string
	// PossiblyInvalidSpec returns the canonical form of a valid URI
	// or the trimmed input text of an invalid one.
	PossiblyInvalidSpec() string
	String() string
	Clone() URI
}

// New creates a URI from s.
//
//   - sip/sips returns [SIP];
//   - tel returns [Tel];
//   - any other scheme returns [Any].
//
// Invalid input yields an invalid URI, see [URI.IsValid].
func New[T ~string | ~[]byte](s T) URI {
	str := grammar.TrimCtl(string(s))
	switch schemeOf(str) {
	case "sip", "sips":
		return NewSIP(str)
	case "tel":
		return NewTel(str)
	default:
		return NewAny(str)
	}
}

// Parse parses any URI from s and returns [ErrInvalidURI] if the result is invalid.
func Parse[T ~string | ~[]byte](s T) (URI, error) {
	u := New(s)
	if !u.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, "%q", util.Ellipsis(string(s), 64)))
	}
	return u, nil
}

// FromURL creates a URI from the standard library URL.
func FromURL(u *url.URL) URI {
	if u == nil {
		return Any{}
	}
	return New(u.String())
}

// schemeOf returns the lower-cased scheme of s or an empty string.
func schemeOf(s string) string {
	for i := range len(s) {
		c := s[i]
		switch {
		case c == ':':
			if i == 0 {
				return ""
			}
			return util.LCase(s[:i])
		case grammar.IsAlphanum(c):
		case i > 0 && (c == '+' || c == '-' || c == '.'):
		default:
			return ""
		}
	}
	return ""
}

// span is a component location inside a canonical spec.
type span struct {
	off, n int
}

func (sp span) of(s string) string {
	if sp.n <= 0 || sp.off+sp.n > len(s) {
		return ""
	}
	return s[sp.off : sp.off+sp.n]
}

func (sp span) present() bool { return sp.n > 0 }

// lookupKV scans sep-delimited key[=value] pairs for the name.
// Keys are compared case-insensitively after unescaping, values are returned unescaped.
func lookupKV(s string, sep byte, name string) (string, bool) {
	for s != "" {
		var kv string
		if i := strings.IndexByte(s, sep); i >= 0 {
			kv, s = s[:i], s[i+1:]
		} else {
			kv, s = s, ""
		}
		if kv == "" {
			continue
		}
		k, v := kv, ""
		if i := strings.IndexByte(kv, '='); i >= 0 {
			k, v = kv[:i], kv[i+1:]
		}
		if util.EqFold(grammar.Unescape(k), name) {
			return grammar.Unescape(v), true
		}
	}
	return "", false
}

func compareSpecs(a, b string) int { return strings.Compare(a, b) }
