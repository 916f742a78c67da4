package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Tel represents a telephone URI (RFC 3966).
// The zero value is an invalid URI.
type Tel struct {
	spec  string
	raw   string
	valid bool

	scheme, subscriber, params span
}

// NewTel creates a tel URI from s.
func NewTel[T ~string | ~[]byte](s T) Tel {
	u := Tel{raw: grammar.TrimCtl(string(s))}
	u.canonicalize()
	return u
}

// ParseTel parses a tel URI from s and returns [ErrInvalidURI] if s is not valid.
func ParseTel[T ~string | ~[]byte](s T) (Tel, error) {
	u := NewTel(s)
	if !u.valid {
		return u, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, "%q", util.Ellipsis(u.raw, 64)))
	}
	return u, nil
}

func (u *Tel) canonicalize() {
	if schemeOf(u.raw) != "tel" {
		return
	}
	sub, params, _ := strings.Cut(u.raw[len("tel:"):], ";")
	if sub == "" {
		return
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(u.raw) + 16)
	u.scheme = appendSpan(sb, "tel")
	sb.WriteByte(':')
	u.subscriber = appendSpan(sb, grammar.EscapeUserinfo(sub))
	if params != "" {
		u.params = appendSpan(sb, grammar.EscapeParams(";"+params))
	}
	u.spec = sb.String()
	u.valid = true
}

// IsValid reports whether the URI was parsed successfully.
func (u Tel) IsValid() bool { return u.valid }

// Spec returns the canonical URI or an empty string if the URI is invalid.
func (u Tel) Spec() string { return u.spec }

// PossiblyInvalidSpec returns the canonical URI or the trimmed input text if the URI is invalid.
func (u Tel) PossiblyInvalidSpec() string {
	if u.valid {
		return u.spec
	}
	return u.raw
}

// Scheme returns "tel" for valid URIs.
func (u Tel) Scheme() string { return u.scheme.of(u.spec) }

// Subscriber returns the escaped telephone-subscriber part.
func (u Tel) Subscriber() string { return u.subscriber.of(u.spec) }

// IsGlobal reports whether the subscriber is a global number, i.e. "+1-201-555-0123".
func (u Tel) IsGlobal() bool {
	return u.valid && grammar.IsGlobalNumber(grammar.Unescape(u.Subscriber()))
}

// IsLocal reports whether the subscriber is a local number, i.e. "7042;phone-context=example.com".
func (u Tel) IsLocal() bool {
	return u.valid && grammar.IsLocalNumber(grammar.Unescape(u.Subscriber()))
}

// HasParameters reports whether the URI has parameters.
func (u Tel) HasParameters() bool { return u.params.present() }

// Parameters returns the escaped parameters including the leading ';'.
func (u Tel) Parameters() string { return u.params.of(u.spec) }

// Param returns the unescaped value of the first parameter with the name.
func (u Tel) Param(name string) (string, bool) {
	return lookupKV(u.Parameters(), ';', name)
}

// ToSIP converts the URI to a SIP URI of the origin domain,
// i.e. tel:+1234;postd=pp22 with origin sip:foo.com becomes sip:+1234;postd=pp22@foo.com;user=phone.
func (u Tel) ToSIP(origin SIP) SIP {
	if !u.valid || !origin.valid {
		return SIP{}
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(origin.Scheme())
	sb.WriteByte(':')
	sb.WriteString(u.Subscriber())
	sb.WriteString(u.Parameters())
	sb.WriteByte('@')
	sb.WriteString(origin.Host())
	if origin.HasPort() {
		sb.WriteByte(':')
		sb.WriteString(origin.Port())
	}
	sb.WriteString(";user=phone")
	return NewSIP(sb.String())
}

// Clone returns a copy of the URI.
func (u Tel) Clone() URI { return u }

// Compare compares canonical specs of u and other.
func (u Tel) Compare(other Tel) int {
	return compareSpecs(u.PossiblyInvalidSpec(), other.PossiblyInvalidSpec())
}

// Equal reports whether val is a tel URI with the same canonical spec.
func (u Tel) Equal(val any) bool {
	var other Tel
	switch v := val.(type) {
	case Tel:
		other = v
	case *Tel:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.valid == other.valid && u.PossiblyInvalidSpec() == other.PossiblyInvalidSpec()
}

// RenderTo writes the URI to the provided writer.
func (u Tel) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, u.PossiblyInvalidSpec()))
}

// Render returns the string representation of the URI.
func (u Tel) Render(*RenderOptions) string { return u.PossiblyInvalidSpec() }

// String returns the string representation of the URI.
func (u Tel) String() string { return u.PossiblyInvalidSpec() }

// Format implements fmt.Formatter for custom formatting of the URI.
func (u Tel) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "uri.Tel{%q, valid: %t}", u.PossiblyInvalidSpec(), u.valid)
			return
		}
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		fmt.Fprintf(f, "%%!%c(uri.Tel=%s)", verb, u.String())
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u Tel) MarshalText() ([]byte, error) {
	return []byte(u.PossiblyInvalidSpec()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Tel) UnmarshalText(text []byte) error {
	u1, err := ParseTel(text)
	*u = u1
	return errtrace.Wrap(err)
}
