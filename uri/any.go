package uri

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Any implements any absolute URI that is neither SIP nor tel (http:, urn:, ...etc).
type Any struct {
	url   *url.URL
	raw   string
	valid bool
}

// NewAny creates an absolute URI from s.
func NewAny[T ~string | ~[]byte](s T) Any {
	u := Any{raw: grammar.TrimCtl(string(s))}
	pu, err := url.Parse(u.raw)
	if err == nil && pu.Scheme != "" && (pu.Opaque != "" || pu.Host != "" || pu.Path != "") {
		pu.Scheme = util.LCase(pu.Scheme)
		u.url, u.valid = pu, true
	}
	return u
}

// ParseAny parses an absolute URI from s and returns [ErrInvalidURI] if s is not valid.
func ParseAny[T ~string | ~[]byte](s T) (Any, error) {
	u := NewAny(s)
	if !u.valid {
		return u, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, "%q", util.Ellipsis(u.raw, 64)))
	}
	return u, nil
}

// URL returns a copy of the parsed URL or nil for an invalid URI.
func (u Any) URL() *url.URL {
	if !u.valid {
		return nil
	}
	u2 := *u.url
	return &u2
}

// IsValid reports whether the URI was parsed successfully.
func (u Any) IsValid() bool { return u.valid }

// Spec returns the normalized URI or an empty string if the URI is invalid.
func (u Any) Spec() string {
	if !u.valid {
		return ""
	}
	return u.url.String()
}

// PossiblyInvalidSpec returns the normalized URI or the trimmed input text if the URI is invalid.
func (u Any) PossiblyInvalidSpec() string {
	if !u.valid {
		return u.raw
	}
	return u.url.String()
}

// Scheme returns the lower-cased scheme.
func (u Any) Scheme() string {
	if !u.valid {
		return ""
	}
	return u.url.Scheme
}

// Clone returns a copy of the URI.
func (u Any) Clone() URI {
	if u.valid {
		u.url = u.URL()
	}
	return u
}

// Equal reports whether val is an Any URI with the same normalized form.
func (u Any) Equal(val any) bool {
	var other Any
	switch v := val.(type) {
	case Any:
		other = v
	case *Any:
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
func (u Any) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, u.PossiblyInvalidSpec()))
}

// Render returns the string representation of the URI.
func (u Any) Render(*RenderOptions) string { return u.PossiblyInvalidSpec() }

// String returns the string representation of the URI.
func (u Any) String() string { return u.PossiblyInvalidSpec() }

// Format implements fmt.Formatter for custom formatting of the URI.
func (u Any) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		fmt.Fprintf(f, "%%!%c(uri.Any=%s)", verb, u.String())
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u Any) MarshalText() ([]byte, error) {
	return []byte(u.PossiblyInvalidSpec()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Any) UnmarshalText(text []byte) error {
	u1, err := ParseAny(text)
	*u = u1
	return errtrace.Wrap(err)
}
