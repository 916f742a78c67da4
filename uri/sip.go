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

// SIP represents a SIP or SIPS URI.
//
// The value holds the canonical spec string and the location of every component inside it.
// The zero value is an invalid URI.
type SIP struct {
	spec  string
	raw   string
	valid bool

	scheme, user, passwd, host, port, params, headers span
}

// NewSIP creates a SIP URI from s.
// Invalid input yields an invalid value that still keeps the trimmed text, see [SIP.PossiblyInvalidSpec].
func NewSIP[T ~string | ~[]byte](s T) SIP {
	u := SIP{raw: grammar.TrimCtl(string(s))}
	u.canonicalize()
	return u
}

// ParseSIP parses a SIP or SIPS URI from s and returns [ErrInvalidURI] if s is not valid.
func ParseSIP[T ~string | ~[]byte](s T) (SIP, error) {
	u := NewSIP(s)
	if !u.valid {
		return u, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, "%q", util.Ellipsis(u.raw, 64)))
	}
	return u, nil
}

func (u *SIP) canonicalize() {
	scheme := schemeOf(u.raw)
	if scheme != "sip" && scheme != "sips" {
		return
	}
	rest := u.raw[len(scheme)+1:]

	// authority ends on the first ';' or '?' after the first '@'
	at := strings.IndexByte(rest, '@')
	end := len(rest)
	if i := strings.IndexAny(rest[at+1:], ";?"); i >= 0 {
		end = at + 1 + i
	}
	auth, tail := rest[:end], rest[end:]

	// userinfo ends on the last '@' of the authority
	at = strings.LastIndexByte(auth, '@')
	var user, passwd, hostport string
	if at >= 0 {
		user, passwd, _ = strings.Cut(auth[:at], ":")
		hostport = auth[at+1:]
	} else {
		hostport = auth
	}

	var host, port string
	if strings.HasPrefix(hostport, "[") {
		i := strings.IndexByte(hostport, ']')
		if i < 0 {
			return
		}
		host, port = hostport[:i+1], hostport[i+1:]
		if port != "" {
			if port[0] != ':' {
				return
			}
			port = port[1:]
			if port == "" {
				return
			}
		}
	} else if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		host, port = hostport[:i], hostport[i+1:]
		if port == "" {
			return
		}
	} else {
		host = hostport
	}

	host, ok := canonHost(host)
	if !ok || port != "" && !validPort(port) {
		return
	}

	params, headers, _ := strings.Cut(tail, "?")

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(u.raw) + 16)
	u.scheme = appendSpan(sb, scheme)
	sb.WriteByte(':')
	if user != "" || passwd != "" {
		u.user = appendSpan(sb, grammar.EscapeUserinfo(user))
		if passwd != "" {
			sb.WriteByte(':')
			u.passwd = appendSpan(sb, grammar.EscapeUserinfo(passwd))
		}
		sb.WriteByte('@')
	}
	u.host = appendSpan(sb, host)
	if port != "" {
		sb.WriteByte(':')
		u.port = appendSpan(sb, port)
	}
	u.params = appendSpan(sb, grammar.EscapeParams(params))
	if headers != "" {
		sb.WriteByte('?')
		u.headers = appendSpan(sb, grammar.EscapeHeaders(headers))
	}
	u.spec = sb.String()
	u.valid = true
}

func appendSpan(sb *strings.Builder, s string) span {
	sp := span{off: sb.Len(), n: len(s)}
	sb.WriteString(s)
	return sp
}

// IsValid reports whether the URI was parsed successfully.
func (u SIP) IsValid() bool { return u.valid }

// Spec returns the canonical URI or an empty string if the URI is invalid.
func (u SIP) Spec() string { return u.spec }

// PossiblyInvalidSpec returns the canonical URI or the trimmed input text if the URI is invalid.
func (u SIP) PossiblyInvalidSpec() string {
	if u.valid {
		return u.spec
	}
	return u.raw
}

// Scheme returns "sip" or "sips".
func (u SIP) Scheme() string { return u.scheme.of(u.spec) }

// SchemeIs reports whether the URI scheme equals the lower-case scheme s.
func (u SIP) SchemeIs(s string) bool { return u.Scheme() == s }

// SchemeIsSecure reports whether the URI is a SIPS URI.
func (u SIP) SchemeIsSecure() bool { return u.Scheme() == "sips" }

// HasUsername reports whether the URI has a user part.
func (u SIP) HasUsername() bool { return u.user.present() }

// Username returns the unescaped user part.
func (u SIP) Username() string { return grammar.Unescape(u.user.of(u.spec)) }

// HasPassword reports whether the URI has a non-empty password.
func (u SIP) HasPassword() bool { return u.passwd.present() }

// Password returns the unescaped password.
func (u SIP) Password() string { return grammar.Unescape(u.passwd.of(u.spec)) }

// Host returns the canonical host, IPv6 references keep their brackets.
func (u SIP) Host() string { return u.host.of(u.spec) }

// HostNoBrackets returns the host with IPv6 brackets removed.
func (u SIP) HostNoBrackets() string {
	h := u.Host()
	if len(h) >= 2 && h[0] == '[' && h[len(h)-1] == ']' {
		return h[1 : len(h)-1]
	}
	return h
}

// HostIsIPAddress reports whether the host is an IPv4 or IPv6 address.
func (u SIP) HostIsIPAddress() bool { return u.valid && isIPHost(u.Host()) }

// DomainIs reports whether the host is the domain or one of its subdomains.
// IP hosts must match exactly.
func (u SIP) DomainIs(domain string) bool { return u.valid && domainIs(u.Host(), domain) }

// HasPort reports whether the URI has an explicit port.
func (u SIP) HasPort() bool { return u.port.present() }

// Port returns the explicit port text.
func (u SIP) Port() string { return u.port.of(u.spec) }

// IntPort returns the explicit port or [PortUnspecified].
func (u SIP) IntPort() int {
	if !u.port.present() {
		return PortUnspecified
	}
	p, err := strconv.Atoi(u.Port())
	if err != nil {
		return PortUnspecified
	}
	return p
}

// EffectiveIntPort returns the explicit port or the default port of the scheme.
func (u SIP) EffectiveIntPort() int {
	if p := u.IntPort(); p != PortUnspecified {
		return p
	}
	switch u.Scheme() {
	case "sip":
		return DefaultSIPPort
	case "sips":
		return DefaultSIPSPort
	default:
		return PortUnspecified
	}
}

// HasParameters reports whether the URI has parameters.
func (u SIP) HasParameters() bool { return u.params.present() }

// Parameters returns the escaped parameters including the leading ';'.
func (u SIP) Parameters() string { return u.params.of(u.spec) }

// Param returns the unescaped value of the first parameter with the name.
// Names are compared case-insensitively.
func (u SIP) Param(name string) (string, bool) {
	return lookupKV(u.Parameters(), ';', name)
}

// HasHeaders reports whether the URI has headers.
func (u SIP) HasHeaders() bool { return u.headers.present() }

// Headers returns the escaped headers without the leading '?'.
func (u SIP) Headers() string { return u.headers.of(u.spec) }

// Header returns the unescaped value of the first header with the name.
// Names are compared case-insensitively.
func (u SIP) Header(name string) (string, bool) {
	return lookupKV(u.Headers(), '&', name)
}

// Transport returns the transport parameter value.
func (u SIP) Transport() (string, bool) { return u.Param("transport") }

// LR reports whether the URI has the lr parameter.
func (u SIP) LR() bool {
	_, ok := u.Param("lr")
	return ok
}

// WithEmptyHeaders returns a copy of the URI with the headers component removed.
func (u SIP) WithEmptyHeaders() SIP {
	if !u.valid || !u.headers.present() {
		return u
	}
	u.spec = u.spec[:u.headers.off-1]
	u.headers = span{}
	return u
}

// Origin returns the URI made of the scheme, host, port and transport parameter only.
// An invalid URI yields an invalid origin.
func (u SIP) Origin() SIP {
	if !u.valid {
		return SIP{}
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(u.Scheme())
	sb.WriteByte(':')
	sb.WriteString(u.Host())
	if u.HasPort() {
		sb.WriteByte(':')
		sb.WriteString(u.Port())
	}
	if tp, ok := u.Transport(); ok {
		sb.WriteString(";transport=")
		sb.WriteString(tp)
	}
	return NewSIP(sb.String())
}

// Clone returns a copy of the URI.
func (u SIP) Clone() URI { return u }

// Compare compares canonical specs of u and other.
func (u SIP) Compare(other SIP) int {
	return compareSpecs(u.PossiblyInvalidSpec(), other.PossiblyInvalidSpec())
}

// Equal reports whether val is a SIP URI with the same canonical spec.
// Invalid URIs are equal when their input texts are equal.
func (u SIP) Equal(val any) bool {
	var other SIP
	switch v := val.(type) {
	case SIP:
		other = v
	case *SIP:
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
func (u SIP) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, u.PossiblyInvalidSpec()))
}

// Render returns the string representation of the URI.
func (u SIP) Render(*RenderOptions) string { return u.PossiblyInvalidSpec() }

// String returns the string representation of the URI.
func (u SIP) String() string { return u.PossiblyInvalidSpec() }

// Format implements fmt.Formatter for custom formatting of the URI.
func (u SIP) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "uri.SIP{%q, valid: %t}", u.PossiblyInvalidSpec(), u.valid)
			return
		}
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		fmt.Fprintf(f, "%%!%c(uri.SIP=%s)", verb, u.String())
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u SIP) MarshalText() ([]byte, error) {
	return []byte(u.PossiblyInvalidSpec()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *SIP) UnmarshalText(text []byte) error {
	u1, err := ParseSIP(text)
	*u = u1
	return errtrace.Wrap(err)
}
