// Package grammar implements the lexical building blocks of SIP messages.
// Token, quoted-string, name-addr, parameter, host and telephone number rules
// are composed of ABNF operators, see rules.go.
// Quoting, percent-encoding and list splitting are built on top of them.
package grammar

import (
	"strings"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/sipmsg/internal/constraints"
)

var digits = abnf.Repeat1Inf("digits", core.DIGIT)

// IsToken reports whether s is a non-empty RFC 3261 token.
func IsToken[T constraints.Byteseq](s T) bool { return matches(token, s) }

// IsWord reports whether s is a non-empty RFC 3261 word (used by Call-ID).
func IsWord[T constraints.Byteseq](s T) bool { return matches(word, s) }

// IsDigits reports whether s is a non-empty run of decimal digits.
func IsDigits[T constraints.Byteseq](s T) bool { return matches(digits, s) }

// IsDisplayName reports whether s is a quoted string or tokens separated by LWS.
func IsDisplayName[T constraints.Byteseq](s T) bool { return matches(displayName, s) }

// IsGenValue reports whether s is a token, a host or a quoted string.
func IsGenValue[T constraints.Byteseq](s T) bool { return matches(genValue, s) }

// IsHost reports whether s is a host name, an IPv4 address or a bracketed IPv6 address.
func IsHost[T constraints.Byteseq](s T) bool { return matches(host, s) }

// IsIPv4 reports whether s has the dotted IPv4 form, octet ranges are not checked.
func IsIPv4[T constraints.Byteseq](s T) bool { return matches(ipv4Address, s) }

// IsGlobalNumber reports whether s is an RFC 3966 global number, i.e. "+1-201-555-0123".
func IsGlobalNumber[T constraints.Byteseq](s T) bool { return matches(globalNumber, s) }

// IsLocalNumber reports whether s is an RFC 3966 local number, i.e. "7042" or "*69".
func IsLocalNumber[T constraints.Byteseq](s T) bool { return matches(localNumber, s) }

// TrimLWS trims linear white space around s.
func TrimLWS(s string) string {
	return strings.Trim(s, " \t\r\n")
}

// TrimCtl trims white space and ASCII control characters around s.
func TrimCtl(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' || r == 0x7f })
}

// Cut slices s around the first sep found outside of quoted strings and angle brackets.
func Cut(s string, sep byte) (before, after string, found bool) {
	if i := IndexUnquoted(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// Token scans a leading token from s and returns it together with the rest.
func Token(s string) (tok, rest string) {
	if _, n := prefix(token, s); n > 0 {
		return s[:n], s[n:]
	}
	return "", s
}

// CutNameAddr scans a leading "[display-name] <addr-spec>" from s.
// The display name and the addr-spec are returned as they appear, the rest follows the closing bracket.
func CutNameAddr(s string) (display, addrSpec, rest string, ok bool) {
	n, l := prefix(nameAddr, s)
	if l < 0 {
		return "", "", s, false
	}
	if dn, ok := n.GetNode(KeyDisplayName); ok {
		display = dn.String()
	}
	if an, ok := n.GetNode(KeyAddrSpec); ok {
		addrSpec = an.String()
	}
	return display, addrSpec, s[l:], true
}

// ParseParam splits a generic-param "name [= value]", LWS around '=' is allowed.
// The value keeps quotes of a quoted string.
func ParseParam(s string) (name, value string, ok bool) {
	n, ok := match(genericParam, s)
	if !ok {
		return "", "", false
	}
	if pn, ok := n.GetNode(KeyParamName); ok {
		name = pn.String()
	}
	if vn, ok := n.GetNode(KeyGenValue); ok {
		value = vn.String()
	}
	return name, value, true
}
