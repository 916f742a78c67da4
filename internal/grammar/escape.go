package grammar

import (
	"bytes"

	"github.com/ghettovoice/sipmsg/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed sequences are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 || bytes.IndexByte([]byte(s), '%') < 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && IsHex(s[i+1]) && IsHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes every byte of s rejected by allowed to the hex form "% HEXDIG HEXDIG".
// Existing escape sequences are preserved.
func Escape[T constraints.Byteseq](s T, allowed func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHex(s[i+1]) && IsHex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case s[i] < 0x21 || s[i] > 0x7e || !allowed(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// EscapeUserinfo escapes s with the userinfo class.
func EscapeUserinfo(s string) string { return Escape(s, IsUserinfoChar) }

// EscapeParams escapes s with the URI parameters class.
func EscapeParams(s string) string { return Escape(s, IsParamChar) }

// EscapeHeaders escapes s with the URI headers class.
func EscapeHeaders(s string) string { return Escape(s, IsHeaderChar) }

const upperhex = "0123456789ABCDEF"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
