package grammar

import (
	"strings"

	"github.com/ghettovoice/sipmsg/internal/util"
)

// IsQuoted reports whether s is a complete quoted-string.
func IsQuoted(s string) bool { return matches(quotedString, s) }

// quotedEnd returns the index of the closing quote of the quoted-string starting at s[0],
// or -1 if it is not terminated.
func quotedEnd(s string) int {
	_, n := prefix(quotedString, s)
	if n < 0 {
		return -1
	}
	return n - 1
}

// Quote wraps s into a quoted-string escaping quotes and backslashes.
func Quote(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := range len(s) {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote returns the content of a quoted-string with quoted-pairs resolved.
// Strings that are not quoted are returned unchanged.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
