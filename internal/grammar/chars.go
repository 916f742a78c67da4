package grammar

type charClass [256]bool

func newClass(extra string, alnum bool) *charClass {
	var cc charClass
	if alnum {
		for c := 0; c < 256; c++ {
			cc[c] = IsAlphanum(byte(c))
		}
	}
	for i := range len(extra) {
		cc[extra[i]] = true
	}
	return &cc
}

var (
	userinfoChars = newClass("-_.!~*'()%&=+$,;?/:", true)
	paramChars    = newClass("-_.!~*'()%&=+$;:/[]", true)
	headerChars   = newClass("-_.!~*'()%&=+$:/?[]", true)
)

// IsAlphanum checks the alphanum rule.
func IsAlphanum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsDigit checks the DIGIT rule.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsHex checks the HEXDIG rule in both cases.
func IsHex(c byte) bool {
	return IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IsWS checks SP and HTAB.
func IsWS(c byte) bool { return c == ' ' || c == '\t' }

// IsUserinfoChar reports whether c stays unescaped in the userinfo part of a SIP URI.
func IsUserinfoChar(c byte) bool { return userinfoChars[c] }

// IsParamChar reports whether c stays unescaped in URI parameters.
func IsParamChar(c byte) bool { return paramChars[c] }

// IsHeaderChar reports whether c stays unescaped in URI headers.
func IsHeaderChar(c byte) bool { return headerChars[c] }
