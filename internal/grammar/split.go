package grammar

// IndexUnquoted returns the index of the first sep in s
// that is outside of quoted strings and angle brackets, or -1.
func IndexUnquoted(s string, sep byte) int {
	angle := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && !angle:
			end := quotedEnd(s[i:])
			if end < 0 {
				return -1
			}
			i += end
		case c == sep && !angle:
			return i
		case c == '<':
			angle = true
		case c == '>':
			angle = false
		}
	}
	return -1
}

// SplitList splits s at every sep found outside of quoted strings and angle brackets.
// Elements are trimmed of linear white space, empty elements are dropped.
func SplitList(s string, sep byte) []string {
	var parts []string
	for {
		i := IndexUnquoted(s, sep)
		if i < 0 {
			break
		}
		if p := TrimLWS(s[:i]); p != "" {
			parts = append(parts, p)
		}
		s = s[i+1:]
	}
	if p := TrimLWS(s); p != "" {
		parts = append(parts, p)
	}
	return parts
}
