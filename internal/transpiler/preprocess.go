package transpiler

import "strings"

// StripDecoration removes Python literal decoration from a pattern: an
// optional leading 'r'/'R' prefix followed by surrounding quotes. This is a
// structural check, not a literal parser. Partial or malformed decoration is
// left untouched.
func StripDecoration(pattern string) string {
	p := pattern
	if len(p) > 0 && (p[0] == 'r' || p[0] == 'R') {
		if len(p) >= 3 && isQuote(p[1]) && p[len(p)-1] == p[1] {
			return p[2 : len(p)-1]
		}
		return pattern
	}
	if len(p) >= 2 && isQuote(p[0]) && p[len(p)-1] == p[0] {
		return p[1 : len(p)-1]
	}
	return pattern
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// verboseWhitespace is the whitespace set Python's verbose mode ignores.
const verboseWhitespace = " \t\n\r\v\f"

// StripVerbose removes verbose-mode decoration from a pattern: '#' comments
// running to end of line, unescaped whitespace, and inline "(?x)" markers.
// Positions inside a character class or immediately after a backslash are
// protected and copied through literally.
//
// Known limitation: a literal unescaped '#' outside a character class cannot
// be told apart from a comment marker with a single-character escape context,
// so it is always treated as starting a comment. Callers must not assume this
// stage is lossless for '#'-bearing verbose patterns.
func StripVerbose(pattern string) string {
	var out strings.Builder
	out.Grow(len(pattern))
	inClass := false
	escaped := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if escaped {
			out.WriteByte(c)
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			out.WriteByte(c)
			escaped = true
		case inClass:
			out.WriteByte(c)
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			out.WriteByte(c)
		case strings.HasPrefix(pattern[i:], "(?x)"):
			i += len("(?x)") - 1
		case c == '#':
			for i < len(pattern) && pattern[i] != '\n' {
				i++
			}
			// The newline itself, if present, is insignificant whitespace
			// and falls out with the comment.
		case strings.IndexByte(verboseWhitespace, c) >= 0:
			// removed
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}
