package transpiler

import "strings"

// tokenKind classifies what starts at the current scan position. Dispatch in
// the scanner follows declaration order: the first specialized kind that
// applies wins, and tokenLiteral is the fallback that keeps the scan moving.
type tokenKind int

const (
	tokenStartAnchor tokenKind = iota // \A outside a class
	tokenEndAnchor                    // \Z outside a class
	tokenNamedGroup                   // (?P<name>
	tokenNamedRef                     // (?P=name)
	tokenAtomicGroup                  // (?>
	tokenBellEscape                   // \a outside a class
	tokenAnyButNewline                // \N outside a class
	tokenEscape                       // backslash plus one character
	tokenClassOpen                    // [ opening a character class
	tokenClassClose                   // ] closing a character class
	tokenGroupOpen                    // ( plain or special group open
	tokenGroupClose                   // )
	tokenLiteral                      // anything else, consumed one rune at a time
)

// rule names recorded in the step trace, one per token kind.
var ruleNames = map[tokenKind]string{
	tokenStartAnchor:   "start-anchor",
	tokenEndAnchor:     "end-anchor",
	tokenNamedGroup:    "named-group",
	tokenNamedRef:      "named-backref",
	tokenAtomicGroup:   "atomic-group",
	tokenBellEscape:    "bell-escape",
	tokenAnyButNewline: "any-but-newline",
	tokenEscape:        "escape",
	tokenClassOpen:     "class-open",
	tokenClassClose:    "class-close",
	tokenGroupOpen:     "group-open",
	tokenGroupClose:    "group-close",
	tokenLiteral:       "literal",
}

// classify reports the token kind starting at s.pos. It never consumes input.
func (s *scan) classify() tokenKind {
	rest := s.src[s.pos:]
	switch {
	case !s.inClass && strings.HasPrefix(rest, `\A`):
		return tokenStartAnchor
	case !s.inClass && strings.HasPrefix(rest, `\Z`):
		return tokenEndAnchor
	case !s.inClass && strings.HasPrefix(rest, "(?P<"):
		return tokenNamedGroup
	case !s.inClass && strings.HasPrefix(rest, "(?P="):
		return tokenNamedRef
	case !s.inClass && strings.HasPrefix(rest, "(?>"):
		return tokenAtomicGroup
	case !s.inClass && strings.HasPrefix(rest, `\a`):
		return tokenBellEscape
	case !s.inClass && strings.HasPrefix(rest, `\N`):
		return tokenAnyButNewline
	case len(rest) >= 2 && rest[0] == '\\':
		return tokenEscape
	case !s.inClass && rest[0] == '[':
		return tokenClassOpen
	case s.inClass && rest[0] == ']':
		return tokenClassClose
	case !s.inClass && rest[0] == '(':
		return tokenGroupOpen
	case !s.inClass && rest[0] == ')':
		return tokenGroupClose
	default:
		return tokenLiteral
	}
}

// validGroupName reports whether name matches the identifier grammar shared
// by both dialects: letters, digits and underscores, not starting with a
// digit, and non-empty.
func validGroupName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
