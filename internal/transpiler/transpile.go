// Package transpiler converts Python regular expression patterns and flags to
// their JavaScript equivalents. The conversion is a single left-to-right scan
// that reclassifies each character or escape sequence, rewrites the constructs
// the target dialect spells differently, and records every lossy decision as a
// warning. It never fails: any input string, however malformed, yields an
// output string plus a (possibly empty) warning list.
package transpiler

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Warning texts for lossy or recoverable conversions.
const (
	warnAtomicGroup    = "atomic group converted to non-capturing group; atomicity lost"
	warnClassBackspace = `'\b' inside a character class matches a backspace, not a word boundary.`
	warnAnyButNewline  = `'\N' is converted to '[^\n]', which may not behave identically in all cases.`
	warnASCIIFlag      = "The ASCII flag has no JavaScript equivalent; Unicode matching semantics are kept."
)

// Step is one recorded transformation decision: the rule that fired and the
// output buffer content at that point. Steps are purely observational and
// never influence the conversion.
type Step struct {
	Rule   string
	Output string
}

// Result is the outcome of a single conversion call.
type Result struct {
	// Pattern is the converted pattern, without surrounding /.../ delimiters.
	Pattern string

	// Flags holds the JavaScript flag letters in fixed order.
	Flags string

	// Warnings lists lossy or recoverable constructs in encounter order.
	// Duplicates are not suppressed.
	Warnings []string

	// Steps is the ordered trace of rule applications. Empty unless tracing
	// was requested.
	Steps []Step
}

// scan is the transient state of one conversion call.
type scan struct {
	src      string
	pos      int
	out      strings.Builder
	inClass  bool
	depth    int
	warnings []string
	steps    []Step
	trace    bool
}

// Convert translates pattern from the Python dialect to the JavaScript
// dialect under the given flag set. When trace is true the returned Result
// carries a step record for every rule application.
//
// The pattern may carry Python literal decoration (r'...' or quotes); it is
// stripped before conversion. When flags contains FlagVerbose, comments and
// insignificant whitespace are removed before the main scan.
func Convert(pattern string, flags Flags, trace bool) Result {
	s := &scan{trace: trace}

	s.src = StripDecoration(pattern)
	if s.src != pattern && trace {
		s.steps = append(s.steps, Step{Rule: "strip-decoration", Output: s.src})
	}
	if flags.Has(FlagVerbose) {
		cleaned := StripVerbose(s.src)
		if cleaned != s.src && trace {
			s.steps = append(s.steps, Step{Rule: "verbose-cleanup", Output: cleaned})
		}
		s.src = cleaned
	}

	for s.pos < len(s.src) {
		s.step()
	}
	if s.depth > 0 {
		s.warn(fmt.Sprintf("pattern ends with %d unclosed group(s)", s.depth))
	}

	converted := s.out.String()
	s.warnings = append(s.warnings, detectUnsupported(converted)...)
	if flags.Has(FlagASCII) {
		s.warn(warnASCIIFlag)
	}

	return Result{
		Pattern:  converted,
		Flags:    flags.Letters(),
		Warnings: s.warnings,
		Steps:    s.steps,
	}
}

// step consumes one token and emits its translation. Every path consumes at
// least one source character, so the scan always terminates.
func (s *scan) step() {
	kind := s.classify()
	switch kind {
	case tokenStartAnchor:
		s.pos += len(`\A`)
		s.emit(kind, "^")
	case tokenEndAnchor:
		s.pos += len(`\Z`)
		s.emit(kind, "$")
	case tokenNamedGroup:
		s.namedGroup()
	case tokenNamedRef:
		s.namedRef()
	case tokenAtomicGroup:
		s.pos += len("(?>")
		s.depth++
		s.warn(warnAtomicGroup)
		s.emit(kind, "(?:")
	case tokenBellEscape:
		s.pos += len(`\a`)
		s.emit(kind, `\x07`)
	case tokenAnyButNewline:
		s.pos += len(`\N`)
		s.warn(warnAnyButNewline)
		s.emit(kind, `[^\n]`)
	case tokenEscape:
		_, size := utf8.DecodeRuneInString(s.src[s.pos+1:])
		pair := s.src[s.pos : s.pos+1+size]
		s.pos += 1 + size
		if s.inClass && pair == `\b` {
			s.warn(warnClassBackspace)
		}
		s.emit(kind, pair)
	case tokenClassOpen:
		s.inClass = true
		s.pos++
		s.emit(kind, "[")
	case tokenClassClose:
		s.inClass = false
		s.pos++
		s.emit(kind, "]")
	case tokenGroupOpen:
		s.depth++
		s.pos++
		s.emit(kind, "(")
	case tokenGroupClose:
		// The depth counter never goes negative; an excess ')' is tolerated
		// and copied through.
		if s.depth > 0 {
			s.depth--
		} else {
			s.warn(fmt.Sprintf("unmatched ')' at index %d copied through", s.pos))
		}
		s.pos++
		s.emit(kind, ")")
	default:
		_, size := utf8.DecodeRuneInString(s.src[s.pos:])
		lit := s.src[s.pos : s.pos+size]
		s.pos += size
		s.emit(kind, lit)
	}
}

// namedGroup rewrites (?P<name> to (?<name>. An invalid or unterminated
// construct is copied through unchanged with a warning.
func (s *scan) namedGroup() {
	rest := s.src[s.pos:]
	s.depth++
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		s.warn("unterminated named group; construct copied through unchanged")
		s.pos += len("(?P<")
		s.emit(tokenNamedGroup, "(?P<")
		return
	}
	name := rest[len("(?P<"):end]
	s.pos += end + 1
	if !validGroupName(name) {
		s.warn(fmt.Sprintf("invalid group name %q; construct copied through unchanged", name))
		s.emit(tokenNamedGroup, rest[:end+1])
		return
	}
	s.emit(tokenNamedGroup, "(?<"+name+">")
}

// namedRef rewrites (?P=name) to \k<name>. An invalid or unterminated
// construct is copied through unchanged with a warning.
func (s *scan) namedRef() {
	rest := s.src[s.pos:]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		s.warn("unterminated named group reference; construct copied through unchanged")
		s.depth++
		s.pos += len("(?P=")
		s.emit(tokenNamedRef, "(?P=")
		return
	}
	name := rest[len("(?P="):end]
	s.pos += end + 1
	if !validGroupName(name) {
		s.warn(fmt.Sprintf("invalid group name %q; construct copied through unchanged", name))
		s.emit(tokenNamedRef, rest[:end+1])
		return
	}
	s.emit(tokenNamedRef, `\k<`+name+`>`)
}

// emit appends text to the output and records a step when tracing.
func (s *scan) emit(kind tokenKind, text string) {
	s.out.WriteString(text)
	if s.trace {
		s.steps = append(s.steps, Step{Rule: ruleNames[kind], Output: s.out.String()})
	}
}

func (s *scan) warn(msg string) {
	s.warnings = append(s.warnings, msg)
}
