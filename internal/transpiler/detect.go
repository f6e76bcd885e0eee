package transpiler

import "github.com/coregx/ahocorasick"

// construct ties an unsupported-construct literal to the warning it produces.
type construct struct {
	literal string
	warning string
}

// unsupported lists constructs the target dialect cannot express or only
// partially supports. They survive conversion verbatim and are flagged, not
// rewritten.
var unsupported = []construct{
	{`(?<=`, "Lookbehind assertions have limited support in JavaScript."},
	{`(?<!`, "Lookbehind assertions have limited support in JavaScript."},
	{`(?(`, "Conditional patterns are not supported in JavaScript. This part of the regex may not work as expected."},
	{`\p{`, "Unicode property escapes require the 'u' flag in JavaScript."},
	{`\P{`, "Unicode property escapes require the 'u' flag in JavaScript."},
}

// unsupportedAutomaton matches all unsupported-construct literals in one
// O(n) pass over the converted pattern.
var unsupportedAutomaton = buildUnsupportedAutomaton()

func buildUnsupportedAutomaton() *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, c := range unsupported {
		builder.AddPattern([]byte(c.literal))
	}
	auto, err := builder.Build()
	if err != nil {
		// The literal set is fixed at compile time; a build failure is a
		// programming error.
		panic("transpiler: building unsupported-construct automaton: " + err.Error())
	}
	return auto
}

// detectUnsupported scans the converted pattern and returns one warning per
// occurrence of an unsupported construct, in encounter order.
func detectUnsupported(pattern string) []string {
	var warnings []string
	b := []byte(pattern)
	at := 0
	for at < len(b) {
		m := unsupportedAutomaton.Find(b, at)
		if m == nil {
			break
		}
		lit := string(b[m.Start:m.End])
		for _, c := range unsupported {
			if c.literal == lit {
				warnings = append(warnings, c.warning)
				break
			}
		}
		at = m.End
	}
	return warnings
}
