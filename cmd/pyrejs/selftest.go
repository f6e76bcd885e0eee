package main

import (
	"fmt"
	"io"

	"github.com/pyrejs/pyrejs/pkg/pyrejs"
)

// selfTestCase is one fixed conversion check for -test mode.
type selfTestCase struct {
	pattern      string
	flags        string
	wantLiteral  string
	wantWarnings []string
}

const (
	warnLookbehind  = "Lookbehind assertions have limited support in JavaScript."
	warnConditional = "Conditional patterns are not supported in JavaScript. This part of the regex may not work as expected."
	warnUnicodeProp = "Unicode property escapes require the 'u' flag in JavaScript."
)

var selfTestCases = []selfTestCase{
	// Basic patterns
	{pattern: "hello", wantLiteral: "/hello/"},
	{pattern: "hello world", wantLiteral: "/hello world/"},

	// Character classes
	{pattern: "[a-z]", wantLiteral: "/[a-z]/"},
	{pattern: "[^a-z]", wantLiteral: "/[^a-z]/"},
	{pattern: "[a-zA-Z0-9_]", wantLiteral: "/[a-zA-Z0-9_]/"},

	// Quantifiers
	{pattern: "a*", wantLiteral: "/a*/"},
	{pattern: "a+", wantLiteral: "/a+/"},
	{pattern: "a?", wantLiteral: "/a?/"},
	{pattern: "a{3}", wantLiteral: "/a{3}/"},
	{pattern: "a{3,}", wantLiteral: "/a{3,}/"},
	{pattern: "a{3,5}", wantLiteral: "/a{3,5}/"},

	// Anchors
	{pattern: "^start", wantLiteral: "/^start/"},
	{pattern: "end$", wantLiteral: "/end$/"},
	{pattern: `\bword\b`, wantLiteral: `/\bword\b/`},
	{pattern: `\Astart`, wantLiteral: "/^start/"},
	{pattern: `end\Z`, wantLiteral: "/end$/"},

	// Groups and references
	{pattern: "(group)", wantLiteral: "/(group)/"},
	{pattern: "(?:group)", wantLiteral: "/(?:group)/"},
	{pattern: `(group)\1`, wantLiteral: `/(group)\1/`},
	{pattern: "(?P<name>group)", wantLiteral: "/(?<name>group)/"},
	{pattern: "(?P=name)", wantLiteral: `/\k<name>/`},

	// Lookarounds
	{pattern: "(?=positive)", wantLiteral: "/(?=positive)/"},
	{pattern: "(?!negative)", wantLiteral: "/(?!negative)/"},
	{
		pattern:      "(?<=positive)",
		wantLiteral:  "/(?<=positive)/",
		wantWarnings: []string{warnLookbehind},
	},
	{
		pattern:      "(?<!negative)",
		wantLiteral:  "/(?<!negative)/",
		wantWarnings: []string{warnLookbehind},
	},

	// Character shorthands
	{pattern: `\d\D\w\W\s\S`, wantLiteral: `/\d\D\w\W\s\S/`},

	// Flags
	{pattern: "case", flags: "i", wantLiteral: "/case/i"},
	{pattern: "^multi$", flags: "m", wantLiteral: "/^multi$/m"},
	{pattern: ".", flags: "s", wantLiteral: "/./s"},

	// Verbose mode
	{
		pattern: "(?x)\n" +
			"        \\d+  # Match one or more digits\n" +
			"        \\s*  # Optional whitespace\n" +
			"        \\w+  # Match one or more word characters\n" +
			"        ",
		flags:       "x",
		wantLiteral: `/\d+\s*\w+/`,
	},

	// Unicode
	{
		pattern:      `\p{Greek}`,
		flags:        "u",
		wantLiteral:  `/\p{Greek}/u`,
		wantWarnings: []string{warnUnicodeProp},
	},
	{
		pattern:      `\P{ASCII}`,
		flags:        "u",
		wantLiteral:  `/\P{ASCII}/u`,
		wantWarnings: []string{warnUnicodeProp},
	},

	// Atomic groups
	{
		pattern:      "(?>atomic)",
		wantLiteral:  "/(?:atomic)/",
		wantWarnings: []string{"atomic group converted to non-capturing group; atomicity lost"},
	},

	// Unsupported features
	{
		pattern:      "(?(1)then|else)",
		wantLiteral:  "/(?(1)then|else)/",
		wantWarnings: []string{warnConditional},
	},

	// Edge cases
	{pattern: "", wantLiteral: "//"},
	{pattern: "[]]", wantLiteral: "/[]]/"},
	{pattern: "[^]]", wantLiteral: "/[^]]/"},
	{pattern: `[\]]`, wantLiteral: `/[\]]/`},
	{
		pattern:      `\a\N`,
		wantLiteral:  `/\x07[^\n]/`,
		wantWarnings: []string{`'\N' is converted to '[^\n]', which may not behave identically in all cases.`},
	},
}

// runSelfTests feeds the fixed table through the converter and reports
// pass/fail counts. It returns the number of failures.
func runSelfTests(w io.Writer) int {
	failures := 0
	for i, tc := range selfTestCases {
		result := pyrejs.Convert(pyrejs.Options{Pattern: tc.pattern, Flags: tc.flags})
		if result.Literal() == tc.wantLiteral && warningsEqual(result.Warnings, tc.wantWarnings) {
			fmt.Fprintf(w, "Test %d passed\n", i+1)
			continue
		}
		failures++
		fmt.Fprintf(w, "Test %d failed:\n", i+1)
		fmt.Fprintf(w, "  Input:    %q\n", tc.pattern)
		fmt.Fprintf(w, "  Flags:    %q\n", tc.flags)
		fmt.Fprintf(w, "  Expected: %s\n", tc.wantLiteral)
		fmt.Fprintf(w, "  Got:      %s\n", result.Literal())
		if !warningsEqual(result.Warnings, tc.wantWarnings) {
			fmt.Fprintf(w, "  Expected warnings: %v\n", tc.wantWarnings)
			fmt.Fprintf(w, "  Got warnings:      %v\n", result.Warnings)
		}
	}
	fmt.Fprintf(w, "\n%d/%d tests passed\n", len(selfTestCases)-failures, len(selfTestCases))
	return failures
}

func warningsEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
