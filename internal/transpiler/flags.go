package transpiler

import "strings"

// Flags is the set of source-dialect (Python re) flags relevant to conversion.
type Flags uint8

const (
	// FlagIgnoreCase maps to the JavaScript 'i' flag.
	FlagIgnoreCase Flags = 1 << iota

	// FlagMultiline maps to the JavaScript 'm' flag.
	FlagMultiline

	// FlagDotAll maps to the JavaScript 's' flag.
	FlagDotAll

	// FlagVerbose (re.VERBOSE / 'x') has no JavaScript letter. It is consumed
	// by the preprocessor, which strips comments and insignificant whitespace.
	FlagVerbose

	// FlagUnicode maps to the JavaScript 'u' flag.
	FlagUnicode

	// FlagASCII (re.ASCII / 'a') has no JavaScript equivalent and is reported
	// as a lossy conversion.
	FlagASCII
)

// Has reports whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// ParseFlags parses Python-style flag letters ("imsxua") into a Flags value.
// Unrecognized letters are ignored: the source flag vocabulary is open-ended
// and forward compatibility is preferred over noise.
func ParseFlags(letters string) Flags {
	var f Flags
	for _, r := range letters {
		switch r {
		case 'i':
			f |= FlagIgnoreCase
		case 'm':
			f |= FlagMultiline
		case 's':
			f |= FlagDotAll
		case 'x':
			f |= FlagVerbose
		case 'u':
			f |= FlagUnicode
		case 'a':
			f |= FlagASCII
		}
	}
	return f
}

// Letters returns the JavaScript flag letters for f in the fixed order
// i, m, s, u. Verbose and ASCII contribute no letter. The result depends only
// on the flag bits, never on how the set was assembled.
func (f Flags) Letters() string {
	var b strings.Builder
	if f.Has(FlagIgnoreCase) {
		b.WriteByte('i')
	}
	if f.Has(FlagMultiline) {
		b.WriteByte('m')
	}
	if f.Has(FlagDotAll) {
		b.WriteByte('s')
	}
	if f.Has(FlagUnicode) {
		b.WriteByte('u')
	}
	return b.String()
}
