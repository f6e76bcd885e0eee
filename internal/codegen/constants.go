// Package codegen provides code generation helpers and constants.
package codegen

// Suffixes of the identifiers emitted into generated files, appended to the
// user-chosen name prefix.
const (
	PatternSuffix  = "Pattern"
	FlagsSuffix    = "Flags"
	LiteralSuffix  = "Literal"
	WarningsSuffix = "Warnings"
)

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
