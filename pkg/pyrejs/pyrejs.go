// Package pyrejs converts Python regular expressions to their JavaScript
// equivalents. It wraps the internal transpiler behind a stable API: callers
// supply a pattern plus flag letters and receive the converted pattern, the
// mapped JavaScript flags, any conversion warnings, and an optional step
// trace.
package pyrejs

import (
	"fmt"

	"github.com/pyrejs/pyrejs/internal/gengo"
	"github.com/pyrejs/pyrejs/internal/transpiler"
)

// Options configures a conversion.
type Options struct {
	// Pattern is the Python regular expression to convert. It may carry
	// literal decoration (r'...' or surrounding quotes), which is stripped.
	// An empty pattern is valid and converts to an empty pattern.
	Pattern string

	// Flags holds Python flag letters ("imsxua"). Unrecognized letters are
	// ignored.
	Flags string

	// Verbose enables the step trace in the result.
	Verbose bool
}

// Step is one recorded conversion decision: the rule that fired and the
// output accumulated so far.
type Step struct {
	Rule   string
	Output string
}

// Result is the outcome of a conversion.
type Result struct {
	// Pattern is the converted pattern without /.../ delimiters.
	Pattern string

	// Flags holds the JavaScript flag letters in fixed order.
	Flags string

	// Warnings lists unsupported or lossy constructs in encounter order.
	Warnings []string

	// Steps is the ordered conversion trace; empty unless Options.Verbose
	// was set.
	Steps []Step
}

// Literal returns the conversion in JavaScript literal form, /pattern/flags.
func (r Result) Literal() string {
	return "/" + r.Pattern + "/" + r.Flags
}

// Convert translates a Python regular expression to its JavaScript
// equivalent. Conversion itself never fails: malformed input is copied
// through with warnings rather than rejected.
func Convert(opts Options) Result {
	res := transpiler.Convert(opts.Pattern, transpiler.ParseFlags(opts.Flags), opts.Verbose)

	steps := make([]Step, 0, len(res.Steps))
	for _, s := range res.Steps {
		steps = append(steps, Step{Rule: s.Rule, Output: s.Output})
	}
	return Result{
		Pattern:  res.Pattern,
		Flags:    res.Flags,
		Warnings: res.Warnings,
		Steps:    steps,
	}
}

// GenerateOptions configures Go code generation for a conversion result.
type GenerateOptions struct {
	// Pattern is the Python regular expression to convert.
	Pattern string

	// Flags holds Python flag letters ("imsxua").
	Flags string

	// Name is the prefix for generated identifiers (e.g. "Email" generates
	// "EmailPattern" and "EmailLiteral").
	Name string

	// Package is the Go package name for the generated code.
	Package string

	// OutputFile is the path where generated code will be written.
	OutputFile string

	// Verbose enables logging of generation decisions.
	Verbose bool
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	return nil
}

// Generate converts the pattern and writes a Go source file embedding the
// result. It returns an error if the options are invalid or the file cannot
// be written.
func Generate(opts GenerateOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	result := transpiler.Convert(opts.Pattern, transpiler.ParseFlags(opts.Flags), false)

	g := gengo.New(gengo.Config{
		Source:     opts.Pattern,
		Result:     result,
		Name:       opts.Name,
		Package:    opts.Package,
		OutputFile: opts.OutputFile,
		Verbose:    opts.Verbose,
	})
	if err := g.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
