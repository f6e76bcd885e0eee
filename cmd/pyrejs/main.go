package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pyrejs/pyrejs/internal/transpiler"
	"github.com/pyrejs/pyrejs/pkg/pyrejs"
)

var (
	flagLetters = flag.String("flags", "", "Python regex flags (e.g. \"im\" for IGNORECASE and MULTILINE)")
	verbose     = flag.Bool("verbose", false, "Print conversion steps")
	selfTest    = flag.Bool("test", false, "Run the built-in conversion test table")
	genFile     = flag.String("gen", "", "Generate a Go source file embedding the conversion at this path")
	genName     = flag.String("name", "Pattern", "Identifier prefix for generated code")
	genPackage  = flag.String("pkg", "patterns", "Package name for generated code")
	helpFlag    = flag.Bool("help", false, "Show help message")
	version     = flag.Bool("version", false, "Print version information")
)

const (
	appVersion = "1.0.0"
	appName    = "pyrejs"
)

func main() {
	flag.Parse()

	if *helpFlag {
		printHelp()
		return
	}
	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		return
	}
	if *selfTest {
		if failures := runSelfTests(os.Stdout); failures > 0 {
			os.Exit(1)
		}
		return
	}
	if flag.NArg() == 0 {
		printHelp()
		os.Exit(1)
	}
	pattern := flag.Arg(0)

	if *genFile != "" {
		err := pyrejs.Generate(pyrejs.GenerateOptions{
			Pattern:    pattern,
			Flags:      *flagLetters,
			Name:       *genName,
			Package:    *genPackage,
			OutputFile: *genFile,
			Verbose:    *verbose,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s\n", *genFile)
		return
	}

	logger := transpiler.NewLogger(*verbose)
	logger.Section("Conversion")
	logger.Log("Pattern: %s", pattern)
	logger.Log("Flags: %q", *flagLetters)

	result := pyrejs.Convert(pyrejs.Options{
		Pattern: pattern,
		Flags:   *flagLetters,
		Verbose: *verbose,
	})

	fmt.Printf("JavaScript regex: %s\n", result.Literal())
	if len(result.Warnings) > 0 {
		fmt.Println("Warnings:")
		for _, w := range result.Warnings {
			fmt.Printf("- %s\n", w)
		}
	}
	if *verbose {
		fmt.Println("\nConversion steps:")
		for _, s := range result.Steps {
			fmt.Printf("- %-16s %s\n", s.Rule, s.Output)
		}
	}
}

func printHelp() {
	fmt.Printf("%s - convert Python regular expressions to JavaScript\n\n", appName)
	fmt.Printf("Usage: %s [options] <pattern>\n\n", appName)
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s '(?P<date>\\d{4}-\\d{2}-\\d{2})'\n", appName)
	fmt.Printf("  %s -flags im '^start'\n", appName)
	fmt.Printf("  %s -gen date.go -name Date -pkg patterns '(?P<date>\\d+)'\n", appName)
	fmt.Printf("  %s -test\n", appName)
}
