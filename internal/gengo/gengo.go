// Package gengo emits Go source files embedding a conversion result, so a
// converted pattern can be compiled into a program instead of copied around
// by hand.
package gengo

import (
	"fmt"
	"go/format"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/pyrejs/pyrejs/internal/codegen"
	"github.com/pyrejs/pyrejs/internal/transpiler"
)

// Config holds the configuration for code generation.
type Config struct {
	// Source is the original Python pattern, recorded in the file header.
	Source string

	// Result is the conversion to embed.
	Result transpiler.Result

	// Name is the prefix for generated identifiers (e.g. "Date" generates
	// "DatePattern", "DateFlags", "DateLiteral").
	Name string

	// Package is the Go package name for the generated code.
	Package string

	// OutputFile is the path where generated code will be written.
	OutputFile string

	// Verbose enables logging of generation decisions.
	Verbose bool
}

// Generator writes Go source embedding a conversion result.
type Generator struct {
	config Config
	file   *jen.File
	logger *transpiler.Logger
}

// New creates a new generator instance.
func New(config Config) *Generator {
	return &Generator{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: transpiler.NewLogger(config.Verbose),
	}
}

// Generate builds the Go source and writes it to the configured output file.
func (g *Generator) Generate() error {
	name := codegen.UpperFirst(g.config.Name)

	g.logger.Section("Code Generation")
	g.logger.Log("Pattern: %s", g.config.Source)
	g.logger.Log("Identifier prefix: %s", name)
	g.logger.Log("Output: %s", g.config.OutputFile)

	g.file.Comment(fmt.Sprintf("Code generated by pyrejs for pattern: %s", g.config.Source))
	g.file.Comment("DO NOT EDIT.")
	g.file.Line()

	g.file.Const().Defs(
		jen.Id(name+codegen.PatternSuffix).Op("=").Lit(g.config.Result.Pattern),
		jen.Id(name+codegen.FlagsSuffix).Op("=").Lit(g.config.Result.Flags),
	)

	g.file.Comment(name + codegen.LiteralSuffix + " returns the pattern in JavaScript literal form.")
	g.file.Func().Id(name + codegen.LiteralSuffix).Params().String().Block(
		jen.Return(
			jen.Lit("/").Op("+").
				Id(name + codegen.PatternSuffix).Op("+").
				Lit("/").Op("+").
				Id(name + codegen.FlagsSuffix),
		),
	)

	if len(g.config.Result.Warnings) > 0 {
		g.logger.Log("Embedding %d conversion warning(s)", len(g.config.Result.Warnings))
		values := make([]jen.Code, 0, len(g.config.Result.Warnings))
		for _, w := range g.config.Result.Warnings {
			values = append(values, jen.Lit(w))
		}
		g.file.Comment(name + codegen.WarningsSuffix + " lists the lossy decisions recorded during conversion.")
		g.file.Var().Id(name+codegen.WarningsSuffix).Op("=").Index().String().Values(values...)
	}

	if err := g.file.Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}
	return nil
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
