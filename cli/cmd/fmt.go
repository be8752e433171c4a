package cmd

import (
	"context"
	"os"
)

// Fmt reads a memory description, parses it, and reprints it in the
// chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical compact syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	AST    AST    `cmd:""                    help:"Format as abstract syntax tree."`
}

// Native formats input as canonical compact membank syntax.
type Native struct {
	Indent int `default:"2" help:"Indent width for formatted output" short:"i"`

	File  string `arg:"" default:"-" help:"Memory description file or '-' for stdin." name:"file"`
	Width uint   `default:"${width}" help:"Address width in bits"                     short:"w"`
}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	component, err := ParseSource(ctx, f.File, f.Width)
	if err != nil {
		return err
	}

	return component.Format(ctx, os.Stdout, f.Indent)
}

// JSON reads a memory description, parses it, and outputs as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	File  string `arg:"" default:"-" help:"Memory description file or '-' for stdin." name:"file"`
	Width uint   `default:"${width}" help:"Address width in bits"                     short:"w"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	component, err := ParseSource(ctx, j.File, j.Width)
	if err != nil {
		return err
	}

	return component.FormatJSON(ctx, os.Stdout, j.Indent)
}

// YAML reads a memory description, parses it, and outputs as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	File  string `arg:"" default:"-" help:"Memory description file or '-' for stdin." name:"file"`
	Width uint   `default:"${width}" help:"Address width in bits"                     short:"w"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	component, err := ParseSource(ctx, y.File, y.Width)
	if err != nil {
		return err
	}

	return component.FormatYAML(ctx, os.Stdout, y.Indent)
}

// AST formats input as an abstract syntax tree representation.
type AST struct {
	File  string `arg:"" default:"-" help:"Memory description file or '-' for stdin." name:"file"`
	Width uint   `default:"${width}" help:"Address width in bits"                     short:"w"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	component, err := ParseSource(ctx, a.File, a.Width)
	if err != nil {
		return err
	}

	component.Print(os.Stdout)

	return nil
}
