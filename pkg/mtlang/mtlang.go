// Package mtlang is the small embeddable public API for the language of
// SPEC_FULL.md: parse and run a program, capturing its print() output
// and return value. Shaped after the teacher's pkg/dwscript public
// surface (New(opts...) (*Engine, error), engine.Eval(src) (Result,
// error), functional With* options) — the teacher's own implementation
// file wasn't present in the retrieval pack (only its tests were), so
// this is a fresh implementation built to the shape those tests assume.
package mtlang

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/interp"
	"github.com/mtlang/interp/internal/lexer"
	"github.com/mtlang/interp/internal/parser"
	"github.com/mtlang/interp/internal/source"
	"github.com/mtlang/interp/internal/value"
)

// Option configures an Engine.
type Option func(*Engine)

// WithOutput additionally writes print() output to w; it is still
// captured in Result.Output as well.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// WithStdin redirects cin()'s source away from os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(e *Engine) { e.in = r }
}

// WithLexerLimits overrides the scanner's size limits.
func WithLexerLimits(l lexer.Limits) Option {
	return func(e *Engine) { e.lexLimits = l }
}

// WithCallDepthLimit overrides the evaluator's recursion limit.
func WithCallDepthLimit(n int) Option {
	return func(e *Engine) { e.callDepth = n }
}

// WithLogger attaches a structured logger for verbose evaluator tracing
// (SPEC_FULL.md §4.6); the default is interp's own no-op discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine parses and runs programs written in this language.
type Engine struct {
	out       io.Writer
	in        io.Reader
	lexLimits lexer.Limits
	callDepth int
	log       *slog.Logger
}

// New builds an Engine with defaults, applying opts.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		lexLimits: lexer.DefaultLimits,
		callDepth: interp.DefaultLimits.MaxCallDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Result is the outcome of running a program: its return value and
// whatever it printed.
type Result struct {
	Value  value.Value
	Output string
}

// Parse lexes and parses src into a *ast.Program without running it —
// used by cmd/mtlang's parse and run (--ast-json) subcommands and by
// Eval itself.
func (e *Engine) Parse(src string) (*ast.Program, error) {
	lx := lexer.New(source.New(src), lexer.WithLimits(e.lexLimits))
	p := parser.New(lx)
	return p.Parse()
}

// Eval parses and runs src, returning the value main() returned and
// everything print() wrote.
func (e *Engine) Eval(src string) (Result, error) {
	prog, err := e.Parse(src)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	out := io.Writer(&buf)
	if e.out != nil {
		out = io.MultiWriter(&buf, e.out)
	}

	opts := []interp.Option{
		interp.WithStdout(out),
		interp.WithLimits(interp.Limits{MaxCallDepth: e.callDepth}),
	}
	if e.in != nil {
		opts = append(opts, interp.WithStdin(e.in))
	}
	if e.log != nil {
		opts = append(opts, interp.WithLogger(e.log))
	}

	it := interp.New(prog, opts...)
	v, err := it.Run()
	if err != nil {
		return Result{Output: buf.String()}, err
	}
	return Result{Value: v, Output: buf.String()}, nil
}
