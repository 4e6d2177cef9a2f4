// Package interp is the tree-walking evaluator of SPEC_FULL.md §4.4: a
// type-switch dispatch over internal/ast (Design Notes §9 — no
// visitor/accept pattern), a call-frame stack of lexical scopes, and the
// three error families of internal/ierrors surfacing as it walks.
package interp

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
	"github.com/mtlang/interp/internal/value"
)

// Scope is a single lexical level of bindings within a call frame.
// Lookups walk a Frame's scopes innermost-first (SPEC_FULL.md §4.4.2).
type Scope map[string]*value.Slot

// Frame is one function activation: an ordered stack of Scopes plus the
// function name used to label stack-trace frames on error.
type Frame struct {
	scopes []Scope
	name   string
}

func newFrame(name string, params Scope) *Frame {
	return &Frame{scopes: []Scope{params}, name: name}
}

func (f *Frame) openScope() { f.scopes = append(f.scopes, Scope{}) }

func (f *Frame) closeScope() { f.scopes = f.scopes[:len(f.scopes)-1] }

// get returns the slot bound to name, walking scopes innermost-first; if
// none exists it is created UNDEFINED in the innermost scope
// (SPEC_FULL.md §4.4.2's get/autovivify contract).
func (f *Frame) get(name string) *value.Slot {
	for i := len(f.scopes) - 1; i >= 0; i-- {
		if slot, ok := f.scopes[i][name]; ok {
			return slot
		}
	}
	slot := value.NewSlot(value.Undefined)
	f.scopes[len(f.scopes)-1][name] = slot
	return slot
}

// StdlibFunc is the signature of every entry in the interpreter's library
// table: the interpreter itself (for I/O), positional arguments, and the
// call position (for error reporting). The pure internal/interp/stdlib
// functions take no interpreter and are wrapped to this shape.
type StdlibFunc func(it *Interp, args []value.Value, pos token.Position) (value.Value, error)

// Limits bounds recursion depth (SPEC_FULL.md §4.7's Limits struct,
// evaluator half — the lexer half lives in internal/lexer.Limits).
type Limits struct {
	MaxCallDepth int
}

// DefaultLimits matches the teacher's conservative defaults scaled to
// this language's call-frame cost.
var DefaultLimits = Limits{MaxCallDepth: 1024}

// Option configures an Interp, mirroring internal/lexer's functional
// options idiom (SPEC_FULL.md §4.7).
type Option func(*Interp)

// WithLimits overrides the default recursion limit.
func WithLimits(l Limits) Option {
	return func(it *Interp) { it.limits = l }
}

// WithStdout redirects print() output away from os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(it *Interp) { it.out = w }
}

// WithStdin redirects cin()'s source away from os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(it *Interp) { it.in = bufio.NewReader(r) }
}

// WithLogger attaches a structured logger for verbose call tracing
// (SPEC_FULL.md §4.6); the default is slog's no-op discard handler.
func WithLogger(l *slog.Logger) Option {
	return func(it *Interp) { it.log = l }
}

// Interp holds all state for one program evaluation: the call-frame
// stack, the program's function table, the standard library, and the
// ambient I/O/logging the stdlib functions and diagnostics need.
type Interp struct {
	prog   *ast.Program
	frames []*Frame
	stdlib map[string]StdlibFunc
	limits Limits
	out    io.Writer
	in     *bufio.Reader
	log    *slog.Logger
}

// New builds an interpreter for prog with the given options applied.
func New(prog *ast.Program, opts ...Option) *Interp {
	it := &Interp{
		prog:   prog,
		stdlib: stdlibTable(),
		limits: DefaultLimits,
		out:    os.Stdout,
		in:     bufio.NewReader(os.Stdin),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

func (it *Interp) curFrame() *Frame { return it.frames[len(it.frames)-1] }

// Run evaluates the program by invoking main() with no arguments
// (spec.md §4.4.1's entry-point rule).
func (it *Interp) Run() (value.Value, error) {
	if _, ok := it.prog.Functions["main"]; !ok {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.MissingMain, it.prog.Pos(), "main")
	}
	return it.callFunction("main", nil, it.prog.Pos())
}

// callFunction dispatches to a user-defined function or a stdlib
// builtin, in that order (SPEC_FULL.md §4.4.7); neither resolving is an
// UndefinedFunction error.
func (it *Interp) callFunction(name string, args []value.Value, pos token.Position) (value.Value, error) {
	if fn, ok := it.prog.Functions[name]; ok {
		return it.callUserFunction(fn, args, pos)
	}
	if fn, ok := it.stdlib[name]; ok {
		res, err := fn(it, args, pos)
		if err != nil {
			return value.Undefined, withFrame(err, name, pos)
		}
		return res, nil
	}
	return value.Undefined, ierrors.NewRuntimeError(ierrors.UndefinedFunction, pos, name)
}

func (it *Interp) callUserFunction(fn *ast.FunctionDef, args []value.Value, pos token.Position) (value.Value, error) {
	if len(fn.Params) != len(args) {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.FunctionArgumentsMismatch, pos, fn.Name, len(fn.Params), len(args))
	}
	if len(it.frames) >= it.limits.MaxCallDepth {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.CallDepthExceeded, pos, it.limits.MaxCallDepth)
	}
	init := Scope{}
	for i, p := range fn.Params {
		init[p] = value.NewSlot(args[i])
	}
	it.log.Debug("call", "function", fn.Name, "depth", len(it.frames)+1)
	it.frames = append(it.frames, newFrame(fn.Name, init))
	result, _, err := it.execBlock(fn.Body)
	it.frames = it.frames[:len(it.frames)-1]
	if err != nil {
		return value.Undefined, withFrame(err, fn.Name, pos)
	}
	return result, nil
}

// withFrame appends a stack-trace frame to err if it is a *RuntimeError,
// leaving any other error (there are none in this package, but the
// dispatch is kept generic) untouched.
func withFrame(err error, function string, pos token.Position) error {
	if re, ok := err.(*ierrors.RuntimeError); ok {
		return re.WithFrame(ierrors.Frame{Function: function, Pos: pos})
	}
	return err
}
