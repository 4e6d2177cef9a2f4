// Package ierrors defines the three error families of SPEC_FULL.md §7 —
// Lexical, Syntactic, Execution — as concrete error types, plus the
// stack-trace accumulation machinery Execution errors carry as they
// propagate.
package ierrors

import (
	"fmt"

	"github.com/mtlang/interp/internal/token"
)

// LexKind is the closed set of lexical error kinds.
type LexKind int

const (
	InvalidToken LexKind = iota
	InvalidNumber
	InvalidString
	LargeString
	LargeIdentifier
	LargeNumber
	LargeDecimalPart
)

var lexMessages = map[LexKind]string{
	InvalidToken:     "invalid token",
	InvalidNumber:    "invalid number literal",
	InvalidString:    "unterminated string literal",
	LargeString:      "string literal exceeds the maximum length",
	LargeIdentifier:  "identifier exceeds the maximum length",
	LargeNumber:      "number literal exceeds the maximum value",
	LargeDecimalPart: "decimal part exceeds the maximum precision",
}

// LexError is a positioned lexical-family error (SPEC_FULL.md §7).
type LexError struct {
	Kind LexKind
	Pos  token.Position
}

func NewLexError(kind LexKind, pos token.Position) *LexError {
	return &LexError{Kind: kind, Pos: pos}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, lexMessages[e.Kind])
}

// SyntaxKind is the closed set of syntactic error kinds.
type SyntaxKind int

const (
	FunctionDuplication SyntaxKind = iota
	UnexpectedToken
	MissingCondition
	MissingExpression
	MissingStatementBlock
	MissingElseStatement
	MissingSelector
	TokenMismatch
	MissingBracket
	MissingIdentifier
)

// Context names the grammar production a syntactic error occurred in.
type Context string

const (
	CtxProgram          Context = "Program"
	CtxFunctionDef       Context = "FunctionDefinition"
	CtxParams            Context = "Parameters"
	CtxStatementBlock    Context = "StatementBlock"
	CtxIfStatement       Context = "IfStatement"
	CtxUntilStatement    Context = "UntilStatement"
	CtxReturnStatement   Context = "ReturnStatement"
	CtxAssignOrCall      Context = "AssignOrCall"
	CtxIndexOp           Context = "IndexOperator"
	CtxSelector          Context = "Selector"
	CtxOrCondition       Context = "OrCondition"
	CtxAndCondition      Context = "AndCondition"
	CtxRelCondition      Context = "RelCondition"
	CtxAdditive          Context = "AdditiveExpression"
	CtxMultiplicative    Context = "MultiplicativeExpression"
	CtxAtomic            Context = "AtomicExpression"
	CtxMatrixLiteral     Context = "MatrixLiteral"
	CtxArguments         Context = "Arguments"
)

// SyntaxError is a context-bearing syntactic-family error.
type SyntaxError struct {
	Kind     SyntaxKind
	Pos      token.Position
	Context  Context
	Expected string
	Actual   string
	Name     string // used by FunctionDuplication
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case FunctionDuplication:
		return fmt.Sprintf("%s: duplicate function definition %q", e.Pos, e.Name)
	case MissingBracket:
		return fmt.Sprintf("%s: in %s, expected bracket %s, got %s", e.Pos, e.Context, e.Expected, e.Actual)
	case TokenMismatch:
		return fmt.Sprintf("%s: in %s, expected %s, got %s", e.Pos, e.Context, e.Expected, e.Actual)
	case MissingIdentifier:
		return fmt.Sprintf("%s: in %s, expected an identifier, got %s", e.Pos, e.Context, e.Actual)
	default:
		return fmt.Sprintf("%s: in %s, %s", e.Pos, e.Context, syntaxMessages[e.Kind])
	}
}

var syntaxMessages = map[SyntaxKind]string{
	UnexpectedToken:       "unexpected token",
	MissingCondition:      "expected a condition",
	MissingExpression:     "expected an expression",
	MissingStatementBlock: "expected a statement block",
	MissingElseStatement:  "expected a statement block or if after else",
	MissingSelector:       "expected ':' or an expression as a selector",
}

// NewSyntaxError builds a context-bearing syntactic error.
func NewSyntaxError(kind SyntaxKind, pos token.Position, ctx Context) *SyntaxError {
	return &SyntaxError{Kind: kind, Pos: pos, Context: ctx}
}

// ExecKind is the closed set of execution error kinds.
type ExecKind int

const (
	MissingMain ExecKind = iota
	UndefinedFunction
	FunctionArgumentsMismatch
	TypesMismatch
	MatrixDimensionsMismatch
	ZeroDivision
	InvalidType
	InvalidMatrixLiteral
	Index
	UndefinedVariable
	CallDepthExceeded
)

var execMessages = map[ExecKind]string{
	MissingMain:               "program has no entry function %q",
	UndefinedFunction:         "undefined function %q",
	FunctionArgumentsMismatch: "function %q expects %d argument(s), got %d",
	TypesMismatch:             "operand types do not match",
	MatrixDimensionsMismatch:  "matrix dimensions are incompatible for this operation",
	ZeroDivision:              "division by zero",
	InvalidType:               "invalid type for this operation",
	InvalidMatrixLiteral:      "matrix literal rows have inconsistent lengths",
	Index:                     "index out of range",
	UndefinedVariable:         "variable is undefined",
	CallDepthExceeded:         "call depth exceeds the configured limit (%d)",
}

// RuntimeError is a stack-trace-accumulating execution-family error.
type RuntimeError struct {
	Kind   ExecKind
	Pos    token.Position
	Detail string
	Frames StackTrace
}

func NewRuntimeError(kind ExecKind, pos token.Position, args ...any) *RuntimeError {
	msg := execMessages[kind]
	detail := msg
	if len(args) > 0 {
		detail = fmt.Sprintf(msg, args...)
	}
	return &RuntimeError{Kind: kind, Pos: pos, Detail: detail}
}

func (e *RuntimeError) Error() string {
	base := fmt.Sprintf("%s: %s", e.Pos, e.Detail)
	if len(e.Frames) == 0 {
		return base
	}
	return base + "\n" + e.Frames.String()
}

// WithFrame returns a copy of e with frame appended — used when the error
// propagates out of a function call (user-defined or library), per the
// fold-over-result approach the Design Notes recommend instead of
// exception side effects. Statement blocks and expressions add no frames
// of their own.
func (e *RuntimeError) WithFrame(frame Frame) *RuntimeError {
	next := *e
	next.Frames = append(append(StackTrace{}, e.Frames...), frame)
	return &next
}
