// Package stdlib implements the five pure matrix-library functions of
// spec.md §4.5 — transpose, ident, size, full, reshape — grounded on
// original_source/execution/libraries.py's corresponding routines. print
// and cin are implemented directly in internal/interp instead, since
// they need the interpreter's I/O streams rather than pure Value
// arithmetic, and giving this package an *interp.Interp parameter would
// create an import cycle (internal/interp already imports
// internal/interp/stdlib).
package stdlib

import (
	"math"

	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
	"github.com/mtlang/interp/internal/value"
)

// Func is the signature of a pure stdlib function: positional arguments
// plus the call's position for error reporting.
type Func func(args []value.Value, pos token.Position) (value.Value, error)

// Table returns the five pure functions keyed by name.
func Table() map[string]Func {
	return map[string]Func{
		"transpose": Transpose,
		"ident":     Ident,
		"size":      Size,
		"full":      Full,
		"reshape":   Reshape,
	}
}

func arity(name string, args []value.Value, want int, pos token.Position) error {
	if len(args) != want {
		return ierrors.NewRuntimeError(ierrors.FunctionArgumentsMismatch, pos, name, want, len(args))
	}
	return nil
}

// Transpose mutates its argument's matrix into its transpose and returns
// the same (now-transposed) matrix — spec.md §4.5: "mutates to its
// transpose; returns it".
func Transpose(args []value.Value, pos token.Position) (value.Value, error) {
	if err := arity("transpose", args, 1, pos); err != nil {
		return value.Undefined, err
	}
	if args[0].Tag != value.MATRIX {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
	return value.MatrixValue(args[0].Mat.Transpose()), nil
}

// Ident builds the n×n identity matrix. n must be a non-negative
// integer-valued NUMBER (SPEC_FULL.md §9 item 3 — original_source
// truncates silently; this implementation rejects a non-integer n with
// InvalidType instead).
func Ident(args []value.Value, pos token.Position) (value.Value, error) {
	if err := arity("ident", args, 1, pos); err != nil {
		return value.Undefined, err
	}
	n, err := nonNegativeInt(args[0], pos)
	if err != nil {
		return value.Undefined, err
	}
	return value.MatrixValue(value.Identity(n)), nil
}

// Size returns a 1x2 row matrix [rows, cols].
func Size(args []value.Value, pos token.Position) (value.Value, error) {
	if err := arity("size", args, 1, pos); err != nil {
		return value.Undefined, err
	}
	if args[0].Tag != value.MATRIX {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
	out := value.NewMatrix(1, 2)
	out.Set(0, 0, float64(args[0].Mat.Rows))
	out.Set(0, 1, float64(args[0].Mat.Cols))
	return value.MatrixValue(out), nil
}

// Full builds an r×c matrix filled with v. Unlike original_source, v is
// not truncated to an integer (SPEC_FULL.md §9 item 7) — only r and c
// must be non-negative integers.
func Full(args []value.Value, pos token.Position) (value.Value, error) {
	if err := arity("full", args, 3, pos); err != nil {
		return value.Undefined, err
	}
	r, err := nonNegativeInt(args[0], pos)
	if err != nil {
		return value.Undefined, err
	}
	c, err := nonNegativeInt(args[1], pos)
	if err != nil {
		return value.Undefined, err
	}
	if args[2].Tag != value.NUMBER {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
	return value.MatrixValue(value.Full(r, c, args[2].Num)), nil
}

// Reshape reinterprets a matrix's data in row-major order into a new
// r×c matrix. A mismatched element count reuses MatrixDimensionsMismatch
// (SPEC_FULL.md §9 item 10), not a dedicated reshape error.
func Reshape(args []value.Value, pos token.Position) (value.Value, error) {
	if err := arity("reshape", args, 3, pos); err != nil {
		return value.Undefined, err
	}
	if args[0].Tag != value.MATRIX {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
	r, err := nonNegativeInt(args[1], pos)
	if err != nil {
		return value.Undefined, err
	}
	c, err := nonNegativeInt(args[2], pos)
	if err != nil {
		return value.Undefined, err
	}
	res, ok := args[0].Mat.Reshape(r, c)
	if !ok {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.MatrixDimensionsMismatch, pos)
	}
	return value.MatrixValue(res), nil
}

func nonNegativeInt(v value.Value, pos token.Position) (int, error) {
	if v.Tag != value.NUMBER || v.Num < 0 || math.Trunc(v.Num) != v.Num {
		return 0, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
	return int(v.Num), nil
}
