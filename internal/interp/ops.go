package interp

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
	"github.com/mtlang/interp/internal/value"
)

// combineAdditive implements + and - (spec.md §4.4.3, §4.4.6): two
// matrices combine element-wise (shapes must match); a matrix and a
// number combine by broadcasting the scalar across every element; two
// numbers combine directly. STRING, UNDEFINED, and DOTS are never valid
// operands — surfaced as TypesMismatch (there is no string
// concatenation, SPEC_FULL.md §9 item 9).
func (it *Interp) combineAdditive(a, b value.Value, op ast.BinOp, pos token.Position) (value.Value, error) {
	if invalidOperand(a) || invalidOperand(b) {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.TypesMismatch, pos)
	}
	sign := 1.0
	if op == ast.OpSub {
		sign = -1.0
	}
	switch {
	case a.Tag == value.MATRIX && b.Tag == value.MATRIX:
		if !a.Mat.SameShape(b.Mat) {
			return value.Undefined, ierrors.NewRuntimeError(ierrors.MatrixDimensionsMismatch, pos)
		}
		return value.MatrixValue(a.Mat.ElementWise(b.Mat, func(x, y float64) float64 { return x + sign*y })), nil
	case a.Tag == value.MATRIX && b.Tag == value.NUMBER:
		return value.MatrixValue(a.Mat.AddScalar(sign * b.Num)), nil
	case a.Tag == value.NUMBER && b.Tag == value.MATRIX:
		signed := b.Mat
		if sign < 0 {
			signed = b.Mat.Negate()
		}
		return value.MatrixValue(signed.AddScalar(a.Num)), nil
	default:
		return value.Number(a.Num + sign*b.Num), nil
	}
}

// combineMultiplicative implements * and / (spec.md §4.4.3, §4.4.6):
// matrix*matrix is proper matrix multiplication (inner dimensions must
// agree); matrix*number and number*matrix scale every element; two
// numbers multiply directly. Division never accepts a matrix divisor
// (MATRIX/MATRIX and NUMBER/MATRIX are TypesMismatch); matrix/number
// scales by the reciprocal, subject to the same zero-divisor check as
// plain numeric division.
func (it *Interp) combineMultiplicative(a, b value.Value, op ast.BinOp, pos token.Position) (value.Value, error) {
	if invalidOperand(a) || invalidOperand(b) {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.TypesMismatch, pos)
	}
	if op == ast.OpMul {
		switch {
		case a.Tag == value.MATRIX && b.Tag == value.MATRIX:
			res, ok := a.Mat.MatMul(b.Mat)
			if !ok {
				return value.Undefined, ierrors.NewRuntimeError(ierrors.MatrixDimensionsMismatch, pos)
			}
			return value.MatrixValue(res), nil
		case a.Tag == value.MATRIX && b.Tag == value.NUMBER:
			return value.MatrixValue(a.Mat.Scale(b.Num)), nil
		case a.Tag == value.NUMBER && b.Tag == value.MATRIX:
			return value.MatrixValue(b.Mat.Scale(a.Num)), nil
		default:
			return value.Number(a.Num * b.Num), nil
		}
	}
	// op == ast.OpDiv
	switch {
	case a.Tag == value.MATRIX && b.Tag == value.MATRIX:
		return value.Undefined, ierrors.NewRuntimeError(ierrors.TypesMismatch, pos)
	case a.Tag == value.NUMBER && b.Tag == value.MATRIX:
		return value.Undefined, ierrors.NewRuntimeError(ierrors.TypesMismatch, pos)
	case a.Tag == value.MATRIX && b.Tag == value.NUMBER:
		if b.Num == 0 {
			return value.Undefined, ierrors.NewRuntimeError(ierrors.ZeroDivision, pos)
		}
		return value.MatrixValue(a.Mat.Scale(1 / b.Num)), nil
	default:
		if b.Num == 0 {
			return value.Undefined, ierrors.NewRuntimeError(ierrors.ZeroDivision, pos)
		}
		return value.Number(a.Num / b.Num), nil
	}
}

func invalidOperand(v value.Value) bool {
	return v.Tag == value.STRING || v.Tag == value.UNDEFINED || v.Tag == value.DOTS
}
