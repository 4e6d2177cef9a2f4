package interp

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
	"github.com/mtlang/interp/internal/value"
)

// evalCond evaluates a Condition to a bool — used directly by if/until
// and, through truthy, by any Expression used in condition position
// (spec.md §4.4.4).
func (it *Interp) evalCond(cond ast.Condition) (bool, error) {
	switch c := cond.(type) {
	case *ast.Or:
		for _, operand := range c.Operands {
			b, err := it.evalCond(operand)
			if err != nil {
				return false, err
			}
			if b {
				return true, nil
			}
		}
		return false, nil
	case *ast.And:
		for _, operand := range c.Operands {
			b, err := it.evalCond(operand)
			if err != nil {
				return false, err
			}
			if !b {
				return false, nil
			}
		}
		return true, nil
	case *ast.Rel:
		return it.evalRel(c)
	case *ast.ExprCond:
		v, err := it.evalExpr(c.Expr)
		if err != nil {
			return false, err
		}
		return it.truthy(v, c.Pos())
	default:
		panic("interp: unreachable condition kind")
	}
}

func (it *Interp) evalRel(c *ast.Rel) (bool, error) {
	left, err := it.evalExpr(c.Left)
	if err != nil {
		return false, err
	}
	var result bool
	if c.Op != nil {
		right, err := it.evalExpr(c.Right)
		if err != nil {
			return false, err
		}
		result, err = it.compare(left, right, *c.Op, c.Pos())
		if err != nil {
			return false, err
		}
	} else {
		result, err = it.truthy(left, c.Pos())
		if err != nil {
			return false, err
		}
	}
	if c.Negated {
		result = !result
	}
	return result, nil
}

// truthy coerces a Value to bool for condition position (spec.md
// §4.4.4): NUMBER != 0, STRING != "", MATRIX any-nonzero-element;
// UNDEFINED and DOTS have no truthiness.
func (it *Interp) truthy(v value.Value, pos token.Position) (bool, error) {
	switch v.Tag {
	case value.NUMBER:
		return v.Num != 0, nil
	case value.STRING:
		return v.Str != "", nil
	case value.MATRIX:
		return v.Mat.AnyNonZero(), nil
	default:
		return false, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
}

// compare implements the six relational operators (spec.md §4.4.4):
// NUMBER-NUMBER compares scalars; MATRIX-MATRIX supports == and != as
// whole-matrix structural equality and <,<=,>,>= as all-pairs element
// comparisons (requiring identical shape); any other tag pairing, or a
// tag mismatch, is TypesMismatch.
func (it *Interp) compare(a, b value.Value, op ast.CmpOp, pos token.Position) (bool, error) {
	if a.Tag != b.Tag {
		return false, ierrors.NewRuntimeError(ierrors.TypesMismatch, pos)
	}
	switch a.Tag {
	case value.NUMBER:
		return numCompare(a.Num, b.Num, op), nil
	case value.MATRIX:
		switch op {
		case ast.CmpEQ:
			return a.Mat.Equal(b.Mat), nil
		case ast.CmpNE:
			return !a.Mat.Equal(b.Mat), nil
		default:
			if !a.Mat.SameShape(b.Mat) {
				return false, ierrors.NewRuntimeError(ierrors.MatrixDimensionsMismatch, pos)
			}
			return a.Mat.All(b.Mat, func(x, y float64) bool { return numCompare(x, y, op) }), nil
		}
	default:
		return false, ierrors.NewRuntimeError(ierrors.TypesMismatch, pos)
	}
}

func numCompare(a, b float64, op ast.CmpOp) bool {
	switch op {
	case ast.CmpLT:
		return a < b
	case ast.CmpLE:
		return a <= b
	case ast.CmpGT:
		return a > b
	case ast.CmpGE:
		return a >= b
	case ast.CmpEQ:
		return a == b
	case ast.CmpNE:
		return a != b
	default:
		return false
	}
}
