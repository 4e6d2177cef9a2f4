package interp

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/value"
)

// evalExpr type-switches over every Expression variant (Design Notes
// §9: no visitor/accept pattern).
func (it *Interp) evalExpr(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return value.Number(e.Value), nil
	case *ast.StringLit:
		return value.String(e.Value), nil
	case *ast.MatrixLit:
		return it.evalMatrixLit(e)
	case *ast.IdentifierRef:
		return it.evalIdentifierRef(e)
	case *ast.Negated:
		return it.evalNegated(e)
	case *ast.Additive:
		return it.evalAdditive(e)
	case *ast.Multiplicative:
		return it.evalMultiplicative(e)
	case *ast.Call:
		return it.evalCall(e)
	case *ast.CondExpr:
		return it.evalCondExpr(e)
	case *ast.DotsSelect:
		return value.Dots, nil
	default:
		panic("interp: unreachable expression kind")
	}
}

func (it *Interp) evalMatrixLit(e *ast.MatrixLit) (value.Value, error) {
	if len(e.Rows) == 0 {
		return value.MatrixValue(value.NewMatrix(0, 0)), nil
	}
	width := len(e.Rows[0])
	for _, row := range e.Rows {
		if len(row) != width {
			return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidMatrixLiteral, e.Pos())
		}
	}
	m := value.NewMatrix(len(e.Rows), width)
	for i, row := range e.Rows {
		for j, cell := range row {
			v, err := it.evalExpr(cell)
			if err != nil {
				return value.Undefined, err
			}
			if v.Tag != value.NUMBER {
				return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, cell.Pos())
			}
			m.Set(i, j, v.Num)
		}
	}
	return value.MatrixValue(m), nil
}

func (it *Interp) evalIdentifierRef(e *ast.IdentifierRef) (value.Value, error) {
	slot := it.curFrame().get(e.Name)
	if e.Index == nil {
		return slot.V, nil
	}
	return it.evalIndexRead(slot, e.Index)
}

func (it *Interp) evalNegated(e *ast.Negated) (value.Value, error) {
	v, err := it.evalExpr(e.Inner)
	if err != nil {
		return value.Undefined, err
	}
	switch v.Tag {
	case value.NUMBER:
		return value.Number(-v.Num), nil
	case value.MATRIX:
		return value.MatrixValue(v.Mat.Negate()), nil
	default:
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, e.Pos())
	}
}

func (it *Interp) evalAdditive(e *ast.Additive) (value.Value, error) {
	acc, err := it.evalExpr(e.Terms[0])
	if err != nil {
		return value.Undefined, err
	}
	for i, op := range e.Ops {
		rhs, err := it.evalExpr(e.Terms[i+1])
		if err != nil {
			return value.Undefined, err
		}
		acc, err = it.combineAdditive(acc, rhs, op, e.Pos())
		if err != nil {
			return value.Undefined, err
		}
	}
	return acc, nil
}

func (it *Interp) evalMultiplicative(e *ast.Multiplicative) (value.Value, error) {
	acc, err := it.evalExpr(e.Terms[0])
	if err != nil {
		return value.Undefined, err
	}
	for i, op := range e.Ops {
		rhs, err := it.evalExpr(e.Terms[i+1])
		if err != nil {
			return value.Undefined, err
		}
		acc, err = it.combineMultiplicative(acc, rhs, op, e.Pos())
		if err != nil {
			return value.Undefined, err
		}
	}
	return acc, nil
}

func (it *Interp) evalCall(c *ast.Call) (value.Value, error) {
	args := make([]value.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return value.Undefined, err
		}
		args[i] = v
	}
	return it.callFunction(c.Name, args, c.Pos())
}

// evalCondExpr resolves the grammar's "(" OrCondition ")" atomic
// alternative used as a value (SPEC_FULL.md §9 item 2). A collapsed bare
// expression (no real comparison or short-circuit combination) passes
// its value straight through; an actual boolean combination has no
// runtime representation (there is no boolean Value tag, spec.md §3) and
// using one as a value is InvalidType.
func (it *Interp) evalCondExpr(e *ast.CondExpr) (value.Value, error) {
	if bare, ok := e.Cond.(*ast.ExprCond); ok {
		return it.evalExpr(bare.Expr)
	}
	return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, e.Pos())
}

// selectorValue is the evaluated form of an ast.Selector: either the
// full-axis ':' marker or a resolved integer index.
type selectorValue struct {
	dots bool
	idx  int
}

func (it *Interp) evalSelector(sel ast.Selector) (selectorValue, error) {
	if _, ok := sel.(*ast.DotsSelect); ok {
		return selectorValue{dots: true}, nil
	}
	expr, ok := ast.SelectorExpr(sel)
	if !ok {
		panic("interp: selector is neither DotsSelect nor Expression")
	}
	v, err := it.evalExpr(expr)
	if err != nil {
		return selectorValue{}, err
	}
	if v.Tag != value.NUMBER {
		return selectorValue{}, ierrors.NewRuntimeError(ierrors.InvalidType, expr.Pos())
	}
	return selectorValue{idx: int(v.Num)}, nil
}

// evalIndexRead implements the read half of spec.md §4.4.5's selection
// table: [i,:] a row, [:,j] a column (both row-shaped), [i,j] a scalar
// cell, [:,:] the whole matrix (aliased, not copied).
func (it *Interp) evalIndexRead(slot *value.Slot, idx *ast.IndexOp) (value.Value, error) {
	if slot.V.Tag != value.MATRIX {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, idx.Pos())
	}
	m := slot.V.Mat
	first, err := it.evalSelector(idx.First)
	if err != nil {
		return value.Undefined, err
	}
	second, err := it.evalSelector(idx.Second)
	if err != nil {
		return value.Undefined, err
	}
	switch {
	case first.dots && second.dots:
		return value.MatrixValue(m), nil
	case !first.dots && second.dots:
		if !m.RowInRange(first.idx) {
			return value.Undefined, ierrors.NewRuntimeError(ierrors.Index, idx.Pos())
		}
		return value.MatrixValue(m.Row(first.idx)), nil
	case first.dots && !second.dots:
		if !m.ColInRange(second.idx) {
			return value.Undefined, ierrors.NewRuntimeError(ierrors.Index, idx.Pos())
		}
		return value.MatrixValue(m.Column(second.idx)), nil
	default:
		if !m.InRange(first.idx, second.idx) {
			return value.Undefined, ierrors.NewRuntimeError(ierrors.Index, idx.Pos())
		}
		return value.Number(m.Get(first.idx, second.idx)), nil
	}
}
