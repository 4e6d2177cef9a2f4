package interp

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/value"
)

// execBlock runs a StatementBlock in its own scope. The scope is closed
// via defer so it balances on every exit path — a normal fall-through, a
// return, or an error — per SPEC_FULL.md §9 item 8.
func (it *Interp) execBlock(b *ast.StatementBlock) (value.Value, bool, error) {
	f := it.curFrame()
	f.openScope()
	defer f.closeScope()

	for _, stmt := range b.Statements {
		v, returns, err := it.execStmt(stmt)
		if err != nil {
			return value.Undefined, false, err
		}
		if returns {
			return v, true, nil
		}
	}
	return value.Undefined, false, nil
}

// execStmt type-switches over every Statement variant and reports
// whether execution hit a return (propagated up to the enclosing block
// and, ultimately, the call).
func (it *Interp) execStmt(stmt ast.Statement) (value.Value, bool, error) {
	switch s := stmt.(type) {
	case *ast.StatementBlock:
		return it.execBlock(s)
	case *ast.If:
		return it.execIf(s)
	case *ast.Until:
		return it.execUntil(s)
	case *ast.Return:
		if s.Expr == nil {
			return value.Undefined, true, nil
		}
		v, err := it.evalExpr(s.Expr)
		if err != nil {
			return value.Undefined, false, err
		}
		return v, true, nil
	case *ast.Assign:
		return value.Undefined, false, it.execAssign(s)
	case *ast.Call:
		_, err := it.evalCall(s)
		return value.Undefined, false, err
	default:
		panic("interp: unreachable statement kind")
	}
}

func (it *Interp) execIf(s *ast.If) (value.Value, bool, error) {
	cond, err := it.evalCond(s.Cond)
	if err != nil {
		return value.Undefined, false, err
	}
	if cond {
		return it.execBlock(s.Then)
	}
	if s.Else != nil {
		return it.execStmt(s.Else)
	}
	return value.Undefined, false, nil
}

func (it *Interp) execUntil(s *ast.Until) (value.Value, bool, error) {
	for {
		cond, err := it.evalCond(s.Cond)
		if err != nil {
			return value.Undefined, false, err
		}
		if !cond {
			return value.Undefined, false, nil
		}
		v, returns, err := it.execBlock(s.Body)
		if err != nil {
			return value.Undefined, false, err
		}
		if returns {
			return v, true, nil
		}
	}
}

// execAssign implements spec.md §4.4.2/§4.4.6's assignment rule: a slot
// still UNDEFINED accepts any defined type; once defined, reassignment
// requires an equal tag (TypesMismatch otherwise); assigning an
// UNDEFINED right-hand side is itself rejected (SPEC_FULL.md §9 item 4).
// When both the slot and the right-hand side are MATRIX, the existing
// matrix's storage is overwritten in place rather than rebinding the
// slot to the new pointer — this is what lets "a = a+5" on an aliased
// parameter still be visible through the caller's own binding (verified
// against spec.md §8's matrix-aliasing scenario).
func (it *Interp) execAssign(a *ast.Assign) error {
	rhs, err := it.evalExpr(a.Rhs)
	if err != nil {
		return err
	}
	if a.Target.Index != nil {
		return it.execIndexAssign(a.Target, rhs)
	}
	if rhs.Tag == value.UNDEFINED {
		return ierrors.NewRuntimeError(ierrors.UndefinedVariable, a.Pos())
	}
	slot := it.curFrame().get(a.Target.Name)
	if slot.V.Tag != value.UNDEFINED && slot.V.Tag != rhs.Tag {
		return ierrors.NewRuntimeError(ierrors.TypesMismatch, a.Pos())
	}
	if slot.V.Tag == value.MATRIX && rhs.Tag == value.MATRIX && slot.V.Mat != rhs.Mat {
		*slot.V.Mat = *rhs.Mat
		return nil
	}
	slot.V = rhs
	return nil
}

// execIndexAssign implements the write half of spec.md §4.4.5's
// selection table: [i,:] and [:,j] accept either a matching row/column
// matrix or a 1x1 broadcast; [i,j] accepts a single NUMBER; [:,:]
// accepts a same-shape matrix or a 1x1 broadcast. All writes mutate the
// target's underlying storage in place, which is how a write through an
// aliased parameter is observed by the caller.
func (it *Interp) execIndexAssign(target *ast.IdentifierRef, rhs value.Value) error {
	slot := it.curFrame().get(target.Name)
	if slot.V.Tag != value.MATRIX {
		return ierrors.NewRuntimeError(ierrors.InvalidType, target.Pos())
	}
	m := slot.V.Mat

	first, err := it.evalSelector(target.Index.First)
	if err != nil {
		return err
	}
	second, err := it.evalSelector(target.Index.Second)
	if err != nil {
		return err
	}

	switch {
	case first.dots && second.dots:
		rhsMat, ok := asMatrix(rhs)
		if !ok {
			return ierrors.NewRuntimeError(ierrors.InvalidType, target.Pos())
		}
		if rhsMat.Rows == 1 && rhsMat.Cols == 1 {
			for i := range m.Data {
				m.Data[i] = rhsMat.Data[0]
			}
			return nil
		}
		if !m.SameShape(rhsMat) {
			return ierrors.NewRuntimeError(ierrors.MatrixDimensionsMismatch, target.Pos())
		}
		copy(m.Data, rhsMat.Data)
		return nil
	case !first.dots && second.dots:
		if !m.RowInRange(first.idx) {
			return ierrors.NewRuntimeError(ierrors.Index, target.Pos())
		}
		rhsMat, ok := asMatrix(rhs)
		if !ok {
			return ierrors.NewRuntimeError(ierrors.InvalidType, target.Pos())
		}
		if !m.SetRow(first.idx, rhsMat) {
			return ierrors.NewRuntimeError(ierrors.MatrixDimensionsMismatch, target.Pos())
		}
		return nil
	case first.dots && !second.dots:
		if !m.ColInRange(second.idx) {
			return ierrors.NewRuntimeError(ierrors.Index, target.Pos())
		}
		rhsMat, ok := asMatrix(rhs)
		if !ok {
			return ierrors.NewRuntimeError(ierrors.InvalidType, target.Pos())
		}
		if !m.SetColumn(second.idx, rhsMat) {
			return ierrors.NewRuntimeError(ierrors.MatrixDimensionsMismatch, target.Pos())
		}
		return nil
	default:
		if !m.InRange(first.idx, second.idx) {
			return ierrors.NewRuntimeError(ierrors.Index, target.Pos())
		}
		if rhs.Tag != value.NUMBER {
			return ierrors.NewRuntimeError(ierrors.InvalidType, target.Pos())
		}
		m.Set(first.idx, second.idx, rhs.Num)
		return nil
	}
}

// asMatrix views rhs as a 1x1 or larger matrix for a selector-target
// assignment, wrapping a bare NUMBER as a 1x1 broadcast source.
func asMatrix(v value.Value) (*value.Matrix, bool) {
	switch v.Tag {
	case value.MATRIX:
		return v.Mat, true
	case value.NUMBER:
		m := value.NewMatrix(1, 1)
		m.Set(0, 0, v.Num)
		return m, true
	default:
		return nil, false
	}
}
