package stdlib

import (
	"testing"

	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
	"github.com/mtlang/interp/internal/value"
)

var nopos = token.Position{}

func TestTableHasTheFivePureFunctions(t *testing.T) {
	table := Table()
	for _, name := range []string{"transpose", "ident", "size", "full", "reshape"} {
		if _, ok := table[name]; !ok {
			t.Errorf("Table() is missing %q", name)
		}
	}
	if len(table) != 5 {
		t.Errorf("Table() has %d entries, want 5", len(table))
	}
}

func TestTranspose(t *testing.T) {
	m := value.MatrixValue(value.NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}}))
	got, err := Transpose([]value.Value{m}, nopos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[1,4;2,5;3,6]" {
		t.Errorf("Transpose() = %v", got)
	}
	if _, err := Transpose([]value.Value{value.Number(1)}, nopos); err == nil {
		t.Error("expected InvalidType for a non-matrix argument")
	}
}

func TestIdent(t *testing.T) {
	got, err := Ident([]value.Value{value.Number(2)}, nopos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[1,0;0,1]" {
		t.Errorf("Ident(2) = %v", got)
	}
	if _, err := Ident([]value.Value{value.Number(2.5)}, nopos); err == nil {
		t.Error("expected InvalidType for a non-integer n")
	}
	if _, err := Ident([]value.Value{value.Number(-1)}, nopos); err == nil {
		t.Error("expected InvalidType for a negative n")
	}
}

func TestSize(t *testing.T) {
	m := value.MatrixValue(value.NewMatrix(3, 5))
	got, err := Size([]value.Value{m}, nopos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[3,5]" {
		t.Errorf("Size() = %v, want [3,5]", got)
	}
}

func TestFull(t *testing.T) {
	got, err := Full([]value.Value{value.Number(2), value.Number(2), value.Number(7)}, nopos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[7,7;7,7]" {
		t.Errorf("Full(2,2,7) = %v", got)
	}
}

func TestReshape(t *testing.T) {
	m := value.MatrixValue(value.NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}}))
	got, err := Reshape([]value.Value{m, value.Number(3), value.Number(2)}, nopos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[1,2;3,4;5,6]" {
		t.Errorf("Reshape(3,2) = %v", got)
	}

	_, err = Reshape([]value.Value{m, value.Number(4), value.Number(4)}, nopos)
	re, ok := err.(*ierrors.RuntimeError)
	if !ok || re.Kind != ierrors.MatrixDimensionsMismatch {
		t.Errorf("got %#v, want RuntimeError{Kind: MatrixDimensionsMismatch} for mismatched element count", err)
	}
}

func TestArityChecking(t *testing.T) {
	_, err := Transpose([]value.Value{}, nopos)
	re, ok := err.(*ierrors.RuntimeError)
	if !ok || re.Kind != ierrors.FunctionArgumentsMismatch {
		t.Fatalf("got %#v, want RuntimeError{Kind: FunctionArgumentsMismatch}", err)
	}
}
