package value

import "testing"

func TestNewMatrixFromRows(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if m.Rows != 2 || m.Cols != 3 {
		t.Fatalf("got %dx%d, want 2x3", m.Rows, m.Cols)
	}
	if m.Get(1, 2) != 6 {
		t.Errorf("Get(1,2) = %v, want 6", m.Get(1, 2))
	}
}

func TestNewMatrixFromRowsEmpty(t *testing.T) {
	m := NewMatrixFromRows(nil)
	if m.Rows != 0 || m.Cols != 0 {
		t.Fatalf("expected 0x0 matrix for empty rows, got %dx%d", m.Rows, m.Cols)
	}
}

func TestInRange(t *testing.T) {
	m := NewMatrix(2, 3)
	if !m.InRange(1, 2) {
		t.Error("expected (1,2) to be in range")
	}
	if m.InRange(2, 0) || m.InRange(0, 3) || m.InRange(-1, 0) {
		t.Error("expected out-of-range cells to be rejected")
	}
	if !m.RowInRange(1) || m.RowInRange(2) {
		t.Error("RowInRange mismatch")
	}
	if !m.ColInRange(2) || m.ColInRange(3) {
		t.Error("ColInRange mismatch")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2}})
	c := m.Clone()
	c.Set(0, 0, 99)
	if m.Get(0, 0) == 99 {
		t.Error("Clone should not alias the original's storage")
	}
}

func TestElementWise(t *testing.T) {
	a := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	b := NewMatrixFromRows([][]float64{{10, 20}, {30, 40}})
	sum := a.ElementWise(b, func(x, y float64) float64 { return x + y })
	want := NewMatrixFromRows([][]float64{{11, 22}, {33, 44}})
	if !sum.Equal(want) {
		t.Errorf("ElementWise sum = %v, want %v", sum, want)
	}
}

func TestScaleAndNegate(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, -2}})
	if scaled := m.Scale(3); scaled.Get(0, 0) != 3 || scaled.Get(0, 1) != -6 {
		t.Errorf("Scale(3) = %v", scaled)
	}
	if neg := m.Negate(); neg.Get(0, 0) != -1 || neg.Get(0, 1) != 2 {
		t.Errorf("Negate() = %v", neg)
	}
}

func TestAddScalar(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2}})
	out := m.AddScalar(10)
	if out.Get(0, 0) != 11 || out.Get(0, 1) != 12 {
		t.Errorf("AddScalar(10) = %v", out)
	}
}

func TestMatMul(t *testing.T) {
	a := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	b := NewMatrixFromRows([][]float64{{5, 6}, {7, 8}})
	got, ok := a.MatMul(b)
	if !ok {
		t.Fatal("expected compatible shapes")
	}
	want := NewMatrixFromRows([][]float64{{19, 22}, {43, 50}})
	if !got.Equal(want) {
		t.Errorf("MatMul = %v, want %v", got, want)
	}
	if _, ok := a.MatMul(NewMatrix(3, 1)); ok {
		t.Error("expected shape mismatch to fail")
	}
}

func TestTransposeMutatesInPlace(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	ret := m.Transpose()
	if ret != m {
		t.Fatal("Transpose must return the same matrix it mutated")
	}
	want := NewMatrixFromRows([][]float64{{1, 4}, {2, 5}, {3, 6}})
	if !m.Equal(want) {
		t.Errorf("Transpose() = %v, want %v", m, want)
	}
}

func TestReshape(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	got, ok := m.Reshape(3, 2)
	if !ok {
		t.Fatal("expected reshape to succeed")
	}
	want := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if !got.Equal(want) {
		t.Errorf("Reshape(3,2) = %v, want %v", got, want)
	}
	if _, ok := m.Reshape(4, 4); ok {
		t.Error("expected mismatched element count to fail")
	}
}

func TestIdentityAndFull(t *testing.T) {
	id := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if id.Get(i, j) != want {
				t.Errorf("Identity(3)[%d][%d] = %v, want %v", i, j, id.Get(i, j), want)
			}
		}
	}
	full := Full(2, 2, 7)
	if full.Get(0, 0) != 7 || full.Get(1, 1) != 7 {
		t.Errorf("Full(2,2,7) = %v", full)
	}
}

func TestRowAndColumn(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	row := m.Row(1)
	if row.Rows != 1 || row.Cols != 3 || row.Get(0, 0) != 4 {
		t.Errorf("Row(1) = %v", row)
	}
	col := m.Column(1)
	if col.Rows != 1 || col.Cols != 2 || col.Get(0, 0) != 2 || col.Get(0, 1) != 5 {
		t.Errorf("Column(1) = %v, want row-shaped [2,5]", col)
	}
}

func TestSetRowBroadcast1x1(t *testing.T) {
	m := NewMatrix(2, 3)
	if !m.SetRow(0, NewMatrixFromRows([][]float64{{9}})) {
		t.Fatal("expected 1x1 broadcast to succeed")
	}
	for j := 0; j < 3; j++ {
		if m.Get(0, j) != 9 {
			t.Errorf("SetRow broadcast: Get(0,%d) = %v, want 9", j, m.Get(0, j))
		}
	}
}

func TestSetColumnShapeMismatch(t *testing.T) {
	m := NewMatrix(2, 2)
	if m.SetColumn(0, NewMatrix(3, 1)) {
		t.Error("expected shape mismatch to fail")
	}
}

func TestAllAndAnyNonZero(t *testing.T) {
	a := NewMatrixFromRows([][]float64{{1, 2}})
	b := NewMatrixFromRows([][]float64{{0, 1}})
	if !a.All(b, func(x, y float64) bool { return x >= y }) {
		t.Error("expected All(>=) to hold")
	}
	if a.All(b, func(x, y float64) bool { return x < y }) {
		t.Error("expected All(<) to fail")
	}
	zero := NewMatrix(1, 2)
	if zero.AnyNonZero() {
		t.Error("zero matrix should report no non-zero elements")
	}
	if !a.AnyNonZero() {
		t.Error("expected a to have a non-zero element")
	}
}

func TestMatrixString(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	if got, want := m.String(), "[1,2;3,4]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
