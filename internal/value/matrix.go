package value

import (
	"fmt"
	"strings"
)

// Matrix is a dense, row-major 2-D float grid (spec.md §3, Design Notes
// §9 "Matrix representation"). Sharing a *Matrix across Values is the
// aliasing mechanism; mutating methods below mutate in place.
type Matrix struct {
	Rows, Cols int
	Data       []float64 // row-major, len == Rows*Cols
}

// NewMatrix allocates a zeroed r×c matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{Rows: r, Cols: c, Data: make([]float64, r*c)}
}

// NewMatrixFromRows builds a matrix from row-major nested data; all rows
// must share the same length (caller's responsibility; for matrix
// literals the evaluator enforces it with InvalidMatrixLiteral).
func NewMatrixFromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 {
		return NewMatrix(0, 0)
	}
	r, c := len(rows), len(rows[0])
	m := NewMatrix(r, c)
	for i, row := range rows {
		copy(m.Data[i*c:(i+1)*c], row)
	}
	return m
}

func (m *Matrix) at(r, c int) int { return r*m.Cols + c }

// Get returns the element at (r, c).
func (m *Matrix) Get(r, c int) float64 { return m.Data[m.at(r, c)] }

// Set writes the element at (r, c).
func (m *Matrix) Set(r, c int, v float64) { m.Data[m.at(r, c)] = v }

// InRange reports whether (r, c) is a valid 0-based cell index.
func (m *Matrix) InRange(r, c int) bool {
	return r >= 0 && r < m.Rows && c >= 0 && c < m.Cols
}

// RowInRange reports whether row i exists.
func (m *Matrix) RowInRange(i int) bool { return i >= 0 && i < m.Rows }

// ColInRange reports whether column j exists.
func (m *Matrix) ColInRange(j int) bool { return j >= 0 && j < m.Cols }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return &Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// SameShape reports whether m and o have identical dimensions.
func (m *Matrix) SameShape(o *Matrix) bool {
	return m.Rows == o.Rows && m.Cols == o.Cols
}

// ElementWise applies f to every paired element of m and o into a new
// matrix of the same shape. Caller must ensure SameShape.
func (m *Matrix) ElementWise(o *Matrix, f func(a, b float64) float64) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i := range m.Data {
		out.Data[i] = f(m.Data[i], o.Data[i])
	}
	return out
}

// Scale multiplies every element by k into a new matrix.
func (m *Matrix) Scale(k float64) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, v := range m.Data {
		out.Data[i] = v * k
	}
	return out
}

// Negate returns a new matrix with every element negated.
func (m *Matrix) Negate() *Matrix { return m.Scale(-1) }

// AddScalar broadcasts k across every element into a new matrix — the
// MATRIX+NUMBER / MATRIX-NUMBER case of spec.md §4.4.6.
func (m *Matrix) AddScalar(k float64) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, v := range m.Data {
		out.Data[i] = v + k
	}
	return out
}

// MatMul performs proper matrix multiplication; ok is false on a shape
// mismatch (m.Cols != o.Rows).
func (m *Matrix) MatMul(o *Matrix) (*Matrix, bool) {
	if m.Cols != o.Rows {
		return nil, false
	}
	out := NewMatrix(m.Rows, o.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < o.Cols; j++ {
			var sum float64
			for k := 0; k < m.Cols; k++ {
				sum += m.Get(i, k) * o.Get(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out, true
}

// Transpose mutates m into its own transpose and returns m (spec.md
// §4.5 "mutates to its transpose; returns it").
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(j, i, m.Get(i, j))
		}
	}
	m.Rows, m.Cols, m.Data = out.Rows, out.Cols, out.Data
	return m
}

// Reshape returns a new r×c matrix with m's data in row-major order, or
// ok=false if the element counts do not match.
func (m *Matrix) Reshape(r, c int) (*Matrix, bool) {
	if r*c != len(m.Data) {
		return nil, false
	}
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return &Matrix{Rows: r, Cols: c, Data: data}, true
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Full returns an r×c matrix filled with v.
func Full(r, c int, v float64) *Matrix {
	m := NewMatrix(r, c)
	for i := range m.Data {
		m.Data[i] = v
	}
	return m
}

// Row returns a new 1×Cols matrix equal to row i.
func (m *Matrix) Row(i int) *Matrix {
	out := NewMatrix(1, m.Cols)
	copy(out.Data, m.Data[i*m.Cols:(i+1)*m.Cols])
	return out
}

// Column returns column j as a new 1×Rows row-shaped matrix per spec.md
// §4.4.5 ("row-shaped").
func (m *Matrix) Column(j int) *Matrix {
	out := NewMatrix(1, m.Rows)
	for i := 0; i < m.Rows; i++ {
		out.Data[i] = m.Get(i, j)
	}
	return out
}

// SetRow overwrites row i in place with src, broadcasting a 1x1 src.
func (m *Matrix) SetRow(i int, src *Matrix) bool {
	if src.Rows == 1 && src.Cols == 1 {
		for j := 0; j < m.Cols; j++ {
			m.Set(i, j, src.Data[0])
		}
		return true
	}
	if src.Rows*src.Cols != m.Cols {
		return false
	}
	copy(m.Data[i*m.Cols:(i+1)*m.Cols], src.Data)
	return true
}

// SetColumn overwrites column j in place with src, broadcasting a 1x1 src.
func (m *Matrix) SetColumn(j int, src *Matrix) bool {
	if src.Rows == 1 && src.Cols == 1 {
		for i := 0; i < m.Rows; i++ {
			m.Set(i, j, src.Data[0])
		}
		return true
	}
	n := src.Rows * src.Cols
	if n != m.Rows {
		return false
	}
	for i := 0; i < m.Rows; i++ {
		m.Set(i, j, src.Data[i])
	}
	return true
}

// Equal reports structural equality.
func (m *Matrix) Equal(o *Matrix) bool {
	if !m.SameShape(o) {
		return false
	}
	for i := range m.Data {
		if m.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

// All reports whether pred holds for every pair of elements — used for
// the element-wise matrix comparisons <, <=, >, >= (spec.md §4.4.4).
func (m *Matrix) All(o *Matrix, pred func(a, b float64) bool) bool {
	for i := range m.Data {
		if !pred(m.Data[i], o.Data[i]) {
			return false
		}
	}
	return true
}

// AnyNonZero reports whether any element is non-zero (truthiness, §4.4.4).
func (m *Matrix) AnyNonZero() bool {
	for _, v := range m.Data {
		if v != 0 {
			return true
		}
	}
	return false
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.Rows; i++ {
		if i > 0 {
			sb.WriteByte(';')
		}
		for j := 0; j < m.Cols; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(fmt.Sprintf("%g", m.Get(i, j)))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
