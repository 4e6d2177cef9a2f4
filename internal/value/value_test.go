package value

import "testing"

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer-valued number", Number(3), "3"},
		{"fractional number", Number(1.5), "1.5"},
		{"negative number", Number(-2), "-2"},
		{"string", String("hello"), "hello"},
		{"dots", Dots, ":"},
		{"undefined", Undefined, "undefined"},
		{"matrix", MatrixValue(NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})), "[1,2;3,4]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{UNDEFINED, "UNDEFINED"},
		{NUMBER, "NUMBER"},
		{STRING, "STRING"},
		{MATRIX, "MATRIX"},
		{DOTS, "DOTS"},
		{Tag(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("Tag(%d).String() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

// A MATRIX-tagged Value copies the pointer, not the underlying grid —
// this is the aliasing mechanism spec.md §3/§8 relies on.
func TestMatrixValueAliasing(t *testing.T) {
	m := NewMatrix(1, 1)
	m.Set(0, 0, 1)
	v1 := MatrixValue(m)
	v2 := v1
	v2.Mat.Set(0, 0, 42)
	if v1.Mat.Get(0, 0) != 42 {
		t.Errorf("expected aliasing through copied Value, got %v", v1.Mat.Get(0, 0))
	}
}

func TestSlot(t *testing.T) {
	s := NewSlot(Number(1))
	if s.V.Num != 1 {
		t.Fatalf("NewSlot did not store initial value")
	}
	s.V = Number(2)
	if s.V.Num != 2 {
		t.Errorf("slot did not update in place")
	}
}
