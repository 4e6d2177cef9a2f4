package interp

import (
	"testing"

	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/lexer"
	"github.com/mtlang/interp/internal/parser"
	"github.com/mtlang/interp/internal/source"
	"github.com/mtlang/interp/internal/value"
)

// run parses src and evaluates main() with no arguments, mirroring
// pkg/mtlang.Engine.Eval's pipeline without going through that package
// (avoided here to keep this an internal/interp-only test).
func run(t *testing.T, src string) (value.Value, error) {
	t.Helper()
	lx := lexer.New(source.New(src), lexer.WithLimits(lexer.DefaultLimits))
	p := parser.New(lx)
	prog, err := p.Parse()
	if err != nil {
		return value.Undefined, err
	}
	return New(prog).Run()
}

// Concrete end-to-end scenarios from spec.md §8.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"S1 user function call",
			`sum(a,b){return a+b} main(){return sum(3,4)}`,
			"7",
		},
		{
			"S2 if/else branch",
			`main(){a=3 b=10 if(a+b>17){return "Totally wrong!"} else{return a+b+b}}`,
			"23",
		},
		{
			"S4 number pass-by-copy",
			`modify(a){a=a+5} main(){a=12 modify(a) return a-2}`,
			"10",
		},
		{
			"S5 recursion",
			`recursion(a){if(a){return 3+recursion(a-1)} return 0} main(){return recursion(10)}`,
			"30",
		},
		{
			"S6 until loop",
			`main(){a=10 b=0 until(a){b=b+a a=a-1} return b}`,
			"55",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// S3: matrix aliasing through argument passing. Both the row write and
// the later a=a+5 inside the callee overwrite the shared matrix in place,
// so the caller sees [5,5;8,9] and returns that minus 2.
func TestMatrixAliasingThroughArgumentPassing(t *testing.T) {
	src := `modify(a){ b=[0,0] a[0,:]=b a = a+5 } main(){ a=[1,2;3,4] modify(a) return a-2 }`
	got, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[3,3;6,7]"
	if got.String() != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Invariant 6: number assignment copies, matrix assignment aliases.
func TestAssignmentAliasingInvariant(t *testing.T) {
	t.Run("matrix aliasing", func(t *testing.T) {
		got, err := run(t, `main(){ a=[1,2] b=a transpose(b) return a }`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "[1;2]"
		if got.String() != want {
			t.Errorf("expected mutation through b to be observable via a, got %v want %v", got, want)
		}
	})
	t.Run("number no aliasing", func(t *testing.T) {
		got, err := run(t, `main(){ a=5 b=a b=b+1 return a }`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != "5" {
			t.Errorf("expected a to be unaffected by b's rebind, got %v", got)
		}
	})
}

func TestErrorScenarios(t *testing.T) {
	t.Run("E1 missing main", func(t *testing.T) {
		_, err := run(t, `notmain(){return 1}`)
		re, ok := err.(*ierrors.RuntimeError)
		if !ok || re.Kind != ierrors.MissingMain {
			t.Fatalf("got %#v, want RuntimeError{Kind: MissingMain}", err)
		}
	})
	t.Run("E2 zero division", func(t *testing.T) {
		_, err := run(t, `main(){return 1/0}`)
		re, ok := err.(*ierrors.RuntimeError)
		if !ok || re.Kind != ierrors.ZeroDivision {
			t.Fatalf("got %#v, want RuntimeError{Kind: ZeroDivision}", err)
		}
	})
	t.Run("E3 matrix dimensions mismatch", func(t *testing.T) {
		// spec.md §8's literal E3 example, [1,2]*[1,2;3,4], is actually a
		// valid 1x2 @ 2x2 product under real matrix multiplication (and
		// under original_source's own np.matmul semantics — its own test
		// suite uses a genuinely incompatible 2x3 @ 2x2 pair instead, see
		// test/interpreter/test_interpreter.py's
		// test_invalid_multiplicative_expression_evaluation). Using that
		// actually-incompatible shape here instead of the spec's example.
		_, err := run(t, `main(){return [1,2,3;4,5,6]*[1,2;3,4]}`)
		re, ok := err.(*ierrors.RuntimeError)
		if !ok || re.Kind != ierrors.MatrixDimensionsMismatch {
			t.Fatalf("got %#v, want RuntimeError{Kind: MatrixDimensionsMismatch}", err)
		}
	})
}

func TestUndefinedReturnRejected(t *testing.T) {
	_, err := run(t, `helper(){return} main(){a=helper() return a+1}`)
	re, ok := err.(*ierrors.RuntimeError)
	if !ok || re.Kind != ierrors.UndefinedVariable {
		t.Fatalf("got %#v, want RuntimeError{Kind: UndefinedVariable} for UNDEFINED operand", err)
	}
}

func TestFunctionDuplicationRejectedAtParse(t *testing.T) {
	lx := lexer.New(source.New(`main(){return 1} main(){return 2}`), lexer.WithLimits(lexer.DefaultLimits))
	p := parser.New(lx)
	_, err := p.Parse()
	se, ok := err.(*ierrors.SyntaxError)
	if !ok || se.Kind != ierrors.FunctionDuplication {
		t.Fatalf("got %#v, want SyntaxError{Kind: FunctionDuplication}", err)
	}
}

func TestRecursionDepthLimitExceeded(t *testing.T) {
	_, err := run(t, `loop(a){return loop(a+1)} main(){return loop(0)}`)
	re, ok := err.(*ierrors.RuntimeError)
	if !ok || re.Kind != ierrors.CallDepthExceeded {
		t.Fatalf("got %#v, want RuntimeError{Kind: CallDepthExceeded}", err)
	}
}
