package mtlang

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/lexer"
)

func TestEvalReturnValue(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	res, err := e.Eval(`sum(a,b){return a+b} main(){return sum(3,4)}`)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	if res.Value.String() != "7" {
		t.Errorf("Value = %v, want 7", res.Value)
	}
}

func TestEvalCapturesOutput(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	res, err := e.Eval(`main(){print("hi") return 1}`)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	if res.Output != "hi\n" {
		t.Errorf("Output = %q, want %q", res.Output, "hi\n")
	}
}

func TestWithOutputAlsoWritesToExternalWriter(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(WithOutput(&buf))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	res, err := e.Eval(`main(){print("x") return 1}`)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	if buf.String() != "x\n" || res.Output != "x\n" {
		t.Errorf("buf=%q result.Output=%q, want both %q", buf.String(), res.Output, "x\n")
	}
}

func TestWithStdinFeedsCin(t *testing.T) {
	e, err := New(WithStdin(strings.NewReader("42\n")))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	res, err := e.Eval(`main(){return cin()}`)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	if res.Value.String() != "42" {
		t.Errorf("Value = %v, want 42", res.Value)
	}
}

func TestWithCallDepthLimit(t *testing.T) {
	e, err := New(WithCallDepthLimit(3))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	_, err = e.Eval(`loop(a){return loop(a+1)} main(){return loop(0)}`)
	re, ok := err.(*ierrors.RuntimeError)
	if !ok || re.Kind != ierrors.CallDepthExceeded {
		t.Fatalf("got %#v, want RuntimeError{Kind: CallDepthExceeded}", err)
	}
}

func TestWithLexerLimits(t *testing.T) {
	e, err := New(WithLexerLimits(lexer.Limits{
		MaxStringSize: 1024, MaxIdentifierLength: 3, MaxNumberValue: 1e9, MaxDecimalPrecision: 8,
	}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	_, err = e.Eval(`main(){longname=1 return longname}`)
	le, ok := err.(*ierrors.LexError)
	if !ok || le.Kind != ierrors.LargeIdentifier {
		t.Fatalf("got %#v, want LexError{Kind: LargeIdentifier}", err)
	}
}

func TestParseWithoutRunning(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	prog, err := e.Parse(`main(){return 1}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, ok := prog.Functions["main"]; !ok {
		t.Errorf("parsed program missing main()")
	}
}

func TestEvalPropagatesParseErrors(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	_, err = e.Eval(`main( { return 1 }`)
	if err == nil {
		t.Fatal("expected a parse error for malformed parameter list")
	}
}
