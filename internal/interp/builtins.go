package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/interp/stdlib"
	"github.com/mtlang/interp/internal/token"
	"github.com/mtlang/interp/internal/value"
)

// stdlibTable wires the seven fixed library functions of spec.md §4.5:
// the five pure ones from internal/interp/stdlib, plus print and cin,
// which need this interpreter's I/O streams and so are implemented here
// directly rather than in the stdlib subpackage (see that package's doc
// comment).
func stdlibTable() map[string]StdlibFunc {
	table := map[string]StdlibFunc{
		"print": builtinPrint,
		"cin":   builtinCin,
	}
	for name, fn := range stdlib.Table() {
		fn := fn
		table[name] = func(it *Interp, args []value.Value, pos token.Position) (value.Value, error) {
			return fn(args, pos)
		}
	}
	return table
}

// builtinPrint writes every argument's display form, space-separated,
// followed by a newline, and returns no usable value.
func builtinPrint(it *Interp, args []value.Value, pos token.Position) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(it.out, strings.Join(parts, " "))
	return value.Undefined, nil
}

// builtinCin reads one line from the interpreter's input stream and
// parses it as a finite NUMBER; anything else is InvalidType.
func builtinCin(it *Interp, args []value.Value, pos token.Position) (value.Value, error) {
	if len(args) != 0 {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.FunctionArgumentsMismatch, pos, "cin", 0, len(args))
	}
	line, readErr := it.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" && readErr != nil {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
	n, err := strconv.ParseFloat(line, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return value.Undefined, ierrors.NewRuntimeError(ierrors.InvalidType, pos)
	}
	return value.Number(n), nil
}
