package ierrors

import (
	"fmt"
	"strings"

	"github.com/mtlang/interp/internal/token"
)

// Frame is a single call-stack frame attached to a RuntimeError as it
// propagates out of a function call or statement block.
type Frame struct {
	Function string
	Pos      token.Position
}

func (f Frame) String() string {
	return fmt.Sprintf("%s [%s]", f.Function, f.Pos)
}

// StackTrace is recorded innermost-first: each propagation boundary
// appends its own frame as the error passes through on its way out, so
// the slice is already in the order spec.md §7 wants for display
// ("innermost → outermost").
type StackTrace []Frame

func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, f := range st {
		sb.WriteString(f.String())
		if i < len(st)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Reverse returns a copy of st with frames in reverse order, i.e.
// outermost-call-first.
func (st StackTrace) Reverse() StackTrace {
	reversed := make(StackTrace, len(st))
	for i, f := range st {
		reversed[len(st)-1-i] = f
	}
	return reversed
}

func (st StackTrace) Depth() int { return len(st) }
