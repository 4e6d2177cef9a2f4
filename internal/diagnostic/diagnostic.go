// Package diagnostic renders internal/ierrors errors for humans: a
// header naming the file/position, the offending source line with a
// line-number gutter, and a caret under the offending column — the
// shape the teacher's internal/errors.CompilerError used
// ("Error in FILE:LINE:COL" / "Error at LINE:COL", a "NNN | <line>"
// gutter, and a caret line).
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
)

const (
	ansiRedBold = "\033[1;31m"
	ansiBold    = "\033[1m"
	ansiReset   = "\033[0m"
)

// Format renders err with source context. An empty filename selects the
// "Error at LINE:COL" header instead of "Error in FILE:LINE:COL" (the
// CLI names -e and stdin input "<eval>" and "<stdin>", so it always
// passes a non-empty name). color toggles the teacher's
// hand-rolled ANSI sequences (bold message, red-bold caret); there is no
// color library in the teacher's go.mod, so none is introduced here.
func Format(err error, source, filename string, color bool) string {
	pos, detail := splitPositioned(err)
	var sb strings.Builder
	if filename != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", filename, pos.Row, pos.Col)
	} else {
		fmt.Fprintf(&sb, "Error at %d:%d\n", pos.Row, pos.Col)
	}
	if line, ok := sourceLine(source, pos.Row); ok {
		gutter := fmt.Sprintf("%4d | ", pos.Row)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", len(gutter)+max0(pos.Col-1)))
		if color {
			sb.WriteString(ansiRedBold)
		}
		sb.WriteString("^")
		if color {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	if color {
		sb.WriteString(ansiBold)
	}
	sb.WriteString(detail)
	if color {
		sb.WriteString(ansiReset)
	}
	sb.WriteByte('\n')
	if re, ok := err.(*ierrors.RuntimeError); ok && len(re.Frames) > 0 {
		sb.WriteString("\nStack trace:\n")
		sb.WriteString(re.Frames.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// splitPositioned extracts the position and display message from any of
// the three ierrors error families, falling back to position 1:1 and
// err.Error() for anything else.
func splitPositioned(err error) (token.Position, string) {
	switch e := err.(type) {
	case *ierrors.LexError:
		return e.Pos, e.Error()
	case *ierrors.SyntaxError:
		return e.Pos, e.Error()
	case *ierrors.RuntimeError:
		return e.Pos, fmt.Sprintf("%s: %s", e.Pos, e.Detail)
	default:
		return token.Position{Row: 1, Col: 1}, err.Error()
	}
}

func sourceLine(source string, row int) (string, bool) {
	lines := strings.Split(source, "\n")
	if row < 1 || row > len(lines) {
		return "", false
	}
	return lines[row-1], true
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
