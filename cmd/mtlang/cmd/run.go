package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mtlang/interp/internal/diagnostic"
	"github.com/mtlang/interp/pkg/mtlang"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var (
	evalExpr string
	astJSON  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program and print main()'s return value",
	Long: `Execute a program from a file or inline expression.

Examples:
  # Run a script file
  mtlang run program.mtl

  # Evaluate inline source
  mtlang run -e "main() { return 1 + 1 }"

  # Dump the parsed AST as JSON before evaluating
  mtlang run --ast-json program.mtl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
	runCmd.Flags().BoolVar(&astJSON, "ast-json", false, "dump the parsed AST as JSON before evaluating")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	engine, _ := mtlang.New(
		mtlang.WithLogger(verboseLogger(verbose)),
		mtlang.WithLexerLimits(lexLimits),
	)

	if astJSON {
		prog, err := engine.Parse(input)
		if err != nil {
			fmt.Fprint(os.Stderr, diagnostic.Format(err, input, filename, colorEnabled(cmd)))
			return fmt.Errorf("parsing failed")
		}
		raw, err := json.Marshal(prog)
		if err != nil {
			return fmt.Errorf("failed to marshal AST: %w", err)
		}
		fmt.Println(string(pretty.Pretty(raw)))
	}

	result, err := engine.Eval(input)
	if err != nil {
		fmt.Fprint(os.Stderr, diagnostic.Format(err, input, filename, colorEnabled(cmd)))
		return fmt.Errorf("execution failed")
	}

	fmt.Println(result.Value.String())
	return nil
}

// readSource resolves the -e flag, a file argument, or stdin (in that
// order) into a source string and display filename.
func readSource(eval string, args []string) (input, filename string, err error) {
	switch {
	case eval != "":
		return eval, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	default:
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), "<stdin>", nil
	}
}

// verboseLogger returns a debug-level text logger to stderr when enabled,
// and the default warn-and-above logger otherwise (SPEC_FULL.md §4.6).
func verboseLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
