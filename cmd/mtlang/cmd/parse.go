package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mtlang/interp/internal/diagnostic"
	"github.com/mtlang/interp/pkg/mtlang"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and print its AST as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading from a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	engine, _ := mtlang.New(mtlang.WithLexerLimits(lexLimits))
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
	return nil
}
