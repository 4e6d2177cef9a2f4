package cmd

import (
	"fmt"
	"os"

	"github.com/mtlang/interp/internal/diagnostic"
	"github.com/mtlang/interp/internal/lexer"
	"github.com/mtlang/interp/internal/source"
	"github.com/mtlang/interp/internal/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a program and print the resulting tokens",
	Long: `Tokenize a program and print one line per token.

Examples:
  mtlang lex program.mtl
  mtlang lex -e "x = 1 + 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	lx := lexer.New(source.New(input), lexer.WithLimits(lexLimits))
	for {
		tok, err := lx.Next()
		if err != nil {
			fmt.Fprint(os.Stderr, diagnostic.Format(err, input, filename, colorEnabled(cmd)))
			return fmt.Errorf("lexing failed")
		}
		fmt.Println(tok)
		if tok.Kind == token.EOT {
			break
		}
	}
	return nil
}
