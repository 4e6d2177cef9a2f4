package cmd

import (
	"fmt"

	"github.com/mtlang/interp/internal/lexer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// lexLimits is populated directly by pflag.IntVar/Float64Var in init(),
// exercising spf13/pflag as a direct dependency rather than only
// transitively through cobra's embedded flag set (SPEC_FULL.md §4.11).
var lexLimits = lexer.DefaultLimits

var rootCmd = &cobra.Command{
	Use:   "mtlang",
	Short: "Matrix-language interpreter",
	Long: `mtlang is a small imperative interpreter for a language of numbers,
strings, and matrices: one required main() function, until/if control
flow, a fixed seven-function standard library, and NxM matrix values with
full-axis (':') and single-index selectors.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log each user-function call at debug level")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostic output")

	fs := pflag.NewFlagSet("limits", pflag.ContinueOnError)
	fs.IntVar(&lexLimits.MaxStringSize, "max-string-size", lexLimits.MaxStringSize, "maximum string literal length")
	fs.IntVar(&lexLimits.MaxIdentifierLength, "max-identifier-length", lexLimits.MaxIdentifierLength, "maximum identifier length")
	fs.Float64Var(&lexLimits.MaxNumberValue, "max-number-value", lexLimits.MaxNumberValue, "maximum magnitude of a numeric literal")
	fs.IntVar(&lexLimits.MaxDecimalPrecision, "max-decimal-precision", lexLimits.MaxDecimalPrecision, "maximum decimal digits in a numeric literal")
	rootCmd.PersistentFlags().AddFlagSet(fs)
}

// colorEnabled reports whether diagnostics should use ANSI color,
// honoring --no-color.
func colorEnabled(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return !noColor
}
