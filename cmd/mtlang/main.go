// Command mtlang is the CLI front end for the matrix-language
// interpreter: run/lex/parse subcommands over pkg/mtlang, grounded on
// the teacher's cmd/dwscript entry point.
package main

import (
	"os"

	"github.com/mtlang/interp/cmd/mtlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
