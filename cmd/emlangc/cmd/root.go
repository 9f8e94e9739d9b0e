// Package cmd implements emlangc's cobra command tree: one package-level
// rootCmd with no subcommands. Unlike a
// scripting-language front-end with many subcommands (run, lex, parse,
// fmt, compile), emlangc collapses to a single command, since it
// compiles exactly one file per invocation (spec.md §6) rather than
// hosting an interpreter/REPL surface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "emlangc <file>",
	Short: "emlang compiler front-end",
	Long: `emlangc compiles a single emlang source file to LLVM IR.

The pipeline runs lexing, parsing, semantic analysis, and LLVM IR
generation in sequence, stopping and reporting diagnostics at the first
stage that accumulates an error (spec.md §7's propagation policy).`,
	Version:      Version,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCompile,
}

// Execute runs the root command; this is emlangc's only command, so
// there is nothing else to register beneath it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (default: input with extension replaced)")
	rootCmd.Flags().BoolVar(&optO0, "O0", false, "optimisation level 0 (default)")
	rootCmd.Flags().BoolVar(&optO1, "O1", false, "optimisation level 1")
	rootCmd.Flags().BoolVar(&optO2, "O2", false, "optimisation level 2")
	rootCmd.Flags().BoolVar(&optO3, "O3", false, "optimisation level 3")
	rootCmd.Flags().BoolVar(&emitLLVM, "emit-llvm", false, "emit textual IR (.ll) instead of an object file (.o)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable verbose stage-by-stage diagnostic output")
}
