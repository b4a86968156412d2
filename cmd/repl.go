package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Read one expression per line and evaluate it against a persistent
global environment, printing the result or the error.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func runRepl() {
	repl.RunRepl(repl.DefaultPrompt, lisp.WithMaximumStackHeight(maxStackHeight))
}

func init() {
	rootCmd.AddCommand(replCmd)
}
