package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minlisp/minlisp/lisp"
)

var maxStackHeight int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minlisp",
	Short: "An interpreter for a small lisp-like expression language",
	Long: `minlisp interprets a small lisp-like expression language with lexical
scoping, closures, and the define/lambda/if special forms.  Without a
subcommand minlisp starts an interactive repl.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxStackHeight, "max-stack-height", lisp.DefaultMaxHeight,
		"Maximum interpreter call stack height")
}
