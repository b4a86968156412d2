package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser"
	"github.com/minlisp/minlisp/repl"
)

var (
	runExpression bool
	runPrint      bool
)

type runSource struct {
	name string
	text []byte
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		lerr := lisp.InitializeUserEnv(env, lisp.WithMaximumStackHeight(maxStackHeight))
		if err := lisp.GoError(lerr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		r := parser.NewReader()
		for _, src := range srcs {
			exprs, err := r.Read(src.name, bytes.NewReader(src.text))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, expr := range exprs {
				v := env.Eval(expr)
				if err := lisp.GoError(v); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(repl.Render(v))
				}
			}
		}
	},
}

func runReadExpressions(args []string) ([]runSource, error) {
	srcs := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			srcs[i] = runSource{fmt.Sprintf("expr%d", i+1), []byte(args[i])}
		}
		return srcs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs[i] = runSource{path, b}
	}
	return srcs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
