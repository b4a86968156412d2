package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser"
)

// DefaultPrompt is the prompt printed by the repl command.
const DefaultPrompt = "lisp> "

// RunRepl runs a line-oriented read/eval/print loop: one top-level
// expression per line, evaluated against a persistent root environment so a
// definition on one line is visible to later lines.  Errors are reported on
// one line and the loop continues; end of input terminates it.
func RunRepl(prompt string, config ...lisp.Config) {
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		errln(lisp.GoError(lerr))
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			return
		}
		out, err := EvalLine(env, string(line))
		if err != nil {
			errlnf("error: %v", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(rl.Stdout(), out)
		}
	}
}

// EvalLine parses the first expression on one line of source text, evaluates
// it in env, and returns the rendered result.  Blank lines produce no output
// and no error.  A failure aborts the current expression only -- bindings
// created before the failure point are not rolled back.
func EvalLine(env *lisp.LEnv, line string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return "", nil
	}
	expr, err := parser.ParseLine("repl", line)
	if err != nil {
		return "", err
	}
	v := env.Eval(expr)
	if err := lisp.GoError(v); err != nil {
		return "", err
	}
	return Render(v), nil
}

// Render formats an evaluation result for display.  Numbers print their
// decimal value and symbols their name.  Functions and lists have no
// inspectable representation and render as opaque placeholder markers,
// the empty list included.
func Render(v *lisp.LVal) string {
	switch v.Type {
	case lisp.LFun:
		return "<function>"
	case lisp.LSExpr:
		return "<list>"
	default:
		return v.String()
	}
}

func errlnf(format string, v ...interface{}) {
	if strings.HasSuffix(format, "\n") {
		errf(format, v...)
		return
	}
	errf(format+"\n", v...)
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func errf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
