// Package lisptest provides a table-driven test runner for evaluating
// sequences of source lines the way the repl does.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/repl"
)

// TestLine is a single line of input and the output the repl is expected to
// produce for it.  Output holds the rendered result, or the error text when
// evaluation of the line is expected to fail.  Stderr holds any debugging
// output the line is expected to write.
type TestLine struct {
	Expr   string
	Output string
	Stderr string
}

// TestSequence is a sequence of lines evaluated in order against one shared
// environment, so definitions on early lines are visible to later ones.
type TestSequence []TestLine

// TestSuite is a set of named, independent test sequences.
type TestSuite []struct {
	Name string
	Seq  TestSequence
}

// RunTestSuite evaluates each sequence in its own fresh environment created
// with the given configuration, comparing repl output line by line.  A
// failing line does not stop the sequence -- errors are expected output, and
// evaluation resumes on the next line with earlier bindings intact.
func RunTestSuite(t *testing.T, suite TestSuite, config ...lisp.Config) {
	for _, test := range suite {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			var stderr bytes.Buffer
			env := lisp.NewEnv(nil)
			conf := append([]lisp.Config{lisp.WithStderr(&stderr)}, config...)
			lerr := lisp.InitializeUserEnv(env, conf...)
			if err := lisp.GoError(lerr); err != nil {
				t.Fatalf("failed to initialize environment: %v", err)
			}
			for i, line := range test.Seq {
				stderr.Reset()
				out, err := repl.EvalLine(env, line.Expr)
				if err != nil {
					out = err.Error()
				}
				if out != line.Output {
					t.Errorf("expression %d: %s\n\texpected: %s\n\tgot:      %s",
						i, line.Expr, line.Output, out)
				}
				if stderr.String() != line.Stderr {
					t.Errorf("expression %d: %s\n\texpected stderr: %q\n\tgot stderr:      %q",
						i, line.Expr, line.Stderr, stderr.String())
				}
			}
		})
	}
}
