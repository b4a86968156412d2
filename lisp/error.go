package lisp

import "fmt"

// Error conditions raised by the interpreter.  A condition classifies a
// failure; the error message carries the detail.  Every failure aborts
// evaluation of the current top-level expression and propagates uncaught to
// the read/eval/print boundary.
const (
	ScanError     = "scan-error"      // unexpected character in source text
	ParseError    = "parse-error"     // unexpected token, unmatched paren, bad number literal
	SyntaxError   = "syntax-error"    // malformed define/lambda/if form
	UnboundSymbol = "unbound-symbol"  // symbol lookup failed in every enclosing scope
	NotAFunction  = "not-a-function"  // applying a value that is not a function
	TypeError     = "type-error"      // non-numeric argument to an arithmetic builtin
	ArityError    = "arity-error"     // wrong number of arguments to a closure or builtin
	StackOverflow = "stack-overflow"  // call stack exceeded its configured height
)

// ErrorVal implements the error interface so that errors can be first class
// lisp objects.  The condition is stored in the Str field while the message
// is stored in the Err field.
type ErrorVal LVal

// Error implements the error interface.  The message is prefixed with the
// source location and condition tag when they are known.
func (e *ErrorVal) Error() string {
	msg := e.Err.Error()
	if e.Str != "" {
		msg = e.Str + ": " + msg
	}
	if e.Source != nil {
		msg = e.Source.String() + ": " + msg
	}
	return msg
}

// Condition returns the error's condition tag.
func (e *ErrorVal) Condition() string {
	return e.Str
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Err:  err,
	}
}

// Errorf returns an error LVal with a formatted message and no condition.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Err:  fmt.Errorf(format, v...),
	}
}

// ErrorConditionf returns an error LVal tagged with the given condition.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Str:  condition,
		Err:  fmt.Errorf(format, v...),
	}
}

// GoError converts an error LVal into a Go error.  GoError returns nil if v
// is not an error.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}

// Condition returns the condition tag of an error LVal, or an empty string
// if v is not an error or carries no condition.
func Condition(v *LVal) string {
	if v.Type != LError {
		return ""
	}
	return v.Str
}
