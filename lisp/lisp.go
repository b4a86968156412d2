package lisp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/minlisp/minlisp/parser/token"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNumber
	LError
	LSymbol
	LSExpr
	LFun
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LError:   "error",
	LSymbol:  "symbol",
	LSExpr:   "list",
	LFun:     "function",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a Go function that executes a lisp function.  Its args have
// already been evaluated by the caller.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LBuiltinDef is a built-in function definition.
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv, args *LVal) *LVal
}

// LVal is a lisp value.  An LVal is exactly one of a number, a symbol, a
// list, a function, or an error.  The Type tag never changes after
// construction and LVals are immutable once built, so sharing them between
// expressions and environments is safe -- only LEnv is mutable.
type LVal struct {
	Type   LValType
	Num    float64
	Str    string
	Err    error
	Cells  []*LVal
	Source *token.Location

	// Variables needed for function values.  Env is the environment captured
	// at the closure's definition site, shared with (never copied from) the
	// defining scope.
	Builtin LBuiltin
	Env     *LEnv
	Formals *LVal
	Body    *LVal
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing a list with the given cells.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Nil returns an LVal representing nil, an empty list, an absent value.
func Nil() *LVal {
	return SExpr(nil)
}

// Fun returns an LVal representing a built-in function.  The name is
// retained so errors raised by the builtin can identify it.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns an anonymous function that has formals as arguments and the
// given body, which may reference symbols bound in env at the definition
// site.  The returned function holds a shared reference to env, it does not
// copy it.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LFun,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// IsNil returns true if v is an empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// Len returns the number of cells in a list value.
func (v *LVal) Len() int {
	return len(v.Cells)
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case LError:
		return GoError(v).Error()
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v, "(", ")")
	case LFun:
		if v.Builtin != nil {
			return fmt.Sprintf("<builtin ``%s''>", v.Str)
		}
		return fmt.Sprintf("(lambda %v %v)", v.Formals, v.Body)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
