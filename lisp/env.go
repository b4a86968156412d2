package lisp

import (
	"io"
	"os"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment: a mutable mapping from symbol names to values
// plus a link to the enclosing scope.  Environments form a singly-linked
// chain rooted at the global environment.  The environment is the only
// mutable object in the interpreter -- values bound in it are immutable and
// freely shared.
type LEnv struct {
	ID     uint
	Scope  map[string]*LVal
	Parent *LEnv
	Stack  *CallStack
	Stderr io.Writer // diagnostics writer, meaningful on the root env only
}

// NewEnv initializes and returns a new LEnv enclosed by parent.  A nil
// parent creates a root environment with a fresh call stack; child
// environments share their root's stack.
func NewEnv(parent *LEnv) *LEnv {
	var stack *CallStack
	if parent != nil {
		stack = parent.Stack
	} else {
		stack = &CallStack{MaxHeight: DefaultMaxHeight}
	}
	env := &LEnv{
		ID:     getEnvID(),
		Scope:  make(map[string]*LVal),
		Parent: parent,
		Stack:  stack,
	}
	if parent == nil {
		env.Stderr = os.Stderr
	}
	return env
}

// InitializeUserEnv installs the default builtins in env and applies the
// given configuration options.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddBuiltins()
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}

// Get takes an LSymbol k and returns the LVal it is bound to.  The lookup
// walks the scope chain outward and fails with an unbound-symbol error when
// no enclosing scope binds k.  The bound value is returned as-is, values are
// never copied on lookup.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorConditionf(TypeError, "not a symbol: %v", k.Type)
	}
	for scope := env; scope != nil; scope = scope.Parent {
		v, ok := scope.Scope[k.Str]
		if ok {
			return v
		}
	}
	lerr := ErrorConditionf(UnboundSymbol, "undefined symbol: %s", k.Str)
	lerr.Source = k.Source
	return lerr
}

// Put takes an LSymbol k and binds it to v in env.  The binding is created
// or overwritten in this scope only -- an existing binding in an outer scope
// is shadowed, never mutated.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	if v == nil {
		panic("nil value")
	}
	env.Scope[k.Str] = v
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

func (env *LEnv) stderr() io.Writer {
	w := env.root().Stderr
	if w == nil {
		return os.Stderr
	}
	return w
}

// AddBuiltins binds the given funs to their names in env.  When called with
// no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		exist := env.Get(k)
		if exist.Type != LError {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(k, Fun(f.Name(), checkedBuiltin(f)))
	}
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Numbers and functions evaluate to themselves, symbols resolve
// through the scope chain, and lists dispatch through EvalSExpr.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates the list s and returns the resulting LVal.  The empty
// list is the unit value and evaluates to itself.  The special forms define,
// lambda, and if are recognized purely by the spelling of the leading
// symbol, before any environment lookup -- binding one of those names can
// never change how a list headed by it evaluates.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return Errorf("not a list: %v", s.Type)
	}
	if len(s.Cells) == 0 {
		return s
	}
	head := s.Cells[0]
	if head.Type != LSymbol {
		return ErrorConditionf(SyntaxError, "first element must be a symbol")
	}
	switch head.Str {
	case "define":
		return evalDefine(env, s.Cells[1:])
	case "lambda":
		return evalLambda(env, s.Cells[1:])
	case "if":
		return evalIf(env, s.Cells[1:])
	}

	f := env.Eval(head)
	if f.Type == LError {
		return f
	}
	if f.Type != LFun {
		return ErrorConditionf(NotAFunction, "first element is not a function: %v", f)
	}

	// Evaluate arguments left to right before invoking f.  The first failure
	// aborts the application.
	args := SExpr(make([]*LVal, 0, len(s.Cells)-1))
	for _, expr := range s.Cells[1:] {
		v := env.Eval(expr)
		if v.Type == LError {
			return v
		}
		args.Cells = append(args.Cells, v)
	}
	return env.Call(f, args)
}

// Call invokes the function fun with the list of already-evaluated arguments
// args.  Builtins are invoked directly and govern their own contracts.
// Calling a closure requires the argument count to equal the closure's
// parameter count exactly; the call creates one new environment chained to
// the environment captured at the definition site, binds each parameter
// positionally, and evaluates the body there.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	name := fun.Str
	if name == "" {
		name = "lambda"
	}
	if lerr := env.Stack.Push(name); lerr.Type == LError {
		return lerr
	}
	defer env.Stack.Pop()

	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}
	if len(args.Cells) != len(fun.Formals.Cells) {
		return ErrorConditionf(ArityError, "incorrect number of arguments: expected %d (got %d)",
			len(fun.Formals.Cells), len(args.Cells))
	}
	fenv := NewEnv(fun.Env)
	for i, sym := range fun.Formals.Cells {
		fenv.Put(sym, args.Cells[i])
	}
	return fenv.Eval(fun.Body)
}
