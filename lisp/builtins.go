package lisp

import (
	"bytes"
	"math"
)

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

// Formals returns a list of formal argument symbols for a builtin
// definition.
func Formals(names ...string) *LVal {
	cells := make([]*LVal, len(names))
	for i, name := range names {
		cells[i] = Symbol(name)
	}
	return SExpr(cells)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"+", Formals(VarArgSymbol, "x"), builtinAdd},
	{"-", Formals(VarArgSymbol, "x"), builtinSub},
	{"*", Formals(VarArgSymbol, "x"), builtinMul},
	{"/", Formals(VarArgSymbol, "x"), builtinDiv},
	{"%", Formals("a", "b"), builtinMod},
	{"pow", Formals("a", "b"), builtinPow},
	{"min", Formals(VarArgSymbol, "x"), builtinMin},
	{"max", Formals(VarArgSymbol, "x"), builtinMax},
	{"<", Formals("a", "b"), builtinLT},
	{">", Formals("a", "b"), builtinGT},
	{"<=", Formals("a", "b"), builtinLEq},
	{">=", Formals("a", "b"), builtinGEq},
	{"==", Formals("a", "b"), builtinEqNum},
	{"!=", Formals("a", "b"), builtinNEqNum},
	{"debug-print", Formals(VarArgSymbol, "args"), builtinDebugPrint},
	{"debug-stack", Formals(), builtinDebugStack},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, formals *LVal, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, formals, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, len(langBuiltins)+len(userBuiltins))
	for i := range langBuiltins {
		funs[i] = langBuiltins[i]
	}
	offset := len(langBuiltins)
	for i := range userBuiltins {
		funs[offset+i] = userBuiltins[i]
	}
	return funs
}

// checkedBuiltin wraps a builtin definition with an arity check driven by
// its Formals list.  A formals list containing VarArgSymbol accepts any
// number of arguments; otherwise the argument count must match the formals
// exactly.
func checkedBuiltin(f LBuiltinDef) LBuiltin {
	return func(env *LEnv, args *LVal) *LVal {
		for _, sym := range f.Formals().Cells {
			if sym.Str == VarArgSymbol {
				return f.Eval(env, args)
			}
		}
		if args.Len() != f.Formals().Len() {
			return ErrorConditionf(ArityError, "'%s' expects %d arguments (got %d)",
				f.Name(), f.Formals().Len(), args.Len())
		}
		return f.Eval(env, args)
	}
}

// numericArgs validates that every argument is a number, failing with a type
// error naming the operator otherwise.
func numericArgs(op string, args *LVal) *LVal {
	for _, arg := range args.Cells {
		if arg.Type != LNumber {
			return ErrorConditionf(TypeError, "arguments to '%s' must be numbers", op)
		}
	}
	return Nil()
}

func boolNum(ok bool) *LVal {
	if ok {
		return Number(1)
	}
	return Number(0)
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("+", args); lerr.Type == LError {
		return lerr
	}
	sum := 0.0
	for _, arg := range args.Cells {
		sum += arg.Num
	}
	return Number(sum)
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("-", args); lerr.Type == LError {
		return lerr
	}
	if args.Len() == 0 {
		return ErrorConditionf(ArityError, "'-' requires at least one argument")
	}
	if args.Len() == 1 {
		return Number(-args.Cells[0].Num)
	}
	result := args.Cells[0].Num
	for _, arg := range args.Cells[1:] {
		result -= arg.Num
	}
	return Number(result)
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("*", args); lerr.Type == LError {
		return lerr
	}
	prod := 1.0
	for _, arg := range args.Cells {
		prod *= arg.Num
	}
	return Number(prod)
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("/", args); lerr.Type == LError {
		return lerr
	}
	if args.Len() == 0 {
		return ErrorConditionf(ArityError, "'/' requires at least one argument")
	}
	if args.Len() == 1 {
		// Division by zero follows float semantics and produces Inf.
		return Number(1 / args.Cells[0].Num)
	}
	result := args.Cells[0].Num
	for _, arg := range args.Cells[1:] {
		result /= arg.Num
	}
	return Number(result)
}

func builtinMod(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("%", args); lerr.Type == LError {
		return lerr
	}
	return Number(math.Mod(args.Cells[0].Num, args.Cells[1].Num))
}

func builtinPow(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("pow", args); lerr.Type == LError {
		return lerr
	}
	return Number(math.Pow(args.Cells[0].Num, args.Cells[1].Num))
}

func builtinMin(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("min", args); lerr.Type == LError {
		return lerr
	}
	if args.Len() == 0 {
		return ErrorConditionf(ArityError, "'min' requires at least one argument")
	}
	result := args.Cells[0].Num
	for _, arg := range args.Cells[1:] {
		result = math.Min(result, arg.Num)
	}
	return Number(result)
}

func builtinMax(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("max", args); lerr.Type == LError {
		return lerr
	}
	if args.Len() == 0 {
		return ErrorConditionf(ArityError, "'max' requires at least one argument")
	}
	result := args.Cells[0].Num
	for _, arg := range args.Cells[1:] {
		result = math.Max(result, arg.Num)
	}
	return Number(result)
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("<", args); lerr.Type == LError {
		return lerr
	}
	return boolNum(args.Cells[0].Num < args.Cells[1].Num)
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs(">", args); lerr.Type == LError {
		return lerr
	}
	return boolNum(args.Cells[0].Num > args.Cells[1].Num)
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("<=", args); lerr.Type == LError {
		return lerr
	}
	return boolNum(args.Cells[0].Num <= args.Cells[1].Num)
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs(">=", args); lerr.Type == LError {
		return lerr
	}
	return boolNum(args.Cells[0].Num >= args.Cells[1].Num)
}

func builtinEqNum(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("==", args); lerr.Type == LError {
		return lerr
	}
	return boolNum(args.Cells[0].Num == args.Cells[1].Num)
}

func builtinNEqNum(env *LEnv, args *LVal) *LVal {
	if lerr := numericArgs("!=", args); lerr.Type == LError {
		return lerr
	}
	return boolNum(args.Cells[0].Num != args.Cells[1].Num)
}

func builtinDebugPrint(env *LEnv, args *LVal) *LVal {
	var buf bytes.Buffer
	for i, arg := range args.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteString("\n")
	env.stderr().Write(buf.Bytes())
	return Nil()
}

func builtinDebugStack(env *LEnv, args *LVal) *LVal {
	env.Stack.DebugPrint(env.stderr())
	return Nil()
}
