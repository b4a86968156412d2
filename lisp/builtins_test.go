package lisp

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberArgs(xs ...float64) *LVal {
	cells := make([]*LVal, len(xs))
	for i, x := range xs {
		cells[i] = Number(x)
	}
	return SExpr(cells)
}

func TestBuiltinAdd(t *testing.T) {
	v := builtinAdd(nil, numberArgs())
	assert.Equal(t, 0.0, v.Num) // empty sum

	v = builtinAdd(nil, numberArgs(1, 2, 3))
	assert.Equal(t, 6.0, v.Num)

	v = builtinAdd(nil, SExpr([]*LVal{Number(1), Nil()}))
	require.Equal(t, LError, v.Type)
	assert.Equal(t, "type-error: arguments to '+' must be numbers", GoError(v).Error())
}

func TestBuiltinSub(t *testing.T) {
	v := builtinSub(nil, numberArgs())
	require.Equal(t, LError, v.Type)
	assert.Equal(t, ArityError, Condition(v))

	// one argument negates
	v = builtinSub(nil, numberArgs(5))
	assert.Equal(t, -5.0, v.Num)

	// two or more arguments fold left
	v = builtinSub(nil, numberArgs(10, 1, 2))
	assert.Equal(t, 7.0, v.Num)

	v = builtinSub(nil, SExpr([]*LVal{Symbol("a")}))
	require.Equal(t, LError, v.Type)
	assert.Equal(t, "type-error: arguments to '-' must be numbers", GoError(v).Error())
}

func TestBuiltinMulDiv(t *testing.T) {
	assert.Equal(t, 1.0, builtinMul(nil, numberArgs()).Num) // empty product
	assert.Equal(t, 24.0, builtinMul(nil, numberArgs(2, 3, 4)).Num)

	assert.Equal(t, 0.5, builtinDiv(nil, numberArgs(2)).Num) // reciprocal
	assert.Equal(t, 5.0, builtinDiv(nil, numberArgs(10, 2)).Num)
	assert.Equal(t, ArityError, Condition(builtinDiv(nil, numberArgs())))
	// float semantics, not an error
	assert.True(t, math.IsInf(builtinDiv(nil, numberArgs(1, 0)).Num, 1))
}

func TestBuiltinModPow(t *testing.T) {
	assert.Equal(t, 1.0, builtinMod(nil, numberArgs(7, 3)).Num)
	assert.Equal(t, 1024.0, builtinPow(nil, numberArgs(2, 10)).Num)
}

func TestBuiltinMinMax(t *testing.T) {
	assert.Equal(t, 1.0, builtinMin(nil, numberArgs(3, 1, 2)).Num)
	assert.Equal(t, 3.0, builtinMax(nil, numberArgs(3, 1, 2)).Num)
	assert.Equal(t, ArityError, Condition(builtinMin(nil, numberArgs())))
}

func TestBuiltinComparisons(t *testing.T) {
	// comparisons return 1 or 0; if treats nonzero numbers as true
	assert.Equal(t, 1.0, builtinLT(nil, numberArgs(1, 2)).Num)
	assert.Equal(t, 0.0, builtinLT(nil, numberArgs(2, 1)).Num)
	assert.Equal(t, 1.0, builtinGT(nil, numberArgs(2, 1)).Num)
	assert.Equal(t, 1.0, builtinLEq(nil, numberArgs(2, 2)).Num)
	assert.Equal(t, 1.0, builtinGEq(nil, numberArgs(2, 2)).Num)
	assert.Equal(t, 1.0, builtinEqNum(nil, numberArgs(2, 2)).Num)
	assert.Equal(t, 0.0, builtinEqNum(nil, numberArgs(2, 3)).Num)
	assert.Equal(t, 1.0, builtinNEqNum(nil, numberArgs(2, 3)).Num)
}

func TestBuiltinArityCheck(t *testing.T) {
	env := NewEnv(nil)
	env.AddBuiltins()

	mod := env.Get(Symbol("%"))
	require.Equal(t, LFun, mod.Type)
	v := env.Call(mod, numberArgs(1, 2, 3))
	require.Equal(t, LError, v.Type)
	assert.Equal(t, "arity-error: '%' expects 2 arguments (got 3)", GoError(v).Error())

	// variadic builtins accept any argument count
	add := env.Get(Symbol("+"))
	assert.Equal(t, 10.0, env.Call(add, numberArgs(1, 2, 3, 4)).Num)
}

func TestBuiltinDebugPrint(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, WithStderr(&buf))
	require.NoError(t, GoError(lerr))

	v := builtinDebugPrint(env, SExpr([]*LVal{Number(1), Symbol("a")}))
	assert.True(t, v.IsNil())
	assert.Equal(t, "1 a\n", buf.String())
}

func TestRegisterDefaultBuiltin(t *testing.T) {
	RegisterDefaultBuiltin("test-incr", Formals("x"), func(env *LEnv, args *LVal) *LVal {
		if lerr := numericArgs("test-incr", args); lerr.Type == LError {
			return lerr
		}
		return Number(args.Cells[0].Num + 1)
	})
	env := NewEnv(nil)
	env.AddBuiltins()
	fn := env.Get(Symbol("test-incr"))
	require.Equal(t, LFun, fn.Type)
	assert.Equal(t, 2.0, env.Call(fn, numberArgs(1)).Num)
}
