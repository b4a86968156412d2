package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	assert.Equal(t, "6", Number(6).String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "-0.5", Number(-0.5).String())
	assert.Equal(t, "square", Symbol("square").String())
	assert.Equal(t, "()", Nil().String())

	expr := SExpr([]*LVal{
		Symbol("+"),
		Number(1),
		SExpr([]*LVal{Symbol("f"), Number(2)}),
	})
	assert.Equal(t, "(+ 1 (f 2))", expr.String())

	fn := Fun("+", builtinAdd)
	assert.Equal(t, "<builtin ``+''>", fn.String())

	lambda := Lambda(Formals("x"), SExpr([]*LVal{Symbol("*"), Symbol("x"), Symbol("x")}), NewEnv(nil))
	assert.Equal(t, "(lambda (x) (* x x))", lambda.String())
}

func TestLValPredicates(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.False(t, SExpr([]*LVal{Number(1)}).IsNil())
	assert.False(t, Number(0).IsNil())
	assert.Equal(t, 2, SExpr([]*LVal{Number(1), Number(2)}).Len())
}

func TestLValTypeString(t *testing.T) {
	assert.Equal(t, "number", LNumber.String())
	assert.Equal(t, "symbol", LSymbol.String())
	assert.Equal(t, "list", LSExpr.String())
	assert.Equal(t, "function", LFun.String())
	assert.Equal(t, "error", LError.String())
	assert.Equal(t, "INVALID", LValType(100).String())
}
