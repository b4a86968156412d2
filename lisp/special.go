package lisp

// The three special forms.  Each receives the list elements following the
// form's name and the environment the enclosing list is being evaluated in.

// evalDefine evaluates (define name expr).  The value of expr is bound under
// name in the current scope, shadowing any outer binding, and returned.
func evalDefine(env *LEnv, args []*LVal) *LVal {
	if len(args) != 2 || args[0].Type != LSymbol {
		return ErrorConditionf(SyntaxError, "invalid define syntax")
	}
	v := env.Eval(args[1])
	if v.Type == LError {
		return v
	}
	env.Put(args[0], v)
	return v
}

// evalLambda evaluates (lambda (params ...) body).  The body is left
// unevaluated and the current environment is captured by reference, so free
// variables in the body resolve against the definition site when the
// function is eventually called.
func evalLambda(env *LEnv, args []*LVal) *LVal {
	if len(args) != 2 || args[0].Type != LSExpr {
		return ErrorConditionf(SyntaxError, "invalid lambda syntax")
	}
	for _, sym := range args[0].Cells {
		if sym.Type != LSymbol {
			return ErrorConditionf(SyntaxError, "lambda parameters must be symbols: %v", sym.Type)
		}
	}
	return Lambda(args[0], args[1], env)
}

// evalIf evaluates (if cond then else).  The condition is true iff it
// evaluates to a nonzero number; a zero number and every non-number value
// select the else branch.  Exactly one branch is evaluated.
func evalIf(env *LEnv, args []*LVal) *LVal {
	if len(args) != 3 {
		return ErrorConditionf(SyntaxError, "invalid if syntax")
	}
	cond := env.Eval(args[0])
	if cond.Type == LError {
		return cond
	}
	if cond.Type == LNumber && cond.Num != 0 {
		return env.Eval(args[1])
	}
	return env.Eval(args[2])
}
