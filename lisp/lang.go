package lisp

// VarArgSymbol is the symbol that indicates a variadic argument in a
// builtin's list of formal arguments.  User defined functions have fixed
// arity and cannot use it.
const VarArgSymbol = "&"
