package builtins

import "github.com/gitrdm/trees/internal/eval"

// arity fails unless args has exactly n elements. Built-ins call this
// first; spec.md's ArityMismatch is otherwise easy to under-report once a
// procedure starts indexing into args directly.
func arity(proc string, args []eval.Literal, n int) *eval.EvalError {
	if len(args) != n {
		return eval.NewArityError(proc, n, len(args))
	}
	return nil
}

func minArity(proc string, args []eval.Literal, n int) *eval.EvalError {
	if len(args) < n {
		return eval.NewArityError(proc, n, len(args))
	}
	return nil
}

func asInt(proc string, args []eval.Literal, i int) (eval.Int, *eval.EvalError) {
	v, ok := args[i].(eval.Int)
	if !ok {
		return 0, eval.NewArgTypeError(proc, i, eval.KindInt, args[i].Kind())
	}
	return v, nil
}

func asString(proc string, args []eval.Literal, i int) (eval.String, *eval.EvalError) {
	v, ok := args[i].(eval.String)
	if !ok {
		return "", eval.NewArgTypeError(proc, i, eval.KindString, args[i].Kind())
	}
	return v, nil
}

func asBoolean(proc string, args []eval.Literal, i int) (eval.Boolean, *eval.EvalError) {
	v, ok := args[i].(eval.Boolean)
	if !ok {
		return false, eval.NewArgTypeError(proc, i, eval.KindBoolean, args[i].Kind())
	}
	return v, nil
}

func asList(proc string, args []eval.Literal, i int) (eval.List, *eval.EvalError) {
	v, ok := args[i].(eval.List)
	if !ok {
		return eval.List{}, eval.NewArgTypeError(proc, i, eval.KindList, args[i].Kind())
	}
	return v, nil
}

func asBlockValue(proc string, args []eval.Literal, i int) (eval.BlockValue, *eval.EvalError) {
	v, ok := args[i].(eval.BlockValue)
	if !ok {
		return eval.BlockValue{}, eval.NewArgTypeError(proc, i, eval.KindBlockValue, args[i].Kind())
	}
	return v, nil
}
