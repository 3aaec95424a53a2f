package builtins

import "github.com/gitrdm/trees/internal/eval"

func native(name string, fn func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError)) eval.NativeBinding {
	return eval.NativeBinding{Name: name, Fn: fn}
}

func binaryIntOp(name string, op func(a, b eval.Int) (eval.Literal, *eval.EvalError)) eval.NativeBinding {
	return native(name, func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		a, err := asInt(name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := asInt(name, args, 1)
		if err != nil {
			return nil, err
		}
		return op(a, b)
	})
}

func installArith(root *eval.Scope) {
	bind := func(b eval.NativeBinding) { root.Bind(b.Name, b) }

	bind(binaryIntOp("+", func(a, b eval.Int) (eval.Literal, *eval.EvalError) { return a + b, nil }))
	bind(binaryIntOp("-", func(a, b eval.Int) (eval.Literal, *eval.EvalError) { return a - b, nil }))
	bind(binaryIntOp("*", func(a, b eval.Int) (eval.Literal, *eval.EvalError) { return a * b, nil }))
	bind(binaryIntOp("/", func(a, b eval.Int) (eval.Literal, *eval.EvalError) {
		if b == 0 {
			return nil, eval.NewDivByZeroError("/")
		}
		return a / b, nil
	}))
	bind(binaryIntOp("%", func(a, b eval.Int) (eval.Literal, *eval.EvalError) {
		if b == 0 {
			return nil, eval.NewDivByZeroError("%")
		}
		return a % b, nil
	}))

	bind(binaryIntOp("<", func(a, b eval.Int) (eval.Literal, *eval.EvalError) { return eval.Boolean(a < b), nil }))
	bind(binaryIntOp(">", func(a, b eval.Int) (eval.Literal, *eval.EvalError) { return eval.Boolean(a > b), nil }))
	bind(binaryIntOp("<=", func(a, b eval.Int) (eval.Literal, *eval.EvalError) { return eval.Boolean(a <= b), nil }))
	bind(binaryIntOp(">=", func(a, b eval.Int) (eval.Literal, *eval.EvalError) { return eval.Boolean(a >= b), nil }))

	bind(native("=", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("=", args, 2); err != nil {
			return nil, err
		}
		return eval.Boolean(args[0].Equal(args[1])), nil
	}))
}

func installBooleans(root *eval.Scope) {
	binaryBoolOp := func(name string, op func(a, b bool) bool) eval.NativeBinding {
		return native(name, func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
			if err := arity(name, args, 2); err != nil {
				return nil, err
			}
			a, err := asBoolean(name, args, 0)
			if err != nil {
				return nil, err
			}
			b, err := asBoolean(name, args, 1)
			if err != nil {
				return nil, err
			}
			return eval.Boolean(op(bool(a), bool(b))), nil
		})
	}
	root.Bind("and", binaryBoolOp("and", func(a, b bool) bool { return a && b }))
	root.Bind("or", binaryBoolOp("or", func(a, b bool) bool { return a || b }))
	root.Bind("xor", binaryBoolOp("xor", func(a, b bool) bool { return a != b }))
}
