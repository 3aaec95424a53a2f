package builtins

import "github.com/gitrdm/trees/internal/eval"

func installControlFlow(root *eval.Scope) {
	root.Bind("seq", native("seq", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		// Every argument is already evaluated, left to right, by the time a
		// native procedure runs (spec.md §4.4 step 2): seq's own job is just
		// to report the last one. P6.
		if err := minArity("seq", args, 1); err != nil {
			return nil, err
		}
		return args[len(args)-1], nil
	}))

	root.Bind("if", native("if", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("if", args, 3); err != nil {
			return nil, err
		}
		cond, err := asBoolean("if", args, 0)
		if err != nil {
			return nil, err
		}
		if cond {
			return args[1], nil
		}
		return args[2], nil
	}))

	root.Bind("if0", native("if0", ifZero(true)))
	root.Bind("ifn0", native("ifn0", ifZero(false)))

	root.Bind("for", native("for", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("for", args, 3); err != nil {
			return nil, err
		}
		times, err := asInt("for", args, 0)
		if err != nil {
			return nil, err
		}
		varname, err := asString("for", args, 1)
		if err != nil {
			return nil, err
		}
		body, err := asBlockValue("for", args, 2)
		if err != nil {
			return nil, err
		}

		scope := body.Captured.Innermost()
		var last eval.Literal = eval.Void{}
		for i := eval.Int(0); i < times; i++ {
			if scope != nil {
				scope.Bind(string(varname), eval.VarBinding{Value: i})
			}
			val, evErr := ev.EvalWithChain(body.Captured, body.Node)
			if evErr != nil {
				return nil, evErr
			}
			last = val
		}
		return last, nil
	}))

	root.Bind("while", native("while", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("while", args, 2); err != nil {
			return nil, err
		}
		cond, err := asBlockValue("while", args, 0)
		if err != nil {
			return nil, err
		}
		body, err := asBlockValue("while", args, 1)
		if err != nil {
			return nil, err
		}

		var last eval.Literal = eval.Void{}
		for {
			cv, evErr := ev.EvalWithChain(cond.Captured, cond.Node)
			if evErr != nil {
				return nil, evErr
			}
			b, ok := cv.(eval.Boolean)
			if !ok {
				return nil, eval.NewArgTypeError("while", 0, eval.KindBoolean, cv.Kind())
			}
			if !b {
				return last, nil
			}
			val, evErr := ev.EvalWithChain(body.Captured, body.Node)
			if evErr != nil {
				return nil, evErr
			}
			last = val
		}
	}))

	root.Bind("exec", native("exec", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := minArity("exec", args, 1); err != nil {
			return nil, err
		}
		bv, err := asBlockValue("exec", args, 0)
		if err != nil {
			return nil, err
		}
		return ev.InvokeValue(bv, args[1:])
	}))
}

// ifZero builds if0 (thenOnZero=true) and ifn0 (thenOnZero=false): both
// branch on the first argument being exactly Int(0), with already-
// evaluated then/else values (spec.md §4.4 "already evaluated").
func ifZero(thenOnZero bool) func(*eval.Evaluator, []eval.Literal) (eval.Literal, *eval.EvalError) {
	name := "if0"
	if !thenOnZero {
		name = "ifn0"
	}
	return func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity(name, args, 3); err != nil {
			return nil, err
		}
		n, ok := args[0].(eval.Int)
		isZero := ok && n == 0
		if isZero == thenOnZero {
			return args[1], nil
		}
		return args[2], nil
	}
}
