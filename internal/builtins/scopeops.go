package builtins

import "github.com/gitrdm/trees/internal/eval"

func installScopeOps(root *eval.Scope) {
	root.Bind("get", native("get", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("get", args, 1); err != nil {
			return nil, err
		}
		name, err := asString("get", args, 0)
		if err != nil {
			return nil, err
		}
		return ev.GetDynamic(string(name))
	}))

	root.Bind("defset", native("defset", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("defset", args, 2); err != nil {
			return nil, err
		}
		name, err := asString("defset", args, 0)
		if err != nil {
			return nil, err
		}
		if err := ev.Defset(string(name), args[1]); err != nil {
			return nil, err
		}
		return args[1], nil
	}))

	root.Bind("set", native("set", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("set", args, 2); err != nil {
			return nil, err
		}
		name, err := asString("set", args, 0)
		if err != nil {
			return nil, err
		}
		if err := ev.SetVar(string(name), args[1]); err != nil {
			return nil, err
		}
		return args[1], nil
	}))

	root.Bind("export", native("export", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("export", args, 1); err != nil {
			return nil, err
		}
		name, err := asString("export", args, 0)
		if err != nil {
			return nil, err
		}
		if err := ev.Export(string(name)); err != nil {
			return nil, err
		}
		return eval.Void{}, nil
	}))

	root.Bind("reexport", native("reexport", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("reexport", args, 0); err != nil {
			return nil, err
		}
		ev.Reexport()
		return eval.Void{}, nil
	}))

	root.Bind("defproc", native("defproc", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("defproc", args, 2); err != nil {
			return nil, err
		}
		name, err := asString("defproc", args, 0)
		if err != nil {
			return nil, err
		}
		bv, err := asBlockValue("defproc", args, 1)
		if err != nil {
			return nil, err
		}
		if err := ev.Defproc(string(name), bv); err != nil {
			return nil, err
		}
		return eval.Void{}, nil
	}))
}
