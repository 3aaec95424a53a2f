package builtins

import "github.com/gitrdm/trees/internal/eval"

func installLists(root *eval.Scope) {
	root.Bind("listing", native("listing", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		elems := make([]eval.Literal, len(args))
		copy(elems, args)
		return eval.List{Elems: elems}, nil
	}))

	root.Bind("[]", native("[]", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("[]", args, 2); err != nil {
			return nil, err
		}
		l, err := asList("[]", args, 0)
		if err != nil {
			return nil, err
		}
		idx, err := asInt("[]", args, 1)
		if err != nil {
			return nil, err
		}
		if int(idx) < 0 || int(idx) >= len(l.Elems) {
			return nil, eval.NewIndexOutOfRangeError("[]", int(idx), len(l.Elems))
		}
		return l.Elems[idx], nil
	}))

	root.Bind("len", native("len", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("len", args, 1); err != nil {
			return nil, err
		}
		l, err := asList("len", args, 0)
		if err != nil {
			return nil, err
		}
		return eval.Int(len(l.Elems)), nil
	}))
}
