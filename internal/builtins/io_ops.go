package builtins

import "github.com/gitrdm/trees/internal/eval"

func installIO(root *eval.Scope) {
	root.Bind("print", native("print", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("print", args, 1); err != nil {
			return nil, err
		}
		if ioErr := ev.Writer.Write(args[0].String()); ioErr != nil {
			return nil, eval.NewCmdFailedError("print", ioErr)
		}
		return eval.Void{}, nil
	}))

	root.Bind("println", native("println", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("println", args, 1); err != nil {
			return nil, err
		}
		if ioErr := ev.Writer.Write(args[0].String() + "\n"); ioErr != nil {
			return nil, eval.NewCmdFailedError("println", ioErr)
		}
		return eval.Void{}, nil
	}))

	root.Bind("read line", native("read line", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("read line", args, 0); err != nil {
			return nil, err
		}
		line, ioErr := ev.Reader.ReadLine()
		if ioErr != nil {
			return nil, eval.NewCmdFailedError("read line", ioErr)
		}
		return eval.String(line), nil
	}))

	root.Bind("cmd", native("cmd", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("cmd", args, 2); err != nil {
			return nil, err
		}
		name, err := asString("cmd", args, 0)
		if err != nil {
			return nil, err
		}
		argList, err := asList("cmd", args, 1)
		if err != nil {
			return nil, err
		}
		cmdArgs := make([]string, len(argList.Elems))
		for i, e := range argList.Elems {
			s, ok := e.(eval.String)
			if !ok {
				return nil, eval.NewArgTypeError("cmd", 1, eval.KindString, e.Kind())
			}
			cmdArgs[i] = string(s)
		}
		out, ioErr := ev.Execer.Exec(string(name), cmdArgs)
		if ioErr != nil {
			return nil, eval.NewCmdFailedError("cmd", ioErr)
		}
		return eval.String(out), nil
	}))

	root.Bind("include", native("include", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("include", args, 1); err != nil {
			return nil, err
		}
		path, err := asString("include", args, 0)
		if err != nil {
			return nil, err
		}
		return ev.Include(string(path))
	}))
}

func installEscapes(root *eval.Scope) {
	root.Bind("\\n", eval.VarBinding{Value: eval.String("\n")})
	root.Bind("\\r", eval.VarBinding{Value: eval.String("\r")})
	root.Bind("\\t", eval.VarBinding{Value: eval.String("\t")})
	root.Bind("\\0", eval.VarBinding{Value: eval.String("\x00")})
}
