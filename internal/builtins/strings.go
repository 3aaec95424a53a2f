package builtins

import (
	"strconv"
	"strings"

	"github.com/gitrdm/trees/internal/eval"
)

func installStrings(root *eval.Scope) {
	root.Bind("strcat", native("strcat", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		var b strings.Builder
		for i, a := range args {
			s, ok := a.(eval.String)
			if !ok {
				return nil, eval.NewArgTypeError("strcat", i, eval.KindString, a.Kind())
			}
			b.WriteString(string(s))
		}
		return eval.String(b.String()), nil
	}))

	root.Bind("to str", native("to str", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("to str", args, 1); err != nil {
			return nil, err
		}
		return eval.String(args[0].String()), nil
	}))

	root.Bind("str to int", native("str to int", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("str to int", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("str to int", args, 0)
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.ParseInt(string(s), 10, 64)
		if convErr != nil {
			return nil, eval.NewParseError("str to int", string(s))
		}
		return eval.Int(n), nil
	}))

	root.Bind("split str", native("split str", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("split str", args, 2); err != nil {
			return nil, err
		}
		s, err := asString("split str", args, 0)
		if err != nil {
			return nil, err
		}
		sep, err := asString("split str", args, 1)
		if err != nil {
			return nil, err
		}
		var elems []eval.Literal
		for _, part := range strings.Split(string(s), string(sep)) {
			if part == "" {
				continue
			}
			elems = append(elems, eval.String(part))
		}
		return eval.List{Elems: elems}, nil
	}))

	root.Bind("str to bytes", native("str to bytes", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("str to bytes", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("str to bytes", args, 0)
		if err != nil {
			return nil, err
		}
		elems := make([]eval.Literal, len(s))
		for i, c := range []byte(s) {
			elems[i] = eval.Int(c)
		}
		return eval.List{Elems: elems}, nil
	}))

	root.Bind("bytes to str", native("bytes to str", func(ev *eval.Evaluator, args []eval.Literal) (eval.Literal, *eval.EvalError) {
		if err := arity("bytes to str", args, 1); err != nil {
			return nil, err
		}
		l, err := asList("bytes to str", args, 0)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, len(l.Elems))
		for i, e := range l.Elems {
			n, ok := e.(eval.Int)
			if !ok {
				return nil, eval.NewArgTypeError("bytes to str", 0, eval.KindInt, e.Kind())
			}
			if n < 0 || n > 255 {
				return nil, eval.NewIndexOutOfRangeError("bytes to str", int(n), 256)
			}
			buf[i] = byte(n)
		}
		return eval.String(buf), nil
	}))
}
