package eval_test

import (
	"testing"

	"github.com/gitrdm/trees/internal/builtins"
	"github.com/gitrdm/trees/internal/eval"
	"github.com/gitrdm/trees/internal/tree"
)

// lit builds a leaf block whose ProcName resolves as a literal
// (spec.md §4.4 step 3): a quoted string, a signed decimal integer,
// true/false, or the empty string for Void.
func lit(name string) *tree.Block {
	return &tree.Block{ProcName: name}
}

func str(s string) *tree.Block { return lit(`"` + s + `"`) }

// call builds a normal (unquoted) procedure call over args.
func call(proc string, args ...*tree.Block) *tree.Block {
	b := &tree.Block{ProcName: proc}
	for _, a := range args {
		b.Args = append(b.Args, tree.Arg{Child: a})
	}
	return b
}

func newEval() *eval.Evaluator {
	return eval.NewEvaluator(builtins.NewRootScope(), ".")
}

func mustEval(t *testing.T, ev *eval.Evaluator, b *tree.Block) eval.Literal {
	t.Helper()
	val, _, err := ev.Eval(b)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	return val
}

// TestClosureObservesLaterMutation is spec.md §8 P5: a closure's captured
// chain is live, so set-ing a variable after the closure is made changes
// what invoking the closure later reads.
func TestClosureObservesLaterMutation(t *testing.T) {
	ev := newEval()

	getX := &tree.Block{ProcName: "get", Quote: tree.Closure, Args: []tree.Arg{{Child: str("x")}}}

	program := call("seq",
		call("defset", str("x"), lit("1")),
		call("defset", str("getx"), getX),
		call("set", str("x"), lit("99")),
		call("exec", call("get", str("getx"))),
	)

	got := mustEval(t, ev, program)
	n, ok := got.(eval.Int)
	if !ok || n != 99 {
		t.Fatalf("closure read %v, want Int(99)", got)
	}
}

// TestQuoteDoesNotObserveLaterMutation: the same program, but the
// captured value is Quoted rather than Closure — it freezes a copy of
// the binding at the moment it was read, so it keeps seeing the value
// that was live at quote time, not the later mutation.
func TestQuoteDoesNotObserveLaterMutation(t *testing.T) {
	ev := newEval()

	getX := &tree.Block{ProcName: "get", Quote: tree.Quoted, Args: []tree.Arg{{Child: str("x")}}}

	program := call("seq",
		call("defset", str("x"), lit("1")),
		call("defset", str("getx"), getX),
		call("set", str("x"), lit("99")),
		call("exec", call("get", str("getx"))),
	)

	got := mustEval(t, ev, program)
	n, ok := got.(eval.Int)
	if !ok || n != 1 {
		t.Fatalf("quoted read %v, want Int(1) (the value at quote time)", got)
	}
}

// TestSeqReturnsLastValue is spec.md §8 P6.
func TestSeqReturnsLastValue(t *testing.T) {
	ev := newEval()
	got := mustEval(t, ev, call("seq", lit("1"), lit("2"), lit("3")))
	if got.(eval.Int) != 3 {
		t.Fatalf("seq = %v, want 3", got)
	}
}

// TestIf0Totality is spec.md §8 P7: if0/ifn0 never error regardless of
// the first argument's Kind — a non-Int is simply "not zero".
func TestIf0Totality(t *testing.T) {
	ev := newEval()

	got := mustEval(t, ev, call("if0", lit("0"), str("zero"), str("nonzero")))
	if got.(eval.String) != "zero" {
		t.Fatalf("if0(0,...) = %v, want zero", got)
	}

	got = mustEval(t, ev, call("if0", str("not-an-int"), str("zero"), str("nonzero")))
	if got.(eval.String) != "nonzero" {
		t.Fatalf("if0(non-int,...) = %v, want nonzero (never an error)", got)
	}
}

// TestExpandEquivalence is spec.md §8 P8: calling a variadic proc with
// an expanded list argument must behave identically to passing the same
// values directly.
func TestExpandEquivalence(t *testing.T) {
	ev := newEval()

	direct := call("listing", lit("1"), lit("2"), lit("3"))
	expanded := &tree.Block{
		ProcName: "listing",
		Args: []tree.Arg{
			{Expand: true, Child: call("listing", lit("1"), lit("2"), lit("3"))},
		},
	}

	gotDirect := mustEval(t, ev, direct)
	gotExpanded := mustEval(t, ev, expanded)

	if !gotDirect.Equal(gotExpanded) {
		t.Fatalf("direct = %v, expanded = %v; want equal", gotDirect, gotExpanded)
	}
}

// TestForRebindsWithoutNewOuterFrame: for rebinds the loop variable to
// 0, 1, … in the body's captured innermost scope each iteration, and a
// set of an *outer* variable from inside the loop body must persist past
// the loop (no fresh frame swallows it each iteration), per §9's
// resolved Open Question.
func TestForRebindsWithoutNewOuterFrame(t *testing.T) {
	ev := newEval()

	body := &tree.Block{ProcName: "seq", Quote: tree.Closure, Args: []tree.Arg{
		{Child: call("set", str("total"), call("+", call("get", str("total")), call("get", str("i"))))},
	}}

	program := call("seq",
		call("defset", str("total"), lit("0")),
		call("for", lit("4"), str("i"), body),
		call("get", str("total")),
	)

	got := mustEval(t, ev, program)
	if got.(eval.Int) != 6 { // 0+1+2+3
		t.Fatalf("total = %v, want 6", got)
	}
}

// TestUndefinedProcError exercises the UndefinedProc error kind and the
// NodeResult tree mirroring the call (spec.md §7).
func TestUndefinedProcError(t *testing.T) {
	ev := newEval()
	_, nr, err := ev.Eval(call("no-such-proc"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Kind != eval.UndefinedProc {
		t.Fatalf("Kind = %v, want UndefinedProc", err.Kind)
	}
	if nr.Outcome != eval.Errored {
		t.Fatalf("Outcome = %v, want Errored", nr.Outcome)
	}
}

// TestErrorMarksSiblingsUnreached: when one argument errors, later
// sibling arguments are marked Unreached rather than evaluated.
func TestErrorMarksSiblingsUnreached(t *testing.T) {
	ev := newEval()
	_, nr, err := ev.Eval(call("seq", call("no-such-proc"), lit("42")))
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(nr.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(nr.Children))
	}
	if nr.Children[0].Outcome != eval.Errored {
		t.Fatalf("child 0 outcome = %v, want Errored", nr.Children[0].Outcome)
	}
	if nr.Children[1].Outcome != eval.Unreached {
		t.Fatalf("child 1 outcome = %v, want Unreached", nr.Children[1].Outcome)
	}
}

// TestDefprocAndInvoke: defproc binds a user procedure callable by name,
// with $0 bound to its first argument.
func TestDefprocAndInvoke(t *testing.T) {
	ev := newEval()
	double := &tree.Block{ProcName: "+", Quote: tree.Closure, Args: []tree.Arg{
		{Child: call("get", str("$0"))},
		{Child: call("get", str("$0"))},
	}}
	program := call("seq",
		call("defproc", str("double"), double),
		call("double", lit("21")),
	)
	got := mustEval(t, ev, program)
	if got.(eval.Int) != 42 {
		t.Fatalf("double(21) = %v, want 42", got)
	}
}
