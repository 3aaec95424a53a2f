package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gitrdm/trees/internal/tree"
)

// Reader, Writer, Execer, and Includer are the evaluator's only points of
// contact with the outside world (spec.md §6, §1's "only their
// interfaces are specified"). Package builtins re-exports these same
// interfaces (by type alias) for the built-ins that use them, and
// cmd/trees supplies the concrete implementations.
type Reader interface {
	ReadLine() (string, error)
}

type Writer interface {
	Write(s string) error
}

type Execer interface {
	Exec(name string, args []string) (stdout string, err error)
}

type Includer interface {
	// Resolve turns path (as written in an include(...) call from the
	// file in fromDir) into a resolved path and reports whether it
	// should be parsed as source (.tr) or decoded as bytecode (.trm).
	Resolve(fromDir, path string) (resolved string, isSource bool, err error)
	// Load reads the resolved path's raw bytes (source text or bytecode).
	Load(resolved string) ([]byte, error)
}

// ParseFunc and DecodeFunc let Evaluator run an include(...) without
// importing internal/parse or internal/bytecode directly, keeping this
// package's dependency graph one-directional (parse and bytecode both
// depend on tree; neither depends on eval).
type ParseFunc func(lines []string) (*tree.Block, error)
type DecodeFunc func(buf []byte) (*tree.Block, error)

// Evaluator walks a call tree, per spec.md §4.4. It is single-threaded
// and not safe for concurrent use (spec.md §5): exactly one scope chain
// is ever active at a time, temporarily swapped out for a closure's or a
// user procedure's captured chain and always restored before returning.
type Evaluator struct {
	current   Chain
	rootScope *Scope

	Reader   Reader
	Writer   Writer
	Execer   Execer
	Includer Includer
	Parse    ParseFunc
	Decode   DecodeFunc

	// includeDirs is the stack of directories each nested include(...)
	// resolves relative to; includeStack is the stack of resolved paths
	// currently being included, used to reject include cycles (an
	// original_source/ behavior spec.md's distillation omitted).
	includeDirs  []string
	includeStack []string
}

// NewEvaluator builds an evaluator rooted at root, which should already
// carry the fixed built-in library (package builtins populates it).
// baseDir is the directory include(...) resolves its first path against.
func NewEvaluator(root *Scope, baseDir string) *Evaluator {
	return &Evaluator{
		current:     Chain{root},
		rootScope:   root,
		includeDirs: []string{baseDir},
	}
}

// Eval evaluates b to a Literal, or reports the error tree mirroring the
// portion of the call tree evaluation attempted (spec.md §7).
func (ev *Evaluator) Eval(b *tree.Block) (Literal, *NodeResult, *EvalError) {
	val, nr := ev.evalBlock(b)
	if nr.Outcome == Errored {
		return nil, nr, nr.Err
	}
	return val, nr, nil
}

// CurrentChain exposes the active scope chain to built-ins that need to
// run scope operations relative to the call site (defset, set, export,
// reexport, defproc, get).
func (ev *Evaluator) CurrentChain() Chain {
	return ev.current
}

func (ev *Evaluator) evalBlock(b *tree.Block) (Literal, *NodeResult) {
	nr := &NodeResult{ProcName: b.ProcName}

	if b.Quote != tree.None {
		node := b.WithQuoteCleared()
		var chain Chain
		if b.Quote == tree.Closure {
			chain = ev.current.Snapshot()
		} else {
			chain = ev.current.DeepSnapshot()
		}
		val := BlockValue{Node: node, Captured: chain}
		nr.Outcome = Success
		nr.Value = val
		return val, nr
	}

	ev.current = ev.current.Push(NewScope())
	defer func() { ev.current = ev.current.Pop() }()

	args := make([]Literal, 0, len(b.Args))
	nr.Children = make([]NodeResult, len(b.Args))
	for i, a := range b.Args {
		val, childNR := ev.evalBlock(a.Child)
		childNR.Expand = a.Expand
		nr.Children[i] = *childNR

		if childNR.Outcome == Errored {
			markUnreached(nr.Children[i+1:], b.Args[i+1:])
			nr.Outcome = Errored
			nr.Err = withCause(newError(childNR.Err.Kind, "argument %d to %q failed", i, b.ProcName), childNR.Err)
			return nil, nr
		}

		if a.Expand {
			list, ok := val.(List)
			if !ok {
				err := &EvalError{
					Kind:    ExpandNotList,
					Message: fmt.Sprintf("argument %d to %q is marked expand but is %s, not List", i, b.ProcName, val.Kind()),
				}
				childNR.Outcome = Errored
				childNR.Err = err
				nr.Children[i] = *childNR
				markUnreached(nr.Children[i+1:], b.Args[i+1:])
				nr.Outcome = Errored
				nr.Err = err
				return nil, nr
			}
			args = append(args, list.Elems...)
		} else {
			args = append(args, val)
		}
	}

	val, err := ev.resolveAndInvoke(b.ProcName, args)
	if err != nil {
		nr.Outcome = Errored
		nr.Err = err
		return nil, nr
	}
	nr.Outcome = Success
	nr.Value = val
	return val, nr
}

func markUnreached(results []NodeResult, args []tree.Arg) {
	for j := range args {
		results[j] = NodeResult{ProcName: args[j].Child.ProcName, Expand: args[j].Expand, Outcome: Unreached}
	}
}

// resolveAndInvoke implements spec.md §4.4 step 3 (name resolution) and
// step 4 (invoking the resolved binding).
func (ev *Evaluator) resolveAndInvoke(name string, args []Literal) (Literal, *EvalError) {
	if b, ok := ev.current.Lookup(name); ok {
		return ev.invoke(b, args)
	}
	if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		return String(name[1 : len(name)-1]), nil
	}
	if n, convErr := strconv.ParseInt(name, 10, 64); convErr == nil {
		return Int(n), nil
	}
	switch name {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	case "":
		return Void{}, nil
	}
	return nil, newError(UndefinedProc, "undefined procedure or variable %q", name)
}

func (ev *Evaluator) invoke(b Binding, args []Literal) (Literal, *EvalError) {
	switch bind := b.(type) {
	case NativeBinding:
		return bind.Fn(ev, args)
	case UserBinding:
		return ev.InvokeValue(BlockValue{Node: bind.Body, Captured: bind.Captured}, args)
	case VarBinding:
		if len(args) != 0 {
			return nil, newError(ArityMismatch, "variable binding does not accept call arguments")
		}
		return bind.Value, nil
	default:
		return nil, newError(UndefinedProc, "binding has no recognized shape")
	}
}

// EvalWithChain evaluates b against chain instead of the caller's active
// chain, restoring the caller's chain afterward. Unlike InvokeValue, it
// does not push a fresh argument scope first: built-ins that must
// re-enter a captured body repeatedly without adding a frame per call —
// `for`'s loop body, `while`'s condition and body — use this directly.
func (ev *Evaluator) EvalWithChain(chain Chain, b *tree.Block) (Literal, *EvalError) {
	saved := ev.current
	ev.current = chain
	val, nr := ev.evalBlock(b)
	ev.current = saved
	if nr.Outcome == Errored {
		return nil, nr.Err
	}
	return val, nil
}

// InvokeValue calls bv as a procedure: it binds $0, $1, …, $args in a
// fresh innermost scope, evaluates the body against bv's captured chain
// (not the caller's), and restores the caller's chain on return (spec.md
// §4.4 step 4 "User", §5).
func (ev *Evaluator) InvokeValue(bv BlockValue, args []Literal) (Literal, *EvalError) {
	fresh := NewScope()
	fresh.set("$args", VarBinding{Value: List{Elems: args}})
	for i, a := range args {
		fresh.set(fmt.Sprintf("$%d", i), VarBinding{Value: a})
	}

	saved := ev.current
	ev.current = bv.Captured.Push(fresh)
	val, nr := ev.evalBlock(bv.Node)
	ev.current = saved

	if nr.Outcome == Errored {
		return nil, nr.Err
	}
	return val, nil
}
