package eval

import "github.com/gitrdm/trees/internal/tree"

// Scope is one frame of bindings. It is always handled through a *Scope
// pointer and never copied: spec.md §5 requires scope references to be
// "shared, mutable, and reference-counted (or equivalent)" so a closure's
// captured frame keeps observing later mutation. A Go pointer to a single-
// threaded evaluator's map already has exactly that property — the
// garbage collector is the reference count — so no extra bookkeeping is
// needed here.
type Scope struct {
	bindings map[string]Binding
}

// NewScope returns an empty frame.
func NewScope() *Scope {
	return &Scope{bindings: make(map[string]Binding)}
}

func (s *Scope) get(name string) (Binding, bool) {
	b, ok := s.bindings[name]
	return b, ok
}

func (s *Scope) set(name string, b Binding) {
	s.bindings[name] = b
}

// Bind is the exported form of set, for package builtins to populate a
// root scope with the fixed procedure library.
func (s *Scope) Bind(name string, b Binding) {
	s.set(name, b)
}

// Chain is an ordered list of scopes, outermost first, innermost last.
// Name resolution walks it from the end backward. A Chain value is a
// snapshot of which scopes are active — copying the slice never copies
// the Scopes it points to, so two Chains can share frames (this is how a
// Closure literal's capture works) while each independently grows its own
// innermost frame.
type Chain []*Scope

// Innermost is the scope new bindings and name resolution start from.
func (c Chain) Innermost() *Scope {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Push returns a new chain with s appended as the innermost frame. It
// never mutates c.
func (c Chain) Push(s *Scope) Chain {
	next := make(Chain, len(c)+1)
	copy(next, c)
	next[len(c)] = s
	return next
}

// Pop returns c with its innermost frame removed.
func (c Chain) Pop() Chain {
	if len(c) == 0 {
		return c
	}
	return c[:len(c)-1]
}

// Snapshot copies c so later Pushes to the original do not extend the
// copy. Used when a Closure block captures "the current scope chain" at
// a point in time (spec.md §4.4 step 1); a Quote block uses DeepSnapshot.
func (c Chain) Snapshot() Chain {
	cp := make(Chain, len(c))
	copy(cp, c)
	return cp
}

// DeepSnapshot copies c into scopes that no longer share bindings maps
// with the original frames. A Quote block uses this (spec.md §4.4 step
// 1): a quoted value is data, so mutating the scope it was read from
// afterward must not change what the quoted value sees. Contrast
// Snapshot, which a Closure uses to keep the live sharing mutation relies
// on (spec.md §8 P5).
func (c Chain) DeepSnapshot() Chain {
	cp := make(Chain, len(c))
	for i, s := range c {
		clone := NewScope()
		for name, b := range s.bindings {
			clone.bindings[name] = b
		}
		cp[i] = clone
	}
	return cp
}

// scopeAt walks n frames out from the innermost, 0 meaning the innermost
// scope itself. It returns nil if n reaches past the outermost frame.
func (c Chain) scopeAt(n int) *Scope {
	idx := len(c) - 1 - n
	if idx < 0 {
		return nil
	}
	return c[idx]
}

// Lookup finds the binding for name, searching from the innermost frame
// outward, per spec.md §4.4 step 3's "some enclosing scope binds it".
func (c Chain) Lookup(name string) (Binding, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if b, ok := c[i].get(name); ok {
			return b, true
		}
	}
	return nil, false
}

// Binding is what a name resolves to: a native Go procedure, a
// user-defined procedure, or a plain variable.
type Binding interface {
	isBinding()
}

// NativeBinding wraps a built-in implemented directly in Go (package
// builtins populates these). Fn receives the evaluator so it can invoke
// blocks (for/while/exec) or use I/O callbacks (print/read line/cmd).
type NativeBinding struct {
	Name string
	Fn   func(ev *Evaluator, args []Literal) (Literal, *EvalError)
}

func (NativeBinding) isBinding() {}

// UserBinding is a procedure introduced by defproc: a body to evaluate
// and the scope chain captured at definition time.
type UserBinding struct {
	Body     *tree.Block
	Captured Chain
}

func (UserBinding) isBinding() {}

// VarBinding is a plain variable, as bound by defset/set or the $0, $1,
// …, $args call-argument sentinels.
type VarBinding struct {
	Value Literal
}

func (VarBinding) isBinding() {}
