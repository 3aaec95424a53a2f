package eval

// The methods in this file implement spec.md §4.4's "Scope operations".
// They are called from inside a NativeBinding.Fn, at which point
// ev.current's innermost frame is always the argument scope evalBlock
// pushed for the call in progress (frame 0); frame 1 is therefore "the
// caller's own frame" that defset's doc comment in spec.md refers to as
// the user-visible target, distinct from that transient argument scope.

// Defset binds name in the parent of the innermost scope, overwriting
// any prior binding there.
func (ev *Evaluator) Defset(name string, v Literal) *EvalError {
	target := ev.current.scopeAt(1)
	if target == nil {
		return newError(UndefinedVar, "defset(%q): no enclosing frame to bind into", name)
	}
	target.set(name, VarBinding{Value: v})
	return nil
}

// SetVar finds the nearest scope binding name and overwrites it in
// place, failing if name is unbound anywhere on the chain.
func (ev *Evaluator) SetVar(name string, v Literal) *EvalError {
	for i := len(ev.current) - 1; i >= 0; i-- {
		if _, ok := ev.current[i].get(name); ok {
			ev.current[i].set(name, VarBinding{Value: v})
			return nil
		}
	}
	return newError(UndefinedVar, "set(%q): no binding found", name)
}

// Export copies the nearest binding of name into the frame one call out
// from the caller's own frame, making the current frame's definitions
// visible to whatever invoked it.
func (ev *Evaluator) Export(name string) *EvalError {
	b, ok := ev.current.Lookup(name)
	if !ok {
		return newError(UndefinedVar, "export(%q): no binding found", name)
	}
	target := ev.current.scopeAt(2)
	if target == nil {
		return newError(UndefinedVar, "export(%q): no frame two calls out to export into", name)
	}
	target.set(name, b)
	return nil
}

// Reexport copies every binding from the caller's own frame (frame 1,
// where defset and defproc bind) into the two frames enclosing it
// (frames 2 and 3), for pass-through module re-exports.
func (ev *Evaluator) Reexport() {
	inner := ev.current.scopeAt(1)
	if inner == nil {
		return
	}
	for _, n := range []int{2, 3} {
		target := ev.current.scopeAt(n)
		if target == nil {
			continue
		}
		for name, b := range inner.bindings {
			target.set(name, b)
		}
	}
}

// Defproc binds name in the parent scope to a user procedure whose body
// and captured chain come from bv.
func (ev *Evaluator) Defproc(name string, bv BlockValue) *EvalError {
	target := ev.current.scopeAt(1)
	if target == nil {
		return newError(UndefinedVar, "defproc(%q): no enclosing frame to bind into", name)
	}
	target.set(name, UserBinding{Body: bv.Node, Captured: bv.Captured})
	return nil
}

// GetDynamic looks up name (computed at runtime, unlike the static
// proc-name resolution of an ordinary call) and returns its value: a
// variable's stored Literal, or a callable's shape re-wrapped as a
// BlockValue so a dynamically-fetched procedure can still be invoked
// with exec.
func (ev *Evaluator) GetDynamic(name string) (Literal, *EvalError) {
	b, ok := ev.current.Lookup(name)
	if !ok {
		return nil, newError(UndefinedVar, "get(%q): no binding found", name)
	}
	switch bind := b.(type) {
	case VarBinding:
		return bind.Value, nil
	case UserBinding:
		return BlockValue{Node: bind.Body, Captured: bind.Captured}, nil
	default:
		return nil, newError(UndefinedVar, "get(%q): binding is a native procedure, which has no literal form", name)
	}
}
