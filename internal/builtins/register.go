package builtins

import "github.com/gitrdm/trees/internal/eval"

// NewRootScope builds a scope carrying the fixed procedure library of
// spec.md §4.4 (F): arithmetic, booleans, comparisons, strings, lists,
// control flow, scope/module operations, the escape-constant variables,
// and the four host-I/O procedures plus include. The evaluator is
// otherwise unaware any of this exists.
func NewRootScope() *eval.Scope {
	root := eval.NewScope()
	installArith(root)
	installBooleans(root)
	installStrings(root)
	installLists(root)
	installControlFlow(root)
	installScopeOps(root)
	installIO(root)
	installEscapes(root)
	return root
}
