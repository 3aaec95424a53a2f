package eval

import "github.com/gitrdm/trees/internal/tree"

// BlockValue is a Literal wrapping an un-invoked block together with the
// scope chain active when it was produced (spec.md §4.4 step 1). It is
// what a Quote or Closure block evaluates to, what `defproc` stores as a
// UserBinding's callable shape, and what control-flow built-ins like
// `for`, `while`, `exec`, and `defproc` itself receive and invoke.
//
// A Quoted value's chain is a DeepSnapshot at capture time: its frames are
// copies, so later mutation of the frames it was taken from is invisible
// to it. A Closure's chain shares the very same *Scope pointers as
// whatever was active at capture time, so mutation through either side is
// visible through the other (spec.md §8 P5).
type BlockValue struct {
	Node     *tree.Block
	Captured Chain
}

func (BlockValue) Kind() Kind { return KindBlockValue }

func (bv BlockValue) String() string {
	return "<block " + bv.Node.ProcName + ">"
}

func (bv BlockValue) Equal(o Literal) bool {
	obv, ok := o.(BlockValue)
	if !ok {
		return false
	}
	return bv.Node.Equal(obv.Node)
}
