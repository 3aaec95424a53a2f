package parse

import (
	"github.com/gitrdm/trees/internal/grid"
	"github.com/gitrdm/trees/internal/tree"
)

// Parse turns source lines into a call tree: it builds the grid (A),
// finds every well-formed block (B), traces every arg-plug's edge to the
// block-plug that produces its value (C), selects the unique rootless
// block, and materializes the root's subtree (spec.md §4.3 "Output").
//
// Parse is a pure function of (lines, mode) — spec.md §8 P1.
func Parse(lines []string, mode grid.WidthMode) (*tree.Block, error) {
	g := grid.New(lines, mode)
	blocks := findBlocks(g)

	var roots []*CompilingBlock
	for _, b := range blocks {
		if b.BlockPlug == nil {
			roots = append(roots, b)
		}
	}
	if len(roots) != 1 {
		return nil, &NonUniqueRootError{Candidates: roots}
	}

	return buildTree(g, blocks, roots[0])
}

// buildTree recursively assembles the call tree rooted at cb, tracing
// each of its arg-plugs to its child block in arg order.
func buildTree(g *grid.Grid, blocks []*CompilingBlock, cb *CompilingBlock) (*tree.Block, error) {
	quote := tree.None
	if cb.BlockPlug != nil {
		quote = cb.BlockPlug.Quote
	}

	b := &tree.Block{ProcName: cb.ProcName, Quote: quote}
	if len(cb.ArgPlugs) == 0 {
		return b, nil
	}

	b.Args = make([]tree.Arg, len(cb.ArgPlugs))
	for i, plug := range cb.ArgPlugs {
		fragments, x, y, stopped := traceEdge(g, plug)
		target := matchBlockPlug(blocks, x, y)
		if !stopped || target == nil {
			return nil, &DanglingEdgeError{Owner: cb, Plug: plug, Fragments: fragments, X: x, Y: y}
		}

		child, err := buildTree(g, blocks, target)
		if err != nil {
			return nil, err
		}
		b.Args[i] = tree.Arg{Expand: plug.Expand, Child: child}
	}
	return b, nil
}

// matchBlockPlug finds the block whose block-plug sits at (x, y), or nil.
func matchBlockPlug(blocks []*CompilingBlock, x, y int) *CompilingBlock {
	for _, b := range blocks {
		if b.BlockPlug != nil && b.BlockPlug.X == x && b.BlockPlug.Y == y {
			return b
		}
	}
	return nil
}
