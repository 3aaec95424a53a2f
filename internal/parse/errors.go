package parse

import (
	"fmt"
	"strings"
)

// NonUniqueRootError reports that parsing did not find exactly one
// rootless block (spec.md §4.3 "Root selection", §7).
type NonUniqueRootError struct {
	Candidates []*CompilingBlock
}

func (e *NonUniqueRootError) Error() string {
	if len(e.Candidates) == 0 {
		return "trees: no block without a block-plug was found (program has no root)"
	}
	coords := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		coords[i] = fmt.Sprintf("(%d,%d) %q", c.X, c.Y, c.ProcName)
	}
	return fmt.Sprintf("trees: %d blocks have no block-plug, exactly one is required as the root: %s",
		len(e.Candidates), strings.Join(coords, ", "))
}

// DanglingEdgeError reports that an arg-plug's traced line did not
// terminate at any block-plug (spec.md §4.3, §7).
type DanglingEdgeError struct {
	Owner     *CompilingBlock
	Plug      ArgPlug
	Fragments []Fragment
	X, Y      int // the coordinate tracing stopped at
}

func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf(
		"trees: dangling edge from block %q at (%d,%d) arg-plug (%d,%d): trace stopped at (%d,%d) without reaching a block-plug",
		e.Owner.ProcName, e.Owner.X, e.Owner.Y, e.Plug.X, e.Plug.Y, e.X, e.Y)
}
