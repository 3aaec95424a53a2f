// Package parse implements components B and C of the design: the block
// finder (locating every well-formed rectangle and its plug sockets) and
// the edge tracer & linker (following line segments between plugs and
// assembling the call tree). Parse is the package's single entry point;
// everything else here is plumbing it uses internally.
package parse

import "github.com/gitrdm/trees/internal/tree"

// Orientation is the direction a plug faces, away from the block body.
type Orientation int

const (
	Up Orientation = iota
	Left
	Right
	Down
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "?"
	}
}

// Plug is a point where a block attaches to a line.
type Plug struct {
	X, Y        int
	Orientation Orientation
}

// BlockPlug is the single optional result socket on a block's top edge.
type BlockPlug struct {
	Plug
	Quote tree.Quote
}

// ArgPlug is one argument socket on a block's right, bottom, or left edge.
type ArgPlug struct {
	Plug
	Expand bool
}

// quoteForMarker maps a top-edge marker glyph to its quote style, per
// spec.md §4.2 rule 1: ┴ => None, • => Quote, / => Closure.
func quoteForMarker(glyph string) (tree.Quote, bool) {
	switch glyph {
	case "┴":
		return tree.None, true
	case "•":
		return tree.Quoted, true
	case "/":
		return tree.Closure, true
	default:
		return tree.None, false
	}
}
