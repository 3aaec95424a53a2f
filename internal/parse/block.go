package parse

import (
	"sort"
	"strings"

	"github.com/gitrdm/trees/internal/grid"
)

// CompilingBlock is a located box, with its text and plug sockets, before
// linking resolves its argument edges to other blocks. It is the parser's
// working representation; once the call tree is built (Parse), compiling
// blocks are discarded.
type CompilingBlock struct {
	X, Y          int
	Width, Height int
	ProcName      string
	BlockPlug     *BlockPlug // nil iff this block has no result socket
	ArgPlugs      []ArgPlug  // in the total order fixed by §4.2
}

// findBlocks scans every grid position for a well-formed rectangle. A
// position that does not match any of the four edge-walk patterns simply
// contributes no block — spec.md §4.2's "Malformed block" case, which is
// not itself an error (it only becomes one downstream, via a dangling edge
// or a non-unique root, if it leaves the program unparseable).
func findBlocks(g *grid.Grid) []*CompilingBlock {
	var blocks []*CompilingBlock
	for y := 0; y < g.Height(); y++ {
		x := 0
		for {
			c, ok := g.Get(x, y)
			if !ok {
				break
			}
			if c.Text == "┌" {
				if b, ok := tryBlock(g, x, y); ok {
					blocks = append(blocks, b)
				}
			}
			x = c.X + c.Len
		}
	}
	return blocks
}

// tryBlock attempts to build a CompilingBlock whose top-left corner is the
// "┌" at (x, y). All four edge walks must succeed (spec.md §4.2).
func tryBlock(g *grid.Grid, x, y int) (*CompilingBlock, bool) {
	xRight, blockPlug, ok := walkTopEdge(g, x, y)
	if !ok {
		return nil, false
	}
	yBottom, rightPlugs, ok := walkRightEdge(g, xRight, y)
	if !ok {
		return nil, false
	}
	bottomPlugs, ok := walkBottomEdge(g, x, yBottom, xRight)
	if !ok {
		return nil, false
	}
	leftPlugs, ok := walkLeftEdge(g, x, y, yBottom)
	if !ok {
		return nil, false
	}

	procName, ok := readProcName(g, x, xRight, y, yBottom)
	if !ok {
		return nil, false
	}

	argPlugs := make([]ArgPlug, 0, len(leftPlugs)+len(bottomPlugs)+len(rightPlugs))
	argPlugs = append(argPlugs, leftPlugs...)
	argPlugs = append(argPlugs, bottomPlugs...)
	argPlugs = append(argPlugs, rightPlugs...)
	orderArgPlugs(argPlugs, x, xRight)

	return &CompilingBlock{
		X: x, Y: y,
		Width:     xRight - x,
		Height:    yBottom - y,
		ProcName:  procName,
		BlockPlug: blockPlug,
		ArgPlugs:  argPlugs,
	}, true
}

// walkTopEdge scans rightward from the "┌" at (x, y), looking for at most
// one block-plug marker, and must end at "┐" on the same row.
func walkTopEdge(g *grid.Grid, x, y int) (xRight int, plug *BlockPlug, ok bool) {
	c, ok := g.Get(x, y)
	if !ok || c.Text != "┌" {
		return 0, nil, false
	}
	cur := c.X + c.Len
	for {
		cc, ok := g.Get(cur, y)
		if !ok {
			return 0, nil, false
		}
		switch cc.Text {
		case "─":
			cur = cc.X + cc.Len
		case "┐":
			return cc.X, plug, true
		case "┴", "•", "/":
			if plug != nil {
				return 0, nil, false // more than one marker: reject silently
			}
			q, _ := quoteForMarker(cc.Text)
			plug = &BlockPlug{Plug: Plug{X: cc.X, Y: y, Orientation: Up}, Quote: q}
			cur = cc.X + cc.Len
		default:
			return 0, nil, false
		}
	}
}

// walkRightEdge descends from (xRight, y+1), collecting arg-plugs, and
// must end at "┘".
func walkRightEdge(g *grid.Grid, xRight, y int) (yBottom int, plugs []ArgPlug, ok bool) {
	cur := y + 1
	for {
		c, ok := g.Get(xRight, cur)
		if !ok {
			return 0, nil, false
		}
		switch c.Text {
		case "│":
			cur++
		case "├":
			plugs = append(plugs, ArgPlug{Plug: Plug{X: xRight, Y: cur, Orientation: Right}})
			cur++
		case "@":
			plugs = append(plugs, ArgPlug{Plug: Plug{X: xRight, Y: cur, Orientation: Right}, Expand: true})
			cur++
		case "┘":
			return cur, plugs, true
		default:
			return 0, nil, false
		}
	}
}

// walkBottomEdge scans rightward from "└" at (x, yBottom), collecting
// arg-plugs, and must reach exactly column xRight.
func walkBottomEdge(g *grid.Grid, x, yBottom, xRight int) ([]ArgPlug, bool) {
	c, ok := g.Get(x, yBottom)
	if !ok || c.Text != "└" {
		return nil, false
	}
	cur := c.X + c.Len
	var plugs []ArgPlug
	for cur < xRight {
		cc, ok := g.Get(cur, yBottom)
		if !ok {
			return nil, false
		}
		switch cc.Text {
		case "─":
			cur = cc.X + cc.Len
		case "┬":
			plugs = append(plugs, ArgPlug{Plug: Plug{X: cc.X, Y: yBottom, Orientation: Down}})
			cur = cc.X + cc.Len
		case "@":
			plugs = append(plugs, ArgPlug{Plug: Plug{X: cc.X, Y: yBottom, Orientation: Down}, Expand: true})
			cur = cc.X + cc.Len
		default:
			return nil, false
		}
	}
	if cur != xRight {
		return nil, false
	}
	return plugs, true
}

// walkLeftEdge descends from (x, y+1), collecting arg-plugs, and must
// reach exactly row yBottom (where "└" was already confirmed).
func walkLeftEdge(g *grid.Grid, x, y, yBottom int) ([]ArgPlug, bool) {
	var plugs []ArgPlug
	for cur := y + 1; cur < yBottom; cur++ {
		c, ok := g.Get(x, cur)
		if !ok {
			return nil, false
		}
		switch c.Text {
		case "│":
		case "┤":
			plugs = append(plugs, ArgPlug{Plug: Plug{X: x, Y: cur, Orientation: Left}})
		case "@":
			plugs = append(plugs, ArgPlug{Plug: Plug{X: x, Y: cur, Orientation: Left}, Expand: true})
		default:
			return nil, false
		}
	}
	return plugs, true
}

// readProcName trims each interior row's strict slice, joins with "\n",
// then trims the whole result, per spec.md §4.2.
func readProcName(g *grid.Grid, xLeft, xRight, yTop, yBottom int) (string, bool) {
	var lines []string
	for y := yTop + 1; y < yBottom; y++ {
		s, ok := g.Slice(xLeft, xRight, y)
		if !ok {
			return "", false
		}
		lines = append(lines, strings.TrimSpace(s))
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), true
}

// orderArgPlugs sorts plugs into the total order of spec.md §4.2: primary
// key x ascending; at the left edge (x == xLeft), y ascending; at the
// right edge (x == xRight), y descending; otherwise insertion order.
func orderArgPlugs(plugs []ArgPlug, xLeft, xRight int) {
	sort.SliceStable(plugs, func(i, j int) bool {
		a, b := plugs[i], plugs[j]
		if a.X != b.X {
			return a.X < b.X
		}
		switch a.X {
		case xLeft:
			return a.Y < b.Y
		case xRight:
			return a.Y > b.Y
		default:
			return false
		}
	})
}
