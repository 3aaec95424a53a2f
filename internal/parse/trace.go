package parse

import "github.com/gitrdm/trees/internal/grid"

// Fragment is one step of a traced edge: the cell visited and the
// direction of travel through it.
type Fragment struct {
	X, Y        int
	Orientation Orientation
}

// Edge is the path traced from one arg-plug to a block-plug.
type Edge struct {
	Owner     *CompilingBlock
	Plug      ArgPlug
	Fragments []Fragment
	Target    *CompilingBlock
}

// transition implements the direction-specific table of spec.md §4.3: for
// the character found while traveling in dir, it reports whether the line
// continues (and in which direction) or stops here.
func transition(dir Orientation, glyph string) (next Orientation, continues bool) {
	switch dir {
	case Up:
		switch glyph {
		case "│":
			return Up, true
		case "┐":
			return Left, true
		case "┌":
			return Right, true
		}
	case Down:
		switch glyph {
		case "│":
			return Down, true
		case "┘":
			return Left, true
		case "└":
			return Right, true
		}
	case Left:
		switch glyph {
		case "─":
			return Left, true
		case "└":
			return Up, true
		case "┌":
			return Down, true
		}
	case Right:
		switch glyph {
		case "─":
			return Right, true
		case "┘":
			return Up, true
		case "┐":
			return Down, true
		}
	}
	return dir, false
}

// step advances one cell in dir from (x, y), using left_x/right_x to jump
// by a cell's display width for horizontal movement.
func step(g *grid.Grid, x, y int, dir Orientation) (nx, ny int, ok bool) {
	switch dir {
	case Up:
		return x, y - 1, true
	case Down:
		return x, y + 1, true
	case Left:
		lx, ok := g.LeftX(x, y)
		return lx, y, ok
	case Right:
		rx, ok := g.RightX(x, y)
		return rx, y, ok
	}
	return 0, 0, false
}

// traceEdge follows a line starting at plug until it stops, per spec.md
// §4.3. It returns the fragments collected and the terminal coordinate —
// the cell the trace stopped at, whether or not that cell turns out to be
// a block-plug. The caller (link.go) is responsible for matching the
// terminal coordinate against known block-plugs and producing a
// DanglingEdgeError if it does not match one.
func traceEdge(g *grid.Grid, plug ArgPlug) (fragments []Fragment, termX, termY int, reached bool) {
	dir := plug.Orientation
	x, y := plug.X, plug.Y

	for {
		nx, ny, ok := step(g, x, y, dir)
		if !ok {
			return fragments, nx, ny, false
		}
		c, ok := g.Get(nx, ny)
		if !ok {
			return fragments, nx, ny, false
		}

		next, continues := transition(dir, c.Text)
		if !continues {
			// This cell is not a line character under the current
			// direction's transition table; it is either a block-plug
			// (success, checked by the caller) or garbage (dangling).
			return fragments, nx, ny, true
		}

		fragments = append(fragments, Fragment{X: nx, Y: ny, Orientation: next})
		x, y, dir = nx, ny, next
	}
}
