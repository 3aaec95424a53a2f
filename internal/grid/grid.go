// Package grid turns raw source lines into a positioned grid of cells,
// the leaf data structure the block finder and edge tracer walk over.
//
// A grid is built once, from a whole file, and is immutable afterwards:
// every query (Get, LeftX, RightX, Slice) is a pure function of the grid's
// contents and the requested coordinates. Coordinates are cell indices
// ("column x"), not byte or rune offsets, which is what lets the parser
// trace lines correctly through wide CJK characters (see WidthMode).
package grid

import "strings"

// Cell is one visible character (grapheme cluster) at a fixed column.
type Cell struct {
	Text string // the cell's rune(s), e.g. "┌" or "漢"
	X    int    // 0-based column of this cell
	Len  int    // display width: 1, 2, or the configured East-Asian width
}

// Row is an ordered, left-to-right sequence of cells for one source line.
type Row struct {
	cells []Cell
}

// Grid is an ordered sequence of rows built from a list of source lines.
type Grid struct {
	rows []Row
	mode WidthMode
}

// New builds a Grid from lines (already split on "\n") using mode to
// compute each cell's display width.
func New(lines []string, mode WidthMode) *Grid {
	g := &Grid{mode: mode}
	g.rows = make([]Row, len(lines))
	for y, line := range lines {
		g.rows[y] = newRow(line, mode)
	}
	return g
}

func newRow(line string, mode WidthMode) Row {
	clusters := graphemes(line)
	cells := make([]Cell, len(clusters))
	x := 0
	for i, c := range clusters {
		w := cellWidth(c, mode)
		cells[i] = Cell{Text: c, X: x, Len: w}
		x += w
	}
	return Row{cells: cells}
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int { return len(g.rows) }

// Get returns the cell at (x, y) and true, or the zero Cell and false if
// no cell starts exactly at that column on that row.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if y < 0 || y >= len(g.rows) {
		return Cell{}, false
	}
	row := g.rows[y]
	// Cells are stored in ascending X order with no gaps smaller than a
	// cell's width, so a linear scan is simple and, for the line lengths
	// box-drawing source files actually have, fast enough; a binary
	// search would pay for itself only on pathologically wide rows.
	for _, c := range row.cells {
		if c.X == x {
			return c, true
		}
		if c.X > x {
			break
		}
	}
	return Cell{}, false
}

// RightX returns the X of the cell immediately to the right of the cell
// at (x, y), or false if there is no cell at (x, y) or no cell follows it.
func (g *Grid) RightX(x, y int) (int, bool) {
	c, ok := g.Get(x, y)
	if !ok {
		return 0, false
	}
	if _, ok := g.Get(c.X+c.Len, y); !ok {
		return 0, false
	}
	return c.X + c.Len, true
}

// LeftX returns the X of the cell immediately to the left of the cell at
// (x, y), or false if there is no cell at (x, y) or no cell precedes it.
func (g *Grid) LeftX(x, y int) (int, bool) {
	if y < 0 || y >= len(g.rows) {
		return 0, false
	}
	row := g.rows[y]
	var prev *Cell
	for i := range row.cells {
		if row.cells[i].X == x {
			if prev == nil {
				return 0, false
			}
			return prev.X, true
		}
		if row.cells[i].X > x {
			break
		}
		prev = &row.cells[i]
	}
	return 0, false
}

// Slice concatenates the cell text strictly between columns xMinExclusive
// and xMaxExclusive on row y. Slice fails unless xMaxExclusive is the X
// of an actual cell on that row or the column immediately past the last
// cell, per §4.1; xMinExclusive is not checked.
func (g *Grid) Slice(xMinExclusive, xMaxExclusive, y int) (string, bool) {
	if y < 0 || y >= len(g.rows) {
		return "", false
	}
	row := g.rows[y]
	if !g.isBoundary(row, xMaxExclusive) {
		return "", false
	}

	var b strings.Builder
	for _, c := range row.cells {
		if c.X <= xMinExclusive {
			continue
		}
		if c.X >= xMaxExclusive {
			break
		}
		b.WriteString(c.Text)
	}
	return b.String(), true
}

// isBoundary reports whether x is the X of some cell in row, or is exactly
// the column one past the row's last cell (the row's end boundary).
func (g *Grid) isBoundary(row Row, x int) bool {
	if len(row.cells) == 0 {
		return x == 0
	}
	for _, c := range row.cells {
		if c.X == x {
			return true
		}
	}
	last := row.cells[len(row.cells)-1]
	return x == last.X+last.Len
}
