package parse

import (
	"testing"

	"github.com/gitrdm/trees/internal/grid"
	"github.com/gitrdm/trees/internal/tree"
)

// helloAdditionLines draws spec.md's scenario 1: a "print" block whose
// single argument is a "+" block with children "3" and "4".
func helloAdditionLines() []string {
	return []string{
		"┌─────┐",
		"│print│",
		"└──┬──┘",
		" ┌─┴───┐",
		" │  +  │",
		" └┬──┬─┘",
		" ┌┴┐┌┴┐ ",
		" │3││4│ ",
		" └─┘└─┘ ",
	}
}

func TestParseHelloAddition(t *testing.T) {
	root, err := Parse(helloAdditionLines(), grid.Mono)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if root.ProcName != "print" {
		t.Fatalf("root proc = %q, want print", root.ProcName)
	}
	if len(root.Args) != 1 {
		t.Fatalf("root has %d args, want 1", len(root.Args))
	}

	plus := root.Args[0].Child
	if plus.ProcName != "+" {
		t.Fatalf("child proc = %q, want +", plus.ProcName)
	}
	if len(plus.Args) != 2 {
		t.Fatalf("+ has %d args, want 2", len(plus.Args))
	}
	if plus.Args[0].Child.ProcName != "3" || plus.Args[1].Child.ProcName != "4" {
		t.Fatalf("+ args = %q, %q; want 3, 4", plus.Args[0].Child.ProcName, plus.Args[1].Child.ProcName)
	}
	for _, a := range root.Args {
		if a.Expand {
			t.Error("no arg in this program should be marked expand")
		}
	}
}

// TestParseArgOrderInvariance covers spec.md P2: rearranging whitespace
// that doesn't move any cell leaves arg order unchanged. We rebuild the
// same program from two textually different (but cell-identical) line
// sets and check the resulting trees are equal.
func TestParseArgOrderInvariance(t *testing.T) {
	a, err := Parse(helloAdditionLines(), grid.Mono)
	if err != nil {
		t.Fatalf("Parse(a): %v", err)
	}

	lines := helloAdditionLines()
	// Trailing whitespace on a line never changes any cell's column, so
	// appending the same trailing spaces to every line must not change arg
	// order.
	padded := make([]string, len(lines))
	for i, l := range lines {
		padded[i] = l + "   "
	}
	b, err := Parse(padded, grid.Mono)
	if err != nil {
		t.Fatalf("Parse(b): %v", err)
	}

	if !a.Equal(b) {
		t.Error("trailing whitespace changed the parsed tree")
	}
}

func TestParseNonUniqueRoot(t *testing.T) {
	// Two independent, unconnected boxes: neither has an incoming edge and
	// neither has a block-plug, so both are root candidates.
	lines := []string{
		"┌─┐ ┌─┐",
		"│a│ │b│",
		"└─┘ └─┘",
	}
	_, err := Parse(lines, grid.Mono)
	var nuErr *NonUniqueRootError
	if err == nil {
		t.Fatal("expected a non-unique-root error")
	}
	if !asNonUniqueRoot(err, &nuErr) {
		t.Fatalf("got %T, want *NonUniqueRootError", err)
	}
	if len(nuErr.Candidates) != 2 {
		t.Errorf("got %d candidates, want 2", len(nuErr.Candidates))
	}
}

func asNonUniqueRoot(err error, out **NonUniqueRootError) bool {
	e, ok := err.(*NonUniqueRootError)
	if ok {
		*out = e
	}
	return ok
}

func TestParseDanglingEdge(t *testing.T) {
	// print's bottom arg-plug points straight down into blank space: no
	// block-plug ever appears there.
	lines := []string{
		"┌─────┐",
		"│print│",
		"└──┬──┘",
		"       ",
	}
	_, err := Parse(lines, grid.Mono)
	de, ok := err.(*DanglingEdgeError)
	if !ok {
		t.Fatalf("got %T (%v), want *DanglingEdgeError", err, err)
	}
	if de.X != 3 || de.Y != 3 {
		t.Errorf("terminal coord = (%d,%d), want (3,3)", de.X, de.Y)
	}
}

func TestParseDeterminism(t *testing.T) {
	// P1: parse is a pure function of (lines, mode).
	lines := helloAdditionLines()
	a, errA := Parse(lines, grid.Mono)
	b, errB := Parse(lines, grid.Mono)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if !a.Equal(b) {
		t.Error("parsing the same input twice produced different trees")
	}
}

// sanity check that tree.Block's own Equal is exercised at all, since the
// tests above lean on it heavily.
func TestBlockEqualSelf(t *testing.T) {
	b := &tree.Block{ProcName: "x"}
	if !b.Equal(b) {
		t.Error("a tree must equal itself")
	}
}
