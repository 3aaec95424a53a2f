package grid

import "testing"

func TestGridGet(t *testing.T) {
	t.Run("cell boundary returns the cell", func(t *testing.T) {
		g := New([]string{"abc"}, Mono)
		c, ok := g.Get(1, 0)
		if !ok {
			t.Fatal("expected a cell at x=1")
		}
		if c.Text != "b" {
			t.Errorf("got %q, want %q", c.Text, "b")
		}
	})

	t.Run("out of range is absent, not an error", func(t *testing.T) {
		g := New([]string{"abc"}, Mono)
		if _, ok := g.Get(99, 0); ok {
			t.Error("expected absent cell")
		}
		if _, ok := g.Get(0, 99); ok {
			t.Error("expected absent row")
		}
	})
}

func TestGridRightLeftX(t *testing.T) {
	g := New([]string{"abc"}, Mono)

	t.Run("RightX steps one cell forward", func(t *testing.T) {
		x, ok := g.RightX(0, 0)
		if !ok || x != 1 {
			t.Errorf("RightX(0,0) = %d, %v; want 1, true", x, ok)
		}
	})

	t.Run("RightX at the last cell is absent", func(t *testing.T) {
		if _, ok := g.RightX(2, 0); ok {
			t.Error("expected no cell to the right of the last cell")
		}
	})

	t.Run("LeftX steps one cell backward", func(t *testing.T) {
		x, ok := g.LeftX(2, 0)
		if !ok || x != 1 {
			t.Errorf("LeftX(2,0) = %d, %v; want 1, true", x, ok)
		}
	})

	t.Run("LeftX at the first cell is absent", func(t *testing.T) {
		if _, ok := g.LeftX(0, 0); ok {
			t.Error("expected no cell to the left of the first cell")
		}
	})
}

func TestGridSlice(t *testing.T) {
	g := New([]string{"[hello]"}, Mono)

	t.Run("strict interior slice", func(t *testing.T) {
		s, ok := g.Slice(0, 6, 0)
		if !ok {
			t.Fatal("expected slice to succeed")
		}
		if s != "hello" {
			t.Errorf("got %q, want %q", s, "hello")
		}
	})

	t.Run("xMaxExclusive past the last cell succeeds at the row end boundary", func(t *testing.T) {
		s, ok := g.Slice(0, 7, 0)
		if !ok || s != "hello]" {
			t.Errorf("got %q, %v; want %q, true", s, ok, "hello]")
		}
	})

	t.Run("xMaxExclusive not a cell boundary fails", func(t *testing.T) {
		// Every index here is already a boundary for ASCII mono cells, so
		// use an out-of-range value to exercise the failure path.
		if _, ok := g.Slice(0, 999, 0); ok {
			t.Error("expected failure for a non-boundary xMaxExclusive")
		}
	})
}

func TestGridWideCharacters(t *testing.T) {
	// A CJK box drawn with fullwidth corner-equivalents; widths differ
	// from a mono ASCII box, but cell adjacency (x + len = next x) must
	// still hold so line tracing works identically. We use ideographs
	// standing in for "wide" characters since real fullwidth box glyphs
	// render ambiguous in many fonts; what matters here is the width
	// arithmetic, not the literal glyphs.
	g := New([]string{"漢字abc"}, Full)

	c0, _ := g.Get(0, 0)
	if c0.Len != 2 {
		t.Fatalf("want width 2 for a wide ideograph, got %d", c0.Len)
	}
	c1, ok := g.Get(2, 0)
	if !ok {
		t.Fatal("expected a cell immediately after the first wide rune")
	}
	if c1.Text != "字" {
		t.Errorf("got %q, want %q", c1.Text, "字")
	}

	rightX, ok := g.RightX(0, 0)
	if !ok || rightX != 2 {
		t.Errorf("RightX(0,0) = %d, %v; want 2, true", rightX, ok)
	}
}
