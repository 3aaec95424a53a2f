package parallel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gitrdm/trees/internal/bytecode"
	"github.com/gitrdm/trees/internal/grid"
)

// literalSource writes a one-block program: a leaf procedure with no
// arguments, named name, drawn as a single box (no arg-plugs to trace).
func literalSource(name string) string {
	top := "┌" + repeat("─", len(name)) + "┐"
	mid := "│" + name + "│"
	bot := "└" + repeat("─", len(name)) + "┘"
	return top + "\n" + mid + "\n" + bot + "\n"
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

func TestCompileDirEncodesEveryFile(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a", "bb", "ccc"}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n+".tr"), []byte(literalSource(n)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	results, err := CompileDir(context.Background(), dir, grid.Mono, 2)
	if err != nil {
		t.Fatalf("CompileDir: %v", err)
	}
	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Source, r.Err)
			continue
		}
		data, err := os.ReadFile(r.Output)
		if err != nil {
			t.Fatalf("reading %s: %v", r.Output, err)
		}
		if _, err := bytecode.Decode(data); err != nil {
			t.Errorf("%s: produced invalid bytecode: %v", r.Output, err)
		}
	}
}

func TestCompileDirReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.tr"), []byte("not a box at all\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := CompileDir(context.Background(), dir, grid.Mono, 1)
	if err != nil {
		t.Fatalf("CompileDir: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err == nil {
		t.Fatal("expected a parse error for a non-box source file")
	}
}
