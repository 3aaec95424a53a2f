package parallel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gitrdm/trees/internal/bytecode"
	"github.com/gitrdm/trees/internal/grid"
	"github.com/gitrdm/trees/internal/parse"
)

// CompileResult reports the outcome of compiling a single .tr file.
type CompileResult struct {
	Source string
	Output string
	Err    error
}

// CompileDir parses and bytecode-encodes every .tr file under dir,
// writing each one's .trm sibling, using a WorkerPool sized to workers
// (0 meaning runtime.NumCPU()). Files are independent: a .trm's
// structure is a pure function of its own .tr source, so compiling the
// whole directory is an embarrassingly parallel batch rather than
// anything that needs the scaling or stealing machinery a live,
// interdependent workload would.
func CompileDir(ctx context.Context, dir string, mode grid.WidthMode, workers int) ([]CompileResult, error) {
	sources, err := findSources(dir)
	if err != nil {
		return nil, err
	}

	pool := NewWorkerPool(workers)
	defer pool.Shutdown()

	results := make([]CompileResult, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		i, src := i, src
		wg.Add(1)
		task := func() {
			defer wg.Done()
			out, cerr := compileOne(src, mode)
			results[i] = CompileResult{Source: src, Output: out, Err: cerr}
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			results[i] = CompileResult{Source: src, Err: err}
		}
	}
	wg.Wait()
	return results, nil
}

func findSources(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tr") {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func compileOne(src string, mode grid.WidthMode) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}
	root, err := parse.Parse(strings.Split(string(data), "\n"), mode)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", src, err)
	}
	encoded, err := bytecode.Encode(root)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", src, err)
	}
	out := strings.TrimSuffix(src, ".tr") + ".trm"
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}
