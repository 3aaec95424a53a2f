// Command trees runs the 2-D box-drawing interpreter: it compiles
// source diagrams to bytecode, executes bytecode, or parses and
// executes source directly, per the --mode flag.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gitrdm/trees/internal/builtins"
	"github.com/gitrdm/trees/internal/bytecode"
	"github.com/gitrdm/trees/internal/eval"
	"github.com/gitrdm/trees/internal/grid"
	"github.com/gitrdm/trees/internal/parallel"
	"github.com/gitrdm/trees/internal/parse"
	"github.com/gitrdm/trees/internal/tree"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "trees:", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	fs := flag.NewFlagSet("trees", flag.ContinueOnError)
	modeFlag := fs.String("mode", "auto", "auto, compile, exec, or execd")
	widthFlag := fs.String("char-width", "mono", "mono, half, or full")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: trees [--mode auto|compile|exec|execd] [--char-width mono|half|full] <path>")
	}
	path := fs.Arg(0)

	mode, err := parseWidthMode(*widthFlag)
	if err != nil {
		return err
	}

	resolvedMode, err := resolveMode(*modeFlag, path)
	if err != nil {
		return err
	}

	switch resolvedMode {
	case "compile":
		return runCompile(path, mode)
	case "execd":
		return runSource(path, mode)
	case "exec":
		return runBytecode(path, mode)
	default:
		return fmt.Errorf("unknown mode %q", resolvedMode)
	}
}

func parseWidthMode(s string) (grid.WidthMode, error) {
	switch s {
	case "mono":
		return grid.Mono, nil
	case "half":
		return grid.Half, nil
	case "full":
		return grid.Full, nil
	default:
		return 0, fmt.Errorf("unknown char-width %q", s)
	}
}

// resolveMode implements --mode auto's dispatch: compile for a directory,
// execd for a .tr file, exec for a .trm file; anything else fails with a
// clear message (spec.md §6).
func resolveMode(mode, path string) (string, error) {
	if mode != "auto" {
		return mode, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("auto mode: %w", err)
	}
	if info.IsDir() {
		return "compile", nil
	}
	switch {
	case strings.HasSuffix(path, ".tr"):
		return "execd", nil
	case strings.HasSuffix(path, ".trm"):
		return "exec", nil
	default:
		return "", fmt.Errorf("auto mode: %q is neither a directory, a .tr file, nor a .trm file", path)
	}
}

func runCompile(dir string, mode grid.WidthMode) error {
	results, err := parallel.CompileDir(context.Background(), dir, mode, 0)
	if err != nil {
		return err
	}
	var failed int
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "trees: %v\n", r.Err)
			failed++
			continue
		}
		fmt.Println(r.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to compile", failed, len(results))
	}
	return nil
}

func runSource(path string, mode grid.WidthMode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := parse.Parse(strings.Split(string(data), "\n"), mode)
	if err != nil {
		return err
	}
	return execTree(root, filepath.Dir(path), mode)
}

func runBytecode(path string, mode grid.WidthMode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := bytecode.Decode(data)
	if err != nil {
		return err
	}
	return execTree(root, filepath.Dir(path), mode)
}

func execTree(root *tree.Block, baseDir string, mode grid.WidthMode) error {
	ev := eval.NewEvaluator(builtins.NewRootScope(), baseDir)
	ev.Reader = stdinReader{bufio.NewReader(os.Stdin)}
	ev.Writer = stdoutWriter{}
	ev.Execer = hostExecer{}
	ev.Includer = fsIncluder{}
	ev.Parse = func(lines []string) (*tree.Block, error) { return parse.Parse(lines, mode) }
	ev.Decode = bytecode.Decode

	_, _, evalErr := ev.Eval(root)
	if evalErr != nil {
		return evalErr
	}
	return nil
}

// stdinReader implements eval.Reader over os.Stdin, one line at a time.
type stdinReader struct{ r *bufio.Reader }

func (s stdinReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// stdoutWriter implements eval.Writer over os.Stdout.
type stdoutWriter struct{}

func (stdoutWriter) Write(s string) error {
	_, err := os.Stdout.WriteString(s)
	return err
}

// hostExecer implements eval.Execer by invoking the named program
// directly — never through a shell — matching the original_source/
// implementation's std::process::Command::new(name).args(args).
type hostExecer struct{}

func (hostExecer) Exec(name string, args []string) (string, error) {
	cmd := exec.Command(name, args...)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%s: exit %d: %s", name, ee.ExitCode(), strings.TrimSpace(string(ee.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}

// fsIncluder implements eval.Includer over the local filesystem:
// include(path) resolves relative to the including file's directory,
// and the extension decides source (.tr) vs bytecode (.trm); anything
// else is treated as source.
type fsIncluder struct{}

func (fsIncluder) Resolve(fromDir, path string) (string, bool, error) {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(fromDir, resolved)
	}
	if _, err := os.Stat(resolved); err != nil {
		return "", false, err
	}
	return resolved, !strings.HasSuffix(resolved, ".trm"), nil
}

func (fsIncluder) Load(resolved string) ([]byte, error) {
	return os.ReadFile(resolved)
}
