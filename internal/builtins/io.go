// Package builtins registers the fixed procedure library of spec.md §4.4
// into a root eval.Scope: arithmetic, comparisons, booleans, strings,
// lists, control flow, scope/module operations, and the four I/O-backed
// procedures (print, println, read line, cmd) plus include. None of it touches
// os.Stdin, os.Stdout, or os/exec directly — cmd/trees supplies concrete
// Reader/Writer/Execer/Includer implementations that satisfy the
// interfaces declared on eval.Evaluator.
package builtins

import "github.com/gitrdm/trees/internal/eval"

// Reader, Writer, Execer, and Includer are re-exported here, matching the
// callback contract named in this project's design notes, so callers can
// write builtins.Reader instead of reaching into package eval directly.
// Go's structural typing means any concrete type implementing these
// method sets already satisfies eval's identical interfaces — there is
// nothing to wire beyond the alias.
type Reader = eval.Reader
type Writer = eval.Writer
type Execer = eval.Execer
type Includer = eval.Includer
