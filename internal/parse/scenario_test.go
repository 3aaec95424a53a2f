package parse

import (
	"testing"

	"github.com/gitrdm/trees/internal/builtins"
	"github.com/gitrdm/trees/internal/eval"
	"github.com/gitrdm/trees/internal/grid"
)

// capturingWriter implements eval.Writer by appending every write to a
// single in-memory buffer, the same hand-rolled style as the evaluator
// and builtins packages' own fakeIO test doubles.
type capturingWriter struct{ out string }

func (w *capturingWriter) Write(s string) error {
	w.out += s
	return nil
}

func runAndCapture(t *testing.T, lines []string, mode grid.WidthMode) string {
	t.Helper()
	root, err := Parse(lines, mode)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ev := eval.NewEvaluator(builtins.NewRootScope(), ".")
	w := &capturingWriter{}
	ev.Writer = w
	if _, _, evalErr := ev.Eval(root); evalErr != nil {
		t.Fatalf("Eval: %v", evalErr)
	}
	return w.out
}

// TestScenarioHelloAdditionStdout is spec.md §8 scenario 1, run through
// the full parse-then-evaluate pipeline rather than just asserting on
// the parsed tree shape (that part is TestParseHelloAddition).
func TestScenarioHelloAdditionStdout(t *testing.T) {
	got := runAndCapture(t, helloAdditionLines(), grid.Mono)
	if got != "7" {
		t.Fatalf("stdout = %q, want %q", got, "7")
	}
}

// cjkFullWidthLines draws a print block directly over a literal 7 —
// the same "print produces 7" outcome as scenario 1's hello-addition,
// minus the nested "+" box, because under --char-width full every
// box-drawing glyph occupies two display columns (grid.Full's
// Ambiguous-category rule) while ASCII letters stay one column wide, so
// each box's content row must be padded by hand to match its border
// row's doubled width and keep left/right border columns aligned
// between rows (internal/parse/block.go's readProcName and edge walks
// key off exact column equality between a box's top, interior, and
// bottom rows). Fewer nested boxes keeps that column arithmetic, done
// by hand here, tractable while still exercising grid.Full end to end.
func cjkFullWidthLines() []string {
	return []string{
		"┌───┐",
		"│print │",
		"└─┬─┘",
		"  ┌┴┐",
		"  │7 │",
		"  └─┘",
	}
}

// TestScenarioCJKFullWidth is spec.md §8 scenario 5: the same program,
// drawn so its box-drawing glyphs are wide under --char-width full,
// still produces "7".
func TestScenarioCJKFullWidth(t *testing.T) {
	got := runAndCapture(t, cjkFullWidthLines(), grid.Full)
	if got != "7" {
		t.Fatalf("stdout = %q, want %q", got, "7")
	}
}
