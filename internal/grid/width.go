package grid

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMode selects how a cell's display width is computed from its
// underlying rune(s). Half and Full differ only on characters in Unicode's
// East Asian "Ambiguous" category (box-drawing corners among them, in some
// fonts); Mono ignores East Asian Width entirely and makes every cell,
// wide ideographs included, one column.
type WidthMode int

const (
	// Mono treats every cell as exactly one column wide. This is the
	// simplest mode and the CLI default; it is wrong for real CJK text but
	// correct for pure ASCII box-drawing diagrams.
	Mono WidthMode = iota
	// Half counts East-Asian-ambiguous runes as one column, matching a
	// narrow (Western) terminal rendering.
	Half
	// Full counts East-Asian-ambiguous runes as two columns, matching a
	// wide (CJK) terminal rendering.
	Full
)

// halfWidthCond and fullWidthCond classify runes per UAX #11 via
// go-runewidth, differing only in how they treat the East-Asian-Ambiguous
// category: EastAsianWidth false counts Ambiguous as one column (Half),
// true counts it as two (Full). Every unambiguous rune (Wide/Fullwidth =>
// 2, Narrow/Halfwidth/Neutral => 1) is unaffected by the flag.
var (
	halfWidthCond = &runewidth.Condition{EastAsianWidth: false}
	fullWidthCond = &runewidth.Condition{EastAsianWidth: true}
)

// cellWidth returns the display width of a single grapheme cluster under
// the given mode. Mono always returns 1, matching a terminal that ignores
// East Asian Width entirely.
func cellWidth(cluster string, mode WidthMode) int {
	switch mode {
	case Full:
		return fullWidthCond.StringWidth(cluster)
	case Half:
		return halfWidthCond.StringWidth(cluster)
	default: // Mono
		return 1
	}
}

// graphemes splits a line into display cells in column order using
// Unicode's grapheme-cluster-breaking algorithm (via uniseg), so that a
// base rune plus combining marks, or an emoji ZWJ sequence, occupies a
// single cell rather than being split across several.
func graphemes(line string) []string {
	var out []string
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
