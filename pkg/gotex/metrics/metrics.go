// Package metrics is the font-metrics table (spec §2 "Font metrics", §6
// "External data tables" (2)): a static mapping from (font name, glyph) to
// the box geometry a host text engine would report for it. Like symbols,
// it is read-only after init.
//
// The table only carries a representative subset of characters (common
// Latin letters/digits, a handful of Greek letters and operators); any
// glyph absent from it falls back to an estimate derived from
// github.com/mattn/go-runewidth, the same library the teacher's terminal
// renderer uses to size wide/CJK glyphs before writing them into a cell
// buffer. That fallback is what spec §4.5.3 calls the "script-fallback
// class derived from the codepoint": a glyph not in the table still gets
// a usable width instead of crashing the layout. Lookup takes no
// diagnostic sink, and no warning is reported when the fallback is used.
package metrics

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Metrics is one glyph's box geometry, in em units relative to the font's
// design size (spec §3.3's Symbol box fields).
type Metrics struct {
	Height          float64
	Depth           float64
	Italic          float64
	Skew            float64
	Width           float64
	ScriptFallback  string // CSS-class-like tag for a non-ASCII glyph that came from the runewidth fallback; empty for table entries and ASCII fallbacks
}

type fontKey struct {
	font string
	r    rune
}

var table = map[fontKey]Metrics{}

func define(font string, r rune, height, depth, italic, width float64) {
	table[fontKey{font, r}] = Metrics{Height: height, Depth: depth, Italic: italic, Width: width}
}

func init() {
	// A small representative main-font metric table: x-height letters sit
	// at 0.43em, ascenders at 0.69em, descenders at 0.19em depth, digits
	// at 0.64em cap height — loosely modeled on common Latin text metrics,
	// not a specific real font's tables (those are host-supplied data).
	for c := 'a'; c <= 'z'; c++ {
		height := 0.43
		if c == 'b' || c == 'd' || c == 'f' || c == 'h' || c == 'k' || c == 'l' || c == 't' {
			height = 0.69
		}
		depth := 0.0
		if c == 'g' || c == 'j' || c == 'p' || c == 'q' || c == 'y' {
			depth = 0.19
		}
		italic := 0.02
		define("main-italic", c, height, depth, italic, 0.5)
		define("main-regular", c, height, depth, 0, 0.5)
	}
	for c := 'A'; c <= 'Z'; c++ {
		define("main-italic", c, 0.69, 0, 0.03, 0.67)
		define("main-regular", c, 0.69, 0, 0, 0.67)
	}
	for c := '0'; c <= '9'; c++ {
		define("main-regular", c, 0.64, 0, 0, 0.5)
	}
	symbolWidths := map[rune]float64{
		'+': 0.78, '-': 0.78, '=': 0.78, '<': 0.78, '>': 0.78,
		'(': 0.39, ')': 0.39, '[': 0.39, ']': 0.39, ',': 0.28,
		'.': 0.28, ';': 0.28, ':': 0.28, '|': 0.28, '*': 0.5,
		'/': 0.5, '!': 0.28,
	}
	for r, w := range symbolWidths {
		define("main-regular", r, 0.43, 0, 0, w)
	}
}

// Lookup returns the box geometry for r in the given font. When the table
// has no entry, it estimates Width from go-runewidth's cell width (1 or 2
// columns mapped to 0.5em / 1.0em) and sets Height/Depth to a
// conservative 0.7/0.2 em full-height box, flagging ScriptFallback with a
// class name derived from the Unicode script the codepoint falls in
// (spec §4.5.3). ok reports whether the table itself had the entry.
func Lookup(font string, r rune) (m Metrics, ok bool) {
	if m, ok = table[fontKey{font, r}]; ok {
		return m, true
	}
	width := 0.5
	if runewidth.RuneWidth(r) == 2 {
		width = 1.0
	}
	fallback := Metrics{
		Height:         0.7,
		Depth:          0.2,
		Width:          width,
		ScriptFallback: fallbackClass(r),
	}
	return fallback, false
}

// fallbackClass names the CSS class a box should carry when its glyph
// came from the runewidth estimate rather than the real table — the
// "script-fallback class" spec §4.5.3 requires for non-Latin scripts.
func fallbackClass(r rune) string {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, r >= 0x3040 && r <= 0x30FF, r >= 0xAC00 && r <= 0xD7A3:
		return "cjk_fallback"
	case r > utf8.RuneSelf:
		return "unicode_fallback"
	default:
		return ""
	}
}
