// Package svg is the SVG path dictionary (spec §2 "SVG paths", §6
// "External data tables" (3)): a static, read-only map from path name to
// the SVG path data a stretchy delimiter or accent box references instead
// of embedding it inline. Consumers (the delimiter and htmlbuild packages)
// look a name up once and splice the data into an <svg><path> element.
package svg

// Path is one named path's data plus the view-box width it was drawn
// against, so a caller can scale it to a target delimiter height without
// re-deriving the aspect ratio.
type Path struct {
	Data       string
	ViewWidth  float64
	ViewHeight float64
}

var paths = map[string]Path{}

func define(name, data string, viewWidth, viewHeight float64) {
	paths[name] = Path{Data: data, ViewWidth: viewWidth, ViewHeight: viewHeight}
}

// Lookup returns the path data registered under name.
func Lookup(name string) (Path, bool) {
	p, ok := paths[name]
	return p, ok
}

func init() {
	// Vertical extensible pieces used to build stretchy parens/brackets/
	// braces out of top/middle/repeat/bottom segments, the way KaTeX's
	// stretchy.js assembles large delimiters from SVG pieces rather than
	// scaling a single glyph.
	define("parenleft", "M291 0 H417 V1000 H291z M291 0 C291 0 180 90 180 500 C180 910 291 1000 291 1000", 417, 1000)
	define("parenright", "M0 0 H126 C126 0 237 90 237 500 C237 910 126 1000 126 1000 H0z", 237, 1000)
	define("bracketleft", "M205 0 H394 V40 H245 V960 H394 V1000 H205z", 394, 1000)
	define("bracketright", "M0 0 H189 V1000 H0 V960 H149 V40 H0z", 189, 1000)
	define("braceleft", "M280 0 C210 0 210 130 210 260 C210 390 150 420 100 500 C150 580 210 610 210 740 C210 870 210 1000 280 1000", 280, 1000)
	define("braceright", "M0 0 C70 0 70 130 70 260 C70 390 130 420 180 500 C130 580 70 610 70 740 C70 870 0 1000 0 1000", 180, 1000)
	define("vert", "M0 0 H40 V1000 H0z", 40, 1000)
	define("doublevert", "M0 0 H40 V1000 H0z M140 0 H180 V1000 H140z", 180, 1000)

	// Accent and radical glyphs drawn as paths because they stretch with
	// their base rather than coming from a single fixed-width font glyph.
	define("wide-tilde", "M0 50 C100 -20 200 120 300 50 C400 -20 500 120 600 50", 600, 100)
	define("wide-hat", "M0 0 L300 100 L600 0", 600, 100)
	define("sqrt-bottom", "M0 300 L100 0 L150 650 L400 650", 400, 650)
	define("arrow-right-tip", "M0 0 L100 50 L0 100z", 100, 100)
	define("arrow-left-tip", "M100 0 L0 50 L100 100z", 100, 100)

	// Enclose (cancel / bordered box) notation lines.
	define("cancel-updiagonal", "M0 1000 L1000 0", 1000, 1000)
	define("cancel-downdiagonal", "M0 0 L1000 1000", 1000, 1000)
}
