// Package delimiter implements stretchy-delimiter sizing and selection
// (spec §4.4 "Stretchy delimiters"): given a delimiter character and a
// target height, pick either a fixed-size font glyph (size1..size4) or a
// stretchy SVG assembly built from pieces in package svg.
package delimiter

import "github.com/speier/gotex/pkg/gotex/svg"

// Size is one of the four discrete delimiter font sizes TeX ships
// (\big, \Big, \bigg, \Bigg), each taller than the last.
type Size int

const (
	Size1 Size = iota + 1
	Size2
	Size3
	Size4
)

// sizeToMaxHeight mirrors TeX's fixed table of how tall each discrete
// delimiter size renders, in em, so selection can stop growing once a
// font size is already tall enough and only fall through to the SVG
// stretchy assembly when even Size4 isn't tall enough.
var sizeToMaxHeight = map[Size]float64{
	Size1: 1.2,
	Size2: 1.8,
	Size3: 2.4,
	Size4: 3.0,
}

// Variant is the result of a selection: exactly one of FontSize or
// SVGPath is set (a tagged union realized as two optional fields rather
// than an interface, since callers only ever branch on "is it font or
// svg", not dispatch further — spec §9's guidance to prefer the simplest
// shape that serves the call site).
type Variant struct {
	Glyph       string
	FontSize    Size    // 0 when this is an SVG variant
	SVGPathName string  // "" when this is a font-size variant
	Height      float64 // the height actually achieved, em
}

// stretchySVG maps a delimiter glyph to the SVG assembly used once no
// discrete font size is tall enough.
var stretchySVG = map[string]string{
	"(": "parenleft", ")": "parenright",
	"[": "bracketleft", "]": "bracketright",
	"{": "braceleft", "}": "braceright",
	"|": "vert", "‖": "doublevert",
}

// Select picks a Variant for glyph tall enough to cover targetHeight
// (em), trying discrete font sizes from smallest to largest before
// falling back to the SVG stretchy assembly (spec §4.4: "grows
// monotonically with the requested height and never shrinks below the
// base glyph's natural size").
func Select(glyph string, targetHeight float64) Variant {
	if targetHeight <= 1.0 {
		return Variant{Glyph: glyph, Height: naturalHeight(targetHeight)}
	}
	for _, size := range []Size{Size1, Size2, Size3, Size4} {
		if sizeToMaxHeight[size] >= targetHeight {
			return Variant{Glyph: glyph, FontSize: size, Height: sizeToMaxHeight[size]}
		}
	}
	if name, ok := stretchySVG[glyph]; ok {
		if _, ok := svg.Lookup(name); ok {
			return Variant{Glyph: glyph, SVGPathName: name, Height: targetHeight}
		}
	}
	// No stretchy assembly registered for this glyph: clamp at the
	// tallest discrete size rather than silently truncating to natural
	// height, matching TeX's behavior of using the largest available
	// variant as a last resort.
	return Variant{Glyph: glyph, FontSize: Size4, Height: sizeToMaxHeight[Size4]}
}

func naturalHeight(targetHeight float64) float64 {
	if targetHeight < 0 {
		return 0
	}
	return targetHeight
}

// Monotonic reports whether increasing the requested height never
// decreases the returned variant's height, the invariant spec §4.4
// requires of Select. It's exported for the package's own tests and for
// any caller that wants to assert the invariant over its own height
// sequence.
func Monotonic(glyph string, heights []float64) bool {
	last := -1.0
	for _, h := range heights {
		v := Select(glyph, h)
		if v.Height < last {
			return false
		}
		last = v.Height
	}
	return true
}
