// Package htmlbuild implements the HTML/visual builder (spec §4.5): a
// tree walk over parser.Node producing a box.Node tree, performing
// atom-class bin-cancellation and inter-atom spacing as it flattens each
// group (spec §4.5.2).
package htmlbuild

import "github.com/speier/gotex/pkg/gotex/parser"

// Options is the value carried through building (spec §3.5): current
// style, size level, font family/weight/shape, color, and the parent
// link sizing deltas are computed against. Every derived method returns
// a new value — Options is never mutated in place, mirroring the
// teacher's style.ComputedStyle cascade (defaults → stylesheet → inline)
// generalized to defaults → styling-node → sizing-node → color-node.
type Options struct {
	Style     parser.Style
	Size      int // 1..11
	Color     string
	FontFamily string
	FontWeight string
	FontShape  string
	MaxSize    float64
	// MinRuleThickness floors the thickness of the fraction bar and the
	// \overline/\underline bars this Options builds — spec.md §8's
	// "rule thickness ≥ minRuleThickness" scenario. A \rule keeps the
	// height it was given.
	MinRuleThickness float64
	Parent           *Options
}

// sizeMultipliers mirrors TeX's fixed table of how much larger/smaller
// than textsize (size5, index 5) each size level renders.
var sizeMultipliers = map[int]float64{
	1: 0.5, 2: 0.6, 3: 0.7, 4: 0.8, 5: 1.0, 6: 1.2,
	7: 1.44, 8: 1.728, 9: 2.074, 10: 2.488, 11: 2.986,
}

// SizeMultiplier returns this Options' size ratio relative to textsize.
func (o Options) SizeMultiplier() float64 {
	if m, ok := sizeMultipliers[o.Size]; ok {
		return m
	}
	return 1.0
}

// DefaultOptions returns the root Options a Render call starts from:
// display or text style depending on displayMode, textsize (5), black.
func DefaultOptions(displayMode bool) Options {
	style := parser.StyleText
	if displayMode {
		style = parser.StyleDisplay
	}
	return Options{Style: style, Size: 5, Color: "", MaxSize: 1e9}
}

// HavingStyle returns a copy with Style changed, parent-linked for
// size-ratio math at group boundaries.
func (o Options) HavingStyle(s parser.Style) Options {
	n := o
	n.Style = s
	n.Parent = &o
	return n
}

// HavingSize returns a copy with Size changed.
func (o Options) HavingSize(size int) Options {
	n := o
	n.Size = size
	n.Parent = &o
	return n
}

// WithColor returns a copy with Color changed.
func (o Options) WithColor(color string) Options {
	n := o
	n.Color = color
	return n
}

// InFont returns a copy with FontFamily changed.
func (o Options) InFont(family string) Options {
	n := o
	n.FontFamily = family
	return n
}

// Options carries no cramped flag, and no builder in this package
// distinguishes a cramped (denominator/subscript) style from its
// uncramped counterpart.

// Tight reports whether spacing should use the reduced script/
// scriptscript table (spec §4.5.2's `mtight` class condition).
func (o Options) Tight() bool {
	return o.Style == parser.StyleScript || o.Style == parser.StyleScriptScript
}

// SupStyle returns the style a superscript renders in relative to o's
// current style, per TeX's style-stepping table (display/text → script,
// script/scriptscript → scriptscript).
func (o Options) SupStyle() parser.Style {
	switch o.Style {
	case parser.StyleDisplay, parser.StyleText:
		return parser.StyleScript
	default:
		return parser.StyleScriptScript
	}
}

// SubStyle returns the style a subscript renders in; TeX uses the same
// stepping rule for both sup and sub (the cramped distinction affects
// vertical shift, not the style/size table used here).
func (o Options) SubStyle() parser.Style {
	return o.SupStyle()
}

// FracStyle returns the style the numerator/denominator of a fraction
// renders in, one step smaller than the surrounding style, capped at
// scriptscript.
func (o Options) FracStyle(isNumer bool) parser.Style {
	switch o.Style {
	case parser.StyleDisplay:
		return parser.StyleText
	case parser.StyleText:
		return parser.StyleScript
	default:
		return parser.StyleScriptScript
	}
}
