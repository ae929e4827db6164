// Package box is the visual box tree the HTML builder produces (spec.md
// §3.3, §4.5, §9): a tagged union of concrete node kinds realized as a Go
// interface plus one struct per kind, in place of the class-inheritance
// hierarchy (HtmlDomNode / VirtualNode split) spec.md §9 calls out as the
// thing to redesign away from.
package box

// Node is anything that can sit in the visual tree: every variant reports
// its own extent so a parent vlist or line-assembly pass can position it
// without type-asserting down to a concrete struct.
type Node interface {
	Height() float64
	Depth() float64
	MaxFontSize() float64
	Classes() []string
}

// common is embedded by every concrete Node to avoid repeating the
// extent/classes bookkeeping in each variant (spec.md §3.3's shared
// fields), mirroring the teacher's core.Node pattern of one shared struct
// plus variant-specific fields instead of a class hierarchy.
type common struct {
	NodeHeight   float64
	NodeDepth    float64
	NodeMaxFont  float64
	NodeClasses  []string
}

func (c common) Height() float64      { return c.NodeHeight }
func (c common) Depth() float64       { return c.NodeDepth }
func (c common) MaxFontSize() float64 { return c.NodeMaxFont }
func (c common) Classes() []string    { return c.NodeClasses }

// Span is a horizontal run of child nodes sharing one <span> wrapper
// (spec.md §3.3 "span"): the htmlbuild package's basic grouping box.
type Span struct {
	common
	Children []Node
	Style    map[string]string
	Attrs    map[string]string
}

// Anchor is a Span that additionally renders as an <a href="..."> wrapper
// (spec.md's \href support).
type Anchor struct {
	common
	Children []Node
	Href     string
	Attrs    map[string]string
}

// Symbol is a single glyph leaf, the terminal node most ord/op/bin/etc.
// atoms bottom out in.
type Symbol struct {
	common
	Text   string
	Font   string
	Italic float64
	Skew   float64
}

// Img renders an external raster/vector image (spec.md's
// \includegraphics support).
type Img struct {
	common
	Src string
	Alt string
}

// Svg wraps one or more Path children sized to a view box, used by
// stretchy delimiters and accents (spec.md §4.4, §4.5.5).
type Svg struct {
	common
	Paths      []Path
	ViewWidth  float64
	ViewHeight float64
}

// Path is one <path> inside an Svg, referencing a name from package svg.
type Path struct {
	PathName string
	Data     string
}

// Line draws a horizontal or vertical rule (spec.md's \rule, \overline
// bar, fraction bar).
type Line struct {
	common
}

// DocumentFragment groups top-level children with no wrapper element of
// its own — the root of a built tree before assemble wraps it.
type DocumentFragment struct {
	common
	Children []Node
}

// MiddleBox is a \middle delimiter: sized like a LeftRight delimiter but
// semantically distinct from the left/right fence, carrying the options
// it was built under directly rather than through a side-channel
// "isMiddle" boolean property (spec.md §9's explicit redesign note).
type MiddleBox struct {
	common
	Delim   string
	Options *Options
}

// Options is the subset of gotex.Options a box needs at render time
// (style, size, color, font) without importing the root package —
// avoiding an import cycle between box and the package that defines
// Options (spec §3.5).
type Options struct {
	Style string
	Size  int
	Color string
	Font  string
}

// NewDocumentFragment builds a DocumentFragment with the given extent and
// children — the htmlbuild package's top-level wrapper, since it has no
// field-by-field reason to construct the struct literal itself.
func NewDocumentFragment(height, depth, maxFont float64, children []Node) DocumentFragment {
	return DocumentFragment{
		common:   common{NodeHeight: height, NodeDepth: depth, NodeMaxFont: maxFont, NodeClasses: []string{"katex-html"}},
		Children: children,
	}
}

// NewGlue builds the invisible spacing Span the htmlbuild spacing pass
// inserts between adjacent atoms (spec §4.5.2 step 5): zero extent, a
// fixed margin-right equal to width em.
func NewGlue(width float64) Span {
	return Span{
		common: common{NodeClasses: []string{"mspace"}},
		Style:  map[string]string{"margin-right": trimTrailingZeros(width) + "em"},
	}
}

// ExtentOf computes the extrema (height, depth, max font size) of a set
// of children, the bookkeeping every container constructor below needs.
func ExtentOf(children []Node) (height, depth, maxFont float64) {
	for _, c := range children {
		if c.Height() > height {
			height = c.Height()
		}
		if c.Depth() > depth {
			depth = c.Depth()
		}
		if c.MaxFontSize() > maxFont {
			maxFont = c.MaxFontSize()
		}
	}
	return
}

// NewSpan builds a Span whose extent is derived from its children's
// extrema (NewShiftedSpan covers raised/lowered content), since callers outside this package cannot set the unexported common
// fields directly (spec.md §9's tagged-union shape keeps the shared
// bookkeeping private to the package that owns the invariant).
func NewSpan(children []Node, style, attrs map[string]string, classes []string) Span {
	h, d, mf := ExtentOf(children)
	return Span{
		common:   common{NodeHeight: h, NodeDepth: d, NodeMaxFont: mf, NodeClasses: classes},
		Children: children,
		Style:    style,
		Attrs:    attrs,
	}
}

// NewShiftedSpan is like NewSpan but additionally raises/lowers the
// reported extent by shift em (positive raises), for \raisebox and
// vlist-elem positioning.
func NewShiftedSpan(children []Node, style map[string]string, classes []string, shift float64) Span {
	h, d, mf := ExtentOf(children)
	return Span{
		common:   common{NodeHeight: h + shift, NodeDepth: d - shift, NodeMaxFont: mf, NodeClasses: classes},
		Children: children,
		Style:    style,
	}
}

// NewAnchor builds an Anchor whose extent derives from its children.
func NewAnchor(children []Node, href string, attrs map[string]string, classes []string) Anchor {
	h, d, mf := ExtentOf(children)
	return Anchor{
		common:   common{NodeHeight: h, NodeDepth: d, NodeMaxFont: mf, NodeClasses: classes},
		Children: children,
		Href:     href,
		Attrs:    attrs,
	}
}

// NewSymbol builds a glyph leaf from its metrics (spec §4.5.3's
// `makeOrd`/`mathsym` result shape).
func NewSymbol(text, font string, height, depth, italic, skew, fontSize float64, classes []string) Symbol {
	return Symbol{
		common: common{NodeHeight: height, NodeDepth: depth, NodeMaxFont: fontSize, NodeClasses: classes},
		Text:   text,
		Font:   font,
		Italic: italic,
		Skew:   skew,
	}
}

// NewImg builds an image leaf (spec.md's \includegraphics support).
func NewImg(src, alt string, height, depth float64, classes []string) Img {
	return Img{
		common: common{NodeHeight: height, NodeDepth: depth, NodeClasses: classes},
		Src:    src,
		Alt:    alt,
	}
}

// NewSvg builds an SVG wrapper sized to height/depth with the given
// named paths (spec §4.4, §4.5.5's stretchy subsystem).
func NewSvg(paths []Path, viewWidth, viewHeight, height, depth float64, classes []string) Svg {
	return Svg{
		common:     common{NodeHeight: height, NodeDepth: depth, NodeClasses: classes},
		Paths:      paths,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
	}
}

// NewLine builds a rule/bar box (spec.md's \rule, \overline bar,
// fraction bar).
func NewLine(height, depth float64, classes []string) Line {
	return Line{common: common{NodeHeight: height, NodeDepth: depth, NodeClasses: classes}}
}

// NewMiddleBox builds a \middle delimiter, carrying the Options it was
// built under directly (spec.md §9's resolved `isMiddle` redesign).
func NewMiddleBox(delim string, opts Options, height, depth float64) MiddleBox {
	return MiddleBox{
		common:  common{NodeHeight: height, NodeDepth: depth, NodeClasses: []string{"mmiddle"}},
		Delim:   delim,
		Options: &opts,
	}
}

// Invisible returns a copy of n wrapped so it occupies its original
// width/height but renders nothing — spec.md's \phantom family.
func Invisible(n Node) Node {
	return Span{
		common:   common{NodeHeight: n.Height(), NodeDepth: n.Depth(), NodeMaxFont: n.MaxFontSize(), NodeClasses: append([]string{"phantom"}, n.Classes()...)},
		Children: []Node{n},
		Style:    map[string]string{"visibility": "hidden"},
	}
}

var (
	_ Node = Span{}
	_ Node = Anchor{}
	_ Node = Symbol{}
	_ Node = Img{}
	_ Node = Svg{}
	_ Node = Line{}
	_ Node = DocumentFragment{}
	_ Node = MiddleBox{}
)
