package htmlbuild

import (
	"github.com/speier/gotex/pkg/gotex/box"
	"github.com/speier/gotex/pkg/gotex/delimiter"
	"github.com/speier/gotex/pkg/gotex/parser"
	"github.com/speier/gotex/pkg/gotex/svg"
)

// buildDelimSizing builds a fixed \big/\Big/\bigg/\Bigg-family delimiter
// (spec §4.4 "delimiter.sizedDelim(delim, size, ...) picks a fixed-size
// variant indexed 1..4").
func buildDelimSizing(v parser.DelimSizingNode, options Options) box.Node {
	target := map[int]float64{1: 1.2, 2: 1.8, 3: 2.4, 4: 3.0}[v.Size]
	variant := delimiter.Select(v.Delim, target)
	return delimiterBox(variant, v.Delim, string(v.Class))
}

// buildLeftRight builds a \left...\right construct: the body's total
// height/depth determines the target extent, then
// delimiter.leftRightDelim (package delimiter's Select) picks the
// smallest variant tall enough on each side (spec §4.4).
func buildLeftRight(v parser.LeftRightNode, options Options) box.Node {
	built := buildExpression(v.BodyNodes, options, false)
	bodySpan := box.NewSpan(built, nil, nil, []string{"mord"})

	target := bodySpan.Height()
	if bodySpan.Depth() > target {
		target = bodySpan.Depth()
	}
	target = target*2 + 0.2

	var children []box.Node
	if v.LeftDelim != "" && v.LeftDelim != "." {
		children = append(children, delimiterBox(delimiter.Select(v.LeftDelim, target), v.LeftDelim, "open"))
	}
	children = append(children, bodySpan)
	if v.RightDelim != "" && v.RightDelim != "." {
		children = append(children, delimiterBox(delimiter.Select(v.RightDelim, target), v.RightDelim, "close"))
	}
	return box.NewSpan(children, nil, nil, []string{"minner"})
}

func wrapWithDelims(body box.Node, left, right string, options Options) box.Node {
	target := body.Height() + body.Depth()
	var children []box.Node
	if left != "" {
		children = append(children, delimiterBox(delimiter.Select(left, target), left, "open"))
	}
	children = append(children, body)
	if right != "" {
		children = append(children, delimiterBox(delimiter.Select(right, target), right, "close"))
	}
	return box.NewSpan(children, nil, nil, []string{"mord"})
}

// delimiterBox renders a delimiter.Variant as either a sized glyph
// Symbol or an Svg assembly (spec §4.5.5's stretchy subsystem).
func delimiterBox(v delimiter.Variant, glyph, class string) box.Node {
	half := v.Height / 2
	if v.SVGPathName != "" {
		if p, ok := svg.Lookup(v.SVGPathName); ok {
			path := box.Path{PathName: v.SVGPathName, Data: p.Data}
			return box.NewSvg([]box.Path{path}, p.ViewWidth, p.ViewHeight, half, half, []string{"m" + class, "delimsizing"})
		}
	}
	return box.NewSymbol(glyph, "main-regular", half, half, 0, 0, 1, []string{"m" + class, "delimsizing"})
}
