package htmlbuild

import (
	"github.com/speier/gotex/pkg/gotex/box"
	"github.com/speier/gotex/pkg/gotex/metrics"
	"github.com/speier/gotex/pkg/gotex/parser"
)

// buildGroupClassified dispatches on node's concrete type (spec §9:
// "prefer a single match over a map lookup for exhaustiveness") and
// returns the box(es) it builds, each paired with the atom class it
// contributes to the surrounding spacing pass. Most node kinds return
// exactly one classified box; partial groups (color/href wrappers) are
// "transparent to spacing" per spec §4.5.2, so their own children's
// classes are what the caller sees, not a class of their own.
func buildGroupClassified(n parser.Node, options Options) []classified {
	switch v := n.(type) {
	case parser.AtomNode:
		return []classified{{buildSymbol(v.Text, options, string(v.Family)), string(v.Family)}}

	case parser.OrdNode:
		return []classified{{buildSymbol(v.Text, options, "ord"), "ord"}}

	case parser.SpacingNode:
		return []classified{{buildNamedSpace(v.Text), ""}}

	case parser.OpNode:
		return []classified{{buildOp(v, options), "op"}}

	case parser.OrdGroupNode:
		return buildPartialGroup(v.BodyNodes, options)

	case parser.StylingNode:
		return buildPartialGroup(v.BodyNodes, options.HavingStyle(v.Style))

	case parser.SizingNode:
		return buildPartialGroup(v.BodyNodes, options.HavingSize(v.SizeIndex))

	case parser.ColorNode:
		return buildPartialGroup(v.BodyNodes, options.WithColor(v.Color))

	case parser.FontNode:
		return buildPartialGroup(v.BodyNodes, options.InFont(v.Font))

	case parser.MClassNode:
		built := buildExpression(v.BodyNodes, options, false)
		return []classified{{box.NewSpan(built, nil, nil, nil), string(v.Class)}}

	case parser.SupSubNode:
		return []classified{{buildSupSub(v, options), classOf(v.BaseNode)}}

	case parser.GenfracNode:
		return []classified{{buildGenfrac(v, options), "ord"}}

	case parser.SqrtNode:
		return []classified{{buildSqrt(v, options), "ord"}}

	case parser.OverlineNode:
		return []classified{{buildOverline(v, options), "ord"}}

	case parser.UnderlineNode:
		return []classified{{buildUnderline(v, options), "ord"}}

	case parser.AccentNode:
		return []classified{{buildAccent(v, options), "ord"}}

	case parser.AccentUnderNode:
		body := buildSingle(v.Body, options)
		return []classified{{box.NewSpan([]box.Node{body}, nil, nil, []string{"accentunder"}), "ord"}}

	case parser.HorizBraceNode:
		return []classified{{buildHorizBrace(v, options), "ord"}}

	case parser.XArrowNode:
		return []classified{{buildXArrow(v, options), "rel"}}

	case parser.EncloseNode:
		body := buildSingle(v.Body, options)
		return []classified{{box.NewSpan([]box.Node{body}, nil, nil, []string{"enclose", v.Label}), "ord"}}

	case parser.DelimSizingNode:
		return []classified{{buildDelimSizing(v, options), string(v.Class)}}

	case parser.LeftRightNode:
		return []classified{{buildLeftRight(v, options), "inner"}}

	case parser.MiddleNode:
		return []classified{{box.NewMiddleBox(v.Delim, box.Options{
			Style: options.Style.String(), Size: options.Size, Color: options.Color, Font: options.FontFamily,
		}, 1.0, 0.25), "rel"}}

	case parser.KernNode:
		return []classified{{box.NewGlue(v.Amount), ""}}

	case parser.RuleNode:
		return []classified{{box.NewLine(v.Height, 0, []string{"mord", "rule"}), "ord"}}

	case parser.RaiseBoxNode:
		body := buildSingle(v.Body, options)
		return []classified{{box.NewShiftedSpan([]box.Node{body}, nil, []string{"raisebox"}, v.Amount), classOf(v.Body)}}

	case parser.LapNode:
		body := buildSingle(v.Body, options)
		return []classified{{box.NewSpan([]box.Node{body}, nil, nil, []string{v.Alignment}), classOf(v.Body)}}

	case parser.SmashNode:
		return []classified{{buildSingle(v.Body, options), classOf(v.Body)}}

	case parser.PhantomNode:
		built := buildExpression(v.Body, options, false)
		return []classified{{box.Invisible(box.NewSpan(built, nil, nil, nil)), ""}}

	case parser.HPhantomNode:
		return []classified{{box.Invisible(buildSingle(v.Body, options)), ""}}

	case parser.VPhantomNode:
		return []classified{{box.Invisible(buildSingle(v.Body, options)), ""}}

	case parser.MathChoiceNode:
		chosen := v.Text2
		if options.Style == parser.StyleDisplay {
			chosen = v.Display
		}
		built := buildExpression(chosen, options, false)
		return []classified{{box.NewSpan(built, nil, nil, nil), ""}}

	case parser.OperatorNameNode:
		built := buildExpression(v.BodyNodes, options.InFont("mathrm"), false)
		return []classified{{box.NewSpan(built, nil, nil, []string{"mop"}), "op"}}

	case parser.RawNode:
		return []classified{{buildSymbol(v.Text, options, "ord"), "ord"}}

	case parser.URLNode:
		return []classified{{buildSymbol(v.URL, options, "ord"), "ord"}}

	case parser.VerbNode:
		return []classified{{buildSymbol(v.Text, options, "ord"), "ord"}}

	case parser.SizeNode:
		return nil

	case parser.ColorTokenNode:
		return nil

	case parser.IncludeGraphicsNode:
		return []classified{{box.NewImg(v.Src, v.Alt, v.Height, 0, []string{"mord"}), "ord"}}

	case parser.KeyValsNode:
		return nil

	case parser.InfixNode:
		return nil

	case parser.HTMLMathMLNode:
		return buildPartialGroup(v.HTML, options)

	case parser.TagNode:
		return buildPartialGroup(v.BodyNodes, options)

	case parser.TextNode:
		built := buildExpression(v.BodyNodes, options, false)
		return []classified{{box.NewSpan(built, nil, nil, []string{"text"}), "ord"}}

	case parser.CrNode:
		return []classified{{box.NewGlue(0), ""}}

	case parser.HrefNode:
		built := buildExpression(v.Body, options, false)
		return []classified{{box.NewAnchor(built, v.URL, nil, nil), classOfChildren(v.Body)}}

	case parser.AccentTokenNode:
		return []classified{{buildSymbol(v.Text, options, "ord"), "ord"}}

	default:
		return []classified{{buildSymbol("?", options, "ord"), "ord"}}
	}
}

func buildPartialGroup(nodes []parser.Node, options Options) []classified {
	items := make([]classified, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, buildGroupClassified(n, options)...)
	}
	return items
}

func buildSingle(n parser.Node, options Options) box.Node {
	built := buildGroupClassified(n, options)
	if len(built) == 0 {
		return box.NewSpan(nil, nil, nil, nil)
	}
	if len(built) == 1 {
		return built[0].box
	}
	nodes := make([]box.Node, len(built))
	for i, c := range built {
		nodes[i] = c.box
	}
	return box.NewSpan(nodes, nil, nil, nil)
}

func classOf(n parser.Node) string {
	switch v := n.(type) {
	case parser.AtomNode:
		return string(v.Family)
	case parser.OrdNode:
		return "ord"
	case parser.OpNode:
		return "op"
	}
	return "ord"
}

func classOfChildren(nodes []parser.Node) string {
	if len(nodes) == 0 {
		return ""
	}
	return classOf(nodes[0])
}

// buildSymbol looks up metrics for a single glyph and returns a Symbol
// leaf, the bottom of every build path (spec §4.5.3's `makeOrd`).
func buildSymbol(text string, options Options, class string) box.Node {
	font := "main-regular"
	if options.FontFamily != "" {
		font = options.FontFamily
	}
	var m metrics.Metrics
	if text != "" {
		r := []rune(text)[0]
		m, _ = metrics.Lookup(font, r)
	}
	var classes []string
	if class != "" {
		classes = append(classes, "m"+class)
	}
	if m.ScriptFallback != "" {
		classes = append(classes, m.ScriptFallback)
	}
	return box.NewSymbol(text, font, m.Height, m.Depth, m.Italic, m.Skew, float64(options.Size), classes)
}

func buildNamedSpace(name string) box.Node {
	widths := map[string]float64{
		`\,`: 3.0 / 18, `\:`: 4.0 / 18, `\;`: 5.0 / 18, `\!`: -3.0 / 18,
		`\quad`: 1.0, `\qquad`: 2.0, `\ `: 1.0 / 4, `\enspace`: 0.5,
	}
	return box.NewGlue(widths[name])
}

func buildOp(v parser.OpNode, options Options) box.Node {
	if len(v.Body) > 0 {
		built := buildExpression(v.Body, options, false)
		return box.NewSpan(built, nil, nil, []string{"mop"})
	}
	return buildSymbol(v.Text, options, "op")
}
