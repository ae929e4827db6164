package mathml

import (
	"unicode"

	"github.com/speier/gotex/pkg/gotex/parser"
)

// Build walks the same parse tree htmlbuild does and produces the
// parallel semantic tree (spec §4.6), wrapping the whole thing in a
// <math> root.
func Build(root parser.Node) Node {
	return NewRow("math", buildGroup(root))
}

func buildGroup(n parser.Node) Node {
	switch v := n.(type) {
	case parser.OrdGroupNode:
		return NewRow("mrow", buildAll(v.BodyNodes)...)

	case parser.AtomNode:
		return New("mo", v.Text)

	case parser.OrdNode:
		return New(leafTag(v.Text), v.Text)

	case parser.SpacingNode:
		return Node{Tag: "mspace"}

	case parser.OpNode:
		text := v.Text
		if len(v.Body) > 0 {
			return NewRow("mo", buildAll(v.Body)...)
		}
		return New("mo", text)

	case parser.SupSubNode:
		return buildSupSub(v)

	case parser.GenfracNode:
		return buildFrac(v)

	case parser.SqrtNode:
		return buildSqrt(v)

	case parser.OverlineNode:
		return NewRow("mover", buildGroup(v.Body), New("mo", "‾"))

	case parser.UnderlineNode:
		return NewRow("munder", buildGroup(v.Body), New("mo", "_"))

	case parser.AccentNode:
		return NewRow("mover", buildGroup(v.Body), New("mo", v.Label)).WithAttr("accent", "true")

	case parser.AccentUnderNode:
		return NewRow("munder", buildGroup(v.Body), New("mo", v.Label))

	case parser.HorizBraceNode:
		tag := "mover"
		if !v.IsOver {
			tag = "munder"
		}
		return NewRow(tag, buildGroup(v.Body), New("mo", v.Label))

	case parser.XArrowNode:
		if v.Below != nil {
			return NewRow("munderover", New("mo", v.Label), buildGroup(v.Below), buildGroup(v.Body))
		}
		return NewRow("mover", New("mo", v.Label), buildGroup(v.Body))

	case parser.EncloseNode:
		return NewRow("menclose", buildGroup(v.Body)).WithAttr("notation", v.Label)

	case parser.LeftRightNode:
		children := make([]Node, 0, len(v.BodyNodes)+2)
		if v.LeftDelim != "" && v.LeftDelim != "." {
			children = append(children, New("mo", v.LeftDelim).WithAttr("fence", "true"))
		}
		children = append(children, buildAll(v.BodyNodes)...)
		if v.RightDelim != "" && v.RightDelim != "." {
			children = append(children, New("mo", v.RightDelim).WithAttr("fence", "true"))
		}
		return NewRow("mrow", children...)

	case parser.MiddleNode:
		return New("mo", v.Delim).WithAttr("fence", "true")

	case parser.DelimSizingNode:
		return New("mo", v.Delim)

	case parser.StylingNode:
		return NewRow("mstyle", buildAll(v.BodyNodes)...).WithAttr("displaystyle", styleAttr(v.Style))

	case parser.SizingNode:
		return NewRow("mstyle", buildAll(v.BodyNodes)...)

	case parser.ColorNode:
		return NewRow("mstyle", buildAll(v.BodyNodes)...).WithAttr("mathcolor", v.Color)

	case parser.FontNode:
		return NewRow("mstyle", buildAll(v.BodyNodes)...).WithAttr("mathvariant", v.Font)

	case parser.MClassNode:
		return NewRow("mrow", buildAll(v.BodyNodes)...)

	case parser.KernNode:
		return Node{Tag: "mspace"}

	case parser.RuleNode:
		return Node{Tag: "mspace"}.WithAttr("mathbackground", "black")

	case parser.RaiseBoxNode:
		return NewRow("mpadded", buildGroup(v.Body))

	case parser.LapNode:
		return NewRow("mpadded", buildGroup(v.Body))

	case parser.SmashNode:
		return NewRow("mpadded", buildGroup(v.Body))

	case parser.PhantomNode:
		return NewRow("mphantom", buildAll(v.Body)...)

	case parser.HPhantomNode:
		return NewRow("mphantom", buildGroup(v.Body))

	case parser.VPhantomNode:
		return NewRow("mphantom", buildGroup(v.Body))

	case parser.MathChoiceNode:
		return NewRow("mrow", buildAll(v.Display)...)

	case parser.OperatorNameNode:
		return NewRow("mo", buildAll(v.BodyNodes)...)

	case parser.RawNode:
		return New("mtext", v.Text)

	case parser.URLNode:
		return New("mtext", v.URL)

	case parser.VerbNode:
		return New("mtext", v.Text)

	case parser.IncludeGraphicsNode:
		return Node{Tag: "mglyph"}.WithAttr("src", v.Src)

	case parser.TagNode:
		return NewRow("mrow", buildAll(v.BodyNodes)...)

	case parser.TextNode:
		return NewRow("mtext", buildAll(v.BodyNodes)...)

	case parser.CrNode:
		return Node{Tag: "mspace"}

	case parser.HrefNode:
		// Fixes the teacher-style mutation bug explicitly flagged as an
		// Open Question: the returned node IS the one carrying the href,
		// never a stale local copy a caller's reference still points at.
		row := NewRow("mrow", buildAll(v.Body)...)
		return row.WithAttr("href", v.URL)

	case parser.AccentTokenNode:
		return New("mo", v.Text)

	case parser.HTMLMathMLNode:
		return NewRow("mrow", buildAll(v.MathML)...)

	default:
		return New("mtext", "")
	}
}

func buildAll(nodes []parser.Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, buildGroup(n))
	}
	return out
}

func buildSupSub(v parser.SupSubNode) Node {
	base := buildGroup(v.BaseNode)
	switch {
	case v.Sup != nil && v.Sub != nil:
		return NewRow("msubsup", base, buildGroup(v.Sub), buildGroup(v.Sup))
	case v.Sup != nil:
		return NewRow("msup", base, buildGroup(v.Sup))
	case v.Sub != nil:
		return NewRow("msub", base, buildGroup(v.Sub))
	default:
		return base
	}
}

func buildFrac(v parser.GenfracNode) Node {
	frac := NewRow("mfrac", buildGroup(v.Numer), buildGroup(v.Denom))
	if !v.HasBarLine {
		frac = frac.WithAttr("linethickness", "0")
	}
	if v.LeftDelim != "" || v.RightDelim != "" {
		children := []Node{}
		if v.LeftDelim != "" {
			children = append(children, New("mo", v.LeftDelim))
		}
		children = append(children, frac)
		if v.RightDelim != "" {
			children = append(children, New("mo", v.RightDelim))
		}
		return NewRow("mrow", children...)
	}
	return frac
}

func buildSqrt(v parser.SqrtNode) Node {
	if v.Index != nil {
		return NewRow("mroot", buildGroup(v.Body), buildGroup(v.Index))
	}
	return NewRow("msqrt", buildGroup(v.Body))
}

func leafTag(text string) string {
	if text == "" {
		return "mi"
	}
	r := []rune(text)[0]
	switch {
	case unicode.IsDigit(r):
		return "mn"
	case unicode.IsLetter(r):
		return "mi"
	default:
		return "mo"
	}
}

func styleAttr(s parser.Style) string {
	if s == parser.StyleDisplay {
		return "true"
	}
	return "false"
}
