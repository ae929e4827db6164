package htmlbuild

import (
	"github.com/speier/gotex/pkg/gotex/box"
	"github.com/speier/gotex/pkg/gotex/parser"
)

const defaultRuleThickness = 0.04 // em, TeX's default fraction rule thickness

// buildSupSub builds a base atom with superscript/subscript boxes
// stacked above/below it via box.MakeVList (spec §4.3, §4.5.4).
func buildSupSub(v parser.SupSubNode, options Options) box.Node {
	base := buildSingle(v.BaseNode, options)

	var elems []box.VListElem
	if v.Sup != nil {
		supBox := buildSingle(v.Sup, options.HavingStyle(options.SupStyle()))
		shift := base.Height() - 0.2
		if shift < 0.35 {
			shift = 0.35
		}
		elems = append(elems, box.VListElem{Elem: supBox, Shift: shift})
	}
	if v.Sub != nil {
		subBox := buildSingle(v.Sub, options.HavingStyle(options.SubStyle()))
		shift := -(base.Depth() + 0.15)
		if shift > -0.15 {
			shift = -0.15
		}
		elems = append(elems, box.VListElem{Elem: subBox, Shift: shift})
	}

	scripts := box.MakeVList(box.IndividualShift, 0, elems)
	return box.NewSpan([]box.Node{base, scripts}, nil, nil, []string{"mord"})
}

// buildGenfrac builds a \frac-family fraction: numerator stacked over a
// rule over the denominator via box.MakeVList, rule thickness floored at
// minRuleThickness (spec.md scenario: "rule thickness ≥
// minRuleThickness").
func buildGenfrac(v parser.GenfracNode, options Options) box.Node {
	style := options.FracStyle(true)
	inner := options.HavingStyle(style)

	numer := buildSingle(v.Numer, inner)
	denom := buildSingle(v.Denom, inner)

	ruleThickness := defaultRuleThickness
	if v.BarSize >= 0 {
		ruleThickness = v.BarSize
	}
	if ruleThickness < options.MinRuleThickness {
		ruleThickness = options.MinRuleThickness
	}

	var elems []box.VListElem
	elems = append(elems, box.VListElem{Elem: numer, Shift: 0})
	if v.HasBarLine {
		elems = append(elems, box.VListElem{Elem: box.NewLine(ruleThickness, 0, []string{"frac-line"}), Shift: -(numer.Depth() + ruleThickness/2)})
	}
	elems = append(elems, box.VListElem{Elem: denom, Shift: -(numer.Depth() + numer.Height() + ruleThickness + denom.Height())})

	vlist := box.MakeVList(box.IndividualShift, 0, elems)

	if v.LeftDelim == "" && v.RightDelim == "" {
		return box.NewSpan([]box.Node{vlist}, nil, nil, []string{"mord"})
	}
	return wrapWithDelims(vlist, v.LeftDelim, v.RightDelim, options)
}

// buildSqrt builds a radical: a sqrt-sign glyph plus an overline rule
// above the radicand, with an optional index superscript tucked into the
// notch (spec §4.4's stretchy sqrt-bottom path, simplified to a fixed
// glyph since this port has no font-specific radical metrics).
func buildSqrt(v parser.SqrtNode, options Options) box.Node {
	inner := options.HavingStyle(options.FracStyle(true))
	body := buildSingle(v.Body, inner)

	ruleThickness := defaultRuleThickness
	sign := buildSymbol("√", options, "ord")

	elems := []box.VListElem{
		{Elem: box.NewLine(ruleThickness, 0, []string{"sqrt-line"}), Shift: -(body.Height() + ruleThickness)},
		{Elem: body, Shift: 0},
	}
	vlist := box.MakeVList(box.IndividualShift, 0, elems)
	children := []box.Node{sign, vlist}
	if v.Index != nil {
		idx := buildSingle(v.Index, options.HavingStyle(parser.StyleScriptScript))
		children = append([]box.Node{idx}, children...)
	}
	return box.NewSpan(children, nil, nil, []string{"mord", "sqrt"})
}

func buildOverline(v parser.OverlineNode, options Options) box.Node {
	body := buildSingle(v.Body, options)
	ruleThickness := defaultRuleThickness
	if ruleThickness < options.MinRuleThickness {
		ruleThickness = options.MinRuleThickness
	}
	rule := box.NewLine(ruleThickness, 0, []string{"overline-line"})
	vlist := box.MakeVList(box.IndividualShift, 0, []box.VListElem{
		{Elem: rule, Shift: -(body.Height() + 3*ruleThickness)},
		{Elem: body, Shift: 0},
	})
	return box.NewSpan([]box.Node{vlist}, nil, nil, []string{"mord", "overline"})
}

func buildUnderline(v parser.UnderlineNode, options Options) box.Node {
	body := buildSingle(v.Body, options)
	ruleThickness := defaultRuleThickness
	if ruleThickness < options.MinRuleThickness {
		ruleThickness = options.MinRuleThickness
	}
	rule := box.NewLine(ruleThickness, 0, []string{"underline-line"})
	vlist := box.MakeVList(box.IndividualShift, 0, []box.VListElem{
		{Elem: body, Shift: 0},
		{Elem: rule, Shift: -(body.Depth() + 3*ruleThickness)},
	})
	return box.NewSpan([]box.Node{vlist}, nil, nil, []string{"mord", "underline"})
}

// buildAccent places an accent label above its base (spec §4.4, §4.5.5).
// When Stretchy is set the span gets the extra class accent-stretchy;
// the label is the ordinary glyph and is not stretched to the base's
// width.
func buildAccent(v parser.AccentNode, options Options) box.Node {
	base := buildSingle(v.Body, options)
	label := buildSymbol(v.Label, options, "ord")
	classes := []string{"accent-body"}
	if v.Stretchy {
		classes = append(classes, "accent-stretchy")
	}
	vlist := box.MakeVList(box.IndividualShift, 0, []box.VListElem{
		{Elem: label, Shift: base.Height() + 0.1},
		{Elem: base, Shift: 0},
	})
	return box.NewSpan([]box.Node{vlist}, nil, nil, append([]string{"mord", "accent"}, classes...))
}

func buildHorizBrace(v parser.HorizBraceNode, options Options) box.Node {
	base := buildSingle(v.Body, options)
	brace := buildSymbol(v.Label, options, "ord")
	var elems []box.VListElem
	if v.IsOver {
		shift := base.Height() + 0.1
		elems = []box.VListElem{{Elem: brace, Shift: shift}, {Elem: base, Shift: 0}}
	} else {
		shift := -(base.Depth() + 0.1)
		elems = []box.VListElem{{Elem: base, Shift: 0}, {Elem: brace, Shift: shift}}
	}
	vlist := box.MakeVList(box.IndividualShift, 0, elems)
	return box.NewSpan([]box.Node{vlist}, nil, nil, []string{"mord"})
}

// buildXArrow builds a labeled arrow (\xrightarrow etc): the arrow glyph
// at its natural size, with the above content over it and optional below
// content under it; the glyph is not stretched to the labels' width.
func buildXArrow(v parser.XArrowNode, options Options) box.Node {
	arrow := buildSymbol(v.Label, options, "rel")
	above := buildSingle(v.Body, options.HavingStyle(parser.StyleScript))
	elems := []box.VListElem{{Elem: above, Shift: arrow.Height() + 0.1}, {Elem: arrow, Shift: 0}}
	if v.Below != nil {
		below := buildSingle(v.Below, options.HavingStyle(parser.StyleScript))
		elems = append(elems, box.VListElem{Elem: below, Shift: -(arrow.Depth() + below.Height() + 0.1)})
	}
	vlist := box.MakeVList(box.IndividualShift, 0, elems)
	return box.NewSpan([]box.Node{vlist}, nil, nil, []string{"mrel", "x-arrow"})
}
