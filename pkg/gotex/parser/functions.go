package parser

import (
	"strings"

	"github.com/speier/gotex/pkg/gotex/diag"
	"github.com/speier/gotex/pkg/gotex/lexer"
	"github.com/speier/gotex/pkg/gotex/symbols"
)

// handler builds one Node from a control sequence already consumed from
// the stream, parsing whatever arguments that function requires. This is
// the function registry spec §4.4 describes: a rule table matched by
// control-sequence name, generalizing the teacher's
// style/resolver.go cascade (first-matching-rule-wins) from CSS
// selectors to TeX control sequences.
type handler func(p *Parser, tok lexer.Token) (Node, *diag.ParseError)

var functionRegistry map[string]handler

func init() {
	functionRegistry = map[string]handler{}
	registerFractions()
	registerRadicals()
	registerAccents()
	registerStretchyLabels()
	registerStyleAndSize()
	registerFonts()
	registerClassOverrides()
	registerSpacing()
	registerBoxAndRule()
	registerPhantoms()
	registerMisc()
	registerOperators()
}

func reg(names []string, h handler) {
	for _, n := range names {
		functionRegistry[n] = h
	}
}

// ---- Fractions ----

func registerFractions() {
	reg([]string{`\frac`, `\dfrac`, `\tfrac`}, func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		numer, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		denom, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		size := "auto"
		switch tok.Text {
		case `\dfrac`:
			size = "display"
		case `\tfrac`:
			size = "text"
		}
		return GenfracNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Numer: numer, Denom: denom, HasBarLine: true, Size: size, BarSize: -1}, nil
	})
	reg([]string{`\binom`, `\dbinom`, `\tbinom`}, func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		numer, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		denom, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		size := "auto"
		switch tok.Text {
		case `\dbinom`:
			size = "display"
		case `\tbinom`:
			size = "text"
		}
		return GenfracNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Numer: numer, Denom: denom, HasBarLine: false, LeftDelim: "(", RightDelim: ")", Size: size, BarSize: 0}, nil
	})
}

// ---- Radicals ----

func registerRadicals() {
	functionRegistry[`\sqrt`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		var index Node
		peeked, err := p.peek()
		if err != nil {
			return nil, err
		}
		if peeked.Text == "[" {
			p.next()
			idxBody, err := p.parseExpression(false, "]")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("]"); err != nil {
				return nil, err
			}
			index = wrapGroup(idxBody, p.mode)
		}
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return SqrtNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Body: body, Index: index}, nil
	}
}

// ---- Accents ----

var accentLabels = map[string]string{
	`\hat`: "^", `\widehat`: "^", `\tilde`: "~", `\widetilde`: "~",
	`\bar`: "ˉ", `\vec`: "→", `\dot`: "˙", `\ddot`: "¨",
	`\acute`: "´", `\grave`: "`", `\breve`: "˘", `\check`: "ˇ",
	`\mathring`: "˚",
}

var stretchyAccents = map[string]bool{`\widehat`: true, `\widetilde`: true}

func registerAccents() {
	reg(accentNames(), func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return AccentNode{
			Base:     Base{NodeMode: p.mode, NodeSpan: span(tok.Span)},
			Label:    accentLabels[tok.Text],
			Body:     body,
			Stretchy: stretchyAccents[tok.Text],
		}, nil
	})
	functionRegistry[`\underline`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return UnderlineNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Body: body}, nil
	}
	functionRegistry[`\overline`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return OverlineNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Body: body}, nil
	}
	functionRegistry[`\underbrace`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return HorizBraceNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Label: "⏟", IsOver: false, Body: body}, nil
	}
	functionRegistry[`\overbrace`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return HorizBraceNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Label: "⏞", IsOver: true, Body: body}, nil
	}
}

func accentNames() []string {
	names := make([]string, 0, len(accentLabels))
	for n := range accentLabels {
		names = append(names, n)
	}
	return names
}

// ---- Stretchy labeled arrows (\xrightarrow etc) ----

var xArrowLabels = map[string]string{
	`\xrightarrow`: "→", `\xleftarrow`: "←", `\xRightarrow`: "⇒",
	`\xLeftarrow`: "⇐", `\xleftrightarrow`: "↔", `\xLeftrightarrow`: "⇔",
	`\xhookrightarrow`: "↪", `\xhookleftarrow`: "↩",
}

func registerStretchyLabels() {
	names := make([]string, 0, len(xArrowLabels))
	for n := range xArrowLabels {
		names = append(names, n)
	}
	reg(names, func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		var below Node
		opt, has, err := p.parseArgOptional()
		if err != nil {
			return nil, err
		}
		if has {
			below = RawNode{Base: Base{NodeMode: p.mode}, Text: opt}
		}
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return XArrowNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Label: xArrowLabels[tok.Text], Body: body, Below: below}, nil
	})
}

// ---- Styling, sizing ----

var styleCommands = map[string]Style{
	`\displaystyle`: StyleDisplay, `\textstyle`: StyleText,
	`\scriptstyle`: StyleScript, `\scriptscriptstyle`: StyleScriptScript,
}

var sizeCommands = map[string]int{
	`\tiny`: 1, `\scriptsize`: 2, `\footnotesize`: 3, `\small`: 4,
	`\normalsize`: 5, `\large`: 6, `\Large`: 7, `\LARGE`: 8,
	`\huge`: 9, `\Huge`: 10,
}

func registerStyleAndSize() {
	for name, style := range styleCommands {
		name, style := name, style
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			rest, err := p.parseExpression(false, "")
			if err != nil {
				return nil, err
			}
			return StylingNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Style: style, BodyNodes: rest}, nil
		}
	}
	for name, size := range sizeCommands {
		name, size := name, size
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			rest, err := p.parseExpression(false, "")
			if err != nil {
				return nil, err
			}
			return SizingNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, SizeIndex: size, BodyNodes: rest}, nil
		}
	}
}

// ---- Fonts ----

var fontCommands = map[string]string{
	`\mathrm`: "mathrm", `\mathbf`: "mathbf", `\mathit`: "mathit",
	`\mathsf`: "mathsf", `\mathtt`: "mathtt", `\mathcal`: "mathcal",
	`\mathbb`: "mathbb", `\mathfrak`: "mathfrak", `\mathscr`: "mathscr",
	`\textrm`: "textrm", `\textbf`: "textbf", `\textit`: "textit",
	`\textsf`: "textsf", `\texttt`: "texttt",
}

func registerFonts() {
	for name, font := range fontCommands {
		name, font := name, font
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			body, err := p.parseArgGroup()
			if err != nil {
				return nil, err
			}
			return FontNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Font: font, BodyNodes: []Node{body}}, nil
		}
	}
	reg([]string{`\text`}, func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		prevMode := p.mode
		p.mode = Text
		body, err := p.parseArgGroup()
		p.mode = prevMode
		if err != nil {
			return nil, err
		}
		bodyList := []Node{body}
		if g, ok := body.(OrdGroupNode); ok {
			bodyList = g.BodyNodes
		}
		return TextNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, BodyNodes: bodyList}, nil
	})
	functionRegistry[`\operatorname`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		prevMode := p.mode
		p.mode = Text
		body, err := p.parseArgGroup()
		p.mode = prevMode
		if err != nil {
			return nil, err
		}
		bodyList := []Node{body}
		if g, ok := body.(OrdGroupNode); ok {
			bodyList = g.BodyNodes
		}
		return OperatorNameNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, BodyNodes: bodyList, Limits: false}, nil
	}
}

// ---- mclass overrides ----

var classOverrides = map[string]AtomClass{
	`\mathbin`: ClassBin, `\mathrel`: ClassRel, `\mathopen`: ClassOpen,
	`\mathclose`: ClassClose, `\mathord`: ClassOrd, `\mathpunct`: ClassPunct,
	`\mathinner`: ClassInner,
}

func registerClassOverrides() {
	for name, class := range classOverrides {
		name, class := name, class
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			body, err := p.parseArgGroup()
			if err != nil {
				return nil, err
			}
			return MClassNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Class: class, BodyNodes: []Node{body}}, nil
		}
	}
	functionRegistry[`\color`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		colorTok, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseExpression(false, "")
		if err != nil {
			return nil, err
		}
		return ColorNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Color: nodeText(colorTok), BodyNodes: rest}, nil
	}
	functionRegistry[`\textcolor`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		colorTok, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return ColorNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Color: nodeText(colorTok), BodyNodes: []Node{body}}, nil
	}
}

func nodeText(n Node) string {
	switch v := n.(type) {
	case OrdNode:
		return v.Text
	case RawNode:
		return v.Text
	case AtomNode:
		return v.Text
	case OrdGroupNode:
		var sb strings.Builder
		for _, c := range v.BodyNodes {
			sb.WriteString(nodeText(c))
		}
		return sb.String()
	}
	return ""
}

// ---- Spacing, kerns ----

var spacingCommands = map[string]bool{
	`\,`: true, `\:`: true, `\;`: true, `\!`: true,
	`\quad`: true, `\qquad`: true, `\ `: true, `\enspace`: true,
}

func registerSpacing() {
	for name := range spacingCommands {
		name := name
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			return SpacingNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: name}, nil
		}
	}
	functionRegistry[`\kern`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		amt, err := p.parseDimenArg()
		if err != nil {
			return nil, err
		}
		return KernNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Amount: amt}, nil
	}
	functionRegistry[`\hspace`] = functionRegistry[`\kern`]
}

// parseDimenArg reads a mandatory {<number><unit>} or bare-token
// dimension argument, e.g. after \kern or \rule.
func (p *Parser) parseDimenArg() (float64, *diag.ParseError) {
	tok, err := p.peek()
	if err != nil {
		return 0, err
	}
	var raw string
	if tok.Text == "{" {
		p.next()
		for {
			t, err := p.next()
			if err != nil {
				return 0, err
			}
			if t.Text == "}" || t.Text == "" {
				break
			}
			raw += t.Text
		}
	} else {
		p.next()
		raw = tok.Text
		for {
			t, err := p.peek()
			if err != nil {
				return 0, err
			}
			if t.Text == "" || (t.Text[0] < '0' && t.Text != ".") || t.Text == "{" {
				break
			}
			p.next()
			raw += t.Text
		}
	}
	v, _, ok := parseSizeValue(raw)
	if !ok {
		return 0, diag.NewParseError(&tok.Span, "invalid dimension: "+raw)
	}
	return v, nil
}

// ---- Boxes, rules ----

func registerBoxAndRule() {
	functionRegistry[`\rule`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		width, err := p.parseDimenArg()
		if err != nil {
			return nil, err
		}
		height, err := p.parseDimenArg()
		if err != nil {
			return nil, err
		}
		return RuleNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Width: width, Height: height}, nil
	}
	functionRegistry[`\raisebox`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		amt, err := p.parseDimenArg()
		if err != nil {
			return nil, err
		}
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return RaiseBoxNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Amount: amt, Body: body}, nil
	}
	lapNames := map[string]string{`\llap`: "llap", `\rlap`: "rlap", `\clap`: "clap", `\mathllap`: "llap", `\mathrlap`: "rlap", `\mathclap`: "clap"}
	for name, align := range lapNames {
		name, align := name, align
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			body, err := p.parseArgGroup()
			if err != nil {
				return nil, err
			}
			return LapNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Alignment: align, Body: body}, nil
		}
	}
	functionRegistry[`\smash`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		opt, has, err := p.parseArgOptional()
		if err != nil {
			return nil, err
		}
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		smashH, smashD := true, true
		if has {
			smashH = strings.Contains(opt, "t") || strings.Contains(opt, "b")
			smashD = smashH
		}
		return SmashNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Body: body, SmashHeight: smashH, SmashDepth: smashD}, nil
	}
}

// ---- Phantoms ----

func registerPhantoms() {
	functionRegistry[`\phantom`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return PhantomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Body: []Node{body}}, nil
	}
	functionRegistry[`\hphantom`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return HPhantomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Body: body}, nil
	}
	functionRegistry[`\vphantom`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return VPhantomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Body: body}, nil
	}
}

// ---- Misc leaves ----

func registerMisc() {
	functionRegistry[`\href`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		url, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		bodyList := []Node{body}
		if g, ok := body.(OrdGroupNode); ok {
			bodyList = g.BodyNodes
		}
		return HrefNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, URL: nodeText(url), Body: bodyList}, nil
	}
	functionRegistry[`\url`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		urlNode, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return URLNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, URL: nodeText(urlNode)}, nil
	}
	functionRegistry[`\includegraphics`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		_, _, err := p.parseArgOptional()
		if err != nil {
			return nil, err
		}
		src, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return IncludeGraphicsNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Src: nodeText(src)}, nil
	}
	functionRegistry[`\tag`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		bodyList := []Node{body}
		if g, ok := body.(OrdGroupNode); ok {
			bodyList = g.BodyNodes
		}
		return TagNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, BodyNodes: bodyList}, nil
	}
	functionRegistry[`\mathchoice`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		d, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		t, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		s, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		ss, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return MathChoiceNode{
			Base:        Base{NodeMode: p.mode, NodeSpan: span(tok.Span)},
			Display:     []Node{d}, Text2: []Node{t}, Script: []Node{s}, ScriptScript: []Node{ss},
		}, nil
	}
	enclosureLabels := map[string]string{`\cancel`: "cancel", `\bcancel`: "bcancel", `\xcancel`: "xcancel", `\boxed`: "boxed"}
	for name, label := range enclosureLabels {
		name, label := name, label
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			body, err := p.parseArgGroup()
			if err != nil {
				return nil, err
			}
			return EncloseNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Label: label, Body: body}, nil
		}
	}
	functionRegistry[`\not`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		body, err := p.parseArgGroup()
		if err != nil {
			return nil, err
		}
		return MClassNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Class: ClassRel, BodyNodes: []Node{
			OrdNode{Base: Base{NodeMode: p.mode}, Text: nodeText(body) + "̸"},
		}}, nil
	}
}

// ---- Big operators ----

func registerOperators() {
	for name, op := range symbols.Operators {
		name, op := name, op
		functionRegistry[name] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
			return OpNode{
				Base:     Base{NodeMode: p.mode, NodeSpan: span(tok.Span)},
				Text:     op.Glyph,
				Limits:   nil,
				IsSymbol: true,
			}, nil
		}
	}
	functionRegistry[`\limits`] = func(p *Parser, tok lexer.Token) (Node, *diag.ParseError) {
		return nil, diag.NewParseError(&tok.Span, `\limits must follow an operator`)
	}
	functionRegistry[`\nolimits`] = functionRegistry[`\limits`]
}
