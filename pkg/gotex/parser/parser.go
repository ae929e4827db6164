package parser

import (
	"strconv"
	"strings"

	"github.com/speier/gotex/pkg/gotex/diag"
	"github.com/speier/gotex/pkg/gotex/lexer"
	"github.com/speier/gotex/pkg/gotex/macro"
	"github.com/speier/gotex/pkg/gotex/symbols"
)

// Parser is the recursive-descent cursor over an expanding token stream
// (spec §4.3), generalizing the teacher's byte-cursor `parser` struct
// (vdom/parse.go: input/pos, peek/advance, parseIdentifier) from bytes to
// macro-expanded tokens.
type Parser struct {
	ex      *macro.Expander
	sink    *diag.Sink
	mode    Mode
	lookbuf *lexer.Token // one token of pushback, set by unget
}

// New builds a Parser reading from ex, starting in math mode (spec.md
// scenarios are all `$...$`/`\[...\]`-equivalent top-level math).
func New(ex *macro.Expander, sink *diag.Sink) *Parser {
	return &Parser{ex: ex, sink: sink, mode: Math}
}

func (p *Parser) next() (lexer.Token, *diag.ParseError) {
	if p.lookbuf != nil {
		tok := *p.lookbuf
		p.lookbuf = nil
		return tok, nil
	}
	return p.ex.Get()
}

func (p *Parser) unget(tok lexer.Token) {
	p.lookbuf = &tok
}

func (p *Parser) peek() (lexer.Token, *diag.ParseError) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	p.unget(tok)
	return tok, nil
}

// ParseInput parses an entire source string to its top-level expression,
// returning an implicit OrdGroupNode wrapping the whole thing so callers
// always get a single Node regardless of how many atoms the input held.
func ParseInput(ex *macro.Expander, sink *diag.Sink) (Node, *diag.ParseError) {
	p := New(ex, sink)
	body, err := p.parseExpression(false, "")
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Text != "" {
		return nil, diag.NewParseError(&tok.Span, "unexpected token at top level: "+tok.Text)
	}
	return OrdGroupNode{Base: Base{NodeMode: Math}, BodyNodes: body, SemiSimple: true}, nil
}

// implicitGroupEnders are the tokens that end an expression list at the
// current nesting level when no explicit terminator is given: a closing
// brace, \right, \end, & and \\. End-of-input ends every expression list.
var implicitGroupEnders = map[string]bool{
	"}": true, `\right`: true, `\end`: true, "&": true, `\\`: true,
}

// parseExpression consumes atoms until a group-ending token, applying
// infix conversion (\over, \atop, \choose) once at the end per TeX's
// single-infix-per-group rule.
func (p *Parser) parseExpression(breakOnInfix bool, until string) ([]Node, *diag.ParseError) {
	var body []Node
	var infixAt int = -1
	var infixTok string

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Text == "" || tok.Text == until || (until == "" && implicitGroupEnders[tok.Text]) {
			break
		}
		if isInfixToken(tok.Text) {
			if infixAt >= 0 {
				return nil, diag.NewParseError(&tok.Span, "only one infix command per group is allowed")
			}
			p.next()
			infixAt = len(body)
			infixTok = tok.Text
			continue
		}

		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		if atom == nil {
			continue
		}
		body = append(body, atom)
	}

	if infixAt >= 0 {
		return []Node{p.buildInfix(infixTok, body[:infixAt], body[infixAt:])}, nil
	}
	return body, nil
}

func isInfixToken(text string) bool {
	switch text {
	case `\over`, `\atop`, `\choose`, `\overwithdelims`, `\atopwithdelims`:
		return true
	}
	return false
}

func (p *Parser) buildInfix(tok string, numer, denom []Node) Node {
	hasBar := tok == `\over` || tok == `\overwithdelims`
	return GenfracNode{
		Base:       Base{NodeMode: p.mode},
		Numer:      wrapGroup(numer, p.mode),
		Denom:      wrapGroup(denom, p.mode),
		HasBarLine: hasBar,
		Size:       "auto",
		BarSize:    -1,
	}
}

func wrapGroup(nodes []Node, mode Mode) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return OrdGroupNode{Base: Base{NodeMode: mode}, BodyNodes: nodes, SemiSimple: true}
}

// parseAtom parses one base symbol/group/function and then attaches any
// following ^ / _ as a SupSubNode (spec §4.3 "handling of superscripts
// and subscripts attaching to the preceding atom").
func (p *Parser) parseAtom() (Node, *diag.ParseError) {
	base, err := p.parseGroupOrSymbol()
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, nil
	}

	var sup, sub Node
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Text == `\limits` || tok.Text == `\nolimits` {
			p.next()
			op, ok := base.(OpNode)
			if !ok {
				return nil, diag.NewParseError(&tok.Span, tok.Text+" must follow an operator")
			}
			want := tok.Text == `\limits`
			op.Limits = &want
			base = op
			continue
		}
		switch tok.Text {
		case "^":
			if sup != nil {
				return nil, diag.NewParseError(&tok.Span, "double superscript")
			}
			p.next()
			sup, err = p.parseArgGroup()
			if err != nil {
				return nil, err
			}
			continue
		case "_":
			if sub != nil {
				return nil, diag.NewParseError(&tok.Span, "double subscript")
			}
			p.next()
			sub, err = p.parseArgGroup()
			if err != nil {
				return nil, err
			}
			continue
		case "'":
			p.next()
			sup = OrdNode{Base: Base{NodeMode: p.mode}, Text: "′"}
			continue
		}
		break
	}

	if sup == nil && sub == nil {
		return base, nil
	}
	return SupSubNode{Base: Base{NodeMode: p.mode}, BaseNode: base, Sup: sup, Sub: sub}, nil
}

// parseGroupOrSymbol parses exactly one of: a {...} group, a \left...
// \right construct, a registered function call, an operator/symbol
// lookup, or a bare character ordinary.
func (p *Parser) parseGroupOrSymbol() (Node, *diag.ParseError) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Text == "" {
		return nil, nil
	}

	switch tok.Text {
	case "{":
		body, err := p.parseExpression(false, "}")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("}"); err != nil {
			return nil, err
		}
		return OrdGroupNode{Base: Base{NodeMode: p.mode}, BodyNodes: body}, nil
	case "}":
		return nil, diag.NewParseError(&tok.Span, "unexpected }")
	case `\left`:
		return p.parseLeftRight(tok)
	case `\middle`:
		delim, derr := p.parseDelimiterToken()
		if derr != nil {
			return nil, derr
		}
		return MiddleNode{Base: Base{NodeMode: p.mode}, Delim: delim}, nil
	case "^", "_":
		return nil, diag.NewParseError(&tok.Span, "double superscript/subscript with no base")
	}

	if tok.IsControlSequence() {
		if handler, ok := functionRegistry[tok.Text]; ok {
			return handler(p, tok)
		}
		return p.symbolOrdFromControlSequence(tok)
	}

	return p.literalOrd(tok)
}

func (p *Parser) symbolOrdFromControlSequence(tok lexer.Token) (Node, *diag.ParseError) {
	modeStr := "math"
	if p.mode == Text {
		modeStr = "text"
	}
	entry, ok := symbols.Lookup(modeStr, tok.Text)
	if !ok {
		if w := p.warn("unknown_symbol", "unrecognized control sequence "+tok.Text, tok.Span); w != nil {
			return nil, w
		}
		return OrdNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: tok.Text, IsTextMode: p.mode == Text}, nil
	}
	switch AtomClass(entry.Family) {
	case ClassBin, ClassRel, ClassOpen, ClassClose, ClassPunct, ClassInner:
		return AtomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: entry.Replacement, Family: AtomClass(entry.Family)}, nil
	default:
		return OrdNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: entry.Replacement, IsTextMode: p.mode == Text}, nil
	}
}

func (p *Parser) literalOrd(tok lexer.Token) (Node, *diag.ParseError) {
	switch tok.Text {
	case "+", "-", "*":
		return AtomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: tok.Text, Family: ClassBin}, nil
	case "=", "<", ">":
		return AtomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: tok.Text, Family: ClassRel}, nil
	case "(", "[":
		return AtomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: tok.Text, Family: ClassOpen}, nil
	case ")", "]":
		return AtomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: tok.Text, Family: ClassClose}, nil
	case ",", ";":
		return AtomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: tok.Text, Family: ClassPunct}, nil
	case " ":
		if p.mode == Text {
			return OrdNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: " ", IsTextMode: true}, nil
		}
		return nil, nil
	}
	modeStr := "math"
	if p.mode == Text {
		modeStr = "text"
	}
	if entry, ok := symbols.Lookup(modeStr, tok.Text); ok {
		switch AtomClass(entry.Family) {
		case ClassBin, ClassRel, ClassOpen, ClassClose, ClassPunct, ClassInner:
			return AtomNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: entry.Replacement, Family: AtomClass(entry.Family)}, nil
		}
	}
	return OrdNode{Base: Base{NodeMode: p.mode, NodeSpan: span(tok.Span)}, Text: tok.Text, IsTextMode: p.mode == Text}, nil
}

// parseArgGroup parses a single mandatory argument: a {...} group
// collapses to an OrdGroupNode, otherwise exactly one atom is consumed.
func (p *Parser) parseArgGroup() (Node, *diag.ParseError) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Text == "{" {
		p.next()
		body, err := p.parseExpression(false, "}")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("}"); err != nil {
			return nil, err
		}
		return OrdGroupNode{Base: Base{NodeMode: p.mode}, BodyNodes: body}, nil
	}
	// A bare (non-braced) argument is exactly one base symbol/function —
	// it must NOT also absorb a trailing ^/_ itself, or "x_1^2" would
	// parse as x with sub=(1^2) instead of x with sub=1, sup=2.
	return p.parseGroupOrSymbol()
}

// parseArgOptional parses a bracketed [...] optional argument if present,
// returning ("", false) when none is there.
func (p *Parser) parseArgOptional() (string, bool, *diag.ParseError) {
	tok, err := p.peek()
	if err != nil {
		return "", false, err
	}
	if tok.Text != "[" {
		return "", false, nil
	}
	p.next()
	var sb strings.Builder
	for {
		tok, err := p.next()
		if err != nil {
			return "", false, err
		}
		if tok.Text == "" {
			return "", false, diag.NewParseError(&tok.Span, "unterminated optional argument")
		}
		if tok.Text == "]" {
			break
		}
		sb.WriteString(tok.Text)
	}
	return sb.String(), true, nil
}

func (p *Parser) expect(text string) (lexer.Token, *diag.ParseError) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Text != text {
		return tok, diag.NewParseError(&tok.Span, "expected "+text+", got "+tok.Text)
	}
	return tok, nil
}

func (p *Parser) warn(code, message string, sp lexer.Span) *diag.ParseError {
	if p.sink == nil {
		return nil
	}
	return p.sink.Report(code, message, sp)
}

// parseDelimiterToken consumes one delimiter spelling following \left,
// \right, or \middle — either a symbol/punctuation token or the literal
// "." meaning "no delimiter".
func (p *Parser) parseDelimiterToken() (string, *diag.ParseError) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Text == "" {
		return "", diag.NewParseError(&tok.Span, "expected a delimiter")
	}
	return tok.Text, nil
}

func (p *Parser) parseLeftRight(leftTok lexer.Token) (Node, *diag.ParseError) {
	leftDelim, err := p.parseDelimiterToken()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpression(false, `\right`)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(`\right`); err != nil {
		return nil, err
	}
	rightDelim, err := p.parseDelimiterToken()
	if err != nil {
		return nil, err
	}
	return LeftRightNode{
		Base:       Base{NodeMode: p.mode, NodeSpan: span(leftTok.Span)},
		BodyNodes:  body,
		LeftDelim:  leftDelim,
		RightDelim: rightDelim,
	}, nil
}

// parseSizeValue parses a TeX dimension like "1.2em" or "3pt" out of a
// raw string captured from an optional/mandatory argument.
func parseSizeValue(s string) (float64, string, bool) {
	s = strings.TrimSpace(s)
	for i := len(s); i > 0; i-- {
		if _, err := strconv.ParseFloat(s[:i], 64); err == nil {
			v, _ := strconv.ParseFloat(s[:i], 64)
			return v, strings.TrimSpace(s[i:]), true
		}
	}
	return 0, "", false
}
