// Package macro maintains the namespace of macro expansions consumed by
// the parser, sitting between the lexer and the parser in the pipeline
// (spec §4.2). It owns \noexpand/\expandafter semantics and the
// maxExpand depth guard; it knows nothing about parse trees.
package macro

import (
	"fmt"

	"github.com/speier/gotex/pkg/gotex/diag"
	"github.com/speier/gotex/pkg/gotex/lexer"
)

// TokenFunc is a macro expansion computed from the current expander state
// rather than a fixed token list — the "function over the expander" case
// spec §4.2 describes.
type TokenFunc func(ex *Expander) ([]lexer.Token, *diag.ParseError)

// Macro is either a fixed token-list expansion or a TokenFunc; exactly one
// of Tokens/Func is set.
type Macro struct {
	Tokens []lexer.Token
	Func   TokenFunc
}

// DefaultMaxExpand bounds the number of macro firings in a single parse,
// per spec §4.2's "configurable depth limit (default large but finite)".
const DefaultMaxExpand = 1000

// source is one entry in the expander's input stack: either the base
// Lexer or a slice of tokens pushed back by a prior expansion.
type source struct {
	lex    *lexer.Lexer
	tokens []lexer.Token
	idx    int
}

func (s *source) next() (lexer.Token, *diag.ParseError, bool) {
	if s.lex != nil {
		if s.lex.Done() {
			return lexer.Token{}, nil, false
		}
		tok, err := s.lex.Next()
		if err != nil {
			return lexer.Token{}, err, true
		}
		return tok, nil, true
	}
	if s.idx >= len(s.tokens) {
		return lexer.Token{}, nil, false
	}
	tok := s.tokens[s.idx]
	s.idx++
	return tok, nil, true
}

// Expander maintains a namespace of macros plus a stack of input sources;
// when a macro fires, its expansion is pushed as a new source and consumed
// before the underlying stream resumes (spec §4.2).
type Expander struct {
	macros    map[string]Macro
	stack     []*source
	sink      *diag.Sink
	maxExpand int
	fired     int
}

// NewExpander builds an Expander reading from lex, seeded with the given
// user macros (spec §6 Settings.macros: name -> fixed replacement text,
// each lexed once here, when the Expander is built).
func NewExpander(lex *lexer.Lexer, userMacros map[string]string, sink *diag.Sink, maxExpand int) *Expander {
	if sink == nil {
		sink = diag.NewSink(nil)
	}
	if maxExpand <= 0 {
		maxExpand = DefaultMaxExpand
	}
	ex := &Expander{
		macros:    make(map[string]Macro),
		stack:     []*source{{lex: lex}},
		sink:      sink,
		maxExpand: maxExpand,
	}
	registerBuiltins(ex)
	for name, expansion := range userMacros {
		inner := lexer.New(expansion, sink)
		var toks []lexer.Token
		for !inner.Done() {
			tok, err := inner.Next()
			if err != nil || tok.Text == "" {
				break
			}
			toks = append(toks, tok)
		}
		ex.Define(name, Macro{Tokens: toks})
	}
	return ex
}

// Define installs or overrides a macro by its control-sequence name
// (including the leading backslash, e.g. `\foo`).
func (ex *Expander) Define(name string, m Macro) {
	ex.macros[name] = m
}

// Lookup reports whether name is a defined macro.
func (ex *Expander) Lookup(name string) (Macro, bool) {
	m, ok := ex.macros[name]
	return m, ok
}

// PushTokens pushes a token slice to be consumed before the current
// stream resumes — used by \expandafter, and available to
// the parser for pushing back a token it peeked but didn't want to
// consume yet.
func (ex *Expander) PushTokens(tokens []lexer.Token) {
	if len(tokens) == 0 {
		return
	}
	ex.stack = append(ex.stack, &source{tokens: tokens})
}

// rawNext pops exhausted sources and returns the next unexpanded token,
// or ok=false at true end of input.
func (ex *Expander) rawNext() (lexer.Token, *diag.ParseError, bool) {
	for len(ex.stack) > 0 {
		top := ex.stack[len(ex.stack)-1]
		tok, err, ok := top.next()
		if err != nil {
			return lexer.Token{}, err, true
		}
		if ok {
			return tok, nil, true
		}
		ex.stack = ex.stack[:len(ex.stack)-1]
	}
	return lexer.Token{}, nil, false
}

// Get returns the next fully-expanded token, firing macros (and resolving
// \noexpand/\expandafter) until a terminal token is produced or input is
// exhausted (zero Token, nil error).
func (ex *Expander) Get() (lexer.Token, *diag.ParseError) {
	tok, err, ok := ex.rawNext()
	if err != nil {
		return lexer.Token{}, err
	}
	if !ok {
		return lexer.Token{}, nil
	}
	if tok.NoExpand || !tok.IsControlSequence() {
		return tok, nil
	}

	switch tok.Text {
	case `\noexpand`:
		next, err, ok := ex.rawNext()
		if err != nil {
			return lexer.Token{}, err
		}
		if !ok {
			return lexer.Token{}, diag.NewParseError(&tok.Span, `\noexpand must be followed by a token`)
		}
		next.NoExpand = true
		return next, nil
	case `\expandafter`:
		first, err, ok := ex.rawNext()
		if err != nil {
			return lexer.Token{}, err
		}
		if !ok {
			return lexer.Token{}, diag.NewParseError(&tok.Span, `\expandafter must be followed by two tokens`)
		}
		second, err, ok := ex.rawNext()
		if err != nil {
			return lexer.Token{}, err
		}
		if !ok {
			return lexer.Token{}, diag.NewParseError(&tok.Span, `\expandafter must be followed by two tokens`)
		}
		expanded, err := ex.expandOneLevel(second)
		if err != nil {
			return lexer.Token{}, err
		}
		ex.PushTokens(append([]lexer.Token{first}, expanded...))
		return ex.Get()
	}

	if _, isMacro := ex.macros[tok.Text]; !isMacro {
		return tok, nil
	}

	ex.fired++
	if ex.fired > ex.maxExpand {
		return lexer.Token{}, diag.NewParseError(&tok.Span, fmt.Sprintf("maximum macro expansion depth (%d) exceeded", ex.maxExpand))
	}

	expansion, err := ex.expandOneLevel(tok)
	if err != nil {
		return lexer.Token{}, err
	}
	ex.PushTokens(expansion)
	return ex.Get()
}

// expandOneLevel fires a single macro occurrence (tok must name one) and
// returns its replacement token list without recursively expanding it —
// recursion happens naturally because the result is pushed back onto the
// stack and re-read through Get.
func (ex *Expander) expandOneLevel(tok lexer.Token) ([]lexer.Token, *diag.ParseError) {
	m, ok := ex.macros[tok.Text]
	if !ok {
		return []lexer.Token{tok}, nil
	}
	if m.Func != nil {
		return m.Func(ex)
	}
	out := make([]lexer.Token, len(m.Tokens))
	copy(out, m.Tokens)
	return out, nil
}
