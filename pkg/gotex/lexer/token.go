// Package lexer turns a TeX-compatible math source string into a stream of
// tokens, each carrying the source span it was read from.
package lexer

import "fmt"

// Span identifies a half-open byte range [Start, End) within the source
// attached to a particular Lexer instance. The LexerID distinguishes spans
// from concurrently running parses (see gotex's concurrency model) so a
// host aggregating errors across documents never confuses one span for
// another.
type Span struct {
	LexerID string
	Start   int
	End     int
}

// Join returns the smallest span covering both a and b. A zero Span (both
// fields empty) on either side is ignored, matching how the parser joins
// the span of a control word with an argument it consumed.
func (a Span) Join(b Span) Span {
	if a.LexerID == "" {
		return b
	}
	if b.LexerID == "" {
		return a
	}
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return Span{LexerID: a.LexerID, Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Token is an immutable lexical unit: a control word (`\foo`), a control
// symbol (`\#`), or a single character. Whitespace runs are collapsed to a
// single space token; comments never produce a token.
type Token struct {
	Text     string
	Span     Span
	NoExpand bool // set by \noexpand; the macro expander must not re-expand it
}

// IsControlSequence reports whether the token was lexed as `\word` or
// `\X`, as opposed to a plain character.
func (t Token) IsControlSequence() bool {
	return len(t.Text) > 0 && t.Text[0] == '\\'
}
