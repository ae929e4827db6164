package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/speier/gotex/pkg/gotex/diag"
)

// isControlWordByte reports whether b belongs to the run of ASCII letters
// following a `\` that forms a control word; a control symbol is exactly
// one non-letter byte.
func isControlWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Lexer produces a lazy sequence of Tokens from an input string. Each
// Lexer carries its own id (spec §5: "Multiple independent parses may
// execute concurrently... provided each carries its own Lexer") so spans
// it emits are traceable back to this instance even after merging with
// spans from another concurrently-running Lexer.
type Lexer struct {
	id    string
	input string
	pos   int
	sink  *diag.Sink
}

// New creates a Lexer over input, reporting an invalid UTF-8 byte as
// "unknown-char" through sink. Valid characters are tokenized without a
// report, whatever their Unicode range.
func New(input string, sink *diag.Sink) *Lexer {
	if sink == nil {
		sink = diag.NewSink(nil)
	}
	return &Lexer{
		id:    uuid.NewString(),
		input: input,
		sink:  sink,
	}
}

// ID returns the opaque identifier stamped on every Span this Lexer emits.
func (l *Lexer) ID() string { return l.id }

func (l *Lexer) span(start int) Span {
	return Span{LexerID: l.id, Start: start, End: l.pos}
}

// Next returns the next Token, or (Token{}, nil, io.EOF-like) when input is
// exhausted — signaled by a zero Token and a nil error with Text == "".
// Callers should check Done() first.
func (l *Lexer) Next() (Token, *diag.ParseError) {
	l.skipIgnorable()
	if l.pos >= len(l.input) {
		return Token{}, nil
	}

	start := l.pos
	b := l.input[l.pos]

	if b == '\\' {
		return l.lexControlSequence(start)
	}

	if isWhitespaceByte(b) {
		// Collapse a whitespace run to one space token (math mode treats
		// all whitespace as skippable, but the parser still needs to see
		// a spacing boundary for some argument types).
		for l.pos < len(l.input) && isWhitespaceByte(l.input[l.pos]) {
			l.pos++
		}
		return Token{Text: " ", Span: l.span(start)}, nil
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		l.pos++
		perr := l.sink.Report("unknown-char", "unknown character", l.span(start))
		if perr != nil {
			return Token{}, perr
		}
		return l.Next()
	}
	l.pos += size
	return Token{Text: l.input[start:l.pos], Span: l.span(start)}, nil
}

// Done reports whether the input has been fully consumed.
func (l *Lexer) Done() bool {
	l.skipIgnorable()
	return l.pos >= len(l.input)
}

// skipIgnorable consumes `%`-to-end-of-line comments, collapsing a
// comment's trailing newline the same way TeX's line-continuation `%`
// does: the newline itself is swallowed, joining the next line onto this
// one with no intervening space.
func (l *Lexer) skipIgnorable() {
	for l.pos < len(l.input) {
		if l.input[l.pos] == '%' {
			nl := strings.IndexByte(l.input[l.pos:], '\n')
			if nl < 0 {
				l.pos = len(l.input)
				return
			}
			l.pos += nl + 1
			continue
		}
		return
	}
}

func (l *Lexer) lexControlSequence(start int) (Token, *diag.ParseError) {
	l.pos++ // consume '\'
	if l.pos >= len(l.input) {
		return Token{Text: "\\", Span: l.span(start)}, nil
	}

	b := l.input[l.pos]
	if isControlWordByte(b) {
		wordStart := l.pos
		for l.pos < len(l.input) && isControlWordByte(l.input[l.pos]) {
			l.pos++
		}
		word := l.input[wordStart:l.pos]
		// A control word swallows any trailing whitespace run, per TeX's
		// rule that `\alpha   x` and `\alphax` both terminate the word at
		// the first non-letter.
		for l.pos < len(l.input) && isWhitespaceByte(l.input[l.pos]) {
			l.pos++
		}
		return Token{Text: "\\" + word, Span: l.span(start)}, nil
	}

	// Control symbol: exactly one character, which may be multi-byte.
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	return Token{Text: "\\" + string(r), Span: l.span(start)}, nil
}
