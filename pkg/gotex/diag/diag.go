// Package diag holds the diagnostic vocabulary shared by every stage of the
// pipeline (lexer, macro expander, parser, builders): the one error kind the
// core ever throws, the non-fatal warning record, and the strict-mode policy
// that decides which of those two a given condition becomes.
package diag

import "github.com/speier/gotex/pkg/gotex/lexer"

// ParseError is the one error kind the core reports (spec §7). A nil Span
// means the condition isn't attributable to a source range (e.g. \tag
// used outside display mode, detected after the whole input has parsed).
type ParseError struct {
	Message string
	Span    *lexer.Span
}

func (e *ParseError) Error() string {
	if e.Span == nil {
		return e.Message
	}
	return e.Message + " at " + e.Span.String()
}

// NewParseError builds a ParseError with an attached span.
func NewParseError(span *lexer.Span, message string) *ParseError {
	return &ParseError{Message: message, Span: span}
}

// NewParseErrorf builds a span-less ParseError, for conditions not
// attributable to one source range (\tag outside display mode).
func NewParseErrorf(message string) *ParseError {
	return &ParseError{Message: message}
}

// Warning is a non-fatal advisory gated by Settings.Strict: non-ASCII text
// letters outside text mode, combining marks in math, \newline in display
// math, and similar conditions spec §7 calls out as "recoverable at
// core-level" rather than fatal.
type Warning struct {
	Code    string
	Message string
	Span    lexer.Span
}

// StrictAction is the verdict a StrictFunc returns for one warning-worthy
// condition.
type StrictAction string

const (
	StrictError  StrictAction = "error"
	StrictWarn   StrictAction = "warn"
	StrictIgnore StrictAction = "ignore"
)

// StrictFunc is the function form of Settings.Strict: given a warning code
// and a rendered message, it decides whether the condition throws, is
// recorded as a Warning, or is silently dropped.
type StrictFunc func(code, message string, span lexer.Span) StrictAction

// Always returns a StrictFunc that always yields the given action,
// regardless of code/message — used to realize the three literal settings
// ("error", "warn", "ignore") as a uniform StrictFunc.
func Always(action StrictAction) StrictFunc {
	return func(string, string, lexer.Span) StrictAction { return action }
}

// Sink collects warnings and decides, via Strict, whether a condition
// throws immediately or is merely recorded. Every pipeline stage takes a
// *Sink instead of importing Settings directly, keeping lexer/parser/
// htmlbuild free of a dependency on the root gotex package.
type Sink struct {
	Strict   StrictFunc
	Warnings []Warning
}

// NewSink builds a Sink with the given strict policy; a nil policy
// defaults to StrictError, matching spec §7's "error" default.
func NewSink(strict StrictFunc) *Sink {
	if strict == nil {
		strict = Always(StrictError)
	}
	return &Sink{Strict: strict}
}

// Report applies the strict policy to one condition: it either returns a
// *ParseError (caller should abort), records a Warning and returns nil, or
// drops the condition entirely and returns nil.
func (s *Sink) Report(code, message string, span lexer.Span) *ParseError {
	switch s.Strict(code, message, span) {
	case StrictWarn:
		s.Warnings = append(s.Warnings, Warning{Code: code, Message: message, Span: span})
		return nil
	case StrictIgnore:
		return nil
	default:
		return NewParseError(&span, message)
	}
}
