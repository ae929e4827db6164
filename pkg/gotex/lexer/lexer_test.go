package lexer

import "testing"

func TestLexerControlWordsAndSymbols(t *testing.T) {
	l := New(`a+\frac{1}{2}\,\#`, nil)

	var got []string
	for !l.Done() {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Text == "" {
			break
		}
		got = append(got, tok.Text)
	}

	want := []string{"a", "+", `\frac`, "{", "1", "}", "{", "2", "}", `\,`, `\#`}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestLexerCollapsesWhitespace(t *testing.T) {
	l := New("a   b", nil)
	tok1, _ := l.Next()
	tok2, _ := l.Next()
	tok3, _ := l.Next()

	if tok1.Text != "a" || tok2.Text != " " || tok3.Text != "b" {
		t.Fatalf("got %q %q %q", tok1.Text, tok2.Text, tok3.Text)
	}
}

func TestLexerControlWordSwallowsTrailingSpace(t *testing.T) {
	l := New(`\alpha   x`, nil)
	tok1, _ := l.Next()
	tok2, _ := l.Next()

	if tok1.Text != `\alpha` {
		t.Fatalf("got %q want \\alpha", tok1.Text)
	}
	if tok2.Text != "x" {
		t.Fatalf("got %q want x, trailing whitespace should be swallowed by the control word", tok2.Text)
	}
}

func TestLexerLineContinuation(t *testing.T) {
	l := New("a%comment\nb", nil)
	tok1, _ := l.Next()
	tok2, _ := l.Next()

	if tok1.Text != "a" || tok2.Text != "b" {
		t.Fatalf("got %q %q, comment+newline should be fully swallowed", tok1.Text, tok2.Text)
	}
}

func TestLexerSpansAreMonotonic(t *testing.T) {
	l := New(`\frac12`, nil)
	var last int
	for !l.Done() {
		tok, _ := l.Next()
		if tok.Text == "" {
			break
		}
		if tok.Span.Start < last {
			t.Fatalf("span regressed: %v", tok.Span)
		}
		last = tok.Span.End
	}
}
