package macro

import (
	"testing"

	"github.com/speier/gotex/pkg/gotex/lexer"
)

func collect(t *testing.T, ex *Expander) []string {
	t.Helper()
	var got []string
	for {
		tok, err := ex.Get()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Text == "" {
			break
		}
		got = append(got, tok.Text)
	}
	return got
}

func TestUserMacroExpansion(t *testing.T) {
	lex := lexer.New(`\foo`, nil)
	ex := NewExpander(lex, map[string]string{`\foo`: `a+b`}, nil, 0)

	got := collect(t, ex)
	want := []string{"a", "+", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestNoexpandPreventsExpansion(t *testing.T) {
	lex := lexer.New(`\noexpand\foo`, nil)
	ex := NewExpander(lex, map[string]string{`\foo`: `a+b`}, nil, 0)

	tok, err := ex.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Text != `\foo` {
		t.Fatalf(`got %q, want unexpanded \foo`, tok.Text)
	}
}

func TestExpandafterReordersExpansion(t *testing.T) {
	lex := lexer.New(`\expandafter a\foo`, nil)
	ex := NewExpander(lex, map[string]string{`\foo`: `XY`}, nil, 0)

	got := collect(t, ex)
	want := []string{"a", "X", "Y"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestMaxExpandGuardsAgainstLoops(t *testing.T) {
	lex := lexer.New(`\loop`, nil)
	ex := NewExpander(lex, nil, nil, 5)
	ex.Define(`\loop`, Macro{Tokens: []lexer.Token{{Text: `\loop`}}})

	_, err := ex.Get()
	if err == nil {
		t.Fatal("expected expand-depth error, got nil")
	}
}

func TestRelaxExpandsToNothing(t *testing.T) {
	lex := lexer.New(`a\relax b`, nil)
	ex := NewExpander(lex, nil, nil, 0)

	got := collect(t, ex)
	want := []string{"a", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
