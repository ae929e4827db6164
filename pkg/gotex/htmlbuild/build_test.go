package htmlbuild

import (
	"testing"

	"github.com/speier/gotex/pkg/gotex/box"
	"github.com/speier/gotex/pkg/gotex/diag"
	"github.com/speier/gotex/pkg/gotex/lexer"
	"github.com/speier/gotex/pkg/gotex/macro"
	"github.com/speier/gotex/pkg/gotex/parser"
)

func parseSource(t *testing.T, src string) parser.Node {
	t.Helper()
	lex := lexer.New(src, nil)
	ex := macro.NewExpander(lex, nil, nil, 0)
	n, err := parser.ParseInput(ex, diag.NewSink(nil))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return n
}

func TestBuildSimpleBinaryHasSpacing(t *testing.T) {
	n := parseSource(t, "a+b")
	built := Build(n, DefaultOptions(false))
	if built.Height() < 0 {
		t.Fatalf("unexpected negative height")
	}
	glue := 0
	for _, c := range flatten(built) {
		if hasClass(c, "mspace") {
			glue++
		}
	}
	if glue != 2 {
		t.Fatalf("expected spacing glue on both sides of +, got %d glue spans", glue)
	}
}

func hasClass(n box.Node, class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

func flatten(n box.Node) []box.Node {
	if frag, ok := n.(box.DocumentFragment); ok {
		return frag.Children
	}
	return []box.Node{n}
}

func TestBuildNoAdjacentBinAfterCancellation(t *testing.T) {
	// A leading "+" (unary, leftmost is a left-canceller) must cancel to
	// ord, never surviving as "mbin" adjacent to nothing on its left.
	n := parseSource(t, "+a")
	built := Build(n, DefaultOptions(false))
	for _, c := range flatten(built) {
		if hasClass(c, "mbin") {
			t.Fatalf("leading + must cancel to mord, found mbin in %#v", c)
		}
	}
}

func TestBuildNoBinBeforeRightCanceller(t *testing.T) {
	// "a+)" : "+" is followed by a right-canceller (close), so it must
	// cancel to ord even though its left neighbor ("a", ord) would not
	// have demoted it on its own.
	n := parseSource(t, "a+)")
	built := Build(n, DefaultOptions(false))
	for _, c := range flatten(built) {
		if hasClass(c, "mbin") {
			t.Fatalf("+ before a right-canceller must cancel to mord, found mbin in %#v", c)
		}
	}
}

func TestBuildNoBinAfterOp(t *testing.T) {
	// `\sin+x` : "+" directly follows an "op" atom, itself a
	// left-canceller, so it must cancel to ord.
	n := parseSource(t, `\sin+x`)
	built := Build(n, DefaultOptions(false))
	for _, c := range flatten(built) {
		if hasClass(c, "mbin") {
			t.Fatalf("+ after \\sin must cancel to mord, found mbin in %#v", c)
		}
	}
}

func TestBuildFracHasPositiveHeight(t *testing.T) {
	n := parseSource(t, `\frac{1}{2}`)
	built := Build(n, DefaultOptions(true))
	if built.Height() <= 0 {
		t.Fatalf("expected fraction to have positive height, got %v", built.Height())
	}
}
