package assemble

import (
	"testing"

	"github.com/speier/gotex/pkg/gotex/box"
)

func sym(class string) box.Node {
	return box.NewSymbol("x", "main-regular", 0.5, 0, 0, 0, 5, []string{class})
}

func TestRootProducesKatexHtmlClass(t *testing.T) {
	root := Root([]box.Node{sym("mord")}, nil, false)
	classes := root.Classes()
	if len(classes) == 0 || classes[0] != "katex-html" {
		t.Fatalf("expected katex-html root class, got %v", classes)
	}
}

func TestChunkBreaksAfterBin(t *testing.T) {
	built := []box.Node{sym("mord"), sym("mbin"), sym("mord")}
	chunks := chunk(built)
	if len(chunks) != 2 {
		t.Fatalf("expected a break after the mbin atom, got %d chunks", len(chunks))
	}
	if len(chunks[0]) != 2 || len(chunks[1]) != 1 {
		t.Fatalf("unexpected chunk sizes: %v", chunks)
	}
}

func TestBaseSpanHeightCoversBodyExtent(t *testing.T) {
	built := []box.Node{sym("mord")}
	base := wrapBase(built)
	if base.Height() < 0.5 {
		t.Fatalf("expected base span to report at least the symbol's height, got %v", base.Height())
	}
}

func strutHeight(t *testing.T, base box.Node) string {
	t.Helper()
	span, ok := base.(box.Span)
	if !ok || len(span.Children) == 0 {
		t.Fatalf("expected a base span with a strut child, got %#v", base)
	}
	strut, ok := span.Children[0].(box.Span)
	if !ok {
		t.Fatalf("expected the first child to be the strut span, got %#v", span.Children[0])
	}
	return strut.Style["height"]
}

func TestTagStrutUsesOverallExtentNotTagExtent(t *testing.T) {
	built := []box.Node{box.NewSymbol("x", "main-regular", 0.9, 0.2, 0, 0, 5, []string{"mord"})}
	tag := box.NewSymbol("1", "main-regular", 0.3, 0, 0, 0, 5, []string{"mord"})

	root := Root(built, tag, true)
	span, ok := root.(box.Span)
	if !ok || len(span.Children) != 2 {
		t.Fatalf("expected a katex-html root with a body chunk plus a tag chunk, got %#v", root)
	}
	tagBase := span.Children[1]

	wantHeight := box.FormatEm(0.9 + 0.2)
	if got := strutHeight(t, tagBase); got != wantHeight {
		t.Fatalf("tag strut height = %q, want %q (the body's total extent, not the tag's own 0.3em)", got, wantHeight)
	}
}
