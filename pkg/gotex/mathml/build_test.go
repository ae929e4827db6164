package mathml

import (
	"strings"
	"testing"

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

func TestBuildFracProducesMfrac(t *testing.T) {
	n := parseSource(t, `\frac{1}{2}`)
	tree := Build(n)
	xml := ToXML(tree)
	if !strings.Contains(xml, "<mfrac>") {
		t.Fatalf("expected <mfrac> in output, got %s", xml)
	}
}

func TestWithAttrDoesNotMutateOriginal(t *testing.T) {
	base := New("mo", "+")
	tagged := base.WithAttr("fence", "true")
	if base.Attrs != nil {
		t.Fatal("expected WithAttr to leave the original node's Attrs nil")
	}
	if tagged.Attrs["fence"] != "true" {
		t.Fatal("expected the derived node to carry the new attribute")
	}
}

func TestHrefProducesAttrOnReturnedNode(t *testing.T) {
	n := parseSource(t, `\href{http://example.com}{x}`)
	tree := Build(n)
	xml := ToXML(tree)
	if !strings.Contains(xml, `href="http://example.com"`) {
		t.Fatalf("expected href attribute in output, got %s", xml)
	}
}
