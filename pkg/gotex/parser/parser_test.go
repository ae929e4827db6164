package parser

import (
	"testing"

	"github.com/speier/gotex/pkg/gotex/diag"
	"github.com/speier/gotex/pkg/gotex/lexer"
	"github.com/speier/gotex/pkg/gotex/macro"
)

func parse(t *testing.T, input string) Node {
	t.Helper()
	lex := lexer.New(input, nil)
	ex := macro.NewExpander(lex, nil, nil, 0)
	n, err := ParseInput(ex, diag.NewSink(nil))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return n
}

func TestParseSimpleBinary(t *testing.T) {
	n := parse(t, "a+b")
	group, ok := n.(OrdGroupNode)
	if !ok {
		t.Fatalf("expected OrdGroupNode, got %T", n)
	}
	if len(group.BodyNodes) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(group.BodyNodes))
	}
	if _, ok := group.BodyNodes[1].(AtomNode); !ok {
		t.Fatalf("expected middle atom to be a bin AtomNode, got %T", group.BodyNodes[1])
	}
}

func TestParseSupSub(t *testing.T) {
	n := parse(t, "x_1^2")
	group := n.(OrdGroupNode)
	if len(group.BodyNodes) != 1 {
		t.Fatalf("expected single supsub atom, got %d nodes", len(group.BodyNodes))
	}
	ss, ok := group.BodyNodes[0].(SupSubNode)
	if !ok {
		t.Fatalf("expected SupSubNode, got %T", group.BodyNodes[0])
	}
	if ss.Sup == nil || ss.Sub == nil {
		t.Fatal("expected both sup and sub set")
	}
}

func TestParseFrac(t *testing.T) {
	n := parse(t, `\frac{1}{2}`)
	group := n.(OrdGroupNode)
	f, ok := group.BodyNodes[0].(GenfracNode)
	if !ok {
		t.Fatalf("expected GenfracNode, got %T", group.BodyNodes[0])
	}
	if !f.HasBarLine {
		t.Fatal("expected \\frac to set HasBarLine")
	}
}

func TestParseLeftRight(t *testing.T) {
	n := parse(t, `\left(x\right)`)
	group := n.(OrdGroupNode)
	lr, ok := group.BodyNodes[0].(LeftRightNode)
	if !ok {
		t.Fatalf("expected LeftRightNode, got %T", group.BodyNodes[0])
	}
	if lr.LeftDelim != "(" || lr.RightDelim != ")" {
		t.Fatalf("got delims %q %q", lr.LeftDelim, lr.RightDelim)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	const src = `\sqrt{a^2+b^2}`
	first := parse(t, src)
	second := parse(t, src)
	if countNodes(first) != countNodes(second) {
		t.Fatal("expected repeated parses of the same input to produce the same node count")
	}
}

func countNodes(n Node) int {
	count := 1
	switch v := n.(type) {
	case OrdGroupNode:
		for _, c := range v.BodyNodes {
			count += countNodes(c)
		}
	case SqrtNode:
		count += countNodes(v.Body)
		if v.Index != nil {
			count += countNodes(v.Index)
		}
	case SupSubNode:
		count += countNodes(v.BaseNode)
		if v.Sup != nil {
			count += countNodes(v.Sup)
		}
		if v.Sub != nil {
			count += countNodes(v.Sub)
		}
	}
	return count
}

func TestUnknownSymbolProducesFallbackOrd(t *testing.T) {
	lex := lexer.New(`\notarealcommand`, nil)
	ex := macro.NewExpander(lex, nil, nil, 0)
	sink := diag.NewSink(diag.Always(diag.StrictWarn))
	n, err := ParseInput(ex, sink)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(sink.Warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(sink.Warnings))
	}
	group := n.(OrdGroupNode)
	ord, ok := group.BodyNodes[0].(OrdNode)
	if !ok {
		t.Fatalf("expected fallback OrdNode, got %T", group.BodyNodes[0])
	}
	if ord.Text != `\notarealcommand` {
		t.Fatalf("got %q", ord.Text)
	}
}
