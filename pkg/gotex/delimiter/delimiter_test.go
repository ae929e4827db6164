package delimiter

import "testing"

func TestSelectGrowsWithHeight(t *testing.T) {
	small := Select("(", 0.5)
	big := Select("(", 4.0)
	if big.Height < small.Height {
		t.Fatalf("expected larger variant for taller target, got small=%v big=%v", small, big)
	}
	if big.SVGPathName == "" {
		t.Fatalf("expected stretchy SVG variant for a 4em paren, got %+v", big)
	}
}

func TestSelectMonotonic(t *testing.T) {
	heights := []float64{0.2, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 5.0}
	if !Monotonic("(", heights) {
		t.Fatal("expected Select to be monotonic in requested height")
	}
}

func TestSelectUnknownGlyphClampsAtLargestFont(t *testing.T) {
	v := Select("/", 10.0)
	if v.SVGPathName != "" {
		t.Fatalf("expected no SVG assembly for an unregistered glyph, got %+v", v)
	}
	if v.FontSize != Size4 {
		t.Fatalf("expected clamp at Size4, got %+v", v)
	}
}
