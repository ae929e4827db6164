package box

import "testing"

func leaf(height, depth float64) Symbol {
	return Symbol{common: common{NodeHeight: height, NodeDepth: depth}, Text: "x"}
}

func TestMakeVListIndividualShiftExtents(t *testing.T) {
	elems := []VListElem{
		{Elem: leaf(0.5, 0.1), Shift: 0},
		{Elem: leaf(0.3, 0.2), Shift: 0.8},
	}
	v := MakeVList(IndividualShift, 0, elems)

	wantHeight := 0.8 + 0.3 // second child's shift + its own height dominates
	if v.Height() != wantHeight {
		t.Fatalf("got height %v want %v", v.Height(), wantHeight)
	}
	if len(v.Children) != 2 {
		t.Fatalf("expected 2 positioned children, got %d", len(v.Children))
	}
}

func TestMakeVListIndividualShiftsAreIndependent(t *testing.T) {
	// Mirrors buildSupSub's two-element vlist for a base with both a
	// superscript and a subscript (e.g. x_a^b): each Shift must be read
	// as an absolute offset, not accumulated onto the previous one, or
	// the subscript would end up displaced by sup+sub instead of sub.
	elems := []VListElem{
		{Elem: leaf(0.2, 0), Shift: 0.5},
		{Elem: leaf(0.1, 0.2), Shift: -0.15},
	}
	v := MakeVList(IndividualShift, 0, elems)

	wantHeight := 0.5 + 0.2 // first child's shift + its own height dominates
	if v.Height() != wantHeight {
		t.Fatalf("got height %v want %v", v.Height(), wantHeight)
	}
	wantDepth := 0.2 - (-0.15) // second child's depth minus its own (independent) shift
	if v.Depth() != wantDepth {
		t.Fatalf("got depth %v want %v", v.Depth(), wantDepth)
	}
}

func TestMakeVListKernContributesNoChildBox(t *testing.T) {
	elems := []VListElem{
		{Elem: leaf(0.4, 0), Shift: 0},
		{Size: 0.5}, // kern
		{Elem: leaf(0.2, 0), Shift: 0},
	}
	v := MakeVList(IndividualShift, 0, elems)
	if len(v.Children) != 2 {
		t.Fatalf("expected kern to be invisible, got %d children", len(v.Children))
	}
}

func TestMakeVListShiftAnchorsAllChildrenUniformly(t *testing.T) {
	elems := []VListElem{
		{Elem: leaf(0.3, 0.1)},
		{Elem: leaf(0.2, 0.1)},
	}
	v := MakeVList(Shift, 0.6, elems)
	anchor, childHeight := 0.6, 0.3
	if want := anchor + childHeight; v.Height() != want {
		t.Fatalf("got height %v want %v", v.Height(), want)
	}
}
