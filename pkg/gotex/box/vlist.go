package box

// PositionType selects how makeVList anchors its children's shifts (spec
// §4.5.4).
type PositionType int

const (
	IndividualShift PositionType = iota
	FirstBaseline
	Top
	Bottom
	Shift
)

// VListElem is one child of a vlist: either an actual box (Elem set) or
// an invisible kern (Elem nil, Size set) — spec §4.5.4's
// `{type:"elem",...}` / `{type:"kern", size}` union, realized as one
// struct with a nil-checked optional field since the two variants share
// every other bookkeeping field.
type VListElem struct {
	Elem        Node // nil for a kern
	Size        float64
	Shift       float64
	MarginLeft  float64
	MarginRight float64
}

// MakeVList assembles positionType-anchored children into a single Span
// (spec §4.5.4): computes the cumulative shift for each child from the
// chosen anchor, then reports the container's height/depth as the
// extrema of the positioned children's extents measured from the vlist
// baseline (the invariant scenario 6 in spec.md §8 tests).
func MakeVList(positionType PositionType, anchorShift float64, elems []VListElem) Span {
	shifts := resolveShifts(positionType, anchorShift, elems)

	var maxHeight, maxDepth float64
	var maxFont float64
	children := make([]Node, 0, len(elems))
	for i, e := range elems {
		if e.Elem == nil {
			continue // kern: contributes no visible child, only vertical space already folded into shifts
		}
		shift := shifts[i]
		top := shift + e.Elem.Height()
		bottom := e.Elem.Depth() - shift
		if top > maxHeight {
			maxHeight = top
		}
		if bottom > maxDepth {
			maxDepth = bottom
		}
		if f := e.Elem.MaxFontSize(); f > maxFont {
			maxFont = f
		}
		children = append(children, Span{
			common: common{
				NodeHeight:  e.Elem.Height(),
				NodeDepth:   e.Elem.Depth(),
				NodeMaxFont: e.Elem.MaxFontSize(),
				NodeClasses: []string{"vlist-elem"},
			},
			Children: []Node{e.Elem},
			Style:    map[string]string{"top": formatEm(-shift)},
		})
	}

	return Span{
		common: common{
			NodeHeight:  maxHeight,
			NodeDepth:   maxDepth,
			NodeMaxFont: maxFont,
			NodeClasses: []string{"vlist"},
		},
		Children: children,
	}
}

// resolveShifts converts each element's declared Shift (or the running
// kern-accumulated offset, for firstBaseline/top/bottom) into an absolute
// shift from the vlist's own baseline, generalizing the teacher's
// layoutFlexColumn running-offset accumulation loop
// (layout/layout.go) from integer cell rows to float64 em shifts.
func resolveShifts(positionType PositionType, anchorShift float64, elems []VListElem) []float64 {
	shifts := make([]float64, len(elems))

	switch positionType {
	case IndividualShift:
		running := 0.0
		for i, e := range elems {
			if e.Elem == nil {
				running += e.Size
				continue
			}
			shifts[i] = e.Shift + running
		}
	case Shift:
		for i, e := range elems {
			shifts[i] = anchorShift
			if e.Elem == nil {
				anchorShift += e.Size
			}
		}
	case Top, Bottom, FirstBaseline:
		running := anchorShift
		for i, e := range elems {
			if e.Elem == nil {
				running += e.Size
				continue
			}
			shifts[i] = running
			if positionType == FirstBaseline && i == 0 {
				running += e.Elem.Depth()
			}
		}
	}
	return shifts
}

func formatEm(v float64) string {
	return trimTrailingZeros(v) + "em"
}
