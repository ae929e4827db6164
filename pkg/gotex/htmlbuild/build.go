package htmlbuild

import (
	"github.com/speier/gotex/pkg/gotex/box"
	"github.com/speier/gotex/pkg/gotex/parser"
	"github.com/speier/gotex/pkg/gotex/spacing"
)

// classified pairs a built box with the atom class it carries, so the
// bin-cancellation and spacing passes (spec §4.5.2 steps 4-5) can inspect
// class without re-deriving it from the box's CSS classes.
type classified struct {
	box   box.Node
	class string // "" when this node doesn't participate in atom-class spacing
}

// Build is the htmlbuild package's entry point: walks the whole parse
// tree and returns the assembled DocumentFragment (spec §4.5.1's
// `buildHTML`).
func Build(root parser.Node, options Options) box.Node {
	nodes := flattenTop(root)
	built := buildExpression(nodes, options, true)
	return wrapFragment(built)
}

func wrapFragment(built []box.Node) box.Node {
	h, d, mf := extentOf(built)
	return box.NewDocumentFragment(h, d, mf, built)
}

func extentOf(nodes []box.Node) (h, d, mf float64) {
	for _, n := range nodes {
		if n.Height() > h {
			h = n.Height()
		}
		if n.Depth() > d {
			d = n.Depth()
		}
		if n.MaxFontSize() > mf {
			mf = n.MaxFontSize()
		}
	}
	return
}

func flattenTop(root parser.Node) []parser.Node {
	if g, ok := root.(parser.OrdGroupNode); ok {
		return g.BodyNodes
	}
	return []parser.Node{root}
}

// buildExpression implements spec §4.5.2: build each node, cancel
// isolated binary operators down to ord, then insert spacing glue
// between adjacent classified atoms.
func buildExpression(nodes []parser.Node, options Options, isRealGroup bool) []box.Node {
	items := make([]classified, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, buildGroupClassified(n, options)...)
	}

	cancelBins(items)

	out := make([]box.Node, 0, len(items)*2)
	var prevClass string
	for i, it := range items {
		if i > 0 && prevClass != "" && it.class != "" {
			if w, ok := spacing.Lookup(options.Tight(), prevClass, it.class); ok {
				out = append(out, box.NewGlue(w))
			}
		}
		out = append(out, it.box)
		if it.class != "" {
			prevClass = it.class
		}
	}
	return out
}

// leftCancellers are the classes that demote a following `bin` to `ord`
// (spec §4.5.2 step 4's left-canceller set {leftmost, mbin, mopen, mrel,
// mop, mpunct}; "" stands for leftmost/start-of-list here).
var leftCancellers = map[string]bool{"": true, "bin": true, "rel": true, "open": true, "punct": true, "op": true}

// rightCancellers are the classes that demote a preceding `bin` to `ord`
// (spec §4.5.2 step 4's right-canceller set {mrel, mclose, mpunct,
// rightmost}; "" stands for rightmost/end-of-list here).
var rightCancellers = map[string]bool{"": true, "rel": true, "close": true, "punct": true}

// cancelBins applies TeX's rule that a `bin` atom demotes to `ord` when
// the atom before it is a left-canceller or the atom after it is a
// right-canceller — spec §4.5.2 step 4, the "no adjacent (mbin,
// right-canceller) survives" invariant the htmlbuild tests assert. It
// runs a forward pass (left-canceller check, as the previous atom's
// class is seen) followed by a backward pass (right-canceller check),
// since a `bin` can be disqualified by either neighbor independently,
// and finally rewrites the leading "mbin" CSS class of each demoted
// box to "mord".
func cancelBins(items []classified) {
	prevClass := ""
	for i := range items {
		if items[i].class == "bin" && leftCancellers[prevClass] {
			items[i].class = "ord"
		}
		if items[i].class != "" {
			prevClass = items[i].class
		}
	}

	nextClass := ""
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].class == "bin" && rightCancellers[nextClass] {
			items[i].class = "ord"
		}
		if items[i].class != "" {
			nextClass = items[i].class
		}
	}

	for i := range items {
		if items[i].class != "ord" {
			continue
		}
		switch v := items[i].box.(type) {
		case box.Symbol:
			if len(v.NodeClasses) > 0 && v.NodeClasses[0] == "mbin" {
				v.NodeClasses = append([]string{"mord"}, v.NodeClasses[1:]...)
				items[i].box = v
			}
		case box.Span:
			if len(v.NodeClasses) > 0 && v.NodeClasses[0] == "mbin" {
				v.NodeClasses = append([]string{"mord"}, v.NodeClasses[1:]...)
				items[i].box = v
			}
		}
	}
}
