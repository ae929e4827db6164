// Package assemble implements output assembly (spec §4.5.6, §4.7): after
// the HTML builder flattens an expression to a box.Node list, assemble
// chunks it into unbreakable "base" spans with struts, optionally
// appends a tag wrapper, and wraps the whole thing in the katex-html
// root the teacher's RenderToBuffer top-level entry shape mirrors
// (render/layoutrenderer.go: one function assembling a fully-built tree
// into the final output artifact).
package assemble

import "github.com/speier/gotex/pkg/gotex/box"

// breakAfter reports whether classes (a box's own Classes(), first entry
// encoding its atom class per spec.md §3.3) permits a line break right
// after this node — only after mbin/mrel, mirroring TeXbook's line-break
// permission rule at the outer level.
func breakAfter(classes []string) bool {
	if len(classes) == 0 {
		return false
	}
	switch classes[0] {
	case "mbin", "mrel":
		return true
	}
	return false
}

// Root assembles a flat list of built boxes (spec §4.5.1's `buildHTML`
// result, already flattened) into the final katex-html structure: each
// unbreakable chunk wrapped in a "base" span carrying a strut, a
// trailing tag span when hasTag is true, the whole thing under one root
// span with class "katex-html" and aria-hidden="true".
func Root(built []box.Node, tag box.Node, hasTag bool) box.Node {
	chunks := chunk(built)

	children := make([]box.Node, 0, len(chunks)+1)
	for _, c := range chunks {
		children = append(children, wrapBase(c))
	}
	if hasTag {
		h, d, _ := box.ExtentOf(built)
		children = append(children, wrapBaseWithExtent([]box.Node{tag}, h, d))
	}

	return box.NewSpan(children, nil, map[string]string{"aria-hidden": "true"}, []string{"katex-html"})
}

// chunk splits built into runs that break only after an mbin/mrel atom,
// matching spec §4.5.6's line-break permission rule.
func chunk(built []box.Node) [][]box.Node {
	var chunks [][]box.Node
	var current []box.Node
	for _, n := range built {
		current = append(current, n)
		if breakAfter(n.Classes()) {
			chunks = append(chunks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	if len(chunks) == 0 {
		chunks = [][]box.Node{{}}
	}
	return chunks
}

// wrapBase wraps one unbreakable chunk in a "base" span with a strut
// whose height is (body.height + body.depth) em and whose
// vertical-align is -body.depth em, per spec §4.5.6.
func wrapBase(chunk []box.Node) box.Node {
	h, d, _ := box.ExtentOf(chunk)
	return wrapBaseWithExtent(chunk, h, d)
}

// wrapBaseWithExtent is wrapBase generalized to take the strut's extent
// explicitly, since the trailing \tag wrapper's strut must be resized to
// the containing katex-html's total extent rather than the tag node's
// own (spec §4.5.6), while every other chunk sizes its strut from its
// own extent via wrapBase.
func wrapBaseWithExtent(chunk []box.Node, h, d float64) box.Node {
	strut := box.NewSpan(nil, map[string]string{
		"height":         formatEm(h + d),
		"vertical-align": "-" + formatEm(d),
	}, nil, []string{"strut"})
	children := append([]box.Node{strut}, chunk...)
	return box.NewSpan(children, nil, nil, []string{"base"})
}

func formatEm(v float64) string {
	return box.FormatEm(v)
}
