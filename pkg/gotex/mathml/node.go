// Package mathml builds the semantic MathML tree in parallel with the
// visual box tree (spec §4.6): one recursive walk over the same
// parser.Node source, producing a second, independent output — the
// shape borrowed from the teacher's style.Resolver.Resolve (one walk
// building a parallel style tree from the same vdom source).
//
// Unlike box.Node, every MathML node shares the same shape (tag, attrs,
// children, text), so a single struct serves every tag instead of a
// tagged union — spec §9's guidance is about replacing inheritance with
// variants where the variants actually differ in fields; MathML's tags
// don't.
package mathml

// Node is one MathML element: exactly one of Text (a leaf like <mi>x</mi>)
// or Children (a container like <mrow>) is populated.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []Node
}

// New builds a leaf node with the given text.
func New(tag, text string) Node {
	return Node{Tag: tag, Text: text}
}

// NewRow builds a container node wrapping children.
func NewRow(tag string, children ...Node) Node {
	return Node{Tag: tag, Children: children}
}

// WithAttr returns a copy of n with one attribute set — Node is treated
// as an immutable value at call sites the way box.Node variants are, so
// builders chain `.WithAttr(...)` rather than mutating a shared pointer
// (the Open Question decision resolving the teacher's href-mutation bug:
// every call here returns a new value, nothing aliases a prior caller's
// node).
func (n Node) WithAttr(key, value string) Node {
	attrs := make(map[string]string, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	n.Attrs = attrs
	return n
}
