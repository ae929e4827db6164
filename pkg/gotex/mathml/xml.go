package mathml

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// ToXML serializes n to well-formed XML. Always escapes text and
// attribute values; a node with text or children gets matched open/close
// tags, and a node with neither is written self-closed (<tag/>) — there is
// no single-copy/mutation hazard here the way the teacher's `href`
// builder had, since WithAttr never aliases (see node.go).
func ToXML(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	b.WriteString("<" + n.Tag)
	for _, k := range sortedKeys(n.Attrs) {
		fmt.Fprintf(b, ` %s="%s"`, k, html.EscapeString(n.Attrs[k]))
	}
	if n.Text == "" && len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, c := range n.Children {
		writeNode(b, c)
	}
	b.WriteString("</" + n.Tag + ">")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
