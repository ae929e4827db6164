package box

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
)

// ToMarkup serializes a Node to well-formed HTML markup. Unlike the bug
// spec.md §9 flags in `Img.toMarkup` (an unescaped/unbalanced attribute
// string), every attribute here goes through html.EscapeString, every
// element that can hold content is emitted with matched open/close tags,
// and the childless <img> and <path> elements are written self-closed —
// the Open Question decision recorded in DESIGN.md not to replicate that
// bug.
func ToMarkup(n Node) string {
	var b strings.Builder
	writeMarkup(&b, n)
	return b.String()
}

func writeMarkup(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Span:
		writeElement(b, "span", v.Classes(), v.Style, v.Attrs, v.Children)
	case Anchor:
		attrs := cloneAttrs(v.Attrs)
		attrs["href"] = v.Href
		writeElement(b, "a", v.Classes(), nil, attrs, v.Children)
	case Symbol:
		fmt.Fprintf(b, "<span class=%s>%s</span>", quoteClasses(v.Classes()), html.EscapeString(v.Text))
	case Img:
		fmt.Fprintf(b, "<img src=%s alt=%s class=%s/>", quoteAttr(v.Src), quoteAttr(v.Alt), quoteClasses(v.Classes()))
	case Svg:
		fmt.Fprintf(b, `<svg width="%s" height="%s" xmlns="http://www.w3.org/2000/svg">`, trimTrailingZeros(v.ViewWidth), trimTrailingZeros(v.ViewHeight))
		for _, p := range v.Paths {
			fmt.Fprintf(b, `<path d=%s/>`, quoteAttr(p.Data))
		}
		b.WriteString("</svg>")
	case Line:
		fmt.Fprintf(b, "<span class=%s></span>", quoteClasses(v.Classes()))
	case DocumentFragment:
		for _, c := range v.Children {
			writeMarkup(b, c)
		}
	case MiddleBox:
		fmt.Fprintf(b, "<span class=%s>%s</span>", quoteClasses(append(v.Classes(), "mmiddle")), html.EscapeString(v.Delim))
	default:
		b.WriteString("<!-- unknown box node -->")
	}
}

func writeElement(b *strings.Builder, tag string, classes []string, style, attrs map[string]string, children []Node) {
	b.WriteString("<" + tag + " class=" + quoteClasses(classes))
	if len(style) > 0 {
		b.WriteString(" style=" + quoteAttr(styleString(style)))
	}
	for _, k := range sortedKeys(attrs) {
		if k == "class" || k == "style" {
			continue
		}
		fmt.Fprintf(b, " %s=%s", k, quoteAttr(attrs[k]))
	}
	b.WriteString(">")
	for _, c := range children {
		writeMarkup(b, c)
	}
	b.WriteString("</" + tag + ">")
}

func quoteClasses(classes []string) string {
	return quoteAttr(strings.Join(classes, " "))
}

func quoteAttr(v string) string {
	return `"` + html.EscapeString(v) + `"`
}

func styleString(style map[string]string) string {
	var parts []string
	for _, k := range sortedKeys(style) {
		parts = append(parts, k+":"+style[k])
	}
	return strings.Join(parts, ";")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneAttrs(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FormatEm formats v as an em measurement string, e.g. "0.25em", for
// packages outside box that need to write a style value (assemble's
// strut/vertical-align properties).
func FormatEm(v float64) string {
	return trimTrailingZeros(v) + "em"
}

// trimTrailingZeros formats v with up to 4 decimal places, trimming
// trailing zeros and a trailing dot, the way a box's em measurements are
// expected to print in markup (no 0.50000000em artifacts).
func trimTrailingZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
