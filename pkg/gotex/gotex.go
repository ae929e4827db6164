// Package gotex is the library's single entry point (spec.md §1, §6):
// source string + Settings in, an HTML box tree and a parallel MathML tree
// out. It owns none of the pipeline stages itself — lexer, macro expander,
// parser, the two builders, and assemble each stay import-cycle-free of
// this package — it only wires them together and realizes the Settings
// record spec.md §6 describes.
package gotex

import (
	"github.com/speier/gotex/pkg/gotex/assemble"
	"github.com/speier/gotex/pkg/gotex/box"
	"github.com/speier/gotex/pkg/gotex/diag"
	"github.com/speier/gotex/pkg/gotex/htmlbuild"
	"github.com/speier/gotex/pkg/gotex/lexer"
	"github.com/speier/gotex/pkg/gotex/macro"
	"github.com/speier/gotex/pkg/gotex/mathml"
	"github.com/speier/gotex/pkg/gotex/parser"
)

// ParseError is the one error kind the core ever returns (spec.md §7).
type ParseError = diag.ParseError

// Warning is a non-fatal advisory gated by Settings.Strict.
type Warning = diag.Warning

// Options is the cascading style/size/color/font record a render pass is
// computed under (spec.md §3.5). It lives in package htmlbuild to avoid an
// import cycle with box (box.Options is the smaller subset a box itself
// carries); gotex re-exports it as its own type so callers configuring a
// custom starting Options never have to import htmlbuild directly.
type Options = htmlbuild.Options

// DefaultOptions returns the root Options a Render call starts from.
var DefaultOptions = htmlbuild.DefaultOptions

// TrustFunc decides whether a \href/\url/\includegraphics target is
// trusted, given the command name and the target string (spec.md §6
// "trust: bool | function"). Settings.Trust holds either a bool or a
// TrustFunc; a bare bool is equivalent to a TrustFunc that ignores its
// arguments.
type TrustFunc func(command, target string) bool

// Settings is the in-process configuration record spec.md §6 names. It
// has no JSON tags of its own — the CLI-level internal/config package
// persists its own flag defaults separately, exactly as spec.md §6
// describes the settings record as an external collaborator's contract,
// not a serialization format.
type Settings struct {
	// DisplayMode selects display vs. text style for the root Options.
	DisplayMode bool
	// Leqno is carried on Settings but Render does not read it: a \tag
	// label is always placed after (to the right of) the body.
	Leqno bool
	// Fleqn is carried on Settings but Render does not read it, so it has
	// no effect on the output.
	Fleqn bool
	// ThrowOnError, when false, converts a ParseError into a single
	// error-colored symbol leaf instead of returning the error.
	ThrowOnError bool
	// ErrorColor is the CSS color the fallback leaf renders in when
	// ThrowOnError is false. Defaults to "#cc0000".
	ErrorColor string
	// Macros seeds the macro expander's namespace: name -> replacement
	// text, lexed once when the expander is built (spec.md §4.2).
	Macros map[string]string
	// MinRuleThickness is the lower bound, in em, for rule widths (the
	// fraction bar, \overline/\underline bars); \rule is not floored.
	MinRuleThickness float64
	// ColorIsTextColor is carried on Settings but Render does not read
	// it; \color builds the same output whichever value it holds.
	ColorIsTextColor bool
	// Strict is "error" | "warn" | "ignore" | func(code, message string) string,
	// matching spec.md §6 exactly; nil defaults to "error".
	Strict interface{}
	// Trust is bool | TrustFunc, gating \href/\url/\includegraphics
	// (spec.md §6); nil defaults to false (untrusted).
	Trust interface{}
	// MaxSize, when positive, is copied into the root Options' MaxSize;
	// no builder reads that field, so it does not bound symbol or rule
	// sizes.
	MaxSize float64
	// MaxExpand bounds macro expansion depth (spec.md §4.2); 0 uses
	// macro.DefaultMaxExpand.
	MaxExpand int
}

// Result is the pair of parallel trees Render produces: the visual box
// tree already assembled under a katex-html-equivalent root, and the
// semantic MathML tree, plus any non-fatal warnings collected along the
// way (spec.md §7: warnings are returned, never logged by the core).
type Result struct {
	HTML     box.Node
	MathML   mathml.Node
	Warnings []Warning
}

const defaultErrorColor = "#cc0000"

// Render is the library's one entry point: source string + Settings in,
// a Result (or an error) out. A nil Settings behaves like &Settings{} —
// text mode, ThrowOnError false (a parse error becomes the error leaf),
// untrusted, "error" strict policy.
func Render(source string, settings *Settings) (*Result, error) {
	if settings == nil {
		settings = &Settings{}
	}

	sink := diag.NewSink(resolveStrict(settings.Strict))

	tree, perr := parseSource(source, settings, sink)
	if perr == nil {
		perr = enforceTrust(tree, resolveTrust(settings.Trust), sink)
	}
	if perr != nil {
		if settings.ThrowOnError {
			return nil, perr
		}
		return errorResult(source, settings, sink), nil
	}

	return buildResult(tree, settings, sink), nil
}

func parseSource(source string, settings *Settings, sink *diag.Sink) (parser.Node, *diag.ParseError) {
	lex := lexer.New(source, sink)
	ex := macro.NewExpander(lex, settings.Macros, sink, settings.MaxExpand)
	tree, perr := parser.ParseInput(ex, sink)
	if perr != nil {
		return nil, perr
	}
	if _, _, hasTag := splitTag(tree); hasTag && !settings.DisplayMode {
		return nil, diag.NewParseErrorf(`\tag works only in display equations`)
	}
	return tree, nil
}

func buildResult(tree parser.Node, settings *Settings, sink *diag.Sink) *Result {
	opts := DefaultOptions(settings.DisplayMode)
	if settings.MaxSize > 0 {
		opts.MaxSize = settings.MaxSize
	}
	opts.MinRuleThickness = settings.MinRuleThickness

	mainTree, tagTree, hasTag := splitTag(tree)

	htmlTree := htmlbuild.Build(mainTree, opts)
	built := flattenBuilt(htmlTree)

	var tagBox box.Node
	if hasTag {
		tagBox = htmlbuild.Build(tagTree, opts)
	}

	root := assemble.Root(built, tagBox, hasTag)
	mml := mathml.Build(mainTree)

	return &Result{HTML: root, MathML: mml, Warnings: sink.Warnings}
}

// errorResult realizes spec.md §7's ThrowOnError=false fallback: a single
// box.Symbol leaf, styled with ErrorColor, carrying the original source
// text verbatim — never a panic, never a partial tree.
func errorResult(source string, settings *Settings, sink *diag.Sink) *Result {
	color := settings.ErrorColor
	if color == "" {
		color = defaultErrorColor
	}
	leaf := box.NewSymbol(source, "main-regular", 0.7, 0, 0, 0, 5, []string{"mord"})
	wrapped := box.NewSpan([]box.Node{leaf}, map[string]string{"color": color}, nil, []string{"gotex-error"})
	root := assemble.Root([]box.Node{wrapped}, nil, false)
	return &Result{HTML: root, MathML: mathml.New("merror", source), Warnings: sink.Warnings}
}

func flattenBuilt(n box.Node) []box.Node {
	if frag, ok := n.(box.DocumentFragment); ok {
		return frag.Children
	}
	return []box.Node{n}
}

// splitTag finds a \tag placeholder in the top-level body (spec.md
// scenario "a\tag{1}" in displayMode=true → trailing tag child) and
// returns the remaining body alongside the tag's own body, since
// assemble.Root needs the tag built and positioned separately from the
// main expression.
func splitTag(tree parser.Node) (mainTree, tagTree parser.Node, hasTag bool) {
	group, ok := tree.(parser.OrdGroupNode)
	if !ok {
		return tree, nil, false
	}
	for i, n := range group.BodyNodes {
		tag, ok := n.(parser.TagNode)
		if !ok {
			continue
		}
		rest := make([]parser.Node, 0, len(group.BodyNodes)-1)
		rest = append(rest, group.BodyNodes[:i]...)
		rest = append(rest, group.BodyNodes[i+1:]...)
		main := group
		main.BodyNodes = rest
		tagGroup := parser.OrdGroupNode{Base: group.Base, BodyNodes: tag.BodyNodes, SemiSimple: true}
		return main, tagGroup, true
	}
	return tree, nil, false
}

func resolveStrict(s interface{}) diag.StrictFunc {
	switch v := s.(type) {
	case diag.StrictFunc:
		return v
	case string:
		return diag.Always(stringToAction(v))
	case func(code, message string) string:
		return func(code, message string, _ lexer.Span) diag.StrictAction {
			return stringToAction(v(code, message))
		}
	default:
		return diag.Always(diag.StrictError)
	}
}

func stringToAction(s string) diag.StrictAction {
	switch s {
	case "warn":
		return diag.StrictWarn
	case "ignore":
		return diag.StrictIgnore
	default:
		return diag.StrictError
	}
}

func resolveTrust(t interface{}) TrustFunc {
	switch v := t.(type) {
	case TrustFunc:
		return v
	case bool:
		return func(string, string) bool { return v }
	default:
		return func(string, string) bool { return false }
	}
}

// enforceTrust walks the whole parse tree looking for the three commands
// spec.md §6 names as trust-gated (\href, \url, \includegraphics). An
// untrusted occurrence is reported through sink exactly like any other
// strict-mode condition: StrictError aborts the parse, StrictWarn records
// a Warning and the tree renders as-is (spec.md scenario's "rendered as
// plain body per strict"), StrictIgnore drops it silently.
func enforceTrust(tree parser.Node, trust TrustFunc, sink *diag.Sink) *diag.ParseError {
	var aborted *diag.ParseError
	walk(tree, func(n parser.Node) {
		if aborted != nil {
			return
		}
		var command, target string
		switch v := n.(type) {
		case parser.HrefNode:
			command, target = `\href`, v.URL
		case parser.URLNode:
			command, target = `\url`, v.URL
		case parser.IncludeGraphicsNode:
			command, target = `\includegraphics`, v.Src
		default:
			return
		}
		if trust(command, target) {
			return
		}
		span := lexer.Span{}
		if s := n.Span(); s != nil {
			span = *s
		}
		if perr := sink.Report("untrusted-command", command+" target is not trusted", span); perr != nil {
			aborted = perr
		}
	})
	return aborted
}

// walk visits n and recurses into every child a container node type
// carries, the traversal enforceTrust needs to find a trust-gated command
// nested arbitrarily deep (inside \color, \displaystyle, a fraction, a
// sqrt, and so on).
func walk(n parser.Node, visit func(parser.Node)) {
	if n == nil {
		return
	}
	visit(n)
	switch v := n.(type) {
	case parser.OrdGroupNode:
		walkAll(v.BodyNodes, visit)
	case parser.StylingNode:
		walkAll(v.BodyNodes, visit)
	case parser.SizingNode:
		walkAll(v.BodyNodes, visit)
	case parser.ColorNode:
		walkAll(v.BodyNodes, visit)
	case parser.FontNode:
		walkAll(v.BodyNodes, visit)
	case parser.MClassNode:
		walkAll(v.BodyNodes, visit)
	case parser.TextNode:
		walkAll(v.BodyNodes, visit)
	case parser.TagNode:
		walkAll(v.BodyNodes, visit)
	case parser.LeftRightNode:
		walkAll(v.BodyNodes, visit)
	case parser.PhantomNode:
		walkAll(v.Body, visit)
	case parser.OperatorNameNode:
		walkAll(v.BodyNodes, visit)
	case parser.HrefNode:
		walkAll(v.Body, visit)
	case parser.SupSubNode:
		walk(v.BaseNode, visit)
		walk(v.Sup, visit)
		walk(v.Sub, visit)
	case parser.GenfracNode:
		walk(v.Numer, visit)
		walk(v.Denom, visit)
	case parser.SqrtNode:
		walk(v.Body, visit)
		walk(v.Index, visit)
	case parser.OverlineNode:
		walk(v.Body, visit)
	case parser.UnderlineNode:
		walk(v.Body, visit)
	case parser.AccentNode:
		walk(v.Body, visit)
	case parser.AccentUnderNode:
		walk(v.Body, visit)
	case parser.HorizBraceNode:
		walk(v.Body, visit)
	case parser.XArrowNode:
		walk(v.Body, visit)
		walk(v.Below, visit)
	case parser.EncloseNode:
		walk(v.Body, visit)
	case parser.RaiseBoxNode:
		walk(v.Body, visit)
	case parser.LapNode:
		walk(v.Body, visit)
	case parser.SmashNode:
		walk(v.Body, visit)
	case parser.HPhantomNode:
		walk(v.Body, visit)
	case parser.VPhantomNode:
		walk(v.Body, visit)
	case parser.MathChoiceNode:
		walkAll(v.Display, visit)
		walkAll(v.Text2, visit)
		walkAll(v.Script, visit)
		walkAll(v.ScriptScript, visit)
	case parser.HTMLMathMLNode:
		walkAll(v.HTML, visit)
		walkAll(v.MathML, visit)
	}
}

func walkAll(nodes []parser.Node, visit func(parser.Node)) {
	for _, n := range nodes {
		walk(n, visit)
	}
}
