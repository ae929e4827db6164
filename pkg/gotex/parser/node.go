// Package parser implements the recursive-descent parser (spec §4.3): it
// consumes tokens through a macro.Expander and produces a parse.Node tree.
package parser

import "github.com/speier/gotex/pkg/gotex/lexer"

// Mode is the lexical mode a Node was created in; it never changes after
// creation (spec §3.2).
type Mode int

const (
	Math Mode = iota
	Text
)

func (m Mode) String() string {
	if m == Text {
		return "text"
	}
	return "math"
}

// AtomClass is one of the eight math classes that govern spacing (spec
// GLOSSARY). "ord" and "op" are the two classes no bare "atom" tag can
// carry (mathord/textord/op-token carry them directly instead).
type AtomClass string

const (
	ClassOrd   AtomClass = "ord"
	ClassOp    AtomClass = "op"
	ClassBin   AtomClass = "bin"
	ClassRel   AtomClass = "rel"
	ClassOpen  AtomClass = "open"
	ClassClose AtomClass = "close"
	ClassPunct AtomClass = "punct"
	ClassInner AtomClass = "inner"
)

// Style mirrors TeX's four math styles (spec GLOSSARY); larger values are
// smaller/cramped styles, matching the traditional DISPLAY<TEXT<SCRIPT<
// SCRIPTSCRIPT ordering used for size lookups.
type Style int

const (
	StyleDisplay Style = iota
	StyleText
	StyleScript
	StyleScriptScript
)

func (s Style) String() string {
	switch s {
	case StyleDisplay:
		return "display"
	case StyleText:
		return "text"
	case StyleScript:
		return "script"
	default:
		return "scriptscript"
	}
}

// NodeType names one of the closed set of parse-node tags (spec §3.2).
type NodeType string

const (
	TypeAtom             NodeType = "atom"
	TypeMathOrd          NodeType = "mathord"
	TypeTextOrd          NodeType = "textord"
	TypeSpacing          NodeType = "spacing"
	TypeOp               NodeType = "op-token"
	TypeAccentToken       NodeType = "accent-token"
	TypeOrdGroup         NodeType = "ordgroup"
	TypeStyling          NodeType = "styling"
	TypeSizing           NodeType = "sizing"
	TypeColor            NodeType = "color"
	TypeFont             NodeType = "font"
	TypeMClass           NodeType = "mclass"
	TypeSupSub           NodeType = "supsub"
	TypeGenfrac          NodeType = "genfrac"
	TypeSqrt             NodeType = "sqrt"
	TypeOverline         NodeType = "overline"
	TypeUnderline        NodeType = "underline"
	TypeAccent           NodeType = "accent"
	TypeAccentUnder      NodeType = "accentUnder"
	TypeHorizBrace       NodeType = "horizBrace"
	TypeXArrow           NodeType = "xArrow"
	TypeEnclose          NodeType = "enclose"
	TypeDelimSizing      NodeType = "delimsizing"
	TypeLeftRight        NodeType = "leftright"
	TypeLeftRightRight   NodeType = "leftright-right"
	TypeMiddle           NodeType = "middle"
	TypeArray            NodeType = "array"
	TypeKern             NodeType = "kern"
	TypeRule             NodeType = "rule"
	TypeRaiseBox         NodeType = "raisebox"
	TypeLap              NodeType = "lap"
	TypeSmash            NodeType = "smash"
	TypePhantom          NodeType = "phantom"
	TypeHPhantom         NodeType = "hphantom"
	TypeVPhantom         NodeType = "vphantom"
	TypeMathChoice       NodeType = "mathchoice"
	TypeOperatorName     NodeType = "operatorname"
	TypeRaw              NodeType = "raw"
	TypeURL              NodeType = "url"
	TypeVerb             NodeType = "verb"
	TypeSize             NodeType = "size"
	TypeColorToken       NodeType = "color-token"
	TypeIncludeGraphics  NodeType = "includegraphics"
	TypeKeyVals          NodeType = "keyVals"
	TypeInfix            NodeType = "infix"
	TypeHTMLMathML       NodeType = "htmlmathml"
	TypeTag              NodeType = "tag"
	TypeText             NodeType = "text"
	TypeCr               NodeType = "cr"
	TypeHref             NodeType = "href"
)

// Node is implemented by every parse-tree node. Dispatch on concrete type
// is by type switch in the builders (spec §9: "implementors should prefer
// a single match over a map lookup for exhaustiveness checking"), not by
// a second virtual-method layer.
type Node interface {
	Type() NodeType
	Mode() Mode
	Span() *lexer.Span
}

// Base is embedded by every concrete node and supplies the two fields
// (mode and span) spec §3.2 says every node shares.
type Base struct {
	NodeMode Mode
	NodeSpan *lexer.Span
}

func (b Base) Mode() Mode         { return b.NodeMode }
func (b Base) Span() *lexer.Span { return b.NodeSpan }

func span(s lexer.Span) *lexer.Span { return &s }

// ---- Symbols ----

type AtomNode struct {
	Base
	Text   string
	Family AtomClass
}

func (AtomNode) Type() NodeType { return TypeAtom }

type OrdNode struct {
	Base
	Text     string
	IsTextMode bool // true for textord, false for mathord
}

func (n OrdNode) Type() NodeType {
	if n.IsTextMode {
		return TypeTextOrd
	}
	return TypeMathOrd
}

type SpacingNode struct {
	Base
	Text string // the command spelling, e.g. `\,`; width comes from the spacing table
}

func (SpacingNode) Type() NodeType { return TypeSpacing }

type OpNode struct {
	Base
	Text     string // symbol spelling, e.g. "+" glyph replaced by the registry, or empty if Body set
	Body     []Node // not set by the parser; \operatorname builds an OperatorNameNode instead
	Limits   *bool  // nil = registry default, else explicit \limits/\nolimits
	IsSymbol bool   // true for every operator the registry builds from symbols.Operators (\sum and \sin alike)
}

func (OpNode) Type() NodeType { return TypeOp }

type AccentTokenNode struct {
	Base
	Text string
}

func (AccentTokenNode) Type() NodeType { return TypeAccentToken }

// ---- Grouping ----

type OrdGroupNode struct {
	Base
	BodyNodes  []Node
	SemiSimple bool // true for an implicit group the parser introduced, not a user {}
}

func (OrdGroupNode) Type() NodeType { return TypeOrdGroup }

type StylingNode struct {
	Base
	Style     Style
	BodyNodes []Node
}

func (StylingNode) Type() NodeType { return TypeStyling }

type SizingNode struct {
	Base
	SizeIndex int // 1..11, Options size level
	BodyNodes []Node
}

func (SizingNode) Type() NodeType { return TypeSizing }

type ColorNode struct {
	Base
	Color     string
	BodyNodes []Node
}

func (ColorNode) Type() NodeType { return TypeColor }

type FontNode struct {
	Base
	Font      string
	BodyNodes []Node
}

func (FontNode) Type() NodeType { return TypeFont }

type MClassNode struct {
	Base
	Class     AtomClass
	BodyNodes []Node
}

func (MClassNode) Type() NodeType { return TypeMClass }

// ---- Relations ----

type SupSubNode struct {
	Base
	BaseNode Node
	Sup      Node
	Sub      Node
}

func (SupSubNode) Type() NodeType { return TypeSupSub }

// ---- Structures ----

type GenfracNode struct {
	Base
	Numer       Node
	Denom       Node
	HasBarLine  bool
	LeftDelim   string
	RightDelim  string
	Size        string // "auto", "display", "text", "script", "scriptscript"
	BarSize     float64 // explicit rule thickness override, <0 means "default"
}

func (GenfracNode) Type() NodeType { return TypeGenfrac }

type SqrtNode struct {
	Base
	Body  Node
	Index Node // nil for a plain \sqrt
}

func (SqrtNode) Type() NodeType { return TypeSqrt }

type OverlineNode struct {
	Base
	Body Node
}

func (OverlineNode) Type() NodeType { return TypeOverline }

type UnderlineNode struct {
	Base
	Body Node
}

func (UnderlineNode) Type() NodeType { return TypeUnderline }

type AccentNode struct {
	Base
	Label    string
	Body     Node
	Stretchy bool
}

func (AccentNode) Type() NodeType { return TypeAccent }

type AccentUnderNode struct {
	Base
	Label string
	Body  Node
}

func (AccentUnderNode) Type() NodeType { return TypeAccentUnder }

type HorizBraceNode struct {
	Base
	Label  string
	IsOver bool
	Body   Node
}

func (HorizBraceNode) Type() NodeType { return TypeHorizBrace }

type XArrowNode struct {
	Base
	Label string
	Body  Node // above the arrow
	Below Node // nil if no subscript
}

func (XArrowNode) Type() NodeType { return TypeXArrow }

type EncloseNode struct {
	Base
	Label string
	Body  Node
}

func (EncloseNode) Type() NodeType { return TypeEnclose }

// ---- Delimiters ----

type DelimSizingNode struct {
	Base
	Delim string
	Size  int // 1..4
	Class AtomClass
}

func (DelimSizingNode) Type() NodeType { return TypeDelimSizing }

type LeftRightNode struct {
	Base
	BodyNodes  []Node
	LeftDelim  string
	RightDelim string
}

func (LeftRightNode) Type() NodeType { return TypeLeftRight }

type LeftRightRightNode struct {
	Base
	Delim string
}

func (LeftRightRightNode) Type() NodeType { return TypeLeftRightRight }

type MiddleNode struct {
	Base
	Delim string
}

func (MiddleNode) Type() NodeType { return TypeMiddle }

// ---- Layout ----

type ArrayColumn struct {
	Align      string // "l", "c", "r"
	Separator  string // fixed glue before this column
}

type ArrayNode struct {
	Base
	Rows           [][]Node
	Cols           []ArrayColumn
	HLines         []bool // one entry per row-gap, including before row 0 and after the last row
	ColSeparation  string // "small" for cases-like envs
	AddJot         bool   // extra vertical space between rows (aligned-style envs)
	LeftDelim      string
	RightDelim     string
}

func (ArrayNode) Type() NodeType { return TypeArray }

type KernNode struct {
	Base
	Amount float64 // em
}

func (KernNode) Type() NodeType { return TypeKern }

type RuleNode struct {
	Base
	Width, Height, Shift float64 // em
}

func (RuleNode) Type() NodeType { return TypeRule }

type RaiseBoxNode struct {
	Base
	Amount float64
	Body   Node
}

func (RaiseBoxNode) Type() NodeType { return TypeRaiseBox }

type LapNode struct {
	Base
	Alignment string // "llap", "rlap", "clap"
	Body      Node
}

func (LapNode) Type() NodeType { return TypeLap }

type SmashNode struct {
	Base
	Body         Node
	SmashHeight  bool
	SmashDepth   bool
}

func (SmashNode) Type() NodeType { return TypeSmash }

type PhantomNode struct {
	Base
	Body []Node
}

func (PhantomNode) Type() NodeType { return TypePhantom }

type HPhantomNode struct {
	Base
	Body Node
}

func (HPhantomNode) Type() NodeType { return TypeHPhantom }

type VPhantomNode struct {
	Base
	Body Node
}

func (VPhantomNode) Type() NodeType { return TypeVPhantom }

type MathChoiceNode struct {
	Base
	Display, Text2, Script, ScriptScript []Node
}

func (MathChoiceNode) Type() NodeType { return TypeMathChoice }

type OperatorNameNode struct {
	Base
	BodyNodes []Node
	Limits    bool
}

func (OperatorNameNode) Type() NodeType { return TypeOperatorName }

// ---- Leaves ----

type RawNode struct {
	Base
	Text string
}

func (RawNode) Type() NodeType { return TypeRaw }

type URLNode struct {
	Base
	URL string
}

func (URLNode) Type() NodeType { return TypeURL }

type VerbNode struct {
	Base
	Text string
	Star bool
}

func (VerbNode) Type() NodeType { return TypeVerb }

type SizeNode struct {
	Base
	Value     float64
	Unit      string
	IsBlank   bool
}

func (SizeNode) Type() NodeType { return TypeSize }

type ColorTokenNode struct {
	Base
	Color string
}

func (ColorTokenNode) Type() NodeType { return TypeColorToken }

type IncludeGraphicsNode struct {
	Base
	Src    string
	Width  float64
	Height float64
	Alt    string
}

func (IncludeGraphicsNode) Type() NodeType { return TypeIncludeGraphics }

type KeyValsNode struct {
	Base
	Pairs map[string]string
}

func (KeyValsNode) Type() NodeType { return TypeKeyVals }

type InfixNode struct {
	Base
	ReplaceWith string // e.g. "\\genfrac" synthesized handler name
	Size        string
	Token       string // original infix spelling, e.g. "\\over"
}

func (InfixNode) Type() NodeType { return TypeInfix }

type HTMLMathMLNode struct {
	Base
	HTML    []Node
	MathML  []Node
}

func (HTMLMathMLNode) Type() NodeType { return TypeHTMLMathML }

type TagNode struct {
	Base
	BodyNodes []Node
}

func (TagNode) Type() NodeType { return TypeTag }

type TextNode struct {
	Base
	BodyNodes []Node
	Font      string
}

func (TextNode) Type() NodeType { return TypeText }

type CrNode struct {
	Base
	Size float64 // extra vertical space from \\[size]
}

func (CrNode) Type() NodeType { return TypeCr }

type HrefNode struct {
	Base
	URL  string
	Body []Node
}

func (HrefNode) Type() NodeType { return TypeHref }
