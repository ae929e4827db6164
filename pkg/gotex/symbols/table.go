// Package symbols holds the symbol table: a static mapping from
// (mode, canonical control-sequence or character) to the glyph it stands
// for, the atom class it belongs to, and the font family that should
// render it (spec §2 "Symbol table", §6 "External data tables" (1)).
//
// This is treated as read-only configuration data, populated once at
// package init and never mutated afterward (spec §5).
package symbols

// Entry is one symbol-table row. Family uses the same string spelling as
// parser.AtomClass ("ord", "op", "bin", "rel", "open", "close", "punct",
// "inner") so callers can convert with a plain type conversion, avoiding
// an import cycle between this package and parser.
type Entry struct {
	Replacement string // the literal glyph(s) a host font renders
	Family      string
	Font        string // "main", "ams", "cal", "fraktur", "bb", "script", "sans", "mono"
}

// key identifies one symbol-table row by lexical mode and canonical name
// (a character like "+" or a control sequence like "\\alpha").
type key struct {
	mode string // "math" or "text"
	name string
}

var table = map[key]Entry{}

func define(mode, name, replacement, family, font string) {
	table[key{mode, name}] = Entry{Replacement: replacement, Family: family, Font: font}
}

// Lookup returns the symbol-table row for name in the given mode ("math"
// or "text"), falling back to the math-mode entry when none exists for
// text mode and vice versa is NOT performed — callers decide fallback
// policy (the parser falls back to treating an unknown math-mode letter
// as an ord of its own text, per KaTeX's permissive default).
func Lookup(mode, name string) (Entry, bool) {
	e, ok := table[key{mode, name}]
	return e, ok
}

func init() {
	registerLetters()
	registerGreek()
	registerRelations()
	registerBinaryOps()
	registerDelimiters()
	registerPunctuationAndMisc()
	registerArrows()
}

func registerLetters() {
	for c := 'a'; c <= 'z'; c++ {
		s := string(c)
		define("math", s, s, "ord", "main")
		define("text", s, s, "ord", "main")
	}
	for c := 'A'; c <= 'Z'; c++ {
		s := string(c)
		define("math", s, s, "ord", "main")
		define("text", s, s, "ord", "main")
	}
	for c := '0'; c <= '9'; c++ {
		s := string(c)
		define("math", s, s, "ord", "main")
		define("text", s, s, "ord", "main")
	}
}

func registerGreek() {
	greek := map[string]string{
		`\alpha`: "α", `\beta`: "β", `\gamma`: "γ", `\delta`: "δ",
		`\epsilon`: "ε", `\varepsilon`: "ε", `\zeta`: "ζ", `\eta`: "η",
		`\theta`: "θ", `\vartheta`: "ϑ", `\iota`: "ι", `\kappa`: "κ",
		`\lambda`: "λ", `\mu`: "μ", `\nu`: "ν", `\xi`: "ξ", `\pi`: "π",
		`\varpi`: "ϖ", `\rho`: "ρ", `\varrho`: "ϱ", `\sigma`: "σ",
		`\varsigma`: "ς", `\tau`: "τ", `\upsilon`: "υ", `\phi`: "φ",
		`\varphi`: "ϕ", `\chi`: "χ", `\psi`: "ψ", `\omega`: "ω",
		`\Gamma`: "Γ", `\Delta`: "Δ", `\Theta`: "Θ", `\Lambda`: "Λ",
		`\Xi`: "Ξ", `\Pi`: "Π", `\Sigma`: "Σ", `\Upsilon`: "Υ",
		`\Phi`: "Φ", `\Psi`: "Ψ", `\Omega`: "Ω",
	}
	for name, glyph := range greek {
		define("math", name, glyph, "ord", "main")
	}
}

func registerRelations() {
	rels := map[string]string{
		`=`: "=", `<`: "<", `>`: ">", `\leq`: "≤", `\le`: "≤", `\geq`: "≥",
		`\ge`: "≥", `\neq`: "≠", `\ne`: "≠", `\equiv`: "≡", `\sim`: "∼",
		`\simeq`: "≃", `\approx`: "≈", `\cong`: "≅", `\propto`: "∝",
		`\in`: "∈", `\notin`: "∉", `\ni`: "∋", `\subset`: "⊂",
		`\supset`: "⊃", `\subseteq`: "⊆", `\supseteq`: "⊇", `\parallel`: "∥",
		`\perp`: "⊥", `\mid`: "∣", `\Longleftrightarrow`: "⟺",
		`\Longrightarrow`: "⟹", `\Longleftarrow`: "⟸",
		`\rightarrow`: "→", `\to`: "→", `\leftarrow`: "←",
		`\leftrightarrow`: "↔", `\Rightarrow`: "⇒", `\Leftarrow`: "⇐",
		`\Leftrightarrow`: "⇔", `\mapsto`: "↦",
	}
	for name, glyph := range rels {
		define("math", name, glyph, "rel", "main")
	}
}

func registerBinaryOps() {
	bins := map[string]string{
		`+`: "+", `-`: "−", `\pm`: "±", `\mp`: "∓", `*`: "∗", `\ast`: "∗",
		`\times`: "×", `\div`: "÷", `\cdot`: "⋅", `\circ`: "∘",
		`\bullet`: "∙", `\oplus`: "⊕", `\ominus`: "⊖", `\otimes`: "⊗",
		`\cup`: "∪", `\cap`: "∩", `\setminus`: "∖", `\wedge`: "∧",
		`\land`: "∧", `\vee`: "∨", `\lor`: "∨", `\wr`: "≀",
	}
	for name, glyph := range bins {
		define("math", name, glyph, "bin", "main")
	}
}

func registerDelimiters() {
	delims := []struct {
		name, glyph, family string
	}{
		{"(", "(", "open"}, {")", ")", "close"},
		{"[", "[", "open"}, {"]", "]", "close"},
		{`\{`, "{", "open"}, {`\}`, "}", "close"},
		{`\lbrace`, "{", "open"}, {`\rbrace`, "}", "close"},
		{`\lfloor`, "⌊", "open"}, {`\rfloor`, "⌋", "close"},
		{`\lceil`, "⌈", "open"}, {`\rceil`, "⌉", "close"},
		{`\langle`, "⟨", "open"}, {`\rangle`, "⟩", "close"},
		{`\lvert`, "|", "open"}, {`\rvert`, "|", "close"},
		{`\lVert`, "‖", "open"}, {`\rVert`, "‖", "close"},
		{`|`, "|", "ord"}, {`\|`, "‖", "ord"},
		{".", "", "ord"},
	}
	for _, d := range delims {
		define("math", d.name, d.glyph, d.family, "main")
	}
}

func registerPunctuationAndMisc() {
	misc := map[string]struct{ glyph, family string }{
		",":         {",", "punct"},
		";":          {";", "punct"},
		":":          {":", "rel"},
		`\colon`:     {":", "punct"},
		`\cdots`:     {"⋯", "inner"},
		`\ldots`:     {"…", "inner"},
		`\vdots`:     {"⋮", "inner"},
		`\ddots`:     {"⋱", "inner"},
		`\prime`:     {"′", "ord"},
		`\infty`:     {"∞", "ord"},
		`\partial`:   {"∂", "ord"},
		`\nabla`:     {"∇", "ord"},
		`\forall`:    {"∀", "ord"},
		`\exists`:    {"∃", "ord"},
		`\emptyset`:  {"∅", "ord"},
		`\hbar`:      {"ℏ", "ord"},
		`\ell`:       {"ℓ", "ord"},
		`\Re`:        {"ℜ", "ord"},
		`\Im`:        {"ℑ", "ord"},
		`\aleph`:     {"ℵ", "ord"},
	}
	for name, e := range misc {
		define("math", name, e.glyph, e.family, "main")
	}
	define("text", "-", "-", "ord", "main")
	define("text", ",", ",", "punct", "main")
	define("text", ".", ".", "punct", "main")
}

func registerArrows() {
	arrows := map[string]string{
		`\leftarrow`: "←", `\rightarrow`: "→", `\Rightarrow`: "⇒",
		`\Leftarrow`: "⇐", `\longrightarrow`: "⟶", `\longleftarrow`: "⟵",
		`\leftharpoonup`: "↼", `\rightharpoonup`: "⇀",
	}
	for name, glyph := range arrows {
		if _, exists := table[key{"math", name}]; exists {
			continue
		}
		define("math", name, glyph, "rel", "main")
	}
}

// Operators is the catalog of "big operator" control sequences recognized
// by the registry's \op handling (spec §4.3 "Super/subscript handling":
// "limits modifiers bind to operators"). DefaultLimits reports whether the
// operator places sub/superscripts as limits (above/below) by default in
// display style, e.g. \sum, vs. as ordinary scripts, e.g. \log.
var Operators = map[string]struct {
	Glyph         string
	DefaultLimits bool
}{
	`\sum`:     {"∑", true},
	`\prod`:    {"∏", true},
	`\coprod`:  {"∐", true},
	`\bigcup`:  {"⋃", true},
	`\bigcap`:  {"⋂", true},
	`\bigoplus`: {"⊕", true},
	`\bigotimes`: {"⊗", true},
	`\int`:     {"∫", false},
	`\iint`:    {"∬", false},
	`\iiint`:   {"∭", false},
	`\oint`:    {"∮", false},
	`\lim`:     {"lim", true},
	`\limsup`:  {"lim sup", true},
	`\liminf`:  {"lim inf", true},
	`\log`:     {"log", false},
	`\ln`:      {"ln", false},
	`\exp`:     {"exp", false},
	`\sin`:     {"sin", false},
	`\cos`:     {"cos", false},
	`\tan`:     {"tan", false},
	`\cot`:     {"cot", false},
	`\sec`:     {"sec", false},
	`\csc`:     {"csc", false},
	`\arcsin`:  {"arcsin", false},
	`\arccos`:  {"arccos", false},
	`\arctan`:  {"arctan", false},
	`\sinh`:    {"sinh", false},
	`\cosh`:    {"cosh", false},
	`\tanh`:    {"tanh", false},
	`\det`:     {"det", true},
	`\gcd`:     {"gcd", true},
	`\max`:     {"max", true},
	`\min`:     {"min", true},
	`\sup`:     {"sup", true},
	`\inf`:     {"inf", true},
	`\ker`:     {"ker", false},
	`\deg`:     {"deg", false},
	`\arg`:     {"arg", false},
	`\hom`:     {"hom", false},
	`\Pr`:      {"Pr", true},
}
