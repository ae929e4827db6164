package macro

import "github.com/speier/gotex/pkg/gotex/lexer"

// registerBuiltins installs the bounded set of builtin macros spec §4.2
// promises: synonyms that expand to nothing or to a fixed replacement.
// \noexpand and \expandafter are handled directly in Expander.Get rather
// than through this table, since they must see raw (unexpanded) tokens.
func registerBuiltins(ex *Expander) {
	empty := Macro{Tokens: nil}

	// \relax is a no-op expansion boundary; many TeX idioms rely on it to
	// stop an argument scan without producing output.
	ex.Define(`\relax`, empty)

	// \bmod is a spaced binary-operator synonym for mod; \nonscript
	// expands to nothing. Neither requires parser support beyond
	// ordinary token substitution.
	ex.Define(`\bmod`, Macro{Tokens: []lexer.Token{{Text: `\mathbin`}, {Text: "{"}, {Text: `\operatorname`}, {Text: "{"}, {Text: "m"}, {Text: "o"}, {Text: "d"}, {Text: "}"}, {Text: "}"}}})
	ex.Define(`\nonscript`, empty)

	// \df@tag is KaTeX's internal marker consumed by \tag's handler; here
	// it simply expands to nothing, and the parser's tag handling does
	// not refer to it.
	ex.Define(`\df@tag`, empty)

	// \iff, \implies, \impliedby expand to a spaced relation, the
	// canonical "macro expands to several control sequences" example.
	ex.Define(`\iff`, spacedRelMacro(`\Longleftrightarrow`))
	ex.Define(`\implies`, spacedRelMacro(`\Longrightarrow`))
	ex.Define(`\impliedby`, spacedRelMacro(`\Longleftarrow`))
}

func spacedRelMacro(rel string) Macro {
	return Macro{Tokens: []lexer.Token{
		{Text: `\;`},
		{Text: rel},
		{Text: `\;`},
	}}
}
