// Package spacing holds the two atom-class × atom-class glue tables
// (spec §2 "Spacing tables", §6 "External data tables" (4)): the normal
// table and the "tight" table used in script/scriptscript style. Values
// are expressed in em, converted from the traditional TeX mu units
// (18mu = 1em at textsize) per TeXbook Appendix G.
package spacing

const (
	thin  = 3.0 / 18.0
	med   = 4.0 / 18.0
	thick = 5.0 / 18.0
)

type pair struct{ a, b string }

var normal = map[pair]float64{}
var tight = map[pair]float64{}

func put(table map[pair]float64, a, b string, width float64) {
	table[pair{a, b}] = width
}

func init() {
	rows := []struct {
		a, b  string
		width float64
	}{
		{"ord", "op", thin}, {"ord", "bin", med}, {"ord", "rel", thick}, {"ord", "inner", thin},
		{"op", "ord", thin}, {"op", "op", thin}, {"op", "rel", thick}, {"op", "inner", thin},
		{"bin", "ord", med}, {"bin", "op", med}, {"bin", "open", med}, {"bin", "inner", med},
		{"rel", "ord", thick}, {"rel", "op", thick}, {"rel", "open", thick}, {"rel", "inner", thick},
		{"close", "op", thin}, {"close", "bin", med}, {"close", "rel", thick}, {"close", "inner", thin},
		{"punct", "ord", thin}, {"punct", "op", thin}, {"punct", "rel", thin}, {"punct", "open", thin},
		{"punct", "close", thin}, {"punct", "punct", thin}, {"punct", "inner", thin},
		{"inner", "op", thin}, {"inner", "bin", med}, {"inner", "rel", thick}, {"inner", "open", thin},
		{"inner", "punct", thin}, {"inner", "inner", thin},
	}
	for _, r := range rows {
		put(normal, r.a, r.b, r.width)
	}

	// Script/scriptscript ("tight") style drops binary/relation spacing
	// to thin or nothing, per TeXbook Appendix G rule 20's note that
	// cramped/script styles use a reduced table.
	tightRows := []struct {
		a, b  string
		width float64
	}{
		{"ord", "op", thin}, {"op", "ord", thin}, {"op", "op", thin},
		{"bin", "ord", thin}, {"bin", "op", thin},
		{"punct", "ord", thin}, {"inner", "op", thin},
	}
	for _, r := range tightRows {
		put(tight, r.a, r.b, r.width)
	}
}

// Lookup returns the glue width (em) between two adjacent atom classes, or
// ok=false when the table has no entry (meaning: no space inserted).
// tight selects the script/scriptscript table per spec §4.5.2.
func Lookup(tightStyle bool, a, b string) (width float64, ok bool) {
	table := normal
	if tightStyle {
		table = tight
	}
	w, ok := table[pair{a, b}]
	return w, ok
}
