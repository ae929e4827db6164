package spacing

import "testing"

func TestLookupKnownPair(t *testing.T) {
	w, ok := Lookup(false, "rel", "ord")
	if !ok {
		t.Fatal("expected rel-ord to have a normal-table entry")
	}
	if w != thick {
		t.Fatalf("got %v want thick (%v)", w, thick)
	}
}

func TestLookupUnknownPairHasNoEntry(t *testing.T) {
	if _, ok := Lookup(false, "open", "close"); ok {
		t.Fatal("expected open-close to have no spacing entry")
	}
}

func TestTightTableIsSparserThanNormal(t *testing.T) {
	if len(tight) >= len(normal) {
		t.Fatalf("expected tight table (%d) to have fewer entries than normal (%d)", len(tight), len(normal))
	}
}
