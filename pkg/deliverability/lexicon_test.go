package deliverability

import (
	"strings"
	"testing"
)

func TestLexiconIsStable(t *testing.T) {
	if len(spamLexicon) != 28 {
		t.Errorf("lexicon has %d phrases, want 28", len(spamLexicon))
	}

	// All phrases are stored lowercase so containment checks against
	// lowercased markup work.
	for _, phrase := range spamLexicon {
		if phrase != strings.ToLower(phrase) {
			t.Errorf("phrase %q is not lowercase", phrase)
		}
	}

	// Lexicon() hands out a copy, not the backing array.
	copied := Lexicon()
	copied[0] = "mutated"
	if spamLexicon[0] == "mutated" {
		t.Error("Lexicon() exposed the internal slice")
	}
}

func TestMatchLexiconOrderAndDistinctness(t *testing.T) {
	found := matchLexicon("<p>act now! buy now, free free free</p>")

	// Lexicon order, not document order, and each phrase only once.
	want := []string{"free", "buy now", "act now"}
	if len(found) != len(want) {
		t.Fatalf("found = %v, want %v", found, want)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("found[%d] = %q, want %q", i, found[i], want[i])
		}
	}
}

func TestMatchLexiconInsideAttributes(t *testing.T) {
	// Substring semantics are intentional: a phrase inside a URL still
	// counts as a hit.
	found := matchLexicon(`<a href="https://example.com/free-shipping">offer</a>`)
	if len(found) != 1 || found[0] != "free" {
		t.Errorf("found = %v, want [free]", found)
	}
}

func TestMatchLexiconNoHits(t *testing.T) {
	if found := matchLexicon("<p>quarterly engineering update</p>"); found != nil {
		t.Errorf("found = %v, want none", found)
	}
}
