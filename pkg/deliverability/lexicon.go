package deliverability

import "strings"

// Penalty schedule for spam lexicon hits.
const (
	lexiconPenaltyPerPhrase = 8
	lexiconPenaltyCap       = 40
)

// spamLexicon is the fixed list of trigger phrases scanned for in campaign
// markup. Matching is plain substring containment on the lowercased content,
// so a phrase inside a URL or attribute value still counts. Never mutated at
// runtime.
var spamLexicon = []string{
	"free",
	"buy now",
	"act now",
	"limited time",
	"click below",
	"order now",
	"100% free",
	"winner",
	"congratulations",
	"cash bonus",
	"guarantee",
	"no obligation",
	"risk-free",
	"urgent",
	"earn money",
	"make money fast",
	"double your income",
	"lowest price",
	"special promotion",
	"this won't last",
	"don't delete",
	"exclusive deal",
	"instant access",
	"miracle",
	"no hidden fees",
	"offer expires",
	"once in a lifetime",
	"satisfaction guaranteed",
}

// Lexicon returns a copy of the spam trigger phrase list.
func Lexicon() []string {
	out := make([]string, len(spamLexicon))
	copy(out, spamLexicon)
	return out
}

// matchLexicon returns the subsequence of lexicon phrases contained in the
// lowercased markup, preserving lexicon order. Each phrase counts at most
// once regardless of how often it occurs.
func matchLexicon(lowered string) []string {
	var found []string
	for _, phrase := range spamLexicon {
		if strings.Contains(lowered, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}
