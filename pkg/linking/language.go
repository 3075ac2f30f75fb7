package linking

import "github.com/aretw0/multilan/pkg/core"

// LinkedText is the current on-screen text of an item linked to ID.
type LinkedText struct {
	ID   core.CanonicalID `json:"multilanId"`
	Text string           `json:"text"`
}

// DetectLanguage returns the language most of the items are displayed in.
// Each item votes for the first language, in priority order, whose stored
// wording equals its text exactly; unknown IDs do not vote. Ties, no votes
// and no items all yield core.DefaultLanguage.
func DetectLanguage(tm *core.TranslationMap, items []LinkedText) core.LanguageCode {
	votes := make(map[core.LanguageCode]int)
	for _, item := range items {
		t, ok := tm.Get(item.ID)
		if !ok {
			continue
		}
		t.Each(func(lang core.LanguageCode, wording string) bool {
			if wording == item.Text {
				votes[lang]++
				return false
			}
			return true
		})
	}

	best, bestVotes, tied := core.DefaultLanguage, 0, false
	for _, lang := range core.Languages() {
		switch v := votes[lang]; {
		case v > bestVotes:
			best, bestVotes, tied = lang, v, false
		case v == bestVotes && v > 0:
			tied = true
		}
	}
	if bestVotes == 0 || tied {
		return core.DefaultLanguage
	}
	return best
}
