package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/variables"
)

// Search ranks every ID against query. An ID containing the query scores
// ScoreIDContains; the best text score over its languages competes with it.
// Hits are sorted by descending score, ties keep map insertion order.
// A limit <= 0 disables truncation.
func Search(tm *core.TranslationMap, query string, limit int) []core.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	toks := tokens(q)

	var hits []core.SearchResult
	tm.Range(func(id core.CanonicalID, t core.Translations) bool {
		score := 0.0
		if strings.Contains(strings.ToLower(string(id)), q) {
			score = ScoreIDContains
		}
		if s := bestText(q, toks, t); s > score {
			score = s
		}
		if score > 0 {
			hits = append(hits, core.SearchResult{ID: id, Translations: t.Clone(), Score: score})
		}
		return true
	})
	return rank(hits, limit)
}

// GlobalSearch is Search with stronger ID handling: an exact ID scores
// ScoreGlobalIDExact, a partial one ScoreGlobalIDContains. Each hit carries
// its reconciled variable occurrences and, when md is non-nil, its metadata.
func GlobalSearch(tm *core.TranslationMap, query string, limit int, md core.MetadataMap) []core.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	toks := tokens(q)

	var hits []core.SearchResult
	tm.Range(func(id core.CanonicalID, t core.Translations) bool {
		lid := strings.ToLower(string(id))
		score := 0.0
		switch {
		case lid == q:
			score = ScoreGlobalIDExact
		case strings.Contains(lid, q):
			score = ScoreGlobalIDContains
		}
		if s := bestText(q, toks, t); s > score {
			score = s
		}
		if score > 0 {
			hits = append(hits, core.SearchResult{ID: id, Translations: t.Clone(), Score: score})
		}
		return true
	})

	hits = rank(hits, limit)
	for i := range hits {
		hits[i].VariableOccurrences = variables.Reconcile(hits[i].Translations)
		if md != nil {
			hits[i].Metadata = md.Lookup(hits[i].ID)
		}
	}
	return hits
}

// BuildTextToIDMap indexes every wording to its ID. When the same wording
// belongs to several IDs the first one in map order is kept.
func BuildTextToIDMap(tm *core.TranslationMap) map[string]core.CanonicalID {
	index := make(map[string]core.CanonicalID, tm.Len())
	tm.Range(func(id core.CanonicalID, t core.Translations) bool {
		t.Each(func(_ core.LanguageCode, wording string) bool {
			if _, ok := index[wording]; !ok {
				index[wording] = id
			}
			return true
		})
		return true
	})
	return index
}

func bestText(q string, toks []string, t core.Translations) float64 {
	best := 0.0
	t.Each(func(_ core.LanguageCode, wording string) bool {
		if s := scoreLower(q, toks, strings.ToLower(wording)); s > best {
			best = s
		}
		return best < ScoreExact
	})
	return best
}

func rank(hits []core.SearchResult, limit int) []core.SearchResult {
	slices.SortStableFunc(hits, func(a, b core.SearchResult) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
