// Package linking classifies free-text items against a catalog: bulk
// exact/fuzzy linking, single-item match detection, majority-vote language
// detection and language switch planning.
package linking

import (
	"strings"

	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/search"
)

// Empirical defaults, overridable through Options.
const (
	DefaultFuzzyThreshold     = 0.3
	DefaultSuggestionLimit    = 3
	DefaultOverflowMultiplier = 1.2
)

// Options tunes the Matcher.
type Options struct {
	// FuzzyThreshold is the minimum top score for a Close classification.
	FuzzyThreshold float64
	// SuggestionLimit caps the suggestions carried by a Close classification.
	SuggestionLimit int
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold:  DefaultFuzzyThreshold,
		SuggestionLimit: DefaultSuggestionLimit,
	}
}

// Matcher runs the two-pass (exact, then fuzzy) classification.
// It holds no catalog state and is safe for concurrent use.
type Matcher struct {
	opts Options
}

// NewMatcher creates a Matcher. Non-positive limits fall back to defaults.
func NewMatcher(opts Options) *Matcher {
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = DefaultSuggestionLimit
	}
	if opts.FuzzyThreshold < 0 {
		opts.FuzzyThreshold = DefaultFuzzyThreshold
	}
	return &Matcher{opts: opts}
}

// Options returns the effective options.
func (m *Matcher) Options() Options { return m.opts }

// BulkMatch buckets items into exact, fuzzy and unmatched. Items whose
// trimmed text is empty appear in no bucket. The reverse text index is built
// once per call.
func (m *Matcher) BulkMatch(tm *core.TranslationMap, items []core.Candidate) core.BulkMatchResult {
	result := core.BulkMatchResult{
		ExactMatches: []core.ExactMatch{},
		FuzzyMatches: []core.FuzzyMatch{},
		Unmatched:    []core.Candidate{},
	}
	if len(items) == 0 {
		return result
	}

	index := search.BuildTextToIDMap(tm)
	for _, item := range items {
		c := m.classify(tm, index, item.Text)
		switch c.Kind {
		case core.MatchExact:
			result.ExactMatches = append(result.ExactMatches, core.ExactMatch{
				Item:         item,
				MultilanID:   c.ID,
				Translations: c.Translations,
			})
		case core.MatchClose:
			result.FuzzyMatches = append(result.FuzzyMatches, core.FuzzyMatch{
				Item:        item,
				Suggestions: c.Suggestions,
			})
		case core.MatchNone:
			if strings.TrimSpace(item.Text) != "" {
				result.Unmatched = append(result.Unmatched, item)
			}
		}
	}
	return result
}

// DetectMatch classifies a single item. An item that already carries a
// CanonicalID is Linked and gets the stored translations and metadata
// (both absent when the ID is unknown to the store).
func (m *Matcher) DetectMatch(store *core.Store, item core.Candidate) core.MatchClassification {
	if item.CanonicalID != "" {
		c := core.MatchClassification{Kind: core.MatchLinked, ID: item.CanonicalID}
		if t, ok := store.Translations().Get(item.CanonicalID); ok {
			c.Translations = t.Clone()
		}
		c.Metadata = store.Metadata().Lookup(item.CanonicalID)
		return c
	}
	tm := store.Translations()
	return m.classify(tm, search.BuildTextToIDMap(tm), item.Text)
}

func (m *Matcher) classify(tm *core.TranslationMap, index map[string]core.CanonicalID, text string) core.MatchClassification {
	text = strings.TrimSpace(text)
	if text == "" {
		return core.MatchClassification{Kind: core.MatchNone}
	}

	if id, ok := index[text]; ok {
		c := core.MatchClassification{Kind: core.MatchExact, ID: id}
		if t, ok := tm.Get(id); ok {
			c.Translations = t.Clone()
		}
		return c
	}

	hits := search.Search(tm, text, m.opts.SuggestionLimit)
	if len(hits) > 0 && hits[0].Score >= m.opts.FuzzyThreshold {
		return core.MatchClassification{Kind: core.MatchClose, Suggestions: hits}
	}
	return core.MatchClassification{Kind: core.MatchNone}
}
