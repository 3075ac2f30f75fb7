package core

// VariableOccurrence is one ###name### token inside a wording.
// Key equals Name unless the name repeats in the same wording, in which case
// Key is "name_index" and IsIndexed is true.
type VariableOccurrence struct {
	Name      string `json:"name"`
	Key       string `json:"key"`
	Index     int    `json:"index"`
	IsIndexed bool   `json:"isIndexed"`
}

// SearchResult is one ranked hit of the search engine.
type SearchResult struct {
	ID                  CanonicalID          `json:"multilanId"`
	Translations        Translations         `json:"translations"`
	Score               float64              `json:"score,omitempty"`
	VariableOccurrences []VariableOccurrence `json:"variableOccurrences,omitempty"`
	Metadata            *Metadata            `json:"metadata,omitempty"`
}

// Candidate is a free-text item offered for linking. Identity is opaque to
// the engine (typically a canvas node ID). CanonicalID is set when the item
// is already linked.
type Candidate struct {
	Identity    string      `json:"identity"`
	Text        string      `json:"text"`
	CanonicalID CanonicalID `json:"multilanId,omitempty"`
}

// MatchKind tags a MatchClassification.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchLinked
	MatchExact
	MatchClose
)

func (k MatchKind) String() string {
	switch k {
	case MatchLinked:
		return "linked"
	case MatchExact:
		return "exact"
	case MatchClose:
		return "close"
	default:
		return "none"
	}
}

// MarshalText renders the kind by name.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MatchClassification is the outcome of matching one item.
// ID and Translations are set for Linked and Exact, Metadata for Linked,
// Suggestions for Close.
type MatchClassification struct {
	Kind         MatchKind      `json:"kind"`
	ID           CanonicalID    `json:"multilanId,omitempty"`
	Translations Translations   `json:"translations,omitempty"`
	Metadata     *Metadata      `json:"metadata,omitempty"`
	Suggestions  []SearchResult `json:"suggestions,omitempty"`
}

// ExactMatch is an item whose text equals a stored wording.
type ExactMatch struct {
	Item         Candidate    `json:"item"`
	MultilanID   CanonicalID  `json:"multilanId"`
	Translations Translations `json:"translations"`
}

// FuzzyMatch is an item with ranked suggestions.
type FuzzyMatch struct {
	Item        Candidate      `json:"item"`
	Suggestions []SearchResult `json:"suggestions"`
}

// BulkMatchResult buckets a batch of candidates.
type BulkMatchResult struct {
	ExactMatches []ExactMatch `json:"exactMatches"`
	FuzzyMatches []FuzzyMatch `json:"fuzzyMatches"`
	Unmatched    []Candidate  `json:"unmatched"`
}

// SwitchResult summarizes a language switch. Overflow is filled by callers
// from rendered measurements through RecordOverflow.
type SwitchResult struct {
	Success  int           `json:"success"`
	Missing  []CanonicalID `json:"missing"`
	Overflow []CanonicalID `json:"overflow"`
}

// RecordOverflow flags id when the measured width after the switch exceeds
// the width before it times multiplier. It reports whether id was flagged.
func (r *SwitchResult) RecordOverflow(id CanonicalID, before, after, multiplier float64) bool {
	if before <= 0 || after <= before*multiplier {
		return false
	}
	r.Overflow = append(r.Overflow, id)
	return true
}
