// Package search ranks catalog entries against free text.
//
// All functions are pure over the TranslationMap they receive and never fail:
// an empty or unmatchable query yields no results.
package search

import (
	"strings"
	"unicode/utf8"
)

// Scores assigned by Score and the ID rules of Search/GlobalSearch.
const (
	ScoreExact            = 1.0
	ScoreCandidateHasText = 0.7
	ScoreTextHasCandidate = 0.5
	ScoreToken            = 0.3

	ScoreIDContains       = 0.8 // Search
	ScoreGlobalIDExact    = 1.0 // GlobalSearch
	ScoreGlobalIDContains = 0.9 // GlobalSearch
)

// minTokenLen is exclusive: tokens need more than this many characters.
const minTokenLen = 2

// Score rates how well candidate matches query, case-insensitively, in [0,1].
func Score(query, candidate string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	return scoreLower(q, tokens(q), strings.ToLower(candidate))
}

// scoreLower scores already lowercased inputs; toks are the query tokens.
func scoreLower(q string, toks []string, c string) float64 {
	if q == "" || c == "" {
		return 0
	}
	switch {
	case c == q:
		return ScoreExact
	case strings.Contains(c, q):
		return ScoreCandidateHasText
	case strings.Contains(q, c):
		return ScoreTextHasCandidate
	}
	for _, tok := range toks {
		if strings.Contains(c, tok) {
			return ScoreToken
		}
	}
	return 0
}

// tokens splits a lowercased query on whitespace, keeping tokens longer than
// minTokenLen characters.
func tokens(q string) []string {
	var out []string
	for _, f := range strings.Fields(q) {
		if utf8.RuneCountInString(f) > minTokenLen {
			out = append(out, f)
		}
	}
	return out
}
