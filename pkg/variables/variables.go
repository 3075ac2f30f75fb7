// Package variables extracts and substitutes ###name### placeholders in
// wordings.
//
// A name that occurs more than once in the same wording is addressed per
// occurrence with the key "name_N" (N starting at 1); a single occurrence is
// addressed by its bare name.
package variables

import (
	"regexp"
	"strconv"

	"github.com/aretw0/multilan/pkg/core"
)

var tokenRe = regexp.MustCompile(`###(\w+)###`)

// Extract returns the unique variable names in first-seen order.
func Extract(text string) []string {
	matches := tokenRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var names []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// ExtractOccurrences returns every occurrence in text order with its 1-based
// per-name index.
func ExtractOccurrences(text string) []core.VariableOccurrence {
	matches := tokenRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	totals := make(map[string]int, len(matches))
	for _, m := range matches {
		totals[m[1]]++
	}

	seen := make(map[string]int, len(totals))
	out := make([]core.VariableOccurrence, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		seen[name]++
		out = append(out, occurrence(name, seen[name], totals[name] > 1))
	}
	return out
}

// Replace substitutes tokens in a single left-to-right pass. For the nth
// occurrence of name it uses values["name_n"], then values["name"]; a token
// with neither stays verbatim so missing data remains visible.
func Replace(text string, values map[string]string) string {
	if len(values) == 0 {
		return text
	}
	counters := make(map[string]int)
	return tokenRe.ReplaceAllStringFunc(text, func(token string) string {
		name := token[3 : len(token)-3]
		counters[name]++
		if v, ok := values[IndexedKey(name, counters[name])]; ok {
			return v
		}
		if v, ok := values[name]; ok {
			return v
		}
		return token
	})
}

// Reconcile merges the occurrences of one ID across its language variants.
// For each name the occurrence count is the maximum seen in any single
// variant; names keep their first-seen order over the language priority.
func Reconcile(t core.Translations) []core.VariableOccurrence {
	var names []string
	maxCount := make(map[string]int)

	t.Each(func(_ core.LanguageCode, wording string) bool {
		counts := make(map[string]int)
		for _, m := range tokenRe.FindAllStringSubmatch(wording, -1) {
			name := m[1]
			if _, ok := maxCount[name]; !ok {
				maxCount[name] = 0
				names = append(names, name)
			}
			counts[name]++
		}
		for name, c := range counts {
			if c > maxCount[name] {
				maxCount[name] = c
			}
		}
		return true
	})

	if len(names) == 0 {
		return nil
	}
	var out []core.VariableOccurrence
	for _, name := range names {
		n := maxCount[name]
		for i := 1; i <= n; i++ {
			out = append(out, occurrence(name, i, n > 1))
		}
	}
	return out
}

// IndexedKey returns the per-occurrence key "name_index".
func IndexedKey(name string, index int) string {
	return name + "_" + strconv.Itoa(index)
}

func occurrence(name string, index int, indexed bool) core.VariableOccurrence {
	key := name
	if indexed {
		key = IndexedKey(name, index)
	}
	return core.VariableOccurrence{Name: name, Key: key, Index: index, IsIndexed: indexed}
}
