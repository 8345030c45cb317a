package search

import (
	"strings"
)

// ExpandTerms widens a query into extra match terms: the query itself,
// every prefix (length >= 3) of each word longer than two runes, and
// plural/gerund variants of the whole query. Duplicates collapse;
// insertion order is preserved so results are deterministic. This is a
// recall heuristic, not linguistic stemming.
func ExpandTerms(query string) []string {
	terms := make([]string, 0, 8)
	seen := make(map[string]struct{})
	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}

	add(query)

	for _, word := range strings.Fields(query) {
		runes := []rune(word)
		if len(runes) <= 2 {
			continue
		}
		for i := 3; i <= len(runes); i++ {
			add(string(runes[:i]))
		}
	}

	add(strings.TrimSuffix(query, "s"))
	add(query + "s")
	add(strings.TrimSuffix(query, "ing"))
	add(query + "ing")

	return terms
}
