// Package search builds store-agnostic predicates for catalog queries
// and provides the text normalization and fuzzy matching behind them.
package search

import (
	"strings"
	"unicode"
)

// DefaultFuzzyThreshold is the minimum word similarity accepted by the
// fuzzy matcher.
const DefaultFuzzyThreshold = 0.6

// Normalize lowercases text, drops every rune that is not a word
// character or whitespace, collapses whitespace runs to a single space
// and trims the ends. Letters, digits, combining marks and underscore
// count as word characters, so Devanagari and Perso-Arabic text
// (including vowel signs and other combining marks) passes through as
// opaque code points.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Similarity scores two strings in [0,1] using normalized Levenshtein
// distance over the normalized forms: 1 for identical, 0 when exactly
// one side normalizes to empty, otherwise 1 - distance/maxLen.
// Symmetric in its arguments.
func Similarity(a, b string) float64 {
	s1 := []rune(Normalize(a))
	s2 := []rune(Normalize(b))

	if string(s1) == string(s2) {
		return 1
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}

	dist := levenshtein(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	return 1 - float64(dist)/float64(maxLen)
}

// levenshtein computes classic single-cost edit distance with a
// two-row DP table.
func levenshtein(s1, s2 []rune) int {
	prev := make([]int, len(s1)+1)
	curr := make([]int, len(s1)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(s2); j++ {
		curr[0] = j
		for i := 1; i <= len(s1); i++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[i] = min3(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s1)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// FuzzyMatch reports whether text matches query. A substring hit on
// the normalized forms matches immediately; otherwise every query word
// must have at least one text word with Similarity >= threshold.
//
// An empty (or all-punctuation) query leaves zero query words, so the
// word loop runs zero times and the match is vacuously true. Callers
// that care should reject empty queries up front; this quirk is pinned
// by tests but not a contract worth relying on.
func FuzzyMatch(query, text string, threshold float64) bool {
	if query == "" || text == "" {
		return false
	}

	nq := Normalize(query)
	nt := Normalize(text)

	if strings.Contains(nt, nq) {
		return true
	}

	textWords := strings.Fields(nt)
	for _, qw := range strings.Fields(nq) {
		found := false
		for _, tw := range textWords {
			if Similarity(qw, tw) >= threshold {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
