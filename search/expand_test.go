package search

import (
	"reflect"
	"testing"
)

func TestExpandTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "single word",
			query: "book",
			// "boo"/"book" prefixes, plural appended; the suffix
			// strips are no-ops that dedupe away.
			want: []string{"book", "boo", "books", "booking"},
		},
		{
			name:  "trailing s stripped",
			query: "books",
			want:  []string{"books", "boo", "book", "bookss", "booksing"},
		},
		{
			name:  "trailing ing stripped",
			query: "reading",
			want:  []string{"reading", "rea", "read", "readi", "readin", "readings", "readinging"},
		},
		{
			name:  "short words skip prefixes",
			query: "jo",
			want:  []string{"jo", "jos", "joing"},
		},
		{
			name:  "multi word",
			query: "shah risalo",
			want: []string{
				"shah risalo",
				"sha", "shah",
				"ris", "risa", "risal", "risalo",
				"shah risalos",
				"shah risaloing",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandTerms(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExpandTerms(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestExpandTermsNoDuplicates(t *testing.T) {
	for _, query := range []string{"book", "books books", "sing sings singing"} {
		seen := make(map[string]int)
		for _, term := range ExpandTerms(query) {
			seen[term]++
		}
		for term, n := range seen {
			if n > 1 {
				t.Fatalf("ExpandTerms(%q) repeats %q %d times", query, term, n)
			}
		}
	}
}
