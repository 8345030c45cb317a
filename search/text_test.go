package search

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Sindhi Literature", "sindhi literature"},
		{"strips punctuation", "shah-jo-risalo!", "shahjorisalo"},
		{"collapses whitespace", "  shah   jo \t risalo  ", "shah jo risalo"},
		{"keeps digits and underscore", "vol_2 (1923)", "vol_2 1923"},
		{"keeps devanagari with vowel signs", "सिन्धी साहित्य", "सिन्धी साहित्य"},
		{"keeps perso-arabic", "سنڌي ادب", "سنڌي ادب"},
		{"only punctuation", "?!,.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "Shah Jo Risalo", "  mixed, CASE!  ", "सिन्धी साहित्य", "سنڌي ادب", "a_b 12"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "sindhi", "sindhi", 1},
		{"identical after normalize", "Sindhi!", "sindhi", 1},
		{"both empty", "", "", 1},
		{"one empty", "abc", "", 0},
		{"one normalizes to empty", "abc", "?!", 0},
		{"kitten sitting", "kitten", "sitting", 1 - 3.0/7.0},
		{"single substitution", "sindhu", "sindhi", 1 - 1.0/6.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"shah", "shaah"},
		{"", "risalo"},
		{"सिन्धी", "सिंधी"},
		{"Sindhi Adab", "sindhi adab!"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestFuzzyMatchSubstringFastPath(t *testing.T) {
	// A substring hit matches regardless of threshold.
	if !FuzzyMatch("risalo", "Shah Jo Risalo", 1.0) {
		t.Fatal("substring query should match at any threshold")
	}
	if !FuzzyMatch("RISALO!", "shah jo risalo", 1.0) {
		t.Fatal("substring match should apply to normalized forms")
	}
}

func TestFuzzyMatchWordLevel(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{"close word matches", "sindh", "sindhi literature archive", true},
		{"every query word needs a partner", "sindhi zzzzqx", "sindhi literature", false},
		{"distant word fails", "xyzabc", "sindhi literature", false},
		{"multi word both close", "sindi literture", "sindhi literature archive", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyMatch(tt.query, tt.text, DefaultFuzzyThreshold); got != tt.want {
				t.Fatalf("FuzzyMatch(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
			}
		})
	}
}

func TestFuzzyMatchEmptyQuery(t *testing.T) {
	// Raw empty inputs never match.
	if FuzzyMatch("", "some text", DefaultFuzzyThreshold) {
		t.Fatal("empty query must not match")
	}
	if FuzzyMatch("query", "", DefaultFuzzyThreshold) {
		t.Fatal("empty text must not match")
	}
	// A query that normalizes to empty is vacuously true: the empty
	// string is a substring of everything. Documented quirk.
	if !FuzzyMatch("?!", "some text", DefaultFuzzyThreshold) {
		t.Fatal("query normalizing to empty is defined to match vacuously")
	}
}
