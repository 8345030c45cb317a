package search

import (
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildPredicateEmptyQuery(t *testing.T) {
	p := BuildPredicate(Options{})
	if !p.Empty() {
		t.Fatalf("expected match-all predicate, got %+v", p)
	}

	// No query means browse-all even when filters are present.
	p = BuildPredicate(Options{AvailableOnline: boolPtr(true), CollectionLocation: "archive.org"})
	if !p.Empty() {
		t.Fatalf("expected match-all predicate without a query, got %+v", p)
	}
}

func TestBuildPredicateExactQuery(t *testing.T) {
	p := BuildPredicate(Options{Query: "risalo"})

	if len(p.Match) != len(textMatchFields) {
		t.Fatalf("expected one condition per text field (%d), got %d", len(textMatchFields), len(p.Match))
	}
	for i, cond := range p.Match {
		if cond.Op != OpContains {
			t.Fatalf("match condition %d: op = %q, want contains", i, cond.Op)
		}
		if cond.Value != "risalo" {
			t.Fatalf("match condition %d: value = %v, want risalo", i, cond.Value)
		}
	}
	if len(p.Filters) != 0 {
		t.Fatalf("unexpected filters: %+v", p.Filters)
	}
}

func TestBuildPredicateFuzzyExpandsTerms(t *testing.T) {
	terms := ExpandTerms("book")
	p := BuildPredicate(Options{Query: "book", Fuzzy: true})

	want := len(terms) * len(textMatchFields)
	if len(p.Match) != want {
		t.Fatalf("expected %d match conditions, got %d", want, len(p.Match))
	}

	// Conditions are grouped term by term in expansion order.
	for ti, term := range terms {
		for fi, field := range textMatchFields {
			cond := p.Match[ti*len(textMatchFields)+fi]
			if cond.Field != field || cond.Value != term {
				t.Fatalf("condition (%d,%d) = %+v, want field %q value %q", ti, fi, cond, field, term)
			}
		}
	}
}

func TestBuildPredicateFilters(t *testing.T) {
	p := BuildPredicate(Options{
		Query:              "risalo",
		AvailableOnline:    boolPtr(true),
		CollectionLocation: "archive.org",
	})

	if len(p.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %d: %+v", len(p.Filters), p.Filters)
	}
	if p.Filters[0].Field != FieldAvailableOnline || p.Filters[0].Op != OpEquals || p.Filters[0].Value != true {
		t.Fatalf("availability filter wrong: %+v", p.Filters[0])
	}
	if p.Filters[1].Field != FieldCollectionLocation || p.Filters[1].Op != OpContains || p.Filters[1].Value != "archive.org" {
		t.Fatalf("location filter wrong: %+v", p.Filters[1])
	}
}

func TestBuildPredicateAuthorReplacesQueryGroup(t *testing.T) {
	p := BuildPredicate(Options{Query: "risalo", Fuzzy: true, Author: "Shah Latif"})

	// The author filter discards the general match group entirely and
	// matches author fields only. Documented precedence, not a bug.
	if len(p.Match) != len(authorFields) {
		t.Fatalf("expected %d author conditions, got %d: %+v", len(authorFields), len(p.Match), p.Match)
	}
	for i, cond := range p.Match {
		if cond.Field != authorFields[i] {
			t.Fatalf("condition %d field = %q, want %q", i, cond.Field, authorFields[i])
		}
		if cond.Op != OpContains || cond.Value != "Shah Latif" {
			t.Fatalf("condition %d = %+v, want contains %q", i, cond, "Shah Latif")
		}
	}
}

func TestBuildPredicateScriptIsInformational(t *testing.T) {
	base := BuildPredicate(Options{Query: "risalo"})
	scripted := BuildPredicate(Options{Query: "risalo", Script: "devanagari"})
	if len(base.Match) != len(scripted.Match) || len(base.Filters) != len(scripted.Filters) {
		t.Fatalf("script option must not alter matching: %+v vs %+v", base, scripted)
	}
}
