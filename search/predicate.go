package search

// Matchable book fields, named after their storage columns. The
// predicate itself is store-agnostic; adapters map these names to
// whatever their backend needs.
const (
	FieldTitleEnglish       = "title_english"
	FieldTitleDevanagari    = "title_devanagari"
	FieldTitlePersoArabic   = "title_perso_arabic"
	FieldAuthorEnglish      = "author_english"
	FieldAuthorDevanagari   = "author_devanagari"
	FieldAuthorPersoArabic  = "author_perso_arabic"
	FieldCollectionLocation = "collection_location"
	FieldOtherDetails       = "other_details"
	FieldSearchVector       = "search_vector"
	FieldAvailableOnline    = "available_online"
)

type Op string

const (
	// OpContains is a case-insensitive substring match.
	OpContains Op = "contains"
	// OpEquals is an exact match.
	OpEquals Op = "equals"
)

type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Predicate is the neutral query form handed to a persistence adapter:
// a disjunction of match conditions (any may hit) constrained by a
// conjunction of filters (all must hold). The zero value matches
// everything ("browse all").
type Predicate struct {
	Match   []Condition
	Filters []Condition
}

// Empty reports whether the predicate matches every record.
func (p Predicate) Empty() bool {
	return len(p.Match) == 0 && len(p.Filters) == 0
}

// Options are the request parameters the builder understands. Script
// is informational only and does not alter matching.
type Options struct {
	Query              string
	Script             string
	AvailableOnline    *bool
	CollectionLocation string
	Author             string
	Fuzzy              bool
}

// textMatchFields are the columns searched for each query term.
var textMatchFields = []string{
	FieldTitleEnglish,
	FieldTitleDevanagari,
	FieldTitlePersoArabic,
	FieldAuthorEnglish,
	FieldAuthorDevanagari,
	FieldAuthorPersoArabic,
	FieldCollectionLocation,
	FieldOtherDetails,
	FieldSearchVector,
}

var authorFields = []string{
	FieldAuthorEnglish,
	FieldAuthorDevanagari,
	FieldAuthorPersoArabic,
}

// BuildPredicate translates request options into a Predicate. An empty
// query yields the match-all predicate regardless of other options.
//
// When Author is set it replaces the general match group with an
// author-only one rather than narrowing it. That precedence mirrors
// the long-standing production behavior; change it only with product
// sign-off (see DESIGN.md).
func BuildPredicate(opts Options) Predicate {
	if opts.Query == "" {
		return Predicate{}
	}

	terms := []string{opts.Query}
	if opts.Fuzzy {
		terms = ExpandTerms(opts.Query)
	}

	var p Predicate
	for _, term := range terms {
		for _, field := range textMatchFields {
			p.Match = append(p.Match, Condition{Field: field, Op: OpContains, Value: term})
		}
	}

	if opts.AvailableOnline != nil {
		p.Filters = append(p.Filters, Condition{Field: FieldAvailableOnline, Op: OpEquals, Value: *opts.AvailableOnline})
	}
	if opts.CollectionLocation != "" {
		p.Filters = append(p.Filters, Condition{Field: FieldCollectionLocation, Op: OpContains, Value: opts.CollectionLocation})
	}

	if opts.Author != "" {
		p.Match = p.Match[:0]
		for _, field := range authorFields {
			p.Match = append(p.Match, Condition{Field: field, Op: OpContains, Value: opts.Author})
		}
	}

	return p
}
