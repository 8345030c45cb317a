package services

import (
	"reflect"
	"strings"
	"testing"

	"book-archive-api/search"
)

func TestConditionClause(t *testing.T) {
	sql, arg := conditionClause(search.Condition{
		Field: search.FieldTitleEnglish,
		Op:    search.OpContains,
		Value: "Risalo",
	})
	if sql != "LOWER(title_english) LIKE ?" {
		t.Fatalf("contains sql = %q", sql)
	}
	if arg != "%risalo%" {
		t.Fatalf("contains arg = %v, want lowercased pattern", arg)
	}

	sql, arg = conditionClause(search.Condition{
		Field: search.FieldAvailableOnline,
		Op:    search.OpEquals,
		Value: true,
	})
	if sql != "available_online = ?" {
		t.Fatalf("equals sql = %q", sql)
	}
	if arg != true {
		t.Fatalf("equals arg = %v", arg)
	}
}

func TestOrGroupClause(t *testing.T) {
	sql, args := orGroupClause(nil)
	if sql != "" || args != nil {
		t.Fatalf("empty group should render empty, got %q %v", sql, args)
	}

	sql, args = orGroupClause([]search.Condition{
		{Field: search.FieldAuthorEnglish, Op: search.OpContains, Value: "Latif"},
		{Field: search.FieldAuthorDevanagari, Op: search.OpContains, Value: "Latif"},
	})
	want := "(LOWER(author_english) LIKE ? OR LOWER(author_devanagari) LIKE ?)"
	if sql != want {
		t.Fatalf("or group sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"%latif%", "%latif%"}) {
		t.Fatalf("or group args = %v", args)
	}
}

func TestOrGroupClauseCoversAllSearchFields(t *testing.T) {
	p := search.BuildPredicate(search.Options{Query: "risalo"})
	sql, args := orGroupClause(p.Match)
	if len(args) != len(p.Match) {
		t.Fatalf("args = %d, want %d", len(args), len(p.Match))
	}
	for _, field := range []string{"title_english", "title_devanagari", "title_perso_arabic", "search_vector"} {
		if !strings.Contains(sql, "LOWER("+field+") LIKE ?") {
			t.Fatalf("rendered group misses %s: %s", field, sql)
		}
	}
}
