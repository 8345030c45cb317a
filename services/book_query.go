package services

import (
	"context"
	"fmt"
	"strings"

	"book-archive-api/config"
	"book-archive-api/models"
	"book-archive-api/search"

	"gorm.io/gorm"
)

// bookListColumns keeps search responses light: address, notes, the
// search vector and summaries stay out of result pages.
var bookListColumns = []string{
	"id", "original_id",
	"title_english", "title_devanagari", "title_perso_arabic",
	"author_english", "author_devanagari", "author_perso_arabic",
	"collection_location", "image_url", "available_online", "online_url",
	"created_at",
}

// BookQueryService is the persistence adapter for search predicates:
// it translates the neutral condition tree into SQL and owns the fixed
// result ordering (online first, newest first).
type BookQueryService struct {
	db *gorm.DB
}

func NewBookQueryService(db *gorm.DB) *BookQueryService {
	if db == nil {
		db = config.DB
	}
	return &BookQueryService{db: db}
}

// Search runs the predicate and returns one result page plus the total
// match count. page is 1-based; limit must already be capped by the
// caller.
func (s *BookQueryService) Search(ctx context.Context, p search.Predicate, page, limit int) ([]models.Book, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	base := applyPredicate(s.db.WithContext(ctx).Model(&models.Book{}), p)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []models.Book
	err := base.Select(bookListColumns).
		Order("available_online DESC").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func applyPredicate(tx *gorm.DB, p search.Predicate) *gorm.DB {
	if sql, args := orGroupClause(p.Match); sql != "" {
		tx = tx.Where(sql, args...)
	}
	for _, cond := range p.Filters {
		sql, arg := conditionClause(cond)
		tx = tx.Where(sql, arg)
	}
	return tx
}

// conditionClause renders one predicate condition as a SQL fragment
// with a single placeholder argument.
func conditionClause(c search.Condition) (string, interface{}) {
	switch c.Op {
	case search.OpContains:
		return fmt.Sprintf("LOWER(%s) LIKE ?", c.Field), "%" + strings.ToLower(fmt.Sprint(c.Value)) + "%"
	default:
		return fmt.Sprintf("%s = ?", c.Field), c.Value
	}
}

// orGroupClause renders the match group as a parenthesized OR chain.
// Empty groups render as the empty string (match everything).
func orGroupClause(conds []search.Condition) (string, []interface{}) {
	if len(conds) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(conds))
	args := make([]interface{}, 0, len(conds))
	for _, cond := range conds {
		sql, arg := conditionClause(cond)
		parts = append(parts, sql)
		args = append(args, arg)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
