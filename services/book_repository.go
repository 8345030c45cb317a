package services

import (
	"context"
	"errors"

	"book-archive-api/config"
	"book-archive-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	if db == nil {
		db = config.DB
	}
	return &BookRepository{db: db}
}

// bookUpsertColumns are overwritten on conflict. Imports carry full
// replace semantics: every data column is taken from the incoming
// record, including ones it leaves empty.
var bookUpsertColumns = []string{
	"title_english", "title_devanagari", "title_perso_arabic",
	"author_english", "author_devanagari", "author_perso_arabic",
	"collection_location", "address", "other_details", "image_url",
	"available_online", "online_url", "summary", "search_vector",
	"updated_at",
}

// UpsertByOriginalID inserts the book or, when a row with the same
// original_id exists, replaces all of its data columns.
func (r *BookRepository) UpsertByOriginalID(ctx context.Context, book *models.Book) error {
	if book == nil {
		return errors.New("book is nil")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "original_id"}},
		DoUpdates: clause.AssignmentColumns(bookUpsertColumns),
	}).Create(book).Error
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// DistinctCollectionLocations returns every non-empty collection
// location currently referenced by a book.
func (r *BookRepository) DistinctCollectionLocations(ctx context.Context) ([]string, error) {
	var locations []string
	err := r.db.WithContext(ctx).Model(&models.Book{}).
		Where("collection_location IS NOT NULL AND collection_location <> ''").
		Distinct().
		Pluck("collection_location", &locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
