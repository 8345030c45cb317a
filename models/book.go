package models

import (
	"strings"
	"time"
)

// Book is one catalog entry. Titles and authors are stored in three
// parallel script variants (Latin transliteration, Devanagari,
// Perso-Arabic); OriginalID is the stable identifier from the source
// catalog and the upsert key for imports.
type Book struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OriginalID int  `gorm:"column:original_id;uniqueIndex;not null" json:"original_id"`

	TitleEnglish     *string `gorm:"column:title_english;type:varchar(512)" json:"title_english,omitempty"`
	TitleDevanagari  *string `gorm:"column:title_devanagari;type:varchar(512)" json:"title_devanagari,omitempty"`
	TitlePersoArabic *string `gorm:"column:title_perso_arabic;type:varchar(512)" json:"title_perso_arabic,omitempty"`

	AuthorEnglish     *string `gorm:"column:author_english;type:varchar(512)" json:"author_english,omitempty"`
	AuthorDevanagari  *string `gorm:"column:author_devanagari;type:varchar(512)" json:"author_devanagari,omitempty"`
	AuthorPersoArabic *string `gorm:"column:author_perso_arabic;type:varchar(512)" json:"author_perso_arabic,omitempty"`

	CollectionLocation *string `gorm:"column:collection_location;type:varchar(1024)" json:"collection_location,omitempty"`
	Address            *string `gorm:"column:address;type:varchar(1024)" json:"address,omitempty"`
	OtherDetails       *string `gorm:"column:other_details;type:text" json:"other_details,omitempty"`
	ImageURL           *string `gorm:"column:image_url;type:varchar(1024)" json:"image_url,omitempty"`

	AvailableOnline bool    `gorm:"column:available_online;not null;default:false" json:"available_online"`
	OnlineURL       *string `gorm:"column:online_url;type:varchar(1024)" json:"online_url,omitempty"`

	Summary      *string `gorm:"column:summary;type:text" json:"summary,omitempty"`
	SearchVector string  `gorm:"column:search_vector;type:text" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// ComputeSearchVector rebuilds the denormalized search text: all
// script variants plus collection location and notes, lowercased and
// space-joined with empty fields skipped. Must be called whenever any
// of those fields change.
func (b *Book) ComputeSearchVector() {
	parts := make([]string, 0, 8)
	for _, f := range []*string{
		b.TitleEnglish, b.TitleDevanagari, b.TitlePersoArabic,
		b.AuthorEnglish, b.AuthorDevanagari, b.AuthorPersoArabic,
		b.CollectionLocation, b.OtherDetails,
	} {
		if f != nil && *f != "" {
			parts = append(parts, *f)
		}
	}
	b.SearchVector = strings.ToLower(strings.Join(parts, " "))
}
