package controllers

import (
	"net/http"
	"strconv"

	"book-archive-api/config"
	"book-archive-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookInput is the admin create/update payload. OriginalID keeps the
// record addressable by future imports.
type BookInput struct {
	OriginalID         int     `json:"original_id" binding:"required"`
	TitleEnglish       *string `json:"title_english"`
	TitleDevanagari    *string `json:"title_devanagari"`
	TitlePersoArabic   *string `json:"title_perso_arabic"`
	AuthorEnglish      *string `json:"author_english"`
	AuthorDevanagari   *string `json:"author_devanagari"`
	AuthorPersoArabic  *string `json:"author_perso_arabic"`
	CollectionLocation *string `json:"collection_location"`
	Address            *string `json:"address"`
	OtherDetails       *string `json:"other_details"`
	ImageURL           *string `json:"image_url"`
	AvailableOnline    bool    `json:"available_online"`
	OnlineURL          *string `json:"online_url"`
	Summary            *string `json:"summary"`
}

func (in *BookInput) apply(book *models.Book) {
	book.OriginalID = in.OriginalID
	book.TitleEnglish = in.TitleEnglish
	book.TitleDevanagari = in.TitleDevanagari
	book.TitlePersoArabic = in.TitlePersoArabic
	book.AuthorEnglish = in.AuthorEnglish
	book.AuthorDevanagari = in.AuthorDevanagari
	book.AuthorPersoArabic = in.AuthorPersoArabic
	book.CollectionLocation = in.CollectionLocation
	book.Address = in.Address
	book.OtherDetails = in.OtherDetails
	book.ImageURL = in.ImageURL
	book.AvailableOnline = in.AvailableOnline
	book.OnlineURL = in.OnlineURL
	book.Summary = in.Summary
	// Keep the denormalized search text in sync with the edit.
	book.ComputeSearchVector()
}

// AdminListBooks pages through the catalog for the admin table,
// newest first, with every column included.
func AdminListBooks(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	var total int64
	if err := config.DB.Model(&models.Book{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
		return
	}

	var books []models.Book
	if err := config.DB.Order("created_at DESC").Offset(offset).Limit(limit).Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books":   books,
		"total":   total,
		"page":    page,
		"limit":   limit,
		"hasMore": int64(offset+len(books)) < total,
	})
}

func AdminCreateBook(c *gin.Context) {
	var input BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Book
	if err := config.DB.Where("original_id = ?", input.OriginalID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A book with this original ID already exists"})
		return
	}

	var book models.Book
	input.apply(&book)

	if err := config.DB.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"book": book})
}

func AdminUpdateBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var input BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var book models.Book
	if err := config.DB.First(&book, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch book"})
		return
	}

	input.apply(&book)

	if err := config.DB.Save(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book})
}

func AdminDeleteBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var book models.Book
	if err := config.DB.First(&book, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch book"})
		return
	}

	if err := config.DB.Delete(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Book deleted successfully"})
}
