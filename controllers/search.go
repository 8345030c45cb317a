package controllers

import (
	"net/http"
	"strconv"

	"book-archive-api/config"
	"book-archive-api/models"
	"book-archive-api/search"
	"book-archive-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultSearchLimit = 20
	// maxSearchLimit caps page size; fuzzy expansion multiplies query
	// cost, so unbounded pages would hurt.
	maxSearchLimit = 100
)

// SearchBooks serves the public catalog search. Without a query it
// browses the full catalog, online books first, newest first.
func SearchBooks(c *gin.Context) {
	opts := search.Options{
		Query:              c.Query("q"),
		Script:             c.DefaultQuery("script", "all"),
		CollectionLocation: c.Query("location"),
		Author:             c.Query("author"),
		Fuzzy:              c.Query("fuzzy") == "true",
	}
	if online := c.Query("online"); online != "" {
		v := online == "true"
		opts.AvailableOnline = &v
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	predicate := search.BuildPredicate(opts)

	books, total, err := services.NewBookQueryService(nil).Search(c.Request.Context(), predicate, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	offset := (page - 1) * limit
	c.JSON(http.StatusOK, gin.H{
		"books":   books,
		"total":   total,
		"page":    page,
		"limit":   limit,
		"hasMore": int64(offset+len(books)) < total,
		"fuzzy":   opts.Fuzzy,
	})
}

// GetBook returns one catalog entry with all of its fields.
func GetBook(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"book": book})
}
