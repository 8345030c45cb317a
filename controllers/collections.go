package controllers

import (
	"net/http"

	"book-archive-api/config"
	"book-archive-api/models"

	"github.com/gin-gonic/gin"
)

// GetCollections lists holding institutions for the search filter
// dropdown, name ascending.
func GetCollections(c *gin.Context) {
	var collections []models.Collection
	if err := config.DB.Order("name ASC").Find(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}
