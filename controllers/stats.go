package controllers

import (
	"net/http"

	"book-archive-api/config"
	"book-archive-api/models"

	"github.com/gin-gonic/gin"
)

// GetStats returns the public archive counters shown on the landing
// page.
func GetStats(c *gin.Context) {
	var totalBooks, onlineBooks, collections, totalUsers int64

	if err := config.DB.Model(&models.Book{}).Count(&totalBooks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	if err := config.DB.Model(&models.Book{}).Where("available_online = ?", true).Count(&onlineBooks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	if err := config.DB.Model(&models.Collection{}).Count(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBooks":  totalBooks,
		"onlineBooks": onlineBooks,
		"collections": collections,
		"totalUsers":  totalUsers,
	})
}
