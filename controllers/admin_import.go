package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"book-archive-api/services"
	"book-archive-api/utils"

	"github.com/gin-gonic/gin"
)

const maxImportFileSize = 20 * 1024 * 1024

// AdminImportCSV ingests a catalog CSV export. The upload is kept on
// disk under a collision-free name for auditing, then the import runs
// synchronously; the response is the finished (or failed-partway) run.
func AdminImportCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a CSV"})
		return
	}
	if header.Size > maxImportFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 20MB import limit"})
		return
	}

	uploadDir := filepath.Join("uploads", "import_runs")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	safeName := utils.GenerateUniqueFilename(uploadDir, header.Filename)
	dstPath := filepath.Join(uploadDir, safeName)
	if err := c.SaveUploadedFile(header, dstPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store import file"})
		return
	}

	content, err := os.ReadFile(dstPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read import file"})
		return
	}

	job := services.NewCSVImportJob(nil)
	if notify := os.Getenv("IMPORT_NOTIFY_EMAIL"); notify != "" {
		job.Notify = strings.Split(notify, ",")
	}

	run, err := job.Import(c.Request.Context(), string(content), header.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import data"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetImportRun reports run progress; safe to poll while an import is
// still processing.
func GetImportRun(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid import run ID"})
		return
	}

	run, err := services.NewImportRunService(nil).Get(uint(id))
	if err != nil {
		if err == services.ErrImportRunNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Import run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import run"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// ListImportRuns returns the audit trail, newest first.
func ListImportRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	runs, err := services.NewImportRunService(nil).List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
