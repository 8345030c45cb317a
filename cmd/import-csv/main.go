// Command import-csv ingests a catalog CSV export from disk, outside
// the API server. Useful for the initial bulk load.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"book-archive-api/config"
	"book-archive-api/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	var (
		filePath string
		notify   string
	)

	flag.StringVar(&filePath, "file", "", "path to the catalog CSV export (required)")
	flag.StringVar(&notify, "notify", "", "comma-separated email addresses to notify on completion (optional)")
	flag.Parse()

	if filePath == "" {
		log.Fatal("-file is required")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("failed to read %s: %v", filePath, err)
	}

	job := services.NewCSVImportJob(nil)
	if strings.TrimSpace(notify) != "" {
		job.Notify = strings.Split(notify, ",")
	}

	run, err := job.Import(context.Background(), string(content), filepath.Base(filePath))
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("import run %d %s: %d records processed, %d record errors\n",
		run.ID, run.Status, run.RecordCount, len(run.Errors))
	for _, recordErr := range run.Errors {
		fmt.Printf("  %s: %s\n", recordErr.Record, recordErr.Error)
	}
}
