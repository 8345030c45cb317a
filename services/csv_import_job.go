package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"book-archive-api/config"
	"book-archive-api/models"

	"gorm.io/gorm"
)

const (
	// importBatchSize bounds memory and gives status readers
	// incremental progress.
	importBatchSize = 100
	// recordPreviewLen caps the raw-line preview stored with a
	// per-record error.
	recordPreviewLen = 100
)

// Fixed, externally documented column order of the source catalog
// export. Position is authoritative; header names are not validated.
const (
	colOriginalID = iota
	colTitleEnglish
	colTitleDevanagari
	colTitlePersoArabic
	colAuthorEnglish
	colAuthorDevanagari
	colAuthorPersoArabic
	colCollectionLocation
	colAddress
	colOtherDetails
	colImage
	colAvailableOnline
)

// BookStore is the persistence surface the import job needs for
// records.
type BookStore interface {
	UpsertByOriginalID(ctx context.Context, book *models.Book) error
}

// ImportRunStore persists run lifecycle and progress.
type ImportRunStore interface {
	Start(fileName string) (*models.ImportRun, error)
	UpdateProgress(runID uint, recordCount int, errs models.ImportErrorList) error
	MarkCompleted(runID uint, recordCount int, errs models.ImportErrorList) error
	MarkFailed(runID uint, errs models.ImportErrorList, runErr error) error
}

// CSVImportJob ingests a catalog CSV export: one run row per call,
// batch-wise progress persistence, per-record error tolerance, upsert
// keyed on original_id so re-imports update instead of duplicating.
type CSVImportJob struct {
	books BookStore
	runs  ImportRunStore

	// Notify, when set, receives a summary mail once a run completes.
	Notify []string
}

func NewCSVImportJob(db *gorm.DB) *CSVImportJob {
	if db == nil {
		db = config.DB
	}
	return &CSVImportJob{
		books: NewBookRepository(db),
		runs:  NewImportRunService(db),
	}
}

// Import runs the whole pipeline synchronously and returns the final
// run row. Malformed records are skipped or recorded and never abort
// the run; only a fault outside the per-record scope (run bookkeeping,
// typically persistence loss) marks the run failed and propagates.
func (j *CSVImportJob) Import(ctx context.Context, content, fileName string) (*models.ImportRun, error) {
	run, err := j.runs.Start(fileName)
	if err != nil {
		return nil, fmt.Errorf("create import run: %w", err)
	}

	lines := strings.Split(content, "\n")
	header := splitCSVLine(lines[0])

	records := make([]string, 0, len(lines))
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			records = append(records, line)
		}
	}

	processed := 0
	var errs models.ImportErrorList

	for start := 0; start < len(records); start += importBatchSize {
		end := start + importBatchSize
		if end > len(records) {
			end = len(records)
		}

		for _, record := range records[start:end] {
			fields := splitCSVLine(record)
			// Short rows are a known artifact of truncated exports;
			// skip them without recording an error.
			if len(fields) < len(header) {
				continue
			}

			book := buildBookRecord(fields)
			if err := j.books.UpsertByOriginalID(ctx, book); err != nil {
				errs = append(errs, models.ImportError{
					Record: recordPreview(record),
					Error:  err.Error(),
				})
				continue
			}
			processed++
		}

		if err := j.runs.UpdateProgress(run.ID, processed, errs); err != nil {
			return nil, j.fail(run, processed, errs, fmt.Errorf("persist import progress: %w", err))
		}
	}

	if err := j.runs.MarkCompleted(run.ID, processed, errs); err != nil {
		return nil, j.fail(run, processed, errs, fmt.Errorf("finalize import run: %w", err))
	}

	run.Status = models.ImportRunStatusCompleted
	run.RecordCount = processed
	run.Errors = errs

	j.notifyCompletion(run)

	return run, nil
}

// fail records a pipeline fault on the run (best effort) and returns
// the fault for propagation. Progress already persisted stays as the
// authoritative last-known state.
func (j *CSVImportJob) fail(run *models.ImportRun, processed int, errs models.ImportErrorList, runErr error) error {
	if err := j.runs.MarkFailed(run.ID, errs, runErr); err != nil {
		log.Printf("import run %d: failed to record failure: %v", run.ID, err)
	}
	run.Status = models.ImportRunStatusFailed
	run.RecordCount = processed
	return runErr
}

func (j *CSVImportJob) notifyCompletion(run *models.ImportRun) {
	if len(j.Notify) == 0 || !config.MailConfigured() {
		return
	}
	subject := fmt.Sprintf("Catalog import finished: %s", run.FileName)
	body := fmt.Sprintf(
		"<p>Import of <strong>%s</strong> completed.</p><p>Records processed: %d<br>Record errors: %d</p>",
		run.FileName, run.RecordCount, len(run.Errors),
	)
	if err := config.SendMail(j.Notify, subject, body); err != nil {
		log.Printf("import run %d: notification mail failed: %v", run.ID, err)
	}
}

// buildBookRecord maps one parsed CSV row onto a catalog record. The
// row is already known to have at least as many fields as the header.
func buildBookRecord(fields []string) *models.Book {
	originalID, err := strconv.Atoi(strings.TrimSpace(csvField(fields, colOriginalID)))
	if err != nil {
		originalID = 0
	}

	location := csvField(fields, colCollectionLocation)
	available := csvField(fields, colAvailableOnline) == "TRUE"

	image := csvField(fields, colImage)
	if image == "NaN" {
		image = ""
	}

	book := &models.Book{
		OriginalID:         originalID,
		TitleEnglish:       optionalField(csvField(fields, colTitleEnglish)),
		TitleDevanagari:    optionalField(csvField(fields, colTitleDevanagari)),
		TitlePersoArabic:   optionalField(csvField(fields, colTitlePersoArabic)),
		AuthorEnglish:      optionalField(csvField(fields, colAuthorEnglish)),
		AuthorDevanagari:   optionalField(csvField(fields, colAuthorDevanagari)),
		AuthorPersoArabic:  optionalField(csvField(fields, colAuthorPersoArabic)),
		CollectionLocation: optionalField(location),
		Address:            optionalField(csvField(fields, colAddress)),
		OtherDetails:       optionalField(csvField(fields, colOtherDetails)),
		ImageURL:           optionalField(image),
		AvailableOnline:    available,
	}

	// An online URL is only trusted when the record claims online
	// availability and the location actually looks like one.
	if available && (strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")) {
		book.OnlineURL = &location
	}

	book.ComputeSearchVector()
	return book
}

// splitCSVLine splits on commas outside double quotes and trims each
// field. A quote toggles literal-comma mode; doubled-quote escapes are
// not supported (known limitation of the source exports, matched here
// on purpose — encoding/csv would reject rows this splitter must
// tolerate).
func splitCSVLine(line string) []string {
	fields := make([]string, 0, 12)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// csvField returns the column value or "" when the row is shorter than
// the requested position.
func csvField(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

func optionalField(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func recordPreview(record string) string {
	runes := []rune(record)
	if len(runes) <= recordPreviewLen {
		return record
	}
	return string(runes[:recordPreviewLen])
}
