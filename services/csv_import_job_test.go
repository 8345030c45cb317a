package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"book-archive-api/models"
)

const csvHeader = "id,book_name_english,book_name_devanagari,book_name_perso_arabic,author_name_english,author_name_devanagari,author_name_perso_arabic,collection_location,address,other_details,image,available_online"

type fakeBookStore struct {
	upserts   []*models.Book
	byID      map[int]*models.Book
	failAfter int // fail every upsert once this many succeeded; 0 disables
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{byID: map[int]*models.Book{}}
}

func (s *fakeBookStore) UpsertByOriginalID(_ context.Context, book *models.Book) error {
	if s.failAfter > 0 && len(s.upserts) >= s.failAfter {
		return errors.New("duplicate entry")
	}
	s.upserts = append(s.upserts, book)
	s.byID[book.OriginalID] = book
	return nil
}

type fakeRunStore struct {
	run             models.ImportRun
	nextID          uint
	progressUpdates []int
	failProgressAt  int // fail the Nth UpdateProgress call (1-based); 0 disables
	progressCalls   int
}

func (s *fakeRunStore) Start(fileName string) (*models.ImportRun, error) {
	s.nextID++
	s.run = models.ImportRun{ID: s.nextID, FileName: fileName, Status: models.ImportRunStatusProcessing}
	return &s.run, nil
}

func (s *fakeRunStore) UpdateProgress(runID uint, recordCount int, errs models.ImportErrorList) error {
	s.progressCalls++
	if s.failProgressAt > 0 && s.progressCalls >= s.failProgressAt {
		return errors.New("database gone away")
	}
	s.run.RecordCount = recordCount
	s.run.Errors = errs
	s.progressUpdates = append(s.progressUpdates, recordCount)
	return nil
}

func (s *fakeRunStore) MarkCompleted(runID uint, recordCount int, errs models.ImportErrorList) error {
	s.run.Status = models.ImportRunStatusCompleted
	s.run.RecordCount = recordCount
	s.run.Errors = errs
	return nil
}

func (s *fakeRunStore) MarkFailed(runID uint, errs models.ImportErrorList, runErr error) error {
	s.run.Status = models.ImportRunStatusFailed
	s.run.Errors = append(errs, models.ImportError{Error: runErr.Error()})
	return nil
}

func newTestJob() (*CSVImportJob, *fakeBookStore, *fakeRunStore) {
	books := newFakeBookStore()
	runs := &fakeRunStore{}
	return &CSVImportJob{books: books, runs: runs}, books, runs
}

func TestImportSkipsShortRowsAndParsesFlags(t *testing.T) {
	content := strings.Join([]string{
		csvHeader,
		`1,Shah Jo Risalo,शाह जो रिसालो,شاه جو رسالو,Shah Abdul Latif,शाह अब्दुल लतीफ़,شاه عبداللطيف,https://archive.org/risalo,,Poetry collection,,TRUE`,
		`2,Truncated Row,only,a,few,columns`,
		`3,Sindhi Grammar,,,Mirza Qaleech Beg,,,British Museum,London,,NaN,yes`,
	}, "\n")

	job, books, runs := newTestJob()
	run, err := job.Import(context.Background(), content, "books.csv")
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	if run.Status != models.ImportRunStatusCompleted {
		t.Fatalf("run status = %q, want completed", run.Status)
	}
	if run.RecordCount != 2 {
		t.Fatalf("record count = %d, want 2 (short row skipped silently)", run.RecordCount)
	}
	if len(run.Errors) != 0 {
		t.Fatalf("unexpected record errors: %+v", run.Errors)
	}
	if len(books.upserts) != 2 {
		t.Fatalf("upserts = %d, want 2", len(books.upserts))
	}

	first := books.byID[1]
	if first == nil {
		t.Fatal("record 1 not upserted")
	}
	if !first.AvailableOnline {
		t.Fatal("record 1 should be available online")
	}
	if first.OnlineURL == nil || *first.OnlineURL != "https://archive.org/risalo" {
		t.Fatalf("record 1 online url = %v, want collection location", first.OnlineURL)
	}
	if first.Address != nil {
		t.Fatalf("empty address should stay nil, got %q", *first.Address)
	}
	wantVector := strings.ToLower("Shah Jo Risalo शाह जो रिसालो شاه جو رسالو Shah Abdul Latif शाह अब्दुल लतीफ़ شاه عبداللطيف https://archive.org/risalo Poetry collection")
	if first.SearchVector != wantVector {
		t.Fatalf("search vector = %q, want %q", first.SearchVector, wantVector)
	}

	third := books.byID[3]
	if third == nil {
		t.Fatal("record 3 not upserted")
	}
	// Availability is only the exact literal "TRUE".
	if third.AvailableOnline {
		t.Fatal(`availability flag "yes" must parse as false`)
	}
	if third.OnlineURL != nil {
		t.Fatal("offline record must not get an online url")
	}
	// "NaN" image placeholders are dropped.
	if third.ImageURL != nil {
		t.Fatalf("NaN image should stay nil, got %q", *third.ImageURL)
	}
	if runs.run.FileName != "books.csv" {
		t.Fatalf("run file name = %q", runs.run.FileName)
	}
}

func TestImportRecordsUpsertErrorsAndContinues(t *testing.T) {
	var lines []string
	lines = append(lines, csvHeader)
	for i := 1; i <= 3; i++ {
		lines = append(lines, fmt.Sprintf("%d,Title %d,,,,,,Somewhere,,,,FALSE", i, i))
	}

	job, books, _ := newTestJob()
	books.failAfter = 2

	run, err := job.Import(context.Background(), strings.Join(lines, "\n"), "books.csv")
	if err != nil {
		t.Fatalf("per-record failures must not abort the run: %v", err)
	}

	if run.Status != models.ImportRunStatusCompleted {
		t.Fatalf("run status = %q, want completed", run.Status)
	}
	if run.RecordCount != 2 {
		t.Fatalf("record count = %d, want 2", run.RecordCount)
	}
	if len(run.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly one", run.Errors)
	}
	if run.Errors[0].Error != "duplicate entry" {
		t.Fatalf("error message = %q", run.Errors[0].Error)
	}
	if !strings.HasPrefix(run.Errors[0].Record, "3,Title 3") {
		t.Fatalf("error preview = %q, want offending record prefix", run.Errors[0].Record)
	}
}

func TestImportIdempotentReimport(t *testing.T) {
	content := strings.Join([]string{
		csvHeader,
		`1,Shah Jo Risalo,,,Shah Abdul Latif,,,Karachi,,,,FALSE`,
		`2,Sindhi Grammar,,,Mirza Qaleech Beg,,,London,,,,FALSE`,
	}, "\n")

	job, books, _ := newTestJob()
	if _, err := job.Import(context.Background(), content, "books.csv"); err != nil {
		t.Fatalf("first import: %v", err)
	}
	run, err := job.Import(context.Background(), content, "books.csv")
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if run.RecordCount != 2 {
		t.Fatalf("second run count = %d, want 2", run.RecordCount)
	}
	// The upsert key keeps the store at two distinct records.
	if len(books.byID) != 2 {
		t.Fatalf("store holds %d distinct originals, want 2", len(books.byID))
	}
}

func TestImportBatchesProgress(t *testing.T) {
	var lines []string
	lines = append(lines, csvHeader)
	for i := 1; i <= importBatchSize+5; i++ {
		lines = append(lines, fmt.Sprintf("%d,Title %d,,,,,,Somewhere,,,,FALSE", i, i))
	}

	job, _, runs := newTestJob()
	if _, err := job.Import(context.Background(), strings.Join(lines, "\n"), "books.csv"); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	want := []int{importBatchSize, importBatchSize + 5}
	if !reflect.DeepEqual(runs.progressUpdates, want) {
		t.Fatalf("progress updates = %v, want %v", runs.progressUpdates, want)
	}
}

func TestImportPersistenceOutageFailsRunKeepsProgress(t *testing.T) {
	var lines []string
	lines = append(lines, csvHeader)
	for i := 1; i <= importBatchSize*2; i++ {
		lines = append(lines, fmt.Sprintf("%d,Title %d,,,,,,Somewhere,,,,FALSE", i, i))
	}

	job, _, runs := newTestJob()
	runs.failProgressAt = 2 // first batch lands, second batch update hits the outage

	_, err := job.Import(context.Background(), strings.Join(lines, "\n"), "books.csv")
	if err == nil {
		t.Fatal("pipeline fault must propagate to the caller")
	}

	if runs.run.Status != models.ImportRunStatusFailed {
		t.Fatalf("run status = %q, want failed", runs.run.Status)
	}
	// First batch progress is retained, not rolled back.
	if runs.run.RecordCount != importBatchSize {
		t.Fatalf("record count = %d, want %d", runs.run.RecordCount, importBatchSize)
	}
	if len(runs.run.Errors) == 0 || !strings.Contains(runs.run.Errors[len(runs.run.Errors)-1].Error, "database gone away") {
		t.Fatalf("pipeline fault not recorded on the run: %+v", runs.run.Errors)
	}
}

func TestSplitCSVLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"trims fields", " a , b ,c ", []string{"a", "b", "c"}},
		{"quoted comma is literal", `1,"Karachi, Sindh",x`, []string{"1", "Karachi, Sindh", "x"}},
		{"empty fields survive", "a,,c,", []string{"a", "", "c", ""}},
		{"unterminated quote swallows commas", `a,"b,c`, []string{"a", "b,c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitCSVLine(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("splitCSVLine(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildBookRecordNumericFallback(t *testing.T) {
	fields := splitCSVLine("not-a-number,Title,,,,,,Somewhere,,,,FALSE")
	book := buildBookRecord(fields)
	if book.OriginalID != 0 {
		t.Fatalf("original id = %d, want 0 fallback", book.OriginalID)
	}
}
