package services

import (
	"errors"
	"time"

	"book-archive-api/config"
	"book-archive-api/models"

	"gorm.io/gorm"
)

var ErrImportRunNotFound = errors.New("import run not found")

type ImportRunService struct {
	db *gorm.DB
}

func NewImportRunService(db *gorm.DB) *ImportRunService {
	if db == nil {
		db = config.DB
	}
	return &ImportRunService{db: db}
}

// Start creates the audit row for a new ingestion attempt. The run is
// created directly in processing state; pending exists only as the
// implicit pre-creation state.
func (s *ImportRunService) Start(fileName string) (*models.ImportRun, error) {
	run := &models.ImportRun{
		FileName: fileName,
		Status:   models.ImportRunStatusProcessing,
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

// UpdateProgress persists the running processed count and error list
// after a batch so concurrent status reads see partial progress.
func (s *ImportRunService) UpdateProgress(runID uint, recordCount int, errs models.ImportErrorList) error {
	return s.db.Model(&models.ImportRun{}).Where("id = ?", runID).
		Updates(map[string]interface{}{
			"record_count": recordCount,
			"errors":       errs,
		}).Error
}

func (s *ImportRunService) MarkCompleted(runID uint, recordCount int, errs models.ImportErrorList) error {
	return s.db.Model(&models.ImportRun{}).Where("id = ?", runID).
		Updates(map[string]interface{}{
			"status":       models.ImportRunStatusCompleted,
			"record_count": recordCount,
			"errors":       errs,
			"completed_at": time.Now(),
		}).Error
}

// MarkFailed records a pipeline-level fault. Per-record errors already
// gathered are kept and the fault appended, so the run row still shows
// how far the import got.
func (s *ImportRunService) MarkFailed(runID uint, errs models.ImportErrorList, runErr error) error {
	msg := "unknown error"
	if runErr != nil {
		msg = runErr.Error()
	}
	return s.db.Model(&models.ImportRun{}).Where("id = ?", runID).
		Updates(map[string]interface{}{
			"status":       models.ImportRunStatusFailed,
			"errors":       append(errs, models.ImportError{Error: msg}),
			"completed_at": time.Now(),
		}).Error
}

func (s *ImportRunService) Get(runID uint) (*models.ImportRun, error) {
	var run models.ImportRun
	if err := s.db.First(&run, runID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImportRunNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (s *ImportRunService) List(limit int) ([]models.ImportRun, error) {
	if limit < 1 {
		limit = 50
	}
	var runs []models.ImportRun
	err := s.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
