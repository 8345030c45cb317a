package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	ImportRunStatusPending    = "pending"
	ImportRunStatusProcessing = "processing"
	ImportRunStatusCompleted  = "completed"
	ImportRunStatusFailed     = "failed"
)

// ImportError describes one record that failed during an import run.
// Record holds a truncated preview of the offending CSV line.
type ImportError struct {
	Record string `json:"record,omitempty"`
	Error  string `json:"error"`
}

// ImportErrorList is stored as a JSON text column on the run row.
type ImportErrorList []ImportError

func (l ImportErrorList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *ImportErrorList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for ImportErrorList: %T", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// ImportRun is the audit row for one CSV ingestion attempt. Status
// only moves forward (pending -> processing -> completed|failed) and
// RecordCount grows as batches finish, so a concurrent status read
// reflects partial progress. Runs are never deleted by the pipeline.
type ImportRun struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FileName    string          `gorm:"column:file_name;type:varchar(512);not null" json:"file_name"`
	Status      string          `gorm:"column:status;type:enum('pending','processing','completed','failed');not null;default:'pending'" json:"status"`
	RecordCount int             `gorm:"column:record_count;not null;default:0" json:"record_count"`
	Errors      ImportErrorList `gorm:"column:errors;type:text" json:"errors,omitempty"`

	StartedAt   time.Time  `gorm:"column:started_at;autoCreateTime" json:"started_at"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ImportRun) TableName() string {
	return "import_runs"
}
