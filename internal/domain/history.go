package domain

import (
	"time"

	"github.com/google/uuid"
)

// FetchStatus represents the state of a recorded download
type FetchStatus string

const (
	StatusProcessing FetchStatus = "processing"
	StatusCompleted  FetchStatus = "completed"
	StatusFailed     FetchStatus = "failed"
)

// FetchRecord is the persisted history row for one download request.
// Downloaded content itself is never persisted; only the bookkeeping is.
type FetchRecord struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	URL          string      `json:"url" gorm:"not null"`
	Kind         MediaKind   `json:"kind" gorm:"not null;index"`
	Status       FetchStatus `json:"status" gorm:"not null;index"`
	FileName     string      `json:"file_name,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// NewFetchRecord creates a history record for a download that is starting
func NewFetchRecord(url string, kind MediaKind) *FetchRecord {
	now := time.Now()
	return &FetchRecord{
		ID:        uuid.New().String(),
		URL:       url,
		Kind:      kind,
		Status:    StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkCompleted marks the record as completed with the produced file name
func (r *FetchRecord) MarkCompleted(fileName string) {
	r.Status = StatusCompleted
	r.FileName = fileName
	now := time.Now()
	r.CompletedAt = &now
	r.UpdatedAt = now
}

// MarkFailed marks the record as failed
func (r *FetchRecord) MarkFailed(err error) {
	r.Status = StatusFailed
	r.ErrorMessage = err.Error()
	r.UpdatedAt = time.Now()
}

// HistoryRepository defines the interface for download-history persistence
type HistoryRepository interface {
	// Create creates a new record
	Create(record *FetchRecord) error

	// Update updates an existing record
	Update(record *FetchRecord) error

	// FindByID finds a record by ID
	FindByID(id string) (*FetchRecord, error)

	// FindRecent returns the most recent records, newest first
	FindRecent(limit int) ([]*FetchRecord, error)

	// FindByStatus finds records by status
	FindByStatus(status FetchStatus) ([]*FetchRecord, error)

	// GetStats returns history statistics
	GetStats() (*HistoryStats, error)
}

// HistoryStats represents download-history statistics
type HistoryStats struct {
	Total      int64 `json:"total"`
	Processing int64 `json:"processing"`
	Completed  int64 `json:"completed"`
	Failed     int64 `json:"failed"`
}
