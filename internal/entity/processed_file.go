package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProcessedFile represents an ingested document for data transfer between
// layers.
type ProcessedFile struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	Layout       string    `json:"layout"`
	RecordsCount int       `json:"records_count"`
	SampleSize   *int      `json:"sample_size,omitempty"`
	ReviewStatus *string   `json:"review_status,omitempty"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// VerificationRecord represents one sampled row awaiting manual review.
type VerificationRecord struct {
	ID           uuid.UUID `json:"id"`
	RecordID     uuid.UUID `json:"record_id"`
	FileID       uuid.UUID `json:"file_id"`
	PageNumber   int       `json:"page_number"`
	ReviewStatus string    `json:"review_status"`
	Reviewer     *string   `json:"reviewer,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
