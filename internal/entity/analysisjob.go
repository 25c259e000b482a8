package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisJob records one pass of the ingestion pipeline over an uploaded
// image: OCR text, extracted fields and the failure message when a stage
// gives up.
type AnalysisJob struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	ResultID      *uuid.UUID `json:"result_id,omitempty"`
	Filename      string     `json:"filename"`
	Status        string     `json:"status"`
	OCRText       *string    `json:"ocr_text,omitempty"`
	ExtractedJSON []byte     `json:"extracted_json,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}
