package model

import "time"

// Document lifecycle statuses. A record is created as StatusProcessing and
// moved to StatusCompleted or StatusFailed once the pipeline finishes.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Document is the durable record of a processed upload.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Document struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"file_size"`
	UploadTime time.Time `json:"upload_time"`
	ProcessID  string    `json:"process_id"`
	Status     string    `json:"status"`
}

// DocumentWithCount is a Document joined with the number of flashcards it owns.
type DocumentWithCount struct {
	Document
	FlashcardCount int `json:"flashcard_count"`
}
