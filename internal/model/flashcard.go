package model

import "time"

// Flashcard is one extracted learning unit. Flashcards are exclusively owned
// by a single document and are cascade-deleted with it.
type Flashcard struct {
	ID         int64     `json:"id"`
	DocumentID int64     `json:"document_id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	CreatedAt  time.Time `json:"created_at"`
}
