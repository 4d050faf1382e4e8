package repository

import (
	"context"

	"flashgen/internal/model"
)

// FlashcardRepository defines data access for flashcards.
type FlashcardRepository interface {
	// Create inserts a single flashcard owned by a document.
	Create(ctx context.Context, card *model.Flashcard) (*model.Flashcard, error)

	// ListByDocument returns all flashcards owned by a document in creation order.
	ListByDocument(ctx context.Context, documentID int64) ([]model.Flashcard, error)
}
