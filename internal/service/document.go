package service

import (
	"context"
	"database/sql"
	"errors"

	"flashgen/internal/model"
	"flashgen/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("document not found")
)

// FlashcardSetResult groups the flashcards generated for one upload.
type FlashcardSetResult struct {
	ProcessID  string            `json:"process_id"`
	Flashcards []model.Flashcard `json:"flashcards"`
}

// DocumentService defines read and delete use cases over processed documents.
type DocumentService interface {
	// FlashcardsByProcessID returns the flashcards generated for the upload
	// identified by processID.
	FlashcardsByProcessID(ctx context.Context, processID string) (*FlashcardSetResult, error)

	// List returns all documents with their flashcard counts, newest first.
	List(ctx context.Context) ([]model.DocumentWithCount, error)

	// Delete removes a document; its flashcards go with it.
	Delete(ctx context.Context, id int64) error
}

type documentService struct {
	docs  repository.DocumentRepository
	cards repository.FlashcardRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(docs repository.DocumentRepository, cards repository.FlashcardRepository) DocumentService {
	return &documentService{docs: docs, cards: cards}
}

func (s *documentService) FlashcardsByProcessID(ctx context.Context, processID string) (*FlashcardSetResult, error) {
	if processID == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByProcessID(ctx, processID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cards, err := s.cards.ListByDocument(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	return &FlashcardSetResult{ProcessID: processID, Flashcards: cards}, nil
}

func (s *documentService) List(ctx context.Context) ([]model.DocumentWithCount, error) {
	return s.docs.ListWithCounts(ctx)
}

func (s *documentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	return s.docs.Delete(ctx, id)
}
