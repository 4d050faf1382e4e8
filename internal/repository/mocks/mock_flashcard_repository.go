package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flashgen/internal/model"
)

type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Create(ctx context.Context, card *model.Flashcard) (*model.Flashcard, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListByDocument(ctx context.Context, documentID int64) ([]model.Flashcard, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Flashcard), args.Error(1)
}
