package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flashgen/internal/model"
	"flashgen/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) FlashcardsByProcessID(ctx context.Context, processID string) (*service.FlashcardSetResult, error) {
	args := m.Called(ctx, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FlashcardSetResult), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context) ([]model.DocumentWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentWithCount), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
