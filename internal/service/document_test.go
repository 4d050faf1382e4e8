package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flashgen/internal/model"
	repoMocks "flashgen/internal/repository/mocks"
)

func TestFlashcardsByProcessID(t *testing.T) {
	ctx := context.Background()
	processID := "3e9c4f1a-8f6a-4c1e-9a6d-2b4d8f0a1c2e"

	t.Run("success", func(t *testing.T) {
		mDocs := new(repoMocks.MockDocumentRepository)
		mCards := new(repoMocks.MockFlashcardRepository)
		svc := NewDocumentService(mDocs, mCards)

		mDocs.On("FindByProcessID", mock.Anything, processID).
			Return(&model.Document{ID: 9, ProcessID: processID}, nil).Once()
		mCards.On("ListByDocument", mock.Anything, int64(9)).
			Return([]model.Flashcard{
				{ID: 1, DocumentID: 9, Front: "What is a goroutine?", Back: "A lightweight thread managed by the Go runtime"},
				{ID: 2, DocumentID: 9, Front: "What does defer do?", Back: "Schedules a call to run when the function returns"},
			}, nil).Once()

		res, err := svc.FlashcardsByProcessID(ctx, processID)

		require.NoError(t, err)
		assert.Equal(t, processID, res.ProcessID)
		assert.Len(t, res.Flashcards, 2)
		mDocs.AssertExpectations(t)
		mCards.AssertExpectations(t)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewDocumentService(new(repoMocks.MockDocumentRepository), new(repoMocks.MockFlashcardRepository))

		res, err := svc.FlashcardsByProcessID(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, res)
	})

	t.Run("unknown id", func(t *testing.T) {
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mDocs, new(repoMocks.MockFlashcardRepository))

		mDocs.On("FindByProcessID", mock.Anything, processID).
			Return(nil, sql.ErrNoRows).Once()

		res, err := svc.FlashcardsByProcessID(ctx, processID)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, res)
		mDocs.AssertExpectations(t)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mDocs, new(repoMocks.MockFlashcardRepository))

		mDocs.On("FindByProcessID", mock.Anything, processID).
			Return(nil, errors.New("connection reset")).Once()

		res, err := svc.FlashcardsByProcessID(ctx, processID)

		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, res)
	})
}

func TestListDocuments(t *testing.T) {
	ctx := context.Background()
	mDocs := new(repoMocks.MockDocumentRepository)
	svc := NewDocumentService(mDocs, new(repoMocks.MockFlashcardRepository))

	now := time.Now()
	mDocs.On("ListWithCounts", mock.Anything).Return([]model.DocumentWithCount{
		{Document: model.Document{ID: 2, Filename: "b.pdf", UploadTime: now}, FlashcardCount: 5},
		{Document: model.Document{ID: 1, Filename: "a.txt", UploadTime: now.Add(-time.Hour)}, FlashcardCount: 0},
	}, nil).Once()

	docs, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 5, docs[0].FlashcardCount)
	mDocs.AssertExpectations(t)
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mDocs, new(repoMocks.MockFlashcardRepository))

		mDocs.On("Delete", mock.Anything, int64(4)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, 4))
		mDocs.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := NewDocumentService(new(repoMocks.MockDocumentRepository), new(repoMocks.MockFlashcardRepository))

		assert.ErrorIs(t, svc.Delete(ctx, 0), ErrIDRequired)
		assert.ErrorIs(t, svc.Delete(ctx, -3), ErrIDRequired)
	})
}
