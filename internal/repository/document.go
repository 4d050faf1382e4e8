// Package repository contains data access abstractions. Implementations live
// in subpackages (e.g. postgres) inside this directory.
package repository

import (
	"context"

	"flashgen/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here, strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record. The database assigns identity and
	// upload time; the returned document includes them.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByProcessID returns the document owning the given process identifier.
	FindByProcessID(ctx context.Context, processID string) (*model.Document, error)

	// ListWithCounts returns all documents, newest first, each with the number
	// of flashcards it owns.
	ListWithCounts(ctx context.Context) ([]model.DocumentWithCount, error)

	// Delete removes a document by ID. Owned flashcards are removed by the
	// ON DELETE CASCADE constraint. Returns nil if the row did not exist.
	Delete(ctx context.Context, id int64) error

	// UpdateStatus sets the status of the document owning processID.
	UpdateStatus(ctx context.Context, processID, status string) error
}
