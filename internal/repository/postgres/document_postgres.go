package postgres

import (
	"context"
	"database/sql"

	"flashgen/internal/model"
	"flashgen/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (filename, file_size, process_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, filename, file_size, upload_time, process_id, status
	`
	status := doc.Status
	if status == "" {
		status = model.StatusCompleted
	}
	row := r.db.QueryRowContext(ctx, q,
		doc.Filename,
		doc.FileSize,
		doc.ProcessID,
		status,
	)
	var out model.Document
	if err := row.Scan(
		&out.ID,
		&out.Filename,
		&out.FileSize,
		&out.UploadTime,
		&out.ProcessID,
		&out.Status,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByProcessID fetches a single document by its process identifier.
func (r *DocumentPostgres) FindByProcessID(ctx context.Context, processID string) (*model.Document, error) {
	const q = `
		SELECT id, filename, file_size, upload_time, process_id, status
		FROM documents
		WHERE process_id = $1
	`
	row := r.db.QueryRowContext(ctx, q, processID)
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Filename,
		&d.FileSize,
		&d.UploadTime,
		&d.ProcessID,
		&d.Status,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListWithCounts returns all documents with their flashcard counts, newest first.
func (r *DocumentPostgres) ListWithCounts(ctx context.Context) ([]model.DocumentWithCount, error) {
	const q = `
		SELECT d.id, d.filename, d.file_size, d.upload_time, d.process_id, d.status,
		       COUNT(f.id) AS flashcard_count
		FROM documents d
		LEFT JOIN flashcards f ON d.id = f.document_id
		GROUP BY d.id, d.filename, d.file_size, d.upload_time, d.process_id, d.status
		ORDER BY d.upload_time DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentWithCount, 0)
	for rows.Next() {
		var d model.DocumentWithCount
		if err := rows.Scan(
			&d.ID,
			&d.Filename,
			&d.FileSize,
			&d.UploadTime,
			&d.ProcessID,
			&d.Status,
			&d.FlashcardCount,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. Flashcards owned by it are removed by the
// cascade constraint. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// UpdateStatus sets the status of the document owning processID.
func (r *DocumentPostgres) UpdateStatus(ctx context.Context, processID, status string) error {
	const q = `UPDATE documents SET status = $1 WHERE process_id = $2`
	res, err := r.db.ExecContext(ctx, q, status, processID)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
