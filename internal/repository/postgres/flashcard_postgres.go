package postgres

import (
	"context"
	"database/sql"

	"flashgen/internal/model"
	"flashgen/internal/repository"
)

// FlashcardPostgres is a PostgreSQL implementation of repository.FlashcardRepository.
type FlashcardPostgres struct {
	db *sql.DB
}

// NewFlashcardPostgres creates a new FlashcardPostgres repository.
func NewFlashcardPostgres(db *sql.DB) *FlashcardPostgres {
	return &FlashcardPostgres{db: db}
}

var _ repository.FlashcardRepository = (*FlashcardPostgres)(nil)

// Create inserts a new flashcard row and returns the stored record.
func (r *FlashcardPostgres) Create(ctx context.Context, card *model.Flashcard) (*model.Flashcard, error) {
	const q = `
		INSERT INTO flashcards (document_id, front, back)
		VALUES ($1, $2, $3)
		RETURNING id, document_id, front, back, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		card.DocumentID,
		card.Front,
		card.Back,
	)
	var out model.Flashcard
	if err := row.Scan(
		&out.ID,
		&out.DocumentID,
		&out.Front,
		&out.Back,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByDocument returns all flashcards owned by a document in creation order.
func (r *FlashcardPostgres) ListByDocument(ctx context.Context, documentID int64) ([]model.Flashcard, error) {
	const q = `
		SELECT id, document_id, front, back, created_at
		FROM flashcards
		WHERE document_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Flashcard, 0)
	for rows.Next() {
		var f model.Flashcard
		if err := rows.Scan(
			&f.ID,
			&f.DocumentID,
			&f.Front,
			&f.Back,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
