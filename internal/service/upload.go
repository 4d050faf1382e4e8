// Package service holds the use cases: the upload processing pipeline and
// read/delete access to processed documents.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"flashgen/internal/generator"
	"flashgen/internal/model"
	"flashgen/internal/parser"
	"flashgen/internal/repository"
	"flashgen/internal/storage"
)

// Validation errors are client-caused and surface before any external call.
var (
	ErrEmptyFilename      = errors.New("no file selected")
	ErrInvalidFilename    = errors.New("invalid filename")
	ErrFileTypeNotAllowed = errors.New("file type not allowed, supported types: txt, pdf, doc, docx")
	ErrEmptyFile          = errors.New("file is empty")
	ErrFileTooLarge       = errors.New("file size exceeds the upload limit")

	// ErrNoFlashcards means even the diagnostic fallback produced nothing,
	// which the cascade is designed to make practically unreachable.
	ErrNoFlashcards = errors.New("no valid flashcards could be extracted from the document")

	// ErrStoreFlashcards means not a single parsed flashcard reached storage.
	ErrStoreFlashcards = errors.New("failed to store any flashcards")
)

// allowedExtensions is the fixed intake allow-list. Files with multiple
// extensions must have every trailing segment in this set or be the reserved
// "compressed" marker.
var allowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// UploadResult is the outcome of one fully processed upload.
type UploadResult struct {
	Message         string        `json:"message"`
	ProcessID       string        `json:"process_id"`
	DocumentID      int64         `json:"document_id"`
	FlashcardsCount int           `json:"flashcards_count"`
	Flashcards      []parser.Card `json:"flashcards"`
}

// UploadService runs the upload pipeline: intake validation, artifact
// staging, document recording, external generation, parsing, flashcard
// persistence, and cleanup.
type UploadService interface {
	// ProcessUpload handles one upload end to end. The transient artifact is
	// removed exactly once before ProcessUpload returns, on success and on
	// every failure path. The document record, once created, is never rolled
	// back; it ends in StatusCompleted or StatusFailed so a partially
	// processed upload stays auditable.
	ProcessUpload(ctx context.Context, r io.Reader, filename string, size int64) (*UploadResult, error)
}

type uploadService struct {
	store       storage.Storage
	gen         generator.Generator
	docs        repository.DocumentRepository
	cards       repository.FlashcardRepository
	maxFileSize int64
}

// NewUploadService constructs the upload pipeline with its collaborators.
func NewUploadService(
	store storage.Storage,
	gen generator.Generator,
	docs repository.DocumentRepository,
	cards repository.FlashcardRepository,
	maxFileSize int64,
) UploadService {
	return &uploadService{
		store:       store,
		gen:         gen,
		docs:        docs,
		cards:       cards,
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) ProcessUpload(ctx context.Context, r io.Reader, filename string, size int64) (*UploadResult, error) {
	// Intake validation: reject before any side effect.
	if strings.TrimSpace(filename) == "" {
		return nil, ErrEmptyFilename
	}
	if !allowedFile(filename) {
		return nil, ErrFileTypeNotAllowed
	}
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrFileTooLarge, size, s.maxFileSize)
	}
	safeName := secureFilename(filename)
	if safeName == "" {
		return nil, ErrInvalidFilename
	}

	processID := uuid.NewString()
	key := processID + "_" + safeName

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: generator.MediaTypeFor(safeName),
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return nil, fmt.Errorf("save uploaded file: %w", err)
	}

	// From here the artifact exists; remove it exactly once whatever happens.
	defer func() {
		if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			logJSON(map[string]any{
				"level":      "warn",
				"event":      "artifact_cleanup_failed",
				"process_id": processID,
				"key":        key,
				"error":      delErr.Error(),
			})
		}
	}()

	// Record the document before invoking the generator so every generation
	// attempt is traceable even if it fails.
	doc, err := s.docs.Create(ctx, &model.Document{
		Filename:  safeName,
		FileSize:  objInfo.Size,
		ProcessID: processID,
		Status:    model.StatusProcessing,
	})
	if err != nil {
		return nil, fmt.Errorf("create document record: %w", err)
	}

	data, err := s.readArtifact(ctx, key)
	if err != nil {
		s.setStatus(ctx, processID, model.StatusFailed)
		return nil, fmt.Errorf("read staged artifact: %w", err)
	}

	completion, err := s.gen.Generate(ctx, generator.GenerateRequest{
		Filename:  safeName,
		MediaType: generator.MediaTypeFor(safeName),
		Data:      data,
	})
	if err != nil {
		s.setStatus(ctx, processID, model.StatusFailed)
		return nil, err
	}

	cards := parser.Parse(completion, safeName)
	if len(cards) == 0 {
		s.setStatus(ctx, processID, model.StatusFailed)
		return nil, ErrNoFlashcards
	}

	stored := 0
	for i, card := range cards {
		if _, err := s.cards.Create(ctx, &model.Flashcard{
			DocumentID: doc.ID,
			Front:      card.Front,
			Back:       card.Back,
		}); err != nil {
			logJSON(map[string]any{
				"level":      "warn",
				"event":      "flashcard_store_failed",
				"process_id": processID,
				"index":      i,
				"error":      err.Error(),
			})
			continue
		}
		stored++
	}
	if stored == 0 {
		s.setStatus(ctx, processID, model.StatusFailed)
		return nil, ErrStoreFlashcards
	}

	s.setStatus(ctx, processID, model.StatusCompleted)

	logJSON(map[string]any{
		"event":      "upload_processed",
		"process_id": processID,
		"document":   doc.ID,
		"parsed":     len(cards),
		"stored":     stored,
	})

	return &UploadResult{
		Message:         fmt.Sprintf("Successfully processed %s and created %d flashcards", safeName, len(cards)),
		ProcessID:       processID,
		DocumentID:      doc.ID,
		FlashcardsCount: len(cards),
		Flashcards:      cards,
	}, nil
}

// setStatus moves the document to its terminal status. The transition is
// best effort: a failure is logged and never masks the pipeline outcome.
func (s *uploadService) setStatus(ctx context.Context, processID, status string) {
	if err := s.docs.UpdateStatus(context.WithoutCancel(ctx), processID, status); err != nil {
		logJSON(map[string]any{
			"level":      "warn",
			"event":      "status_update_failed",
			"process_id": processID,
			"status":     status,
			"error":      err.Error(),
		})
	}
}

func (s *uploadService) readArtifact(ctx context.Context, key string) ([]byte, error) {
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// IsValidationError reports whether err is a client-caused intake failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyFilename,
		ErrInvalidFilename,
		ErrFileTypeNotAllowed,
		ErrEmptyFile,
		ErrFileTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// allowedFile checks the filename extension against the allow-list. Every
// trailing segment of a multi-extension name must be allowed or be the
// reserved "compressed" marker.
func allowedFile(filename string) bool {
	lower := strings.ToLower(filename)
	if !strings.Contains(lower, ".") {
		return false
	}
	parts := strings.Split(lower, ".")
	if len(parts) > 2 {
		for _, part := range parts[1:] {
			if !allowedExtensions[part] && part != "compressed" {
				return false
			}
		}
	}
	return allowedExtensions[parts[len(parts)-1]]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// secureFilename strips path components and unsafe characters so the name is
// usable as part of a storage key. Returns "" when nothing usable remains.
func secureFilename(filename string) string {
	name := strings.ReplaceAll(filename, "\\", "/")
	name = path.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.Trim(name, "._")
	if name == "" || name == "/" {
		return ""
	}
	return name
}
