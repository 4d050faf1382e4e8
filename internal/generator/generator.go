// Package generator abstracts the external model call that turns an uploaded
// document into raw flashcard text. Callers receive free text expected to
// contain a JSON array of {front, back} objects, but not guaranteed to;
// parsing that text is the parser package's problem.
package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrorCode classifies generation failures so callers never have to inspect
// message text.
type ErrorCode string

const (
	CodeRateLimited        ErrorCode = "rate_limited"
	CodeQuotaExceeded      ErrorCode = "quota_exceeded"
	CodeInvalidCredentials ErrorCode = "invalid_credentials"
	CodeDocumentTooLarge   ErrorCode = "document_too_large"
	CodeEmptyCompletion    ErrorCode = "empty_completion"
	CodeUnavailable        ErrorCode = "unavailable"
)

// Error is a classified generation failure. Classification happens inside
// the client implementation, at the boundary of the external call.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("generator: %s: %s", e.Code, e.Message)
}

// GenerateRequest carries the document handed to the external model.
type GenerateRequest struct {
	Filename  string
	MediaType string
	Data      []byte
}

// Generator is the external flashcard generation collaborator. A single
// configured client is shared read-only across requests; implementations must
// be safe for concurrent use. There is no internal retry: callers needing
// resilience against transient failures retry the whole request.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// mediaTypes maps supported upload extensions to the media type sent to the
// model API.
var mediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// MediaTypeFor derives the media classification from the filename extension.
func MediaTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mt, ok := mediaTypes[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}
