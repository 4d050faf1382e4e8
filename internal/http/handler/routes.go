package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"flashgen/internal/generator"
	"flashgen/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal: parameter parsing and status mapping only.
func RegisterRoutes(app *fiber.App, db *sql.DB, uploadSvc service.UploadService, docSvc service.DocumentService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/upload", UploadFile(uploadSvc))
	app.Get("/flashcards/:processId", GetFlashcards(docSvc))
	app.Get("/documents", ListDocuments(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))
}

// HealthCheck returns a handler that reports readiness after a DB ping.
//
//	@Summary      Health check
//	@Description  Pings the database and reports service readiness.
//	@Tags         health
//	@Produce      json
//	@Success      200  {object}  map[string]string
//	@Failure      503  {object}  errorPayload
//	@Router       /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// LivenessProbe returns a handler for the plain liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// UploadFile returns the handler for multipart document uploads
// (field name: file). The full pipeline runs synchronously; the response
// carries the generated flashcards.
//
//	@Summary      Upload a document and generate flashcards
//	@Description  Accepts a txt, pdf, doc or docx file and returns generated flashcards.
//	@Tags         flashcards
//	@Accept       multipart/form-data
//	@Produce      json
//	@Param        file  formData  file  true  "document to process"
//	@Success      200  {object}  service.UploadResult
//	@Failure      400  {object}  errorPayload
//	@Failure      500  {object}  errorPayload
//	@Router       /upload [post]
func UploadFile(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.ProcessUpload(c.UserContext(), f, fh.Filename, fh.Size)
		if err != nil {
			return writeUploadError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(res)
	}
}

// writeUploadError maps pipeline failures to HTTP statuses. Validation
// failures are the client's fault; classified generator failures keep their
// user-facing message; everything else is an opaque 500.
func writeUploadError(c *fiber.Ctx, err error) error {
	if service.IsValidationError(err) {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	var genErr *generator.Error
	if errors.As(err, &genErr) {
		status := fiber.StatusInternalServerError
		switch genErr.Code {
		case generator.CodeRateLimited:
			status = fiber.StatusTooManyRequests
		case generator.CodeUnavailable:
			status = fiber.StatusServiceUnavailable
		}
		return writeError(c, status, strings.ToUpper(string(genErr.Code)), genErr.Message)
	}

	if errors.Is(err, service.ErrNoFlashcards) {
		return writeError(c, fiber.StatusBadRequest, "NO_FLASHCARDS", err.Error())
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// GetFlashcards returns the handler that serves the flashcards generated for
// one upload by its process ID. The ID must be a well-formed UUIDv4 before
// any query runs.
//
//	@Summary      Get flashcards by process ID
//	@Tags         flashcards
//	@Produce      json
//	@Param        processId  path  string  true  "upload process ID (UUIDv4)"
//	@Success      200  {object}  service.FlashcardSetResult
//	@Failure      400  {object}  errorPayload
//	@Failure      404  {object}  errorPayload
//	@Router       /flashcards/{processId} [get]
func GetFlashcards(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("processId")
		parsed, err := uuid.Parse(id)
		if err != nil || parsed.Version() != 4 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid process id format")
		}
		res, err := svc.FlashcardsByProcessID(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ListDocuments returns the handler that lists processed documents with
// their flashcard counts, newest first.
//
//	@Summary      List processed documents
//	@Tags         documents
//	@Produce      json
//	@Success      200  {object}  map[string][]model.DocumentWithCount
//	@Router       /documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"documents": docs})
	}
}

// DeleteDocument returns the handler that removes a document and, through
// the schema cascade, its flashcards.
//
//	@Summary      Delete a document
//	@Tags         documents
//	@Param        id  path  int  true  "document ID"
//	@Success      204
//	@Failure      400  {object}  errorPayload
//	@Failure      404  {object}  errorPayload
//	@Router       /documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
