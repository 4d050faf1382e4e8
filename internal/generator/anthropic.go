package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"flashgen/internal/config"
)

// anthropicGenerator calls the Claude Messages API. The underlying client is
// configured once at startup and shared across requests; it is safe for
// concurrent use.
type anthropicGenerator struct {
	client      anthropic.Client
	model       anthropic.Model
	maxTokens   int64
	temperature float64
}

// NewAnthropic builds the Claude-backed Generator. It fails fast on a missing
// API key so a misconfigured deployment never reaches request handling with
// an unusable client.
func NewAnthropic(cfg config.AnthropicConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, &Error{
			Code:    CodeInvalidCredentials,
			Message: "ANTHROPIC_API_KEY is not set",
		}
	}
	// The traced transport puts the model call, the slowest external hop in
	// the pipeline, on the same trace as the server and SQL spans.
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	return &anthropicGenerator{
		client: anthropic.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithHTTPClient(httpClient),
		),
		model:       anthropic.Model(cfg.Model),
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
	}, nil
}

func (g *anthropicGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: anthropic.Float(g.temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(req.Filename)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				documentBlock(req),
				anthropic.NewTextBlock(instructionPrompt(req.Filename)),
			),
			anthropic.NewAssistantMessage(anthropic.NewTextBlock(prefillText)),
		},
	})
	if err != nil {
		return "", classify(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	completion := sb.String()
	if strings.TrimSpace(completion) == "" {
		return "", &Error{Code: CodeEmptyCompletion, Message: "model returned an empty completion"}
	}
	return completion, nil
}

// documentBlock wraps the uploaded bytes as a document content block. PDFs go
// through the base64 document source; everything else is sent as plain text.
func documentBlock(req GenerateRequest) anthropic.ContentBlockParamUnion {
	if req.MediaType == "application/pdf" {
		return anthropic.ContentBlockParamUnion{
			OfDocument: &anthropic.DocumentBlockParam{
				Source: anthropic.DocumentBlockParamSourceUnion{
					OfBase64: &anthropic.Base64PDFSourceParam{
						Data: base64.StdEncoding.EncodeToString(req.Data),
					},
				},
			},
		}
	}
	return anthropic.ContentBlockParamUnion{
		OfDocument: &anthropic.DocumentBlockParam{
			Source: anthropic.DocumentBlockParamSourceUnion{
				OfText: &anthropic.PlainTextSourceParam{
					Data: string(req.Data),
				},
			},
		},
	}
}

// classify maps failures from the model call to structured error codes.
// Status codes are preferred; message inspection covers sub-cases the API
// reports only in the error body. This is the single place such inspection
// is allowed to live.
func classify(err error) error {
	status := 0
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		status = apierr.StatusCode
	}
	msg := strings.ToLower(err.Error())

	switch {
	case status == http.StatusTooManyRequests || strings.Contains(msg, "rate_limit"):
		return &Error{Code: CodeRateLimited, Message: "API rate limit exceeded. Please try again in a few minutes."}
	case strings.Contains(msg, "insufficient_quota") || strings.Contains(msg, "quota"):
		return &Error{Code: CodeQuotaExceeded, Message: "API quota exceeded. Please check your Anthropic account."}
	case status == http.StatusUnauthorized || status == http.StatusForbidden || strings.Contains(msg, "invalid_api_key"):
		return &Error{Code: CodeInvalidCredentials, Message: "Invalid API key. Please check your ANTHROPIC_API_KEY configuration."}
	case status == http.StatusRequestEntityTooLarge || strings.Contains(msg, "file_size") || strings.Contains(msg, "too large"):
		return &Error{Code: CodeDocumentTooLarge, Message: "Document is too large for processing. Please try a smaller file."}
	default:
		return &Error{Code: CodeUnavailable, Message: fmt.Sprintf("model call failed: %v", err)}
	}
}
