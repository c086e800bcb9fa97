package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers. Implementations send one prompt
// and return the model's plain-text output.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Sentinel errors implementations wrap so the request boundary can map
// provider failures to user-facing status codes.
var (
	// ErrQuotaExceeded signals a provider rate or usage limit.
	ErrQuotaExceeded = errors.New("generation quota exceeded")
	// ErrContentRejected signals a safety or policy block on the input.
	ErrContentRejected = errors.New("content rejected by provider")
	// ErrGenerationFailed covers any other provider failure.
	ErrGenerationFailed = errors.New("generation failed")
)

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Generate returns ErrNotImplemented.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}
