// Package llm holds the text and image generation backends used to produce
// marketing copy. Backends report failures as errors and never substitute
// canned output for a failed call.
package llm

import (
	"context"
	"errors"
	"fmt"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderStatic = "static"
)

// ErrEmptyResponse is returned when a backend answers without usable text.
var ErrEmptyResponse = errors.New("empty response")

// TextRequest is one chat-style completion request.
type TextRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// TextGenerator produces free-form text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, req TextRequest) (string, error)
	Name() string
}

// ImageRequest asks for a single product image.
type ImageRequest struct {
	Prompt string
	Size   string
}

// ImageGenerator produces an image and returns where it can be fetched.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}

// StatusError reports a non-2xx answer from a provider API.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s status %d", e.Provider, e.Code)
	}
	return fmt.Sprintf("%s status %d: %s", e.Provider, e.Code, e.Body)
}
