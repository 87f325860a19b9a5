package services

import (
	"context"
	"errors"
	"fmt"
)

// Sampling holds the generation parameters sent with a completion request.
// A nil TopP leaves the provider default in place.
type Sampling struct {
	Temperature float32
	MaxTokens   int
	TopP        *float32
}

type CompletionRequest struct {
	SystemMessage string
	UserPrompt    string
	Sampling      Sampling
}

// CompletionService sends one system+user conversation to a hosted model
// and returns the text of the first choice.
type CompletionService interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
}

// UpstreamError reports a non-success status from the completion API.
// Body carries the raw upstream payload for operator logs only.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s completion API returned status %d", e.Provider, e.StatusCode)
}

var (
	ErrEmptyCompletion     = errors.New("completion response contained no choices")
	ErrMalformedCompletion = errors.New("malformed completion response")
)

func float32Ptr(v float32) *float32 {
	return &v
}

var (
	questionSampling      = Sampling{Temperature: 0.7, MaxTokens: 1024, TopP: float32Ptr(1)}
	moreQuestionsSampling = Sampling{Temperature: 0.7, MaxTokens: 1024}
	evaluationSampling    = Sampling{Temperature: 0.7, MaxTokens: 500}
)
