package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

type groqService struct {
	client *openai.Client
	model  string
}

// NewGroqService returns a client for an OpenAI-compatible chat-completions
// API rooted at baseURL. A nil httpClient uses http.DefaultClient.
func NewGroqService(httpClient *http.Client, baseURL, apiKey, model string) CompletionService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &shapeCheckingDoer{next: httpClient}

	return &groqService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *groqService) Provider() string {
	return "groq"
}

// Complete implements CompletionService.
func (g *groqService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Sampling.Temperature,
		MaxTokens:   req.Sampling.MaxTokens,
	}
	if req.Sampling.TopP != nil {
		chatReq.TopP = *req.Sampling.TopP
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", g.translateError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := resp.Choices[0].Message.Content
	log.WithFields(log.Fields{
		"provider": g.Provider(),
		"model":    g.model,
		"chars":    len(content),
	}).Debug("completion received")

	return content, nil
}

func (g *groqService) translateError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{
			Provider:   g.Provider(),
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{
			Provider:   g.Provider(),
			StatusCode: reqErr.HTTPStatusCode,
			Body:       string(reqErr.Body),
		}
	}

	return fmt.Errorf("failed to call completion API: %w", err)
}

// choiceShape mirrors only the fields whose presence the SDK types cannot
// report: a choice without a message, or a message whose content is absent
// or null, decodes to "" there.
type choiceShape struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// shapeCheckingDoer rejects successful chat-completion responses that are
// missing message content, before the SDK decodes them.
type shapeCheckingDoer struct {
	next openai.HTTPDoer
}

func (d *shapeCheckingDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err != nil || resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		return resp, err
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	var shape choiceShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}
	for i, choice := range shape.Choices {
		if choice.Message == nil {
			return nil, fmt.Errorf("%w: choice %d has no message", ErrMalformedCompletion, i)
		}
		if choice.Message.Content == nil {
			return nil, fmt.Errorf("%w: choice %d has no content", ErrMalformedCompletion, i)
		}
	}

	resp.Body = io.NopCloser(bytes.NewReader(raw))
	return resp, nil
}
