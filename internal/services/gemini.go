package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService creates a Gemini-backed completion client. An empty
// baseURL uses the public endpoint.
func NewGeminiService(ctx context.Context, apiKey, modelName, baseURL string) (CompletionService, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *geminiService) Provider() string {
	return "gemini"
}

// Complete implements CompletionService.
func (g *geminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	temperature := req.Sampling.Temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemMessage, genai.RoleUser),
		Temperature:       &temperature,
		TopP:              req.Sampling.TopP,
		MaxOutputTokens:   int32(req.Sampling.MaxTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.UserPrompt), config)
	if err != nil {
		return "", g.translateError(err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}

	text := resp.Text()
	log.WithFields(log.Fields{
		"provider": g.Provider(),
		"model":    g.modelName,
		"chars":    len(text),
	}).Debug("completion received")

	return text, nil
}

func (g *geminiService) translateError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{
			Provider:   g.Provider(),
			StatusCode: apiErr.Code,
			Body:       apiErr.Message,
		}
	}

	return fmt.Errorf("failed to generate text: %w", err)
}
