package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiInterpreterClient implements InterpreterClientInterface on Google's
// Gemini models.
type GeminiInterpreterClient struct {
	client *genai.Client
	model  string
}

func NewGeminiInterpreterClient(apiKey, model string) (*GeminiInterpreterClient, error) {
	if model == "" {
		model = "gemini-1.5-pro"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiInterpreterClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiInterpreterClient) ParseTrip(ctx context.Context, prompt string) (TripParameters, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)

	raw, err := c.generate(ctx, m, fmt.Sprintf(tripPrompt, prompt))
	if err != nil {
		return DefaultTripParameters(), err
	}
	return DecodeTripParameters(raw)
}

func (c *GeminiInterpreterClient) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)

	raw, err := c.generate(ctx, m, fmt.Sprintf(expandPrompt, query))
	if err != nil {
		return nil, err
	}
	return DecodeKeywordList(raw), nil
}

func (c *GeminiInterpreterClient) generate(ctx context.Context, m *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrAIUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini: no content", ErrAIUnavailable)
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiInterpreterClient) Close() error {
	return c.client.Close()
}
