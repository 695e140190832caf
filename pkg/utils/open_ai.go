package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIInterpreterClient is the alternative completion provider, selected
// with AI_PROVIDER=openai.
type OpenAIInterpreterClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIInterpreterClient(apiKey, model string) *OpenAIInterpreterClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIInterpreterClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIInterpreterClient) ParseTrip(ctx context.Context, prompt string) (TripParameters, error) {
	raw, err := c.complete(ctx, fmt.Sprintf(tripPrompt, prompt))
	if err != nil {
		return DefaultTripParameters(), err
	}
	return DecodeTripParameters(raw)
}

func (c *OpenAIInterpreterClient) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	raw, err := c.complete(ctx, fmt.Sprintf(expandPrompt, query))
	if err != nil {
		return nil, err
	}
	return DecodeKeywordList(raw), nil
}

func (c *OpenAIInterpreterClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrAIUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai: no choices", ErrAIUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIInterpreterClient) Close() error { return nil }
