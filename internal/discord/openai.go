package discord

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// NewCompletionClient creates a chat completion client for the configured
// model. The API key and base URL may point at any OpenAI-compatible
// endpoint; by default that is Gemini's.
func NewCompletionClient(config *Config) *CompletionClient {
	clientConfig := openai.DefaultConfig(config.GeminiAPIKey)
	clientConfig.BaseURL = DefaultBaseURL
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	return &CompletionClient{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		maxTokens:   config.MaxTokens,
		temperature: float32(config.Temperature),
	}
}

// Complete sends prompt as a single user message and returns the text of
// the first choice. No conversation history is kept between calls.
func (c *CompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
		},
	)

	if err != nil {
		return "", fmt.Errorf("ChatCompletion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", c.model)
	}

	return resp.Choices[0].Message.Content, nil
}
