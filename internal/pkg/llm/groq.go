package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// GroqClient talks to the Groq OpenAI-compatible chat completion endpoint.
type GroqClient struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewGroqClient(apiKey string, model string, baseURL string) *GroqClient {
	if model == "" {
		model = "llama3-70b-8192"
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &GroqClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

// GenerateText runs a single-prompt completion at low temperature, used for
// concept extraction, question generation, and insight narratives.
func (c *GroqClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.4,
			TopP:        0.95,
			MaxTokens:   2048,
		},
	)
	if err != nil {
		return "", fmt.Errorf("groq generate error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("groq returned empty response")
	}

	return text, nil
}

// GenerateChatResponse runs a multi-turn conversation for the mentor chat.
func (c *GroqClient) GenerateChatResponse(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.Model,
			Messages:    messages,
			Temperature: 0.7,
			TopP:        0.95,
			MaxTokens:   2048,
		},
	)
	if err != nil {
		return "", fmt.Errorf("groq chat error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("groq returned empty response")
	}

	return text, nil
}
