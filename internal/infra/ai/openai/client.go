package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/clauseguard/clauseguard/internal/domain/analysis"
	"github.com/clauseguard/clauseguard/internal/infra/ai/prompt"
)

const maxTokens = 2000

// temperature is kept low so repeated runs over the same document stay close
// to deterministic; bit-reproducibility is not guaranteed.
const temperature = 0.1

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

// Classify sends the document through the chat completion API once, with no
// retry, and parses the reply into a Report. Any failure (transport, auth,
// quota, malformed reply) is returned as-is; the caller owns the fallback.
func (c *Client) Classify(ctx context.Context, text, title string) (*analysis.Report, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o"
	}
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(title, text)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return ParseReport(resp.Choices[0].Message.Content)
}
