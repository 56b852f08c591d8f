package picker

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatModel is the slice of the langchaingo model surface the picker needs.
// Satisfied by llms.Model; tests substitute a canned implementation.
type ChatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

type Client struct {
	model     ChatModel
	maxTokens int
}

func NewClient(model ChatModel, maxTokens int) *Client {
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &Client{
		model:     model,
		maxTokens: maxTokens,
	}
}

// NewOpenAIModel builds a chat model against any OpenAI-compatible
// completion endpoint. baseURL may be empty for the default host.
func NewOpenAIModel(baseURL, token, model string) (ChatModel, error) {
	opts := []openai.Option{
		openai.WithToken(token),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	return llm, nil
}

// Reply sends the system prompt plus the caller-supplied history and returns
// the model's text reply. No retry on failure.
func (c *Client) Reply(ctx context.Context, systemPrompt string, history []ChatMessage) (string, error) {
	content, err := c.model.GenerateContent(
		ctx,
		buildMessages(systemPrompt, history),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(content.Choices) == 0 {
		return "", nil
	}

	return content.Choices[0].Content, nil
}

// ReplyStream is Reply with chunks forwarded to fn as they arrive.
func (c *Client) ReplyStream(ctx context.Context, systemPrompt string, history []ChatMessage, fn func(chunk []byte) error) (string, error) {
	content, err := c.model.GenerateContent(
		ctx,
		buildMessages(systemPrompt, history),
		llms.WithMaxTokens(c.maxTokens),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			return fn(chunk)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(content.Choices) == 0 {
		return "", nil
	}

	return content.Choices[0].Content, nil
}

func buildMessages(systemPrompt string, history []ChatMessage) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, len(history)+1)
	messages = append(messages, llms.MessageContent{
		Role:  schema.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
	})

	for _, msg := range history {
		role := schema.ChatMessageTypeHuman
		if msg.Role == "assistant" {
			role = schema.ChatMessageTypeAI
		}
		messages = append(messages, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}

	return messages
}
