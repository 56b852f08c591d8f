package picker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

type fakeModel struct {
	reply    string
	err      error
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func TestClientReply(t *testing.T) {
	model := &fakeModel{reply: "Go to Mamak Corner."}
	client := NewClient(model, 0)

	history := []ChatMessage{
		{Role: "user", Content: "I want something spicy"},
		{Role: "assistant", Content: "Noted"},
		{Role: "user", Content: "pick one"},
	}

	reply, err := client.Reply(context.Background(), "system prompt", history)
	require.NoError(t, err)
	assert.Equal(t, "Go to Mamak Corner.", reply)

	require.Len(t, model.messages, 4)
	assert.Equal(t, schema.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[1].Role)
	assert.Equal(t, schema.ChatMessageTypeAI, model.messages[2].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[3].Role)
}

func TestClientReplyError(t *testing.T) {
	model := &fakeModel{err: errors.New("upstream down")}
	client := NewClient(model, 256)

	_, err := client.Reply(context.Background(), "system", nil)
	assert.ErrorContains(t, err, "failed to generate content")
}

func TestClientReplyNoChoices(t *testing.T) {
	client := NewClient(&emptyModel{}, 256)

	reply, err := client.Reply(context.Background(), "system", nil)
	require.NoError(t, err)
	assert.Equal(t, "", reply)
}

type emptyModel struct{}

func (emptyModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{}, nil
}
