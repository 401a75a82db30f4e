package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/geosick/pitchdeck/pkg/domain"
	"github.com/geosick/pitchdeck/pkg/logger"
)

// client is the OpenAI-backed assistant, for deployments without a Gemini
// credential. Vision calls send the data URI straight through; the API
// accepts it as an image URL.
type client struct {
	oc    *openai.Client
	model string
}

func NewClient(token, model string) (*client, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}
	return &client{oc: openai.NewClient(token), model: model}, nil
}

func (c *client) AnalyzeImage(ctx context.Context, image string) (string, error) {
	resp, err := c.oc.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: image},
					},
					{
						Type: openai.ChatMessagePartTypeText,
						Text: domain.AnalysisPrompt,
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Chat never returns an error: any internal failure becomes the fixed
// fallback reply.
func (c *client) Chat(ctx context.Context, message string, history []domain.ChatMessage) string {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: domain.ChatSystemInstruction},
	}
	messages = append(messages, lo.Map(history, func(m domain.ChatMessage, _ int) openai.ChatCompletionMessage {
		role := openai.ChatMessageRoleUser
		if m.Speaker == domain.SpeakerAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		return openai.ChatCompletionMessage{Role: role, Content: m.Text}
	})...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.oc.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		slog.ErrorContext(ctx, "OpenAI chat failed", logger.Err(err))
		return domain.ChatFallbackReply
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return domain.ChatFallbackReply
	}
	return resp.Choices[0].Message.Content
}
