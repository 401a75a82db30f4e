package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/samber/lo"
	"google.golang.org/genai"

	"github.com/geosick/pitchdeck/pkg/domain"
	"github.com/geosick/pitchdeck/pkg/logger"
)

// dataURIPrefix strips the browser file-reader prefix from uploaded images.
var dataURIPrefix = regexp.MustCompile(`^data:image/(png|jpeg|jpg);base64,`)

// hazardReportSchema asks the model for the HazardReport JSON shape. The
// schema is a request, not a guarantee; callers still decode defensively.
var hazardReportSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"riskLevel":      {Type: genai.TypeString},
		"hazards":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"recommendation": {Type: genai.TypeString},
	},
}

type client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, apiKey, model string) (*client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is empty")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &client{genai: c, model: model}, nil
}

func (c *client) AnalyzeImage(ctx context.Context, image string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(dataURIPrefix.ReplaceAllString(image, ""))
	if err != nil {
		return "", fmt.Errorf("decoding image payload: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, "image/png"),
			genai.NewPartFromText(domain.AnalysisPrompt),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   hazardReportSchema,
	})
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if text := resp.Text(); text != "" {
		return text, nil
	}
	return "{}", nil
}

// Chat never returns an error: any internal failure becomes the fixed
// fallback reply.
func (c *client) Chat(ctx context.Context, message string, history []domain.ChatMessage) string {
	contents := lo.Map(history, func(m domain.ChatMessage, _ int) *genai.Content {
		role := genai.Role(genai.RoleUser)
		if m.Speaker == domain.SpeakerAssistant {
			role = genai.RoleModel
		}
		return genai.NewContentFromText(m.Text, role)
	})

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(domain.ChatSystemInstruction, genai.RoleUser),
	}

	chat, err := c.genai.Chats.Create(ctx, c.model, cfg, contents)
	if err != nil {
		slog.ErrorContext(ctx, "Creating gemini chat failed", logger.Err(err))
		return domain.ChatFallbackReply
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		slog.ErrorContext(ctx, "Gemini chat failed", logger.Err(err))
		return domain.ChatFallbackReply
	}

	if text := resp.Text(); text != "" {
		return text
	}
	return domain.ChatFallbackReply
}
