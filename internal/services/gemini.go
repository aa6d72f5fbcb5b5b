package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jwebster45206/mystery-room/pkg/chat"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiService implements LLMService using Google's Gemini API.
type GeminiService struct {
	client    *genai.Client
	modelName string
	logger    *slog.Logger
}

var _ LLMService = (*GeminiService)(nil)

func NewGeminiService(ctx context.Context, apiKey string, modelName string, logger *slog.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	return &GeminiService{
		client:    client,
		modelName: modelName,
		logger:    logger,
	}, nil
}

func (g *GeminiService) InitModel(ctx context.Context, modelName string) error {
	if modelName != "" {
		g.modelName = modelName
	}
	return nil
}

func (g *GeminiService) Chat(ctx context.Context, messages []chat.ChatMessage) (string, error) {
	systemPrompt, conversation := splitChatMessages(messages)

	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(float32(DefaultTemperature))
	model.SetMaxOutputTokens(DefaultMaxTokens)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	var sb strings.Builder
	for i, m := range conversation {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.Content)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from model")
	}

	return string(text), nil
}

func (g *GeminiService) Close() error {
	return g.client.Close()
}
