package services

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jwebster45206/mystery-room/pkg/chat"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIService implements LLMService using the OpenAI chat completions API.
type OpenAIService struct {
	client    *openai.Client
	modelName string
	logger    *slog.Logger
}

var _ LLMService = (*OpenAIService)(nil)

func NewOpenAIService(apiKey string, modelName string, logger *slog.Logger) *OpenAIService {
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}
	return &OpenAIService{
		client:    openai.NewClient(apiKey),
		modelName: modelName,
		logger:    logger,
	}
}

func (o *OpenAIService) InitModel(ctx context.Context, modelName string) error {
	if modelName != "" {
		o.modelName = modelName
	}
	return nil
}

func (o *OpenAIService) Chat(ctx context.Context, messages []chat.ChatMessage) (string, error) {
	oaiMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		oaiMessages = append(oaiMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.modelName,
		MaxTokens:   DefaultMaxTokens,
		Temperature: float32(DefaultTemperature),
		Messages:    oaiMessages,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return resp.Choices[0].Message.Content, nil
}
