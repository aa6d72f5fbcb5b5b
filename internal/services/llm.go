package services

import (
	"context"

	"github.com/jwebster45206/mystery-room/pkg/chat"
)

// Generation parameters shared by all providers.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 500
)

// LLMService defines the interface for generating narrative text.
type LLMService interface {
	// InitModel prepares the model on startup.
	InitModel(ctx context.Context, modelName string) error

	// Chat generates a completion for the given messages and returns
	// the raw text, control tokens included.
	Chat(ctx context.Context, messages []chat.ChatMessage) (string, error)
}
