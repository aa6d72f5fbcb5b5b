package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/mystery-room/pkg/chat"
)

// MockLLMService is a mock implementation of LLMService for testing.
type MockLLMService struct {
	InitModelFunc func(ctx context.Context, modelName string) error
	ChatFunc      func(ctx context.Context, messages []chat.ChatMessage) (string, error)

	// Track calls for testing
	InitModelCalls []string
	ChatCalls      []ChatCall

	mu sync.Mutex // protects all fields above
}

type ChatCall struct {
	Messages []chat.ChatMessage
}

var _ LLMService = (*MockLLMService)(nil)

// NewMockLLMService creates a new mock LLM service.
func NewMockLLMService() *MockLLMService {
	return &MockLLMService{
		InitModelCalls: make([]string, 0),
		ChatCalls:      make([]ChatCall, 0),
	}
}

func (m *MockLLMService) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitModelCalls = append(m.InitModelCalls, modelName)

	if m.InitModelFunc != nil {
		return m.InitModelFunc(ctx, modelName)
	}
	return nil
}

func (m *MockLLMService) Chat(ctx context.Context, messages []chat.ChatMessage) (string, error) {
	m.mu.Lock()
	fn := m.ChatFunc
	m.ChatCalls = append(m.ChatCalls, ChatCall{Messages: messages})
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, messages)
	}
	return "Mock narrative response.", nil
}

// SetChatResponse sets a fixed reply for all Chat calls.
func (m *MockLLMService) SetChatResponse(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
		return content, nil
	}
}

// SetChatError sets up the mock to return an error on Chat.
func (m *MockLLMService) SetChatError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
		return "", err
	}
}

// ChatCallCount returns the number of Chat calls in a thread-safe way.
func (m *MockLLMService) ChatCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ChatCalls)
}

// GetChatCalls returns a copy of the Chat call tracking data.
func (m *MockLLMService) GetChatCalls() []ChatCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]ChatCall, len(m.ChatCalls))
	copy(calls, m.ChatCalls)
	return calls
}

// Reset clears all call tracking.
func (m *MockLLMService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitModelCalls = make([]string, 0)
	m.ChatCalls = make([]ChatCall, 0)
	m.InitModelFunc = nil
	m.ChatFunc = nil
}
