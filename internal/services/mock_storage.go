package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/mystery-room/pkg/state"
)

// MockStorage is an in-memory Storage implementation for testing.
type MockStorage struct {
	PingFunc   func(ctx context.Context) error
	SaveFunc   func(ctx context.Context, uuid string, gs *state.GameState) error
	LoadFunc   func(ctx context.Context, uuid string) (*state.GameState, error)
	DeleteFunc func(ctx context.Context, uuid string) error

	states map[string]*state.GameState
	mu     sync.Mutex
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{
		states: make(map[string]*state.GameState),
	}
}

func (m *MockStorage) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockStorage) SaveGameState(ctx context.Context, uuid string, gs *state.GameState) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, uuid, gs)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[uuid] = gs
	return nil
}

func (m *MockStorage) LoadGameState(ctx context.Context, uuid string) (*state.GameState, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, uuid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[uuid], nil
}

func (m *MockStorage) DeleteGameState(ctx context.Context, uuid string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, uuid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, uuid)
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}
