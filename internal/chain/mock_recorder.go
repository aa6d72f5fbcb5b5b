package chain

import (
	"context"
	"sync"
)

// MockRecorder is a Recorder implementation for testing.
type MockRecorder struct {
	ClueErr    error
	SceneErr   error
	BalanceVal int64

	// Track calls for testing
	ClueRecords  []ClueRecord
	SceneRecords []SceneRecord

	mu sync.Mutex
}

var _ Recorder = (*MockRecorder)(nil)

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{}
}

func (m *MockRecorder) RecordClueFound(ctx context.Context, rec ClueRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClueRecords = append(m.ClueRecords, rec)
	return m.ClueErr
}

func (m *MockRecorder) RecordSceneComplete(ctx context.Context, rec SceneRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SceneRecords = append(m.SceneRecords, rec)
	return m.SceneErr
}

func (m *MockRecorder) Balance(ctx context.Context, gameID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.BalanceVal, nil
}

// Recorded returns copies of the tracked records.
func (m *MockRecorder) Recorded() ([]ClueRecord, []SceneRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clues := make([]ClueRecord, len(m.ClueRecords))
	copy(clues, m.ClueRecords)
	scenes := make([]SceneRecord, len(m.SceneRecords))
	copy(scenes, m.SceneRecords)
	return clues, scenes
}
