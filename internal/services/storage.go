package services

import (
	"context"

	"github.com/jwebster45206/mystery-room/pkg/state"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Closer releases a service's underlying connections.
type Closer interface {
	Close() error
}

// Storage persists game sessions keyed by their UUID string.
// Writes are last-write-wins. LoadGameState returns nil, nil for an
// id that was never saved or has been deleted.
type Storage interface {
	HealthChecker
	Closer

	SaveGameState(ctx context.Context, id string, gs *state.GameState) error
	LoadGameState(ctx context.Context, id string) (*state.GameState, error)
	DeleteGameState(ctx context.Context, id string) error
}
