// Package events publishes gameplay events to Redis Pub/Sub so other
// consumers (leaderboards, live spectators) can react to session progress.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeClueDiscovered EventType = "clue.discovered"
	EventTypeClueExamined   EventType = "clue.examined"
	EventTypePuzzleSolved   EventType = "puzzle.solved"
	EventTypeSceneCompleted EventType = "scene.completed"
	EventTypeGameCompleted  EventType = "game.completed"
)

// Event represents a generic event structure
type Event struct {
	Type   EventType              `json:"type"`
	GameID string                 `json:"game_id"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// Broadcaster publishes events to Redis Pub/Sub
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// ChannelForGame returns the pub/sub channel name for a session.
func ChannelForGame(gameID uuid.UUID) string {
	return "events:game:" + gameID.String()
}

// PublishClueDiscovered publishes a clue.discovered event
func (b *Broadcaster) PublishClueDiscovered(ctx context.Context, gameID uuid.UUID, clueID string) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypeClueDiscovered,
		GameID: gameID.String(),
		Data:   map[string]interface{}{"clue_id": clueID},
	})
}

// PublishClueExamined publishes a clue.examined event
func (b *Broadcaster) PublishClueExamined(ctx context.Context, gameID uuid.UUID, clueID string) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypeClueExamined,
		GameID: gameID.String(),
		Data:   map[string]interface{}{"clue_id": clueID},
	})
}

// PublishPuzzleSolved publishes a puzzle.solved event
func (b *Broadcaster) PublishPuzzleSolved(ctx context.Context, gameID uuid.UUID, sceneID string) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypePuzzleSolved,
		GameID: gameID.String(),
		Data:   map[string]interface{}{"scene_id": sceneID},
	})
}

// PublishSceneCompleted publishes a scene.completed event
func (b *Broadcaster) PublishSceneCompleted(ctx context.Context, gameID uuid.UUID, sceneID string, nextSceneID string) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypeSceneCompleted,
		GameID: gameID.String(),
		Data: map[string]interface{}{
			"scene_id":      sceneID,
			"next_scene_id": nextSceneID,
		},
	})
}

// PublishGameCompleted publishes a game.completed event
func (b *Broadcaster) PublishGameCompleted(ctx context.Context, gameID uuid.UUID, progress int) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypeGameCompleted,
		GameID: gameID.String(),
		Data:   map[string]interface{}{"progress": progress},
	})
}

func (b *Broadcaster) publishToGame(ctx context.Context, gameID uuid.UUID, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	channel := ChannelForGame(gameID)
	if err := b.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
		b.logger.Error("Failed to publish event", "channel", channel, "type", event.Type, "error", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published", "channel", channel, "type", event.Type)
	return nil
}
