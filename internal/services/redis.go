package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/mystery-room/pkg/state"
)

const gameStateKeyPrefix = "gamestate:"

// Sessions idle longer than this are expired by Redis.
const gameStateTTL = 72 * time.Hour

// RedisService implements Storage using Redis.
type RedisService struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Storage = (*RedisService)(nil)

// NewRedisService creates a new Redis service instance
func NewRedisService(redisURL string, logger *slog.Logger) *RedisService {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisService{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisService) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	r.logger.Debug("Redis ping successful", "result", cmd.Val())
	return nil
}

func (r *RedisService) SaveGameState(ctx context.Context, uuid string, gs *state.GameState) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("failed to marshal gamestate: %w", err)
	}

	key := gameStateKeyPrefix + uuid
	if err := r.client.Set(ctx, key, data, gameStateTTL).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", key, "error", err)
		return fmt.Errorf("redis set failed: %w", err)
	}

	r.logger.Debug("Gamestate saved", "key", key, "bytes", len(data))
	return nil
}

func (r *RedisService) LoadGameState(ctx context.Context, uuid string) (*state.GameState, error) {
	key := gameStateKeyPrefix + uuid
	cmd := r.client.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Debug("Gamestate not found", "key", key)
			return nil, nil
		}
		r.logger.Error("Redis GET failed", "key", key, "error", err)
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var gs state.GameState
	if err := json.Unmarshal([]byte(cmd.Val()), &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gamestate: %w", err)
	}

	return &gs, nil
}

func (r *RedisService) DeleteGameState(ctx context.Context, uuid string) error {
	key := gameStateKeyPrefix + uuid
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis DEL failed", "key", key, "error", err)
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (r *RedisService) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}

	r.logger.Info("Redis connection closed")
	return nil
}

// GetClient exposes the underlying client for pub/sub consumers.
func (r *RedisService) GetClient() *redis.Client {
	return r.client
}

func (r *RedisService) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}
