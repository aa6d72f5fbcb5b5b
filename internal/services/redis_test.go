package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func newTestRedis(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	svc := NewRedisService(mr.Addr(), testLogger())
	t.Cleanup(func() {
		if err := svc.Close(); err != nil {
			t.Errorf("Failed to close Redis service: %v", err)
		}
	})
	return svc, mr
}

func TestRedisService_SaveLoadDelete(t *testing.T) {
	svc, _ := newTestRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, svc.Ping(ctx))

	c := catalog.Default()
	gs := state.NewGameState(c)
	gs.DiscoverClue("drawer")
	gs.ExamineClue("painting")
	note := gs.AddNote("the painting hides a safe")

	require.NoError(t, svc.SaveGameState(ctx, gs.ID.String(), gs))

	loaded, err := svc.LoadGameState(ctx, gs.ID.String())
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, gs.ID, loaded.ID)
	assert.Equal(t, "study", loaded.CurrentScene)
	assert.True(t, loaded.Clues["drawer"].Discovered)
	assert.True(t, loaded.Clues["painting"].Examined)
	require.Len(t, loaded.Notes, 1)
	assert.Equal(t, note.ID, loaded.Notes[0].ID)
	assert.Equal(t, "the painting hides a safe", loaded.Notes[0].Content)
	assert.Equal(t, gs.Progress(c.TotalClues()), loaded.Progress(c.TotalClues()))

	require.NoError(t, svc.DeleteGameState(ctx, gs.ID.String()))

	loaded, err = svc.LoadGameState(ctx, gs.ID.String())
	require.NoError(t, err)
	assert.Nil(t, loaded, "deleted gamestate loads as nil")
}

func TestRedisService_LoadMissing(t *testing.T) {
	svc, _ := newTestRedis(t)

	gs, err := svc.LoadGameState(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, gs)
}

func TestRedisService_SaveSetsTTL(t *testing.T) {
	svc, mr := newTestRedis(t)

	gs := state.NewGameState(catalog.Default())
	require.NoError(t, svc.SaveGameState(context.Background(), gs.ID.String(), gs))

	ttl := mr.TTL(gameStateKeyPrefix + gs.ID.String())
	assert.Equal(t, gameStateTTL, ttl)
}
