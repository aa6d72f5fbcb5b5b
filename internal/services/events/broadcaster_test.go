package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	b := NewBroadcaster(client, logger)

	gameID := uuid.New()
	ctx := context.Background()

	sub := client.Subscribe(ctx, ChannelForGame(gameID))
	t.Cleanup(func() { _ = sub.Close() })

	// Wait for the subscription before publishing
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, b.PublishClueDiscovered(ctx, gameID, "drawer"))

	select {
	case msg := <-sub.Channel():
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, EventTypeClueDiscovered, ev.Type)
		assert.Equal(t, gameID.String(), ev.GameID)
		assert.Equal(t, "drawer", ev.Data["clue_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}
