package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/internal/narrator"
	"github.com/jwebster45206/mystery-room/internal/services"
	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

type testEnv struct {
	engine  *engine.Engine
	llm     *services.MockLLMService
	storage *services.MockStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	llm := services.NewMockLLMService()
	llm.SetChatResponse("The room is quiet.")
	storage := services.NewMockStorage()
	logger := testLogger()
	c := catalog.Default()

	gateway := narrator.NewGateway(llm, c, logger)
	eng := engine.New(c, storage, gateway, nil, nil, logger)

	return &testEnv{
		engine:  eng,
		llm:     llm,
		storage: storage,
	}
}

func (env *testEnv) createGame(t *testing.T) *state.GameState {
	t.Helper()
	gs, err := env.engine.CreateGame(context.Background())
	require.NoError(t, err)
	return gs
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}
