package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/state"
)

func TestGameStateHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGameStateHandler(env.engine, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/gamestate", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var gs state.GameState
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&gs))
	assert.NotEqual(t, uuid.Nil, gs.ID)
	assert.Equal(t, "study", gs.CurrentScene)
	assert.False(t, gs.Completed)
}

func TestGameStateHandler_Read(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGameStateHandler(env.engine, testLogger())
	gs := env.createGame(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/gamestate/"+gs.ID.String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var loaded state.GameState
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&loaded))
	assert.Equal(t, gs.ID, loaded.ID)
}

func TestGameStateHandler_ReadNotFound(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGameStateHandler(env.engine, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/gamestate/"+uuid.New().String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameStateHandler_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGameStateHandler(env.engine, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/gamestate/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "Invalid game state ID")
}

func TestGameStateHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGameStateHandler(env.engine, testLogger())
	gs := env.createGame(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/gamestate/"+gs.ID.String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/gamestate/"+gs.ID.String(), nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameStateHandler_Restart(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGameStateHandler(env.engine, testLogger())
	gs := env.createGame(t)

	gs.DiscoverClue("drawer")
	require.NoError(t, env.storage.SaveGameState(context.Background(), gs.ID.String(), gs))

	req := httptest.NewRequest(http.MethodPost, "/v1/gamestate/"+gs.ID.String()+"/restart", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var restarted state.GameState
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&restarted))
	assert.Equal(t, gs.ID, restarted.ID, "restart keeps the session ID")
	assert.Equal(t, 0, restarted.DiscoveredCount())
	assert.Equal(t, "study", restarted.CurrentScene)
}

func TestGameStateHandler_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGameStateHandler(env.engine, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/v1/gamestate/"+uuid.New().String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
