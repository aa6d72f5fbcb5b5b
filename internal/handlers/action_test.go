package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/chat"
)

func TestActionHandler_DiscoversClue(t *testing.T) {
	env := newTestEnv(t)
	handler := NewActionHandler(env.engine, testLogger())
	gs := env.createGame(t)

	env.llm.SetChatResponse("You rifle through the desk and find a locked drawer. CLUE_DISCOVERED:drawer")

	req := httptest.NewRequest(http.MethodPost, "/v1/action", jsonBody(t, chat.ActionRequest{
		GameStateID: gs.ID,
		Action:      "search desk",
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp chat.ActionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"drawer"}, resp.DiscoveredClues)
	assert.Contains(t, resp.Outcome, "*You found a clue!*")
	assert.NotContains(t, resp.Outcome, "CLUE_DISCOVERED", "control tokens must be stripped from player-facing prose")
}

func TestActionHandler_EmptyAction(t *testing.T) {
	env := newTestEnv(t)
	handler := NewActionHandler(env.engine, testLogger())
	gs := env.createGame(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/action", jsonBody(t, chat.ActionRequest{
		GameStateID: gs.ID,
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestActionHandler_ActionTooLong(t *testing.T) {
	env := newTestEnv(t)
	handler := NewActionHandler(env.engine, testLogger())
	gs := env.createGame(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/action", jsonBody(t, chat.ActionRequest{
		GameStateID: gs.ID,
		Action:      strings.Repeat("x", chat.MaxMessageLength+1),
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestActionHandler_GameNotFound(t *testing.T) {
	env := newTestEnv(t)
	handler := NewActionHandler(env.engine, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/action", jsonBody(t, chat.ActionRequest{
		GameStateID: uuid.New(),
		Action:      "search desk",
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestActionHandler_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	handler := NewActionHandler(env.engine, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/action", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
