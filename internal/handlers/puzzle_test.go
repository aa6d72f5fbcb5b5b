package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/puzzle"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

// examineSceneClues walks every clue in the scene through examination.
// Examination implies discovery, so this also unlocks the capstone puzzle.
func examineSceneClues(t *testing.T, env *testEnv, gs *state.GameState, clueIDs []string) {
	t.Helper()
	for _, id := range clueIDs {
		_, err := env.engine.ExamineClue(context.Background(), gs, id)
		require.NoError(t, err)
	}
}

func TestPuzzleHandler_LockedUntilCluesDiscovered(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPuzzleHandler(env.engine, testLogger())
	gs := env.createGame(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/puzzle", jsonBody(t, chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "study",
		Sequence:    []string{"letters", "bookshelf", "painting", "drawer", "paperweight"},
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "locked")
}

func TestPuzzleHandler_WrongSequence(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPuzzleHandler(env.engine, testLogger())
	gs := env.createGame(t)
	examineSceneClues(t, env, gs, []string{"drawer", "painting", "letters", "bookshelf", "paperweight"})

	req := httptest.NewRequest(http.MethodPost, "/v1/puzzle", jsonBody(t, chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "study",
		Sequence:    []string{"drawer", "painting", "letters", "bookshelf", "paperweight"},
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp chat.PuzzleResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Solved)
	assert.Equal(t, puzzle.FailedMessage, resp.Message)
}

func TestPuzzleHandler_SolvesSequence(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPuzzleHandler(env.engine, testLogger())
	gs := env.createGame(t)
	examineSceneClues(t, env, gs, []string{"drawer", "painting", "letters", "bookshelf", "paperweight"})

	req := httptest.NewRequest(http.MethodPost, "/v1/puzzle", jsonBody(t, chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "study",
		Sequence:    []string{"letters", "bookshelf", "painting", "drawer", "paperweight"},
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp chat.PuzzleResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Solved)
	assert.Equal(t, puzzle.SolvedMessage, resp.Message)

	// Solving the capstone completes the scene and advances the session.
	loaded, err := env.storage.LoadGameState(context.Background(), gs.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "library", loaded.CurrentScene)
}

func TestPuzzleHandler_UnknownScene(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPuzzleHandler(env.engine, testLogger())
	gs := env.createGame(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/puzzle", jsonBody(t, chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "attic",
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPuzzleHandler_MissingSceneID(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPuzzleHandler(env.engine, testLogger())
	gs := env.createGame(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/puzzle", jsonBody(t, chat.PuzzleRequest{
		GameStateID: gs.ID,
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
