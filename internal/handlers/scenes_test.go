package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/chat"
)

func TestScenesHandler_List(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/scenes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var scenes []SceneSummary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&scenes))
	require.Len(t, scenes, 3)
	assert.Equal(t, "study", scenes[0].ID)
	assert.Equal(t, 5, scenes[0].ClueCount)
	assert.True(t, scenes[0].HasPuzzle)
}

func TestScenesHandler_Detail(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/scenes/library", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var detail SceneDetail
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&detail))
	assert.Equal(t, "library", detail.ID)
	require.Len(t, detail.Clues, 5)
	assert.Equal(t, "book", detail.Clues[0].ID)
}

func TestScenesHandler_SceneNotFound(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/scenes/attic", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestScenesHandler_PuzzlePromptHidesSolution(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/scenes/basement/puzzle", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var prompt PuzzlePrompt
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&prompt))
	assert.Equal(t, "basement", prompt.SceneID)
	assert.NotEmpty(t, prompt.Code, "the ciphertext is shown to the player")

	assert.NotContains(t, rr.Body.String(), "solution")
}

func TestScenesHandler_ImagePlaceholder(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/scenes/study/image", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp SceneImageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "study", resp.SceneID)
	assert.Empty(t, resp.Image)
	assert.NotEmpty(t, resp.ImageURL, "without an image service a static background is served")
}

func TestScenesHandler_Narrative(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())
	gs := env.createGame(t)

	env.llm.SetChatResponse("Dust hangs in the lamplight of the study.")

	req := httptest.NewRequest(http.MethodGet, "/v1/scenes/study/narrative?gamestate_id="+gs.ID.String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp chat.NarrativeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "study", resp.SceneID)
	assert.Equal(t, "Dust hangs in the lamplight of the study.", resp.Narrative)

	// A second fetch with unchanged progress is served from cache.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/scenes/study/narrative?gamestate_id="+gs.ID.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, env.llm.ChatCallCount())

	// force=true regenerates.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/scenes/study/narrative?gamestate_id="+gs.ID.String()+"&force=true", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, env.llm.ChatCallCount())
}

func TestScenesHandler_NarrativeRequiresGameID(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/scenes/study/narrative", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScenesHandler_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	handler := NewScenesHandler(env.engine, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/scenes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
