//go:build integration
// +build integration

// Package integration exercises a running API end to end. Start the server
// (and its Redis and LLM backing) first, then:
//
//	API_BASE_URL=http://localhost:8080 go test -tags integration ./integration/
//
// Clue discovery uses exact keyword phrases from the built-in catalog, so
// the playthrough is deterministic even against a live model. Narrative
// text is asserted for presence only, never for content.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

var baseURL string

func TestMain(m *testing.M) {
	baseURL = os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	fmt.Printf("Running Mystery Room integration tests against %s\n", baseURL)
	os.Exit(m.Run())
}

var httpClient = &http.Client{Timeout: 90 * time.Second}

func post(t *testing.T, path string, payload any, out any) int {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	resp, err := httpClient.Post(baseURL+path, "application/json", body)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.Unmarshal(raw, out), "response body: %s", string(raw))
	}
	return resp.StatusCode
}

func get(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := httpClient.Get(baseURL + path)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.Unmarshal(raw, out), "response body: %s", string(raw))
	}
	return resp.StatusCode
}

// discoveryPhrases are exact catalog keyword phrases, one per clue.
var discoveryPhrases = map[string][]struct {
	phrase string
	clueID string
}{
	"study": {
		{"search desk", "drawer"},
		{"examine painting", "painting"},
		{"look at papers", "letters"},
		{"search bookshelf", "bookshelf"},
		{"examine paperweight", "paperweight"},
	},
	"library": {
		{"search bookshelf", "book"},
		{"check desk", "desk"},
		{"look at windows", "window"},
		{"check catalog", "catalog"},
		{"examine floor", "floorboard"},
	},
	"basement": {
		{"examine symbols", "symbols"},
		{"search floor", "lockbox"},
		{"look for pictures", "photograph"},
		{"examine equipment", "equipment"},
		{"look for journal", "journal"},
	},
}

func clearScene(t *testing.T, gameID uuid.UUID, sceneID string) {
	t.Helper()

	for _, d := range discoveryPhrases[sceneID] {
		var resp chat.ActionResponse
		status := post(t, "/v1/action", chat.ActionRequest{
			GameStateID: gameID,
			Action:      d.phrase,
		}, &resp)
		require.Equal(t, http.StatusOK, status, "action %q", d.phrase)
		assert.Contains(t, resp.DiscoveredClues, d.clueID, "action %q", d.phrase)
	}

	for _, d := range discoveryPhrases[sceneID] {
		var resp chat.ExamineResponse
		status := post(t, "/v1/examine", chat.ExamineRequest{
			GameStateID: gameID,
			ClueID:      d.clueID,
		}, &resp)
		require.Equal(t, http.StatusOK, status, "examine %q", d.clueID)
		assert.NotEmpty(t, resp.Narrative)
	}
}

func TestFullPlaythrough(t *testing.T) {
	status := get(t, "/health", nil)
	require.Equal(t, http.StatusOK, status, "API is not healthy")

	var gs state.GameState
	status = post(t, "/v1/gamestate", nil, &gs)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "study", gs.CurrentScene)
	t.Logf("GameState ID: %s", gs.ID)

	// Puzzle attempts are rejected until every clue in the scene is discovered.
	var locked chat.PuzzleResponse
	status = post(t, "/v1/puzzle", chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "study",
		Sequence:    []string{"letters", "bookshelf", "painting", "drawer", "paperweight"},
	}, &locked)
	assert.Equal(t, http.StatusConflict, status)

	clearScene(t, gs.ID, "study")

	// Progression is available once evidence exists.
	var prog chat.NarrativeResponse
	status = post(t, "/v1/progression", chat.ProgressionRequest{GameStateID: gs.ID}, &prog)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, prog.Narrative)

	var solved chat.PuzzleResponse
	status = post(t, "/v1/puzzle", chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "study",
		Sequence:    []string{"letters", "bookshelf", "painting", "drawer", "paperweight"},
	}, &solved)
	require.Equal(t, http.StatusOK, status)
	require.True(t, solved.Solved, "study puzzle: %s", solved.Message)

	status = get(t, "/v1/gamestate/"+gs.ID.String(), &gs)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "library", gs.CurrentScene)

	clearScene(t, gs.ID, "library")
	status = post(t, "/v1/puzzle", chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "library",
		Pairs: [][2]string{
			{"book", "catalog"},
			{"window", "floorboard"},
			{"desk", "book"},
		},
	}, &solved)
	require.Equal(t, http.StatusOK, status)
	require.True(t, solved.Solved, "library puzzle: %s", solved.Message)

	status = get(t, "/v1/gamestate/"+gs.ID.String(), &gs)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "basement", gs.CurrentScene)

	clearScene(t, gs.ID, "basement")
	status = post(t, "/v1/puzzle", chat.PuzzleRequest{
		GameStateID: gs.ID,
		SceneID:     "basement",
		Code:        "TRUTH",
	}, &solved)
	require.Equal(t, http.StatusOK, status)
	require.True(t, solved.Solved, "basement puzzle: %s", solved.Message)

	var conclusion chat.NarrativeResponse
	status = post(t, "/v1/conclusion", chat.ConclusionRequest{
		GameStateID: gs.ID,
		Theory:      "The professor staged the disappearance to protect the research.",
	}, &conclusion)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, conclusion.Narrative)

	status = get(t, "/v1/gamestate/"+gs.ID.String(), &gs)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, gs.Completed)

	// Cleanup
	delReq, err := http.NewRequest(http.MethodDelete, baseURL+"/v1/gamestate/"+gs.ID.String(), nil)
	require.NoError(t, err)
	delResp, err := httpClient.Do(delReq)
	require.NoError(t, err)
	_ = delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
}

func TestNotesAndHints(t *testing.T) {
	var gs state.GameState
	status := post(t, "/v1/gamestate", nil, &gs)
	require.Equal(t, http.StatusCreated, status)

	status = post(t, "/v1/notes", chat.NoteRequest{
		GameStateID: gs.ID,
		Text:        "The study feels staged.",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var hints struct {
		Hints []string `json:"hints"`
	}
	status = get(t, "/v1/hints/"+gs.ID.String(), &hints)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, hints.Hints)
}
