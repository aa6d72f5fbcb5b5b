package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SceneSummary mirrors the API's scene listing shape.
type SceneSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClueCount   int    `json:"clue_count"`
	HasPuzzle   bool   `json:"has_puzzle"`
}

// PuzzlePrompt mirrors the API's player-facing puzzle view.
type PuzzlePrompt struct {
	SceneID     string            `json:"scene_id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Items       []string          `json:"items,omitempty"`
	Pairs       [][2]string       `json:"pairs,omitempty"`
	Code        string            `json:"code,omitempty"`
	Hints       map[string]string `json:"hints,omitempty"`
}

// HintsResponse mirrors the API's hints payload.
type HintsResponse struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	Hints       []string  `json:"hints"`
}

func decodeOrError(body []byte, status int, out any, action string) error {
	if status < 200 || status > 299 {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return fmt.Errorf("API returned status %d: %s", status, string(body))
		}
		return fmt.Errorf("failed to %s: %s", action, errorResp.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", action, err)
	}
	return nil
}

func doGet(client *http.Client, url string, out any, action string) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	return decodeOrError(body, resp.StatusCode, out, action)
}

func doPost(client *http.Client, url string, payload any, out any, action string) error {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	resp, err := client.Post(url, "application/json", reqBody)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	return decodeOrError(body, resp.StatusCode, out, action)
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func createGame(client *http.Client, baseURL string) (*state.GameState, error) {
	var gs state.GameState
	if err := doPost(client, baseURL+"/v1/gamestate", nil, &gs, "create game"); err != nil {
		return nil, err
	}
	return &gs, nil
}

func getGameState(client *http.Client, baseURL string, gameStateID uuid.UUID) (*state.GameState, error) {
	var gs state.GameState
	err := doGet(client, fmt.Sprintf("%s/v1/gamestate/%s", baseURL, gameStateID), &gs, "get game state")
	if err != nil {
		return nil, err
	}
	return &gs, nil
}

func restartGame(client *http.Client, baseURL string, gameStateID uuid.UUID) (*state.GameState, error) {
	var gs state.GameState
	err := doPost(client, fmt.Sprintf("%s/v1/gamestate/%s/restart", baseURL, gameStateID), nil, &gs, "restart game")
	if err != nil {
		return nil, err
	}
	return &gs, nil
}

func sendAction(client *http.Client, baseURL string, gameStateID uuid.UUID, action string) (*chat.ActionResponse, error) {
	var resp chat.ActionResponse
	err := doPost(client, baseURL+"/v1/action", chat.ActionRequest{
		GameStateID: gameStateID,
		Action:      action,
	}, &resp, "resolve action")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func examineClue(client *http.Client, baseURL string, gameStateID uuid.UUID, clueID string) (*chat.ExamineResponse, error) {
	var resp chat.ExamineResponse
	err := doPost(client, baseURL+"/v1/examine", chat.ExamineRequest{
		GameStateID: gameStateID,
		ClueID:      clueID,
	}, &resp, "examine clue")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func listScenes(client *http.Client, baseURL string) ([]SceneSummary, error) {
	var scenes []SceneSummary
	if err := doGet(client, baseURL+"/v1/scenes", &scenes, "list scenes"); err != nil {
		return nil, err
	}
	return scenes, nil
}

func getSceneNarrative(client *http.Client, baseURL string, sceneID string, gameStateID uuid.UUID) (*chat.NarrativeResponse, error) {
	var resp chat.NarrativeResponse
	url := fmt.Sprintf("%s/v1/scenes/%s/narrative?gamestate_id=%s", baseURL, sceneID, gameStateID)
	if err := doGet(client, url, &resp, "get scene narrative"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func getPuzzlePrompt(client *http.Client, baseURL string, sceneID string) (*PuzzlePrompt, error) {
	var prompt PuzzlePrompt
	url := fmt.Sprintf("%s/v1/scenes/%s/puzzle", baseURL, sceneID)
	if err := doGet(client, url, &prompt, "get puzzle"); err != nil {
		return nil, err
	}
	return &prompt, nil
}

func attemptPuzzle(client *http.Client, baseURL string, req chat.PuzzleRequest) (*chat.PuzzleResponse, error) {
	var resp chat.PuzzleResponse
	if err := doPost(client, baseURL+"/v1/puzzle", req, &resp, "attempt puzzle"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func addNote(client *http.Client, baseURL string, gameStateID uuid.UUID, text string) error {
	return doPost(client, baseURL+"/v1/notes", chat.NoteRequest{
		GameStateID: gameStateID,
		Text:        text,
	}, nil, "add note")
}

func getHints(client *http.Client, baseURL string, gameStateID uuid.UUID) ([]string, error) {
	var resp HintsResponse
	url := fmt.Sprintf("%s/v1/hints/%s", baseURL, gameStateID)
	if err := doGet(client, url, &resp, "get hints"); err != nil {
		return nil, err
	}
	return resp.Hints, nil
}

func sendProgression(client *http.Client, baseURL string, gameStateID uuid.UUID, playerContext string) (*chat.NarrativeResponse, error) {
	var resp chat.NarrativeResponse
	err := doPost(client, baseURL+"/v1/progression", chat.ProgressionRequest{
		GameStateID: gameStateID,
		Context:     playerContext,
	}, &resp, "get progression")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func sendConclusion(client *http.Client, baseURL string, gameStateID uuid.UUID, theory string) (*chat.NarrativeResponse, error) {
	var resp chat.NarrativeResponse
	err := doPost(client, baseURL+"/v1/conclusion", chat.ConclusionRequest{
		GameStateID: gameStateID,
		Theory:      theory,
	}, &resp, "conclude case")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SSEEvent represents an event from the SSE stream
type SSEEvent struct {
	Type string
	Data map[string]interface{}
}

// listenToSSE connects to the SSE endpoint and streams events to a channel
func listenToSSE(ctx context.Context, baseURL string, gameStateID uuid.UUID, eventChan chan<- SSEEvent) error {
	url := fmt.Sprintf("%s/v1/events/%s", baseURL, gameStateID.String())

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// Streaming connection, so no client timeout.
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to SSE: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SSE connection failed with status %d: %s", resp.StatusCode, string(body))
	}

	scanner := bufio.NewScanner(resp.Body)
	var currentEvent SSEEvent

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Text()

		if line == "" {
			// Empty line signals end of event
			if currentEvent.Type != "" {
				eventChan <- currentEvent
				currentEvent = SSEEvent{}
			}
			continue
		}

		if strings.HasPrefix(line, "event: ") {
			currentEvent.Type = strings.TrimPrefix(line, "event: ")
		} else if strings.HasPrefix(line, "data: ") {
			dataJSON := strings.TrimPrefix(line, "data: ")
			var data map[string]interface{}
			if err := json.Unmarshal([]byte(dataJSON), &data); err == nil {
				currentEvent.Data = data
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading SSE stream: %w", err)
	}

	return nil
}
