// Package chain mirrors investigation milestones to an external ledger
// relay. Recording is best-effort: local game state is always the source
// of truth and a relay failure never rolls it back.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrUnavailable is returned by the Unavailable recorder and by callers
// that want to treat relay outages uniformly.
var ErrUnavailable = errors.New("chain relay unavailable")

// ClueRecord describes a discovered clue milestone.
type ClueRecord struct {
	GameID  string `json:"game_id"`
	ClueID  string `json:"clue_id"`
	SceneID string `json:"scene_id"`
}

// SceneRecord describes a completed scene milestone.
type SceneRecord struct {
	GameID        string        `json:"game_id"`
	SceneID       string        `json:"scene_id"`
	CluesFound    int           `json:"clues_found"`
	Elapsed       time.Duration `json:"elapsed"`
	GameCompleted bool          `json:"game_completed"`
	FinalProgress int           `json:"final_progress"`
}

// Recorder mirrors gameplay milestones to a ledger.
type Recorder interface {
	// RecordClueFound mirrors a clue discovery.
	RecordClueFound(ctx context.Context, rec ClueRecord) error

	// RecordSceneComplete mirrors a scene completion, with final score
	// data when the whole case is closed.
	RecordSceneComplete(ctx context.Context, rec SceneRecord) error

	// Balance returns the session's accumulated ledger score.
	Balance(ctx context.Context, gameID string) (int64, error)
}

// Unavailable is the Recorder used when no relay is configured. Every
// call fails with ErrUnavailable.
type Unavailable struct{}

var _ Recorder = Unavailable{}

func (Unavailable) RecordClueFound(ctx context.Context, rec ClueRecord) error {
	return ErrUnavailable
}

func (Unavailable) RecordSceneComplete(ctx context.Context, rec SceneRecord) error {
	return ErrUnavailable
}

func (Unavailable) Balance(ctx context.Context, gameID string) (int64, error) {
	return 0, ErrUnavailable
}

// HTTPRecorder implements Recorder against a JSON relay service that
// signs and submits the underlying transactions.
type HTTPRecorder struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Recorder = (*HTTPRecorder)(nil)

func NewHTTPRecorder(baseURL string, logger *slog.Logger) *HTTPRecorder {
	return &HTTPRecorder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (h *HTTPRecorder) RecordClueFound(ctx context.Context, rec ClueRecord) error {
	return h.post(ctx, "/v1/clues", rec)
}

func (h *HTTPRecorder) RecordSceneComplete(ctx context.Context, rec SceneRecord) error {
	return h.post(ctx, "/v1/scenes", rec)
}

func (h *HTTPRecorder) Balance(ctx context.Context, gameID string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/v1/balance/"+gameID, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("relay request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		Balance int64 `json:"balance"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}

	return out.Balance, nil
}

func (h *HTTPRecorder) post(ctx context.Context, path string, payload any) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", h.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("relay request failed with status %d: %s", resp.StatusCode, string(body))
	}

	h.logger.Debug("Milestone recorded", "path", path)
	return nil
}
