package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError sends a JSON error envelope with the given status.
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// writeJSON sends a JSON body with the given status.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// loadGame fetches a session by ID, writing the error response itself
// when the session cannot be served. The bool reports success.
func loadGame(w http.ResponseWriter, r *http.Request, e *engine.Engine, logger *slog.Logger, id uuid.UUID) (*state.GameState, bool) {
	if id == uuid.Nil {
		writeError(w, logger, http.StatusBadRequest, "gamestate_id is required")
		return nil, false
	}

	gs, err := e.LoadGame(r.Context(), id)
	if err != nil {
		logger.Error("Failed to load game state", "error", err, "id", id.String())
		writeError(w, logger, http.StatusInternalServerError, "Failed to load game state")
		return nil, false
	}
	if gs == nil {
		logger.Warn("Game state not found", "id", id.String())
		writeError(w, logger, http.StatusNotFound, "Game state not found")
		return nil, false
	}
	return gs, true
}
