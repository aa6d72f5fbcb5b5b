package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/mystery-room/internal/engine"
)

// HintsResponse lists investigation tips for a session.
type HintsResponse struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	Hints       []string  `json:"hints"`
}

// HintsHandler serves progress-based investigation tips.
// Route: GET /v1/hints/{gamestate_id}
type HintsHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewHintsHandler(engine *engine.Engine, logger *slog.Logger) *HintsHandler {
	return &HintsHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *HintsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for hints endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	idStr := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/hints"), "/")
	if idStr == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Game state ID is required")
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game state ID format")
		return
	}

	gs, ok := loadGame(w, r, h.engine, h.logger, id)
	if !ok {
		return
	}

	hints := h.engine.Hints(gs)
	if hints == nil {
		hints = []string{}
	}
	writeJSON(w, h.logger, http.StatusOK, HintsResponse{GameStateID: gs.ID, Hints: hints})
}
