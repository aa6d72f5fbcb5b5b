package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/pkg/chat"
)

// ProgressionHandler narrates how the evidence gathered so far connects.
type ProgressionHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewProgressionHandler(engine *engine.Engine, logger *slog.Logger) *ProgressionHandler {
	return &ProgressionHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *ProgressionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for progression endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var req chat.ProgressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in progression request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	gs, ok := loadGame(w, r, h.engine, h.logger, req.GameStateID)
	if !ok {
		return
	}

	resp, err := h.engine.Progression(r.Context(), gs, req.Context)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}
