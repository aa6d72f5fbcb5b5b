package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/pkg/chat"
)

// ActionHandler resolves free-text investigation actions.
type ActionHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewActionHandler(engine *engine.Engine, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *ActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for action endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var req chat.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in action request", "error", err)
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

	resp, err := h.engine.ResolveAction(r.Context(), gs, req.Action)
	if err != nil {
		h.logger.Error("Failed to resolve action", "error", err, "id", req.GameStateID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to resolve action")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}
