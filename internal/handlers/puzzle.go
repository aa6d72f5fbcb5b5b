package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/pkg/chat"
)

// PuzzleHandler validates capstone puzzle attempts.
type PuzzleHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewPuzzleHandler(engine *engine.Engine, logger *slog.Logger) *PuzzleHandler {
	return &PuzzleHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *PuzzleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for puzzle endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var req chat.PuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in puzzle request", "error", err)
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

	resp, err := h.engine.AttemptPuzzle(r.Context(), gs, &req)
	if err != nil {
		if errors.Is(err, engine.ErrPuzzleLocked) {
			writeError(w, h.logger, http.StatusConflict, err.Error())
			return
		}
		h.logger.Warn("Puzzle attempt rejected", "error", err, "scene", req.SceneID)
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}
