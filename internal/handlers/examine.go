package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/pkg/chat"
)

// ExamineHandler serves enriched clue examinations.
type ExamineHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewExamineHandler(engine *engine.Engine, logger *slog.Logger) *ExamineHandler {
	return &ExamineHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *ExamineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for examine endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var req chat.ExamineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in examine request", "error", err)
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

	if h.engine.Catalog().Clue(req.ClueID) == nil {
		writeError(w, h.logger, http.StatusBadRequest, "Unknown clue: "+req.ClueID)
		return
	}

	resp, err := h.engine.ExamineClue(r.Context(), gs, req.ClueID)
	if err != nil {
		h.logger.Error("Failed to examine clue", "error", err, "clue", req.ClueID)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to examine clue")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}
