package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/mystery-room/internal/engine"
)

type GameStateHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewGameStateHandler(engine *engine.Engine, logger *slog.Logger) *GameStateHandler {
	return &GameStateHandler{
		engine: engine,
		logger: logger,
	}
}

// ServeHTTP handles HTTP requests for game state operations
// Routes:
// POST /v1/gamestate              - Create new game state
// GET /v1/gamestate/{id}          - Read game state by ID
// DELETE /v1/gamestate/{id}       - Delete game state by ID
// POST /v1/gamestate/{id}/restart - Reset progress, keeping the session ID
func (h *GameStateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/gamestate"), "/")
	parts := []string{}
	if path != "" {
		parts = strings.Split(path, "/")
	}

	var gameStateID uuid.UUID
	var err error
	if len(parts) > 0 {
		gameStateID, err = uuid.Parse(parts[0])
		if err != nil {
			h.logger.Warn("Invalid game state ID", "id", parts[0], "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid game state ID format")
			return
		}
	}

	switch {
	case r.Method == http.MethodPost && len(parts) == 0:
		h.handleCreate(w, r)

	case r.Method == http.MethodPost && len(parts) == 2 && parts[1] == "restart":
		h.handleRestart(w, r, gameStateID)

	case r.Method == http.MethodGet && len(parts) == 1:
		h.handleRead(w, r, gameStateID)

	case r.Method == http.MethodDelete && len(parts) == 1:
		h.handleDelete(w, r, gameStateID)

	default:
		h.logger.Warn("Unsupported game state route", "method", r.Method, "path", r.URL.Path)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported: POST, GET, DELETE")
	}
}

func (h *GameStateHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new game state")

	gs, err := h.engine.CreateGame(r.Context())
	if err != nil {
		h.logger.Error("Failed to create game state", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create game state")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, gs)
}

func (h *GameStateHandler) handleRead(w http.ResponseWriter, r *http.Request, gameStateID uuid.UUID) {
	gs, err := h.engine.LoadGame(r.Context(), gameStateID)
	if err != nil {
		h.logger.Error("Failed to load game state", "error", err, "id", gameStateID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		h.logger.Warn("Game state not found", "id", gameStateID.String())
		writeError(w, h.logger, http.StatusNotFound, "Game state not found")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, gs)
}

func (h *GameStateHandler) handleRestart(w http.ResponseWriter, r *http.Request, gameStateID uuid.UUID) {
	gs, err := h.engine.LoadGame(r.Context(), gameStateID)
	if err != nil {
		h.logger.Error("Failed to load game state for restart", "error", err, "id", gameStateID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Game state not found")
		return
	}

	if err := h.engine.RestartGame(r.Context(), gs); err != nil {
		h.logger.Error("Failed to restart game state", "error", err, "id", gameStateID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to restart game state")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, gs)
}

func (h *GameStateHandler) handleDelete(w http.ResponseWriter, r *http.Request, gameStateID uuid.UUID) {
	if err := h.engine.DeleteGame(r.Context(), gameStateID); err != nil {
		h.logger.Error("Failed to delete game state", "error", err, "id", gameStateID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete game state")
		return
	}
	h.logger.Debug("Game state deleted successfully", "id", gameStateID.String())
	w.WriteHeader(http.StatusNoContent)
}
