package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

// NotesResponse carries the session's full notebook after any change.
type NotesResponse struct {
	GameStateID uuid.UUID          `json:"gamestate_id"`
	Notes       []state.PlayerNote `json:"notes"`
}

// NotesHandler manages the player's case notebook. Notes are addressed
// by their own uuid, not by position.
// Routes:
// GET /v1/notes?gamestate_id={id}         - List notes
// POST /v1/notes                          - Add a note
// PUT /v1/notes/{note_id}                 - Edit a note
// DELETE /v1/notes/{note_id}?gamestate_id={id} - Delete a note
type NotesHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewNotesHandler(engine *engine.Engine, logger *slog.Logger) *NotesHandler {
	return &NotesHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *NotesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/notes"), "/")
	noteID := uuid.Nil
	if path != "" {
		var err error
		noteID, err = uuid.Parse(path)
		if err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "Invalid note ID format")
			return
		}
	}

	switch {
	case r.Method == http.MethodGet && path == "":
		h.handleList(w, r)

	case r.Method == http.MethodPost && path == "":
		h.handleAdd(w, r)

	case r.Method == http.MethodPut && path != "":
		h.handleEdit(w, r, noteID)

	case r.Method == http.MethodDelete && path != "":
		h.handleDelete(w, r, noteID)

	default:
		h.logger.Warn("Unsupported notes route", "method", r.Method, "path", r.URL.Path)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported: GET, POST, PUT, DELETE")
	}
}

func (h *NotesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseGameID(w, r.URL.Query().Get("gamestate_id"))
	if !ok {
		return
	}
	gs, ok := loadGame(w, r, h.engine, h.logger, id)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, NotesResponse{GameStateID: gs.ID, Notes: gs.Notes})
}

func (h *NotesHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req chat.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in note request", "error", err)
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

	if _, err := h.engine.AddNote(r.Context(), gs, req.Text); err != nil {
		h.logger.Error("Failed to add note", "error", err, "id", req.GameStateID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save note")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, NotesResponse{GameStateID: gs.ID, Notes: gs.Notes})
}

func (h *NotesHandler) handleEdit(w http.ResponseWriter, r *http.Request, noteID uuid.UUID) {
	var req chat.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in note request", "error", err)
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

	if err := h.engine.EditNote(r.Context(), gs, noteID, req.Text); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.logger, http.StatusOK, NotesResponse{GameStateID: gs.ID, Notes: gs.Notes})
}

func (h *NotesHandler) handleDelete(w http.ResponseWriter, r *http.Request, noteID uuid.UUID) {
	id, ok := h.parseGameID(w, r.URL.Query().Get("gamestate_id"))
	if !ok {
		return
	}
	gs, ok := loadGame(w, r, h.engine, h.logger, id)
	if !ok {
		return
	}

	if err := h.engine.DeleteNote(r.Context(), gs, noteID); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.logger, http.StatusOK, NotesResponse{GameStateID: gs.ID, Notes: gs.Notes})
}

func (h *NotesHandler) parseGameID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	if raw == "" {
		writeError(w, h.logger, http.StatusBadRequest, "gamestate_id query parameter is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game state ID format")
		return uuid.Nil, false
	}
	return id, true
}
