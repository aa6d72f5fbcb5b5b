package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/internal/services"
	"github.com/jwebster45206/mystery-room/pkg/catalog"
)

// SceneSummary is the catalog view of a scene exposed to clients.
type SceneSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	BackgroundImage string `json:"background_image,omitempty"`
	ClueCount       int    `json:"clue_count"`
	HasPuzzle       bool   `json:"has_puzzle"`
}

// ClueSummary names a clue without revealing its examination content.
type ClueSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SceneDetail is a single scene with its clue roster.
type SceneDetail struct {
	SceneSummary
	Clues []ClueSummary `json:"clues"`
}

// PuzzlePrompt is the player-facing portion of a puzzle configuration.
// Solution fields are never serialized here.
type PuzzlePrompt struct {
	SceneID     string             `json:"scene_id"`
	Type        catalog.PuzzleType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Items       []string           `json:"items,omitempty"`
	Pairs       []catalog.Pair     `json:"pairs,omitempty"`
	Code        string             `json:"code,omitempty"`
	Hints       map[string]string  `json:"hints,omitempty"`
}

// SceneImageResponse carries a scene background. Image holds base64 PNG
// data when generation succeeded; ImageURL falls back to a static asset.
type SceneImageResponse struct {
	SceneID  string `json:"scene_id"`
	Image    string `json:"image,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// ScenesHandler serves the static scene catalog and per-session scene
// narratives.
// Routes:
// GET /v1/scenes                          - List scenes
// GET /v1/scenes/{id}                     - Scene detail with clue roster
// GET /v1/scenes/{id}/puzzle              - Player-facing puzzle prompt
// GET /v1/scenes/{id}/image               - Generated or static background
// GET /v1/scenes/{id}/narrative?gamestate_id={id}&force=true - Scene narrative
type ScenesHandler struct {
	engine *engine.Engine
	images services.ImageService
	logger *slog.Logger
}

// NewScenesHandler builds the handler. images may be nil, in which case
// the image route serves static placeholders only.
func NewScenesHandler(engine *engine.Engine, images services.ImageService, logger *slog.Logger) *ScenesHandler {
	return &ScenesHandler{
		engine: engine,
		images: images,
		logger: logger,
	}
}

func (h *ScenesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for scenes endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/scenes"), "/")
	parts := []string{}
	if path != "" {
		parts = strings.Split(path, "/")
	}

	switch {
	case len(parts) == 0:
		h.handleList(w)

	case len(parts) == 1:
		h.handleDetail(w, parts[0])

	case len(parts) == 2 && parts[1] == "puzzle":
		h.handlePuzzle(w, parts[0])

	case len(parts) == 2 && parts[1] == "image":
		h.handleImage(w, r, parts[0])

	case len(parts) == 2 && parts[1] == "narrative":
		h.handleNarrative(w, r, parts[0])

	default:
		writeError(w, h.logger, http.StatusNotFound, "Not found")
	}
}

func (h *ScenesHandler) handleList(w http.ResponseWriter) {
	c := h.engine.Catalog()
	scenes := c.Scenes()
	out := make([]SceneSummary, 0, len(scenes))
	for _, s := range scenes {
		out = append(out, h.summary(s))
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

func (h *ScenesHandler) handleDetail(w http.ResponseWriter, sceneID string) {
	c := h.engine.Catalog()
	scene := c.Scene(sceneID)
	if scene == nil {
		writeError(w, h.logger, http.StatusNotFound, "Scene not found")
		return
	}

	detail := SceneDetail{SceneSummary: h.summary(scene)}
	for _, clue := range c.CluesForScene(sceneID) {
		detail.Clues = append(detail.Clues, ClueSummary{ID: clue.ID, Name: clue.Name})
	}
	writeJSON(w, h.logger, http.StatusOK, detail)
}

func (h *ScenesHandler) handlePuzzle(w http.ResponseWriter, sceneID string) {
	c := h.engine.Catalog()
	if c.Scene(sceneID) == nil {
		writeError(w, h.logger, http.StatusNotFound, "Scene not found")
		return
	}
	cfg := c.Puzzle(sceneID)
	if cfg == nil {
		writeError(w, h.logger, http.StatusNotFound, "Scene has no puzzle")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, PuzzlePrompt{
		SceneID:     sceneID,
		Type:        cfg.Type,
		Title:       cfg.Title,
		Description: cfg.Description,
		Items:       cfg.Items,
		Pairs:       cfg.Pairs,
		Code:        cfg.Code,
		Hints:       cfg.Hints,
	})
}

func (h *ScenesHandler) handleImage(w http.ResponseWriter, r *http.Request, sceneID string) {
	scene := h.engine.Catalog().Scene(sceneID)
	if scene == nil {
		writeError(w, h.logger, http.StatusNotFound, "Scene not found")
		return
	}

	if h.images != nil {
		data, err := h.images.GenerateSceneImage(r.Context(), scene)
		if err == nil {
			writeJSON(w, h.logger, http.StatusOK, SceneImageResponse{SceneID: sceneID, Image: data})
			return
		}
		h.logger.Warn("Scene image generation failed, serving placeholder", "scene", sceneID, "error", err)
	}

	writeJSON(w, h.logger, http.StatusOK, SceneImageResponse{
		SceneID:  sceneID,
		ImageURL: services.PlaceholderImage(scene),
	})
}

func (h *ScenesHandler) handleNarrative(w http.ResponseWriter, r *http.Request, sceneID string) {
	rawID := r.URL.Query().Get("gamestate_id")
	if rawID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "gamestate_id query parameter is required")
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game state ID format")
		return
	}

	gs, ok := loadGame(w, r, h.engine, h.logger, id)
	if !ok {
		return
	}

	force := r.URL.Query().Get("force") == "true"
	resp, err := h.engine.SceneNarrative(r.Context(), gs, sceneID, force)
	if err != nil {
		writeError(w, h.logger, http.StatusNotFound, "Scene not found")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

func (h *ScenesHandler) summary(s *catalog.Scene) SceneSummary {
	return SceneSummary{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		BackgroundImage: s.BackgroundImage,
		ClueCount:       len(s.ClueIDs),
		HasPuzzle:       h.engine.Catalog().Puzzle(s.ID) != nil,
	}
}
