package state

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/puzzle"
)

// ActionHistoryLimit bounds the per-session action log. Older entries
// are dropped from the front.
const ActionHistoryLimit = 20

// ClueStatus tracks a single clue's progress within a session.
// Examined implies Discovered.
type ClueStatus struct {
	Discovered      bool   `json:"discovered"`
	Examined        bool   `json:"examined"`
	EnrichedContent string `json:"enriched_content,omitempty"` // model examination prose
}

// SceneStatus tracks a scene's progress within a session.
type SceneStatus struct {
	Completed bool          `json:"completed"`
	Puzzle    puzzle.Status `json:"puzzle"`
}

// PlayerNote is one entry in the player's case notebook.
type PlayerNote struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionRecord is one resolved player action.
type ActionRecord struct {
	SceneID string    `json:"scene_id"`
	Action  string    `json:"action"`
	Success bool      `json:"success"`
	At      time.Time `json:"at"`
}

// GameState is the full mutable state of one investigation session.
type GameState struct {
	ID            uuid.UUID               `json:"id"`
	CaseName      string                  `json:"case_name"`
	CurrentScene  string                  `json:"current_scene"`
	Scenes        map[string]*SceneStatus `json:"scenes"`
	Clues         map[string]*ClueStatus  `json:"clues"`
	Notes         []PlayerNote            `json:"notes,omitempty"`
	ActionHistory []ActionRecord          `json:"action_history,omitempty"`
	Completed     bool                    `json:"completed"`
	StartedAt     time.Time               `json:"started_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// NewGameState creates a fresh session positioned at the catalog's
// first scene, with every clue undiscovered.
func NewGameState(c *catalog.Catalog) *GameState {
	now := time.Now().UTC()
	gs := &GameState{
		ID:        uuid.New(),
		CaseName:  c.Name,
		Scenes:    make(map[string]*SceneStatus),
		Clues:     make(map[string]*ClueStatus),
		StartedAt: now,
		UpdatedAt: now,
	}

	for i, s := range c.Scenes() {
		if i == 0 {
			gs.CurrentScene = s.ID
		}
		gs.Scenes[s.ID] = &SceneStatus{Puzzle: puzzle.StatusNotAttempted}
		for _, id := range s.ClueIDs {
			gs.Clues[id] = &ClueStatus{}
		}
	}

	return gs
}

// Restart resets all progress in place, keeping only the session id.
// The session timer starts over.
func (gs *GameState) Restart(c *catalog.Catalog) {
	fresh := NewGameState(c)
	fresh.ID = gs.ID
	*gs = *fresh
}

// DiscoverClue marks a clue discovered and reports whether the call
// changed state. Unknown ids are ignored.
func (gs *GameState) DiscoverClue(id string) bool {
	cs, ok := gs.Clues[id]
	if !ok || cs.Discovered {
		return false
	}
	cs.Discovered = true
	gs.touch()
	return true
}

// ExamineClue marks a clue examined, discovering it first if needed.
// Reports whether the call changed state.
func (gs *GameState) ExamineClue(id string) bool {
	cs, ok := gs.Clues[id]
	if !ok || cs.Examined {
		return false
	}
	cs.Discovered = true
	cs.Examined = true
	gs.touch()
	return true
}

// SetEnrichedContent stores model examination prose for a clue.
func (gs *GameState) SetEnrichedContent(id, content string) {
	if cs, ok := gs.Clues[id]; ok {
		cs.EnrichedContent = content
		gs.touch()
	}
}

// RecordAction appends to the bounded action log.
func (gs *GameState) RecordAction(rec ActionRecord) {
	gs.ActionHistory = append(gs.ActionHistory, rec)
	if len(gs.ActionHistory) > ActionHistoryLimit {
		gs.ActionHistory = gs.ActionHistory[len(gs.ActionHistory)-ActionHistoryLimit:]
	}
	gs.touch()
}

// AddNote appends a player note and returns it.
func (gs *GameState) AddNote(text string) PlayerNote {
	note := PlayerNote{
		ID:        uuid.New(),
		Content:   text,
		Timestamp: time.Now().UTC(),
	}
	gs.Notes = append(gs.Notes, note)
	gs.touch()
	return note
}

// EditNote replaces a note's content and refreshes its timestamp.
func (gs *GameState) EditNote(id uuid.UUID, text string) error {
	for i := range gs.Notes {
		if gs.Notes[i].ID == id {
			gs.Notes[i].Content = text
			gs.Notes[i].Timestamp = time.Now().UTC()
			gs.touch()
			return nil
		}
	}
	return fmt.Errorf("note %s not found", id)
}

// DeleteNote removes a note by id.
func (gs *GameState) DeleteNote(id uuid.UUID) error {
	for i := range gs.Notes {
		if gs.Notes[i].ID == id {
			gs.Notes = append(gs.Notes[:i], gs.Notes[i+1:]...)
			gs.touch()
			return nil
		}
	}
	return fmt.Errorf("note %s not found", id)
}

// DiscoveredCount returns the number of discovered clues.
func (gs *GameState) DiscoveredCount() int {
	n := 0
	for _, cs := range gs.Clues {
		if cs.Discovered {
			n++
		}
	}
	return n
}

// ExaminedCount returns the number of examined clues.
func (gs *GameState) ExaminedCount() int {
	n := 0
	for _, cs := range gs.Clues {
		if cs.Examined {
			n++
		}
	}
	return n
}

// DiscoveredClueIDs returns discovered clue ids in sorted order, so the
// result is stable across calls.
func (gs *GameState) DiscoveredClueIDs() []string {
	var ids []string
	for id, cs := range gs.Clues {
		if cs.Discovered {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Progress returns overall completion as a whole percentage. Discovery
// and examination each contribute up to half, rounded down per half.
func (gs *GameState) Progress(totalClues int) int {
	if totalClues <= 0 {
		return 0
	}
	return (50*gs.DiscoveredCount())/totalClues + (50*gs.ExaminedCount())/totalClues
}

// SceneCluesComplete reports whether every clue of the scene has been
// discovered. Examination is encouraged but does not gate completion.
func (gs *GameState) SceneCluesComplete(scene *catalog.Scene) bool {
	if scene == nil || len(scene.ClueIDs) == 0 {
		return false
	}
	for _, id := range scene.ClueIDs {
		cs, ok := gs.Clues[id]
		if !ok || !cs.Discovered {
			return false
		}
	}
	return true
}

// SceneStatusFor returns the tracked status for a scene, creating it on
// first reference so callers never see nil for known scenes.
func (gs *GameState) SceneStatusFor(sceneID string) *SceneStatus {
	ss, ok := gs.Scenes[sceneID]
	if !ok {
		ss = &SceneStatus{Puzzle: puzzle.StatusNotAttempted}
		gs.Scenes[sceneID] = ss
	}
	return ss
}

// Elapsed returns how long the session has been running.
func (gs *GameState) Elapsed() time.Duration {
	return time.Since(gs.StartedAt)
}

func (gs *GameState) touch() {
	gs.UpdatedAt = time.Now().UTC()
}
