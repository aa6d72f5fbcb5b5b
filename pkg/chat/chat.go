package chat

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxMessageLength bounds free-text player input. Longer submissions are
// rejected before any model call is made.
const MaxMessageLength = 1000

const (
	ChatRoleUser   = "user"      // Player
	ChatRoleAgent  = "assistant" // Narrator prose from the model
	ChatRoleSystem = "system"    // Engine instructions
)

// ChatMessage is a single message in a model conversation. The shape
// follows the common chat-completions wire format.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// ActionRequest is a free-text investigation attempt submitted by the player.
type ActionRequest struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	Action      string    `json:"action"`
}

func (ar *ActionRequest) Validate() error {
	if ar.Action == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if len(ar.Action) > MaxMessageLength {
		return fmt.Errorf("action exceeds maximum length of %d characters", MaxMessageLength)
	}
	return nil
}

// ActionResponse is the resolved outcome of a player action.
type ActionResponse struct {
	GameStateID     uuid.UUID `json:"gamestate_id"`
	Outcome         string    `json:"outcome"`
	DiscoveredClues []string  `json:"discovered_clues,omitempty"`
	Success         bool      `json:"success"`
	HintGiven       bool      `json:"hint_given,omitempty"`
	Suggestion      string    `json:"suggestion,omitempty"`
	Progress        int       `json:"progress"`
	SceneCompleted  bool      `json:"scene_completed,omitempty"`
	GameCompleted   bool      `json:"game_completed,omitempty"`
}

// ExamineRequest asks for an enriched description of a discovered clue.
type ExamineRequest struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	ClueID      string    `json:"clue_id"`
}

func (er *ExamineRequest) Validate() error {
	if er.ClueID == "" {
		return fmt.Errorf("clue_id cannot be empty")
	}
	return nil
}

// ExamineResponse carries the narrative examination text for a clue.
type ExamineResponse struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	ClueID      string    `json:"clue_id"`
	Narrative   string    `json:"narrative"`
	Progress    int       `json:"progress"`
}

// NoteRequest creates or edits a player note.
type NoteRequest struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	Text        string    `json:"text"`
}

func (nr *NoteRequest) Validate() error {
	if nr.Text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if len(nr.Text) > MaxMessageLength {
		return fmt.Errorf("text exceeds maximum length of %d characters", MaxMessageLength)
	}
	return nil
}

// PuzzleRequest is a solution attempt for a scene's capstone puzzle.
type PuzzleRequest struct {
	GameStateID uuid.UUID   `json:"gamestate_id"`
	SceneID     string      `json:"scene_id"`
	Sequence    []string    `json:"sequence,omitempty"`
	Pairs       [][2]string `json:"pairs,omitempty"`
	Code        string      `json:"code,omitempty"`
}

func (pr *PuzzleRequest) Validate() error {
	if pr.SceneID == "" {
		return fmt.Errorf("scene_id cannot be empty")
	}
	return nil
}

// ProgressionRequest asks for a narrative connecting the evidence
// gathered so far.
type ProgressionRequest struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	Context     string    `json:"context,omitempty"`
}

func (pr *ProgressionRequest) Validate() error {
	if len(pr.Context) > MaxMessageLength {
		return fmt.Errorf("context exceeds maximum length of %d characters", MaxMessageLength)
	}
	return nil
}

// ConclusionRequest submits the player's theory of the case.
type ConclusionRequest struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	Theory      string    `json:"theory,omitempty"`
}

func (cr *ConclusionRequest) Validate() error {
	if len(cr.Theory) > MaxMessageLength {
		return fmt.Errorf("theory exceeds maximum length of %d characters", MaxMessageLength)
	}
	return nil
}

// PuzzleResponse reports the outcome of a puzzle attempt.
type PuzzleResponse struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	SceneID     string    `json:"scene_id"`
	Solved      bool      `json:"solved"`
	Message     string    `json:"message"`
	Progress    int       `json:"progress"`
}

// NarrativeResponse carries model-generated scene prose.
type NarrativeResponse struct {
	GameStateID uuid.UUID `json:"gamestate_id"`
	SceneID     string    `json:"scene_id,omitempty"`
	Narrative   string    `json:"narrative"`
}
