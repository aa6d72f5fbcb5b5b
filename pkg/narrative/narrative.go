// Package narrative defines the request shapes sent to the model layer
// and the control-tag grammar embedded in model replies.
package narrative

// RequestType selects the prompt template and fallback used for a
// narrative generation request.
type RequestType string

const (
	SceneDescription RequestType = "scene_description"
	ClueExamination  RequestType = "clue_examination"
	StoryProgression RequestType = "story_progression"
	Conclusion       RequestType = "conclusion"
	SceneAction      RequestType = "scene_action"
)

// Request describes one narrative generation call. Fields beyond Type
// and SceneID are populated per request type.
type Request struct {
	Type    RequestType `json:"type"`
	SceneID string      `json:"scene_id"`

	// scene_action
	Action      string   `json:"action,omitempty"`
	LikelyClues []string `json:"likely_clues,omitempty"` // matcher output, hinted to the model

	// clue_examination
	ClueID string `json:"clue_id,omitempty"`

	// Shared player context
	DiscoveredClues []string `json:"discovered_clues,omitempty"`
	PlayerContext   string   `json:"player_context,omitempty"`

	// Force bypasses any memoized result and regenerates.
	Force bool `json:"force,omitempty"`
}
