// Package prompts builds the chat messages sent to the model for each
// narrative request type.
package prompts

import "github.com/jwebster45206/mystery-room/pkg/narrative"

// BaseSystemPrompt is the shared narrator persona. A type-specific
// directive is appended per request.
const BaseSystemPrompt = "You are a creative mystery storyteller for an interactive detective game."

const (
	sceneDescriptionDirective = " Provide atmospheric, detailed descriptions that immerse the player in the mystery."
	clueExaminationDirective  = " Describe what the detective discovers upon examining a clue in detail."
	storyProgressionDirective = " Connect the discovered clues and advance the story with new questions or possibilities."
	conclusionDirective       = " Provide a dramatic conclusion that ties together all the discovered clues."
	defaultDirective          = " Provide engaging and immersive narrative content."
)

// ControlTokenPrompt instructs the model to embed machine-readable
// outcome tokens in its reply. Appended only for scene actions.
const ControlTokenPrompt = `If the player discovers a clue, include CLUE_DISCOVERED:clue_id in your response.
If you provide a hint, include HINT_GIVEN in your response.
If the action is successful, include ACTION_SUCCESS in your response.`

// SystemPrompt returns the system message content for a request type.
func SystemPrompt(t narrative.RequestType) string {
	switch t {
	case narrative.SceneDescription:
		return BaseSystemPrompt + sceneDescriptionDirective
	case narrative.ClueExamination:
		return BaseSystemPrompt + clueExaminationDirective
	case narrative.StoryProgression:
		return BaseSystemPrompt + storyProgressionDirective
	case narrative.Conclusion:
		return BaseSystemPrompt + conclusionDirective
	default:
		return BaseSystemPrompt + defaultDirective
	}
}
