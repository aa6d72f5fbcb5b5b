package prompts

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/narrative"
)

// Builder constructs the chat messages for one narrative request using a
// fluent interface. It keeps prompt assembly separate from game state.
type Builder struct {
	catalog *catalog.Catalog
	req     *narrative.Request
}

// New creates a new prompt builder.
func New() *Builder {
	return &Builder{}
}

// WithCatalog sets the evidence catalog used to resolve scene and clue text.
func (b *Builder) WithCatalog(c *catalog.Catalog) *Builder {
	b.catalog = c
	return b
}

// WithRequest sets the narrative request to build messages for.
func (b *Builder) WithRequest(req *narrative.Request) *Builder {
	b.req = req
	return b
}

// Build returns the system and user messages for the request.
func (b *Builder) Build() ([]chat.ChatMessage, error) {
	if b.catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if b.req == nil {
		return nil, fmt.Errorf("request is required")
	}

	user, err := b.userPrompt()
	if err != nil {
		return nil, err
	}

	return []chat.ChatMessage{
		{Role: chat.ChatRoleSystem, Content: SystemPrompt(b.req.Type)},
		{Role: chat.ChatRoleUser, Content: user},
	}, nil
}

func (b *Builder) userPrompt() (string, error) {
	switch b.req.Type {
	case narrative.SceneDescription:
		return b.sceneDescriptionPrompt()
	case narrative.ClueExamination:
		return b.clueExaminationPrompt()
	case narrative.StoryProgression:
		return b.storyProgressionPrompt(), nil
	case narrative.Conclusion:
		return b.conclusionPrompt(), nil
	case narrative.SceneAction:
		return b.sceneActionPrompt()
	default:
		return "", fmt.Errorf("unknown narrative request type %q", b.req.Type)
	}
}

func (b *Builder) sceneDescriptionPrompt() (string, error) {
	scene := b.catalog.Scene(b.req.SceneID)
	if scene == nil {
		return "", fmt.Errorf("unknown scene %q", b.req.SceneID)
	}

	var sb strings.Builder
	sb.WriteString("Describe the following scene in rich, atmospheric detail for a detective mystery game:\n\n")
	sb.WriteString("Scene: " + scene.Name + "\n")
	sb.WriteString("Basic Description: " + scene.Description + "\n\n")
	sb.WriteString("Provide a detailed description that sets the mood, describes the environment, and hints at 3-5 potential clues or objects of interest that the detective might want to examine further.\n")
	sb.WriteString("Make the description immersive and intriguing, appealing to multiple senses.")
	return sb.String(), nil
}

func (b *Builder) clueExaminationPrompt() (string, error) {
	clue := b.catalog.Clue(b.req.ClueID)
	if clue == nil {
		return "", fmt.Errorf("unknown clue %q", b.req.ClueID)
	}

	otherClues := "This is the first clue the detective is examining in detail."
	if names := b.discoveredNames(); len(names) > 0 {
		otherClues = "The detective has already discovered the following clues: " + strings.Join(names, ", ") + "."
	}

	var sb strings.Builder
	sb.WriteString("The detective decides to examine the following clue in detail:\n\n")
	sb.WriteString("Clue: " + clue.Name + "\n")
	sb.WriteString("Basic Description: " + clue.Description + "\n\n")
	sb.WriteString(otherClues + "\n\n")
	sb.WriteString("Provide a detailed description of what the detective discovers upon closer examination.\n")
	sb.WriteString("Include subtle hints or connections to the broader mystery, but don't reveal everything at once.\n")
	sb.WriteString("The description should be intriguing and lead to further questions or areas to investigate.")
	return sb.String(), nil
}

func (b *Builder) storyProgressionPrompt() string {
	var sb strings.Builder
	sb.WriteString("Based on the clues discovered so far, provide a narrative update on the mystery:\n\n")
	sb.WriteString("Discovered Clues:\n" + b.discoveredList() + "\n\n")
	sb.WriteString("Player's Current Thoughts:\n" + b.req.PlayerContext + "\n\n")
	sb.WriteString("Provide a narrative that connects these clues and advances the story.\n")
	sb.WriteString("Introduce new questions or possibilities based on the evidence gathered.\n")
	sb.WriteString("Suggest potential next steps or areas to investigate without being too directive.")
	return sb.String()
}

func (b *Builder) conclusionPrompt() string {
	var sb strings.Builder
	sb.WriteString("The detective is ready to solve the case based on the following clues:\n\n")
	sb.WriteString("Discovered Clues:\n" + b.discoveredList() + "\n\n")
	sb.WriteString("Detective's Reasoning:\n" + b.req.PlayerContext + "\n\n")
	sb.WriteString("Provide a dramatic conclusion to the mystery that ties together all the discovered clues.\n")
	sb.WriteString("Reveal the solution to the case in a satisfying way that explains the connections between the various pieces of evidence.\n")
	sb.WriteString("The conclusion should feel earned based on the clues that were discovered.")
	return sb.String()
}

func (b *Builder) sceneActionPrompt() (string, error) {
	scene := b.catalog.Scene(b.req.SceneID)
	if scene == nil {
		return "", fmt.Errorf("unknown scene %q", b.req.SceneID)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "The player is performing this action: %q in the %s.\n", b.req.Action, scene.Name)
	if len(b.req.LikelyClues) > 0 {
		sb.WriteString("This action may reveal the following clues: " + strings.Join(b.req.LikelyClues, ", ") + ".\n")
	}
	sb.WriteString("Consider which clues might be discovered with this action.\n")
	sb.WriteString("Describe the action and its impact on the story in 1-3 short paragraphs.\n")
	sb.WriteString(ControlTokenPrompt)
	return sb.String(), nil
}

// discoveredNames resolves the request's discovered clue ids to display
// names, skipping ids the catalog does not know.
func (b *Builder) discoveredNames() []string {
	var names []string
	for _, id := range b.req.DiscoveredClues {
		if cl := b.catalog.Clue(id); cl != nil {
			names = append(names, cl.Name)
		}
	}
	return names
}

// discoveredList renders "Name: Description" lines for discovered clues.
func (b *Builder) discoveredList() string {
	var lines []string
	for _, id := range b.req.DiscoveredClues {
		if cl := b.catalog.Clue(id); cl != nil {
			lines = append(lines, cl.Name+": "+cl.Description)
		}
	}
	return strings.Join(lines, "\n")
}

// BuildMessages is a convenience function for the common case.
func BuildMessages(c *catalog.Catalog, req *narrative.Request) ([]chat.ChatMessage, error) {
	return New().WithCatalog(c).WithRequest(req).Build()
}
