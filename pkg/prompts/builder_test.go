package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/narrative"
)

func TestBuild_SceneDescription(t *testing.T) {
	msgs, err := BuildMessages(catalog.Default(), &narrative.Request{
		Type:    narrative.SceneDescription,
		SceneID: "study",
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, chat.ChatRoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "atmospheric, detailed descriptions")

	assert.Equal(t, chat.ChatRoleUser, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "Professor's Study")
	assert.Contains(t, msgs[1].Content, "large oak desk")
}

func TestBuild_ClueExamination(t *testing.T) {
	msgs, err := BuildMessages(catalog.Default(), &narrative.Request{
		Type:            narrative.ClueExamination,
		SceneID:         "study",
		ClueID:          "painting",
		DiscoveredClues: []string{"drawer", "painting"},
	})
	require.NoError(t, err)

	assert.Contains(t, msgs[0].Content, "examining a clue")
	assert.Contains(t, msgs[1].Content, "Crooked Painting")
	assert.Contains(t, msgs[1].Content, "already discovered the following clues: Locked Drawer, Crooked Painting.")
}

func TestBuild_ClueExamination_FirstClue(t *testing.T) {
	msgs, err := BuildMessages(catalog.Default(), &narrative.Request{
		Type:    narrative.ClueExamination,
		SceneID: "study",
		ClueID:  "drawer",
	})
	require.NoError(t, err)

	assert.Contains(t, msgs[1].Content, "first clue the detective is examining")
}

func TestBuild_SceneAction(t *testing.T) {
	msgs, err := BuildMessages(catalog.Default(), &narrative.Request{
		Type:        narrative.SceneAction,
		SceneID:     "study",
		Action:      "search desk",
		LikelyClues: []string{"drawer"},
	})
	require.NoError(t, err)

	assert.Contains(t, msgs[1].Content, `"search desk" in the Professor's Study`)
	assert.Contains(t, msgs[1].Content, "may reveal the following clues: drawer.")
	assert.Contains(t, msgs[1].Content, "CLUE_DISCOVERED:clue_id")
	assert.Contains(t, msgs[1].Content, "HINT_GIVEN")
	assert.Contains(t, msgs[1].Content, "ACTION_SUCCESS")
}

func TestBuild_SceneAction_NoLikelyClues(t *testing.T) {
	msgs, err := BuildMessages(catalog.Default(), &narrative.Request{
		Type:    narrative.SceneAction,
		SceneID: "basement",
		Action:  "whistle a tune",
	})
	require.NoError(t, err)

	assert.NotContains(t, msgs[1].Content, "may reveal the following clues")
}

func TestBuild_ProgressionAndConclusion(t *testing.T) {
	req := &narrative.Request{
		Type:            narrative.StoryProgression,
		DiscoveredClues: []string{"letters", "symbols"},
		PlayerContext:   "The letters and the wall symbols must be connected.",
	}

	msgs, err := BuildMessages(catalog.Default(), req)
	require.NoError(t, err)
	assert.Contains(t, msgs[1].Content, "Threatening Letters: A stack of letters")
	assert.Contains(t, msgs[1].Content, "Player's Current Thoughts:\nThe letters and the wall symbols must be connected.")

	req.Type = narrative.Conclusion
	msgs, err = BuildMessages(catalog.Default(), req)
	require.NoError(t, err)
	assert.Contains(t, msgs[0].Content, "dramatic conclusion")
	assert.Contains(t, msgs[1].Content, "Detective's Reasoning:")
}

func TestBuild_Errors(t *testing.T) {
	c := catalog.Default()

	_, err := BuildMessages(c, &narrative.Request{Type: narrative.SceneDescription, SceneID: "attic"})
	assert.ErrorContains(t, err, "unknown scene")

	_, err = BuildMessages(c, &narrative.Request{Type: narrative.ClueExamination, ClueID: "ghost"})
	assert.ErrorContains(t, err, "unknown clue")

	_, err = BuildMessages(c, &narrative.Request{Type: "haiku"})
	assert.ErrorContains(t, err, "unknown narrative request type")

	_, err = New().WithRequest(&narrative.Request{}).Build()
	assert.ErrorContains(t, err, "catalog is required")

	_, err = New().WithCatalog(c).Build()
	assert.ErrorContains(t, err, "request is required")
}

func TestSystemPrompt_Types(t *testing.T) {
	for _, typ := range []narrative.RequestType{
		narrative.SceneDescription,
		narrative.ClueExamination,
		narrative.StoryProgression,
		narrative.Conclusion,
		narrative.SceneAction,
	} {
		p := SystemPrompt(typ)
		assert.Contains(t, p, BaseSystemPrompt)
		assert.Greater(t, len(p), len(BaseSystemPrompt))
	}
}
