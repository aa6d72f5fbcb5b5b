package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
)

func TestMatch_DirectPhrase(t *testing.T) {
	c := catalog.Default()

	ids := Match(c, "study", "search desk")
	assert.Equal(t, []string{"drawer"}, ids)

	// Substring containment, not equality
	ids = Match(c, "study", "I want to search desk for anything unusual")
	assert.Equal(t, []string{"drawer"}, ids)

	// Case and whitespace insensitive
	ids = Match(c, "study", "  SEARCH DESK  ")
	assert.Equal(t, []string{"drawer"}, ids)
}

func TestMatch_Deterministic(t *testing.T) {
	c := catalog.Default()

	first := Match(c, "study", "search desk")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Match(c, "study", "search desk"))
	}
}

func TestMatch_FirstMatchWins(t *testing.T) {
	c, err := catalog.New("case",
		[]catalog.Scene{{
			ID:      "cellar",
			ClueIDs: []string{"cask", "ledger"},
			Keywords: []catalog.KeywordEntry{
				{Phrase: "check cask", ClueIDs: []string{"cask"}},
				{Phrase: "check cask and ledger", ClueIDs: []string{"ledger"}},
			},
		}},
		[]catalog.Clue{
			{ID: "cask", SceneID: "cellar"},
			{ID: "ledger", SceneID: "cellar"},
		}, nil)
	require.NoError(t, err)

	// Both phrases are substrings of the action; the earlier table
	// entry must win.
	ids := Match(c, "cellar", "check cask and ledger please")
	assert.Equal(t, []string{"cask"}, ids)
}

func TestMatch_VerbObjectFallback(t *testing.T) {
	c := catalog.Default()

	// "inspect the stained glass" has no literal phrase match, but the
	// investigative verb plus the object token of "examine stained
	// glass" applies.
	ids := Match(c, "library", "inspect the stained glass")
	assert.Equal(t, []string{"window"}, ids)
}

func TestMatch_FallbackUnionDedupes(t *testing.T) {
	c := catalog.Default()

	// Mentions objects for two different drawer phrases; result must
	// contain drawer exactly once.
	ids := Match(c, "study", "check the desk and the drawers")
	assert.Equal(t, []string{"drawer"}, ids)
}

func TestMatch_NoVerbNoFallback(t *testing.T) {
	c := catalog.Default()

	// Object word present but no investigative verb and no phrase hit.
	ids := Match(c, "study", "ponder the drawers")
	assert.Empty(t, ids)
}

func TestMatch_EdgeCases(t *testing.T) {
	c := catalog.Default()

	assert.Empty(t, Match(c, "attic", "search desk"), "unknown scene")
	assert.Empty(t, Match(c, "study", ""), "empty action")
	assert.Empty(t, Match(c, "study", "   "), "whitespace action")
	assert.Empty(t, Match(c, "study", "whistle a tune"), "irrelevant action")
}

func TestSuggest(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, "search desk", Suggest(c, "study", "serch desk"))
	assert.Equal(t, "", Suggest(c, "study", "fly to the moon"))
	assert.Equal(t, "", Suggest(c, "attic", "search desk"))
	assert.Equal(t, "", Suggest(c, "study", ""))
}
