package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 15, c.TotalClues())
	assert.Len(t, c.Scenes(), 3)

	study := c.Scene("study")
	require.NotNil(t, study)
	assert.Equal(t, "Professor's Study", study.Name)
	assert.Len(t, study.ClueIDs, 5)

	// Every scene owns its listed clues
	for _, s := range c.Scenes() {
		for _, id := range s.ClueIDs {
			cl := c.Clue(id)
			require.NotNil(t, cl, "clue %s missing", id)
			assert.Equal(t, s.ID, cl.SceneID)
		}
	}
}

func TestCatalog_UnknownIDs(t *testing.T) {
	c := Default()

	assert.Nil(t, c.Scene("attic"))
	assert.Nil(t, c.Clue("ghost"))
	assert.Nil(t, c.Puzzle("attic"))
	assert.Empty(t, c.CluesForScene("attic"))
}

func TestCatalog_CluesForSceneOrder(t *testing.T) {
	c := Default()

	clues := c.CluesForScene("library")
	require.Len(t, clues, 5)

	want := []string{"book", "desk", "window", "catalog", "floorboard"}
	for i, cl := range clues {
		assert.Equal(t, want[i], cl.ID)
	}
}

func TestCatalog_Puzzles(t *testing.T) {
	c := Default()

	p := c.Puzzle("study")
	require.NotNil(t, p)
	assert.Equal(t, PuzzleSequence, p.Type)
	assert.Equal(t, []string{"letters", "bookshelf", "painting", "drawer", "paperweight"}, p.SolutionSequence)

	p = c.Puzzle("basement")
	require.NotNil(t, p)
	assert.Equal(t, PuzzleCode, p.Type)
	assert.Equal(t, "TRUTH", p.SolutionCode)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		scenes []Scene
		clues  []Clue
	}{
		{
			name:   "clue references unknown scene",
			scenes: []Scene{{ID: "study"}},
			clues:  []Clue{{ID: "drawer", SceneID: "attic"}},
		},
		{
			name:   "scene lists unknown clue",
			scenes: []Scene{{ID: "study", ClueIDs: []string{"drawer"}}},
			clues:  nil,
		},
		{
			name:   "duplicate scene id",
			scenes: []Scene{{ID: "study"}, {ID: "study"}},
			clues:  nil,
		},
		{
			name:   "clue listed by wrong scene",
			scenes: []Scene{{ID: "study", ClueIDs: []string{"drawer"}}, {ID: "attic"}},
			clues:  []Clue{{ID: "drawer", SceneID: "attic"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("bad", tt.scenes, tt.clues, nil)
			assert.Error(t, err)
		})
	}
}

func TestNew_DerivesNames(t *testing.T) {
	c, err := New("case",
		[]Scene{{ID: "wine_cellar", ClueIDs: []string{"broken_bottle"}}},
		[]Clue{{ID: "broken_bottle", SceneID: "wine_cellar"}},
		nil)
	require.NoError(t, err)

	assert.Equal(t, "Wine Cellar", c.Scene("wine_cellar").Name)
	assert.Equal(t, "Broken Bottle", c.Clue("broken_bottle").Name)
}

func TestPair_Matches(t *testing.T) {
	p := Pair{"book", "catalog"}

	assert.True(t, p.Matches(Pair{"book", "catalog"}))
	assert.True(t, p.Matches(Pair{"catalog", "book"}))
	assert.False(t, p.Matches(Pair{"book", "desk"}))
}
