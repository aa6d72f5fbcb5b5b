package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/puzzle"
)

func TestNewGameState(t *testing.T) {
	c := catalog.Default()
	gs := NewGameState(c)

	assert.NotEqual(t, "", gs.ID.String())
	assert.Equal(t, "The Vanished Professor", gs.CaseName)
	assert.Equal(t, "study", gs.CurrentScene)
	assert.Len(t, gs.Clues, 15)
	assert.Len(t, gs.Scenes, 3)
	assert.Equal(t, 0, gs.Progress(c.TotalClues()))

	for id, ss := range gs.Scenes {
		assert.Equal(t, puzzle.StatusNotAttempted, ss.Puzzle, id)
		assert.False(t, ss.Completed, id)
	}
}

func TestDiscoverClue_Idempotent(t *testing.T) {
	gs := NewGameState(catalog.Default())

	assert.True(t, gs.DiscoverClue("drawer"))
	assert.False(t, gs.DiscoverClue("drawer"), "second discovery is a no-op")
	assert.Equal(t, 1, gs.DiscoveredCount())

	assert.False(t, gs.DiscoverClue("ghost"), "unknown ids are ignored")
	assert.Equal(t, 1, gs.DiscoveredCount())
}

func TestExamineClue_ImpliesDiscovery(t *testing.T) {
	gs := NewGameState(catalog.Default())

	assert.True(t, gs.ExamineClue("painting"))
	cs := gs.Clues["painting"]
	assert.True(t, cs.Discovered)
	assert.True(t, cs.Examined)

	assert.False(t, gs.ExamineClue("painting"))
	assert.Equal(t, 1, gs.DiscoveredCount())
	assert.Equal(t, 1, gs.ExaminedCount())
}

func TestProgress(t *testing.T) {
	c := catalog.Default()
	gs := NewGameState(c)

	discovered := []string{"drawer", "painting", "letters", "bookshelf", "paperweight", "book"}
	for _, id := range discovered {
		gs.DiscoverClue(id)
	}
	for _, id := range discovered[:3] {
		gs.ExamineClue(id)
	}

	// 6 of 15 discovered and 3 of 15 examined: 20 + 10
	assert.Equal(t, 30, gs.Progress(c.TotalClues()))
	assert.Equal(t, 0, gs.Progress(0))
}

func TestProgress_Complete(t *testing.T) {
	c := catalog.Default()
	gs := NewGameState(c)

	for _, s := range c.Scenes() {
		for _, id := range s.ClueIDs {
			gs.ExamineClue(id)
		}
	}
	assert.Equal(t, 100, gs.Progress(c.TotalClues()))
}

func TestDiscoveredClueIDs_Sorted(t *testing.T) {
	gs := NewGameState(catalog.Default())
	gs.DiscoverClue("window")
	gs.DiscoverClue("drawer")
	gs.DiscoverClue("lockbox")

	assert.Equal(t, []string{"drawer", "lockbox", "window"}, gs.DiscoveredClueIDs())
}

func TestRecordAction_Bounded(t *testing.T) {
	gs := NewGameState(catalog.Default())

	for i := 0; i < ActionHistoryLimit+5; i++ {
		gs.RecordAction(ActionRecord{SceneID: "study", Action: fmt.Sprintf("action %d", i)})
	}

	require.Len(t, gs.ActionHistory, ActionHistoryLimit)
	assert.Equal(t, "action 5", gs.ActionHistory[0].Action)
	assert.Equal(t, fmt.Sprintf("action %d", ActionHistoryLimit+4), gs.ActionHistory[ActionHistoryLimit-1].Action)
}

func TestNotes(t *testing.T) {
	gs := NewGameState(catalog.Default())

	note := gs.AddNote("the letters are threats")
	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, "the letters are threats", note.Content)
	assert.False(t, note.Timestamp.IsZero())
	require.Len(t, gs.Notes, 1)

	// Edit refreshes the timestamp along with the content.
	gs.Notes[0].Timestamp = gs.Notes[0].Timestamp.Add(-time.Hour)
	stale := gs.Notes[0].Timestamp
	require.NoError(t, gs.EditNote(note.ID, "the letters predate the disappearance"))
	assert.Equal(t, "the letters predate the disappearance", gs.Notes[0].Content)
	assert.True(t, gs.Notes[0].Timestamp.After(stale))
	assert.Equal(t, note.ID, gs.Notes[0].ID, "edit keeps the note id")

	assert.Error(t, gs.EditNote(uuid.New(), "x"))
	assert.Error(t, gs.DeleteNote(uuid.New()))

	require.NoError(t, gs.DeleteNote(note.ID))
	assert.Empty(t, gs.Notes)
}

func TestSceneCluesComplete(t *testing.T) {
	c := catalog.Default()
	gs := NewGameState(c)
	study := c.Scene("study")

	assert.False(t, gs.SceneCluesComplete(study))
	assert.False(t, gs.SceneCluesComplete(nil))

	for _, id := range study.ClueIDs[:len(study.ClueIDs)-1] {
		gs.DiscoverClue(id)
	}
	assert.False(t, gs.SceneCluesComplete(study), "one clue still undiscovered")

	gs.DiscoverClue(study.ClueIDs[len(study.ClueIDs)-1])
	assert.True(t, gs.SceneCluesComplete(study), "discovery completes the set without examination")
}

func TestRestart(t *testing.T) {
	c := catalog.Default()
	gs := NewGameState(c)
	id := gs.ID

	gs.ExamineClue("drawer")
	gs.AddNote("a note")
	gs.CurrentScene = "basement"
	gs.SceneStatusFor("study").Completed = true
	gs.StartedAt = gs.StartedAt.Add(-time.Hour)

	gs.Restart(c)

	assert.Equal(t, id, gs.ID, "restart keeps the session id")
	assert.Equal(t, "study", gs.CurrentScene)
	assert.Equal(t, 0, gs.DiscoveredCount())
	assert.Empty(t, gs.Notes)
	assert.False(t, gs.Scenes["study"].Completed)
	assert.Less(t, gs.Elapsed(), time.Minute, "restart resets the session timer")
}
