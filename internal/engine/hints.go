package engine

import (
	"fmt"

	"github.com/jwebster45206/mystery-room/pkg/state"
)

// Hints derives investigation tips from session progress. The list is a
// pure function of state, so repeated calls with unchanged progress
// return the same hints.
func (e *Engine) Hints(gs *state.GameState) []string {
	if gs.Completed {
		return nil
	}

	discovered := gs.DiscoveredCount()
	examined := gs.ExaminedCount()

	var hints []string

	if discovered == 0 {
		hints = append(hints, "Look around the scene carefully. There are clues hidden in plain sight.")
	}

	if discovered > 0 && examined == 0 {
		hints = append(hints, "Don't just discover clues - examine them closely to reveal hidden details.")
	}

	noteLen := 0
	for _, n := range gs.Notes {
		noteLen += len(n.Content)
	}
	if discovered >= 2 && examined >= 2 && noteLen < 50 {
		hints = append(hints, "Take notes on your findings to help connect the evidence.")
	}

	scene := e.catalog.Scene(gs.CurrentScene)
	if scene != nil {
		undiscovered := len(scene.ClueIDs) - e.discoveredInScene(gs, scene)
		if undiscovered == 1 {
			hints = append(hints, "There's still one more clue to discover in this scene.")
		}

		if undiscovered == 0 {
			if next := e.nextScene(scene.ID); next != "" {
				if nextScene := e.catalog.Scene(next); nextScene != nil {
					hints = append(hints, fmt.Sprintf("Consider exploring %s for more clues.", nextScene.Name))
				}
			}
		}
	}

	return hints
}
