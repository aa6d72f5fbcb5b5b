package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/jwebster45206/mystery-room/internal/chain"
	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/match"
	"github.com/jwebster45206/mystery-room/pkg/narrative"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

// ResolveAction resolves a free-text player action in the session's
// current scene. The keyword matcher runs first; its candidates are fed
// to the model as a hint, and the model's tagged discoveries are merged
// back in. Discoveries outside the scene's clue set are ignored.
func (e *Engine) ResolveAction(ctx context.Context, gs *state.GameState, actionText string) (*chat.ActionResponse, error) {
	scene := e.catalog.Scene(gs.CurrentScene)
	if scene == nil {
		return nil, fmt.Errorf("unknown scene %q", gs.CurrentScene)
	}

	matched := match.Match(e.catalog, scene.ID, actionText)

	res := e.gateway.Generate(ctx, &narrative.Request{
		Type:            narrative.SceneAction,
		SceneID:         scene.ID,
		Action:          actionText,
		LikelyClues:     matched,
		DiscoveredClues: gs.DiscoveredClueIDs(),
	})

	revealed := e.mergeRevealed(scene.ID, matched, res.Tags.ClueIDs)

	var newlyDiscovered []string
	for _, id := range revealed {
		if gs.DiscoverClue(id) {
			newlyDiscovered = append(newlyDiscovered, id)
		}
	}

	// Side channels fire only after local state reflects the discovery.
	for _, id := range newlyDiscovered {
		if err := e.publisher.PublishClueDiscovered(ctx, gs.ID, id); err != nil {
			e.logger.Warn("Failed to publish clue discovered event", "error", err)
		}
		err := e.recorder.RecordClueFound(ctx, chain.ClueRecord{
			GameID:  gs.ID.String(),
			ClueID:  id,
			SceneID: scene.ID,
		})
		if err != nil && err != chain.ErrUnavailable {
			e.logger.Warn("Failed to record clue discovery", "clue", id, "error", err)
		}
	}

	// Discovering the last clue can complete a puzzle-less scene.
	if len(newlyDiscovered) > 0 {
		e.checkSceneCompletion(ctx, gs, scene.ID)
	}

	success := res.Tags.Success || len(revealed) > 0
	outcome := res.Content + clueSuffix(len(revealed))

	var suggestion string
	if !success && len(revealed) == 0 {
		suggestion = match.Suggest(e.catalog, scene.ID, actionText)
	}

	gs.RecordAction(state.ActionRecord{
		SceneID: scene.ID,
		Action:  actionText,
		Success: success,
		At:      time.Now().UTC(),
	})

	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return nil, fmt.Errorf("failed to save gamestate: %w", err)
	}

	ss := gs.SceneStatusFor(scene.ID)
	return &chat.ActionResponse{
		GameStateID:     gs.ID,
		Outcome:         outcome,
		DiscoveredClues: revealed,
		Success:         success,
		HintGiven:       res.Tags.HintGiven,
		Suggestion:      suggestion,
		Progress:        gs.Progress(e.catalog.TotalClues()),
		SceneCompleted:  ss.Completed,
		GameCompleted:   gs.Completed,
	}, nil
}

// mergeRevealed unions matcher and model discoveries, keeping matcher
// order first and dropping ids that do not belong to the scene.
func (e *Engine) mergeRevealed(sceneID string, matched, suggested []string) []string {
	inScene := make(map[string]bool)
	if scene := e.catalog.Scene(sceneID); scene != nil {
		for _, id := range scene.ClueIDs {
			inScene[id] = true
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, id := range append(append([]string{}, matched...), suggested...) {
		if inScene[id] && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// clueSuffix appends the discovery banner the player sees under the
// action narrative.
func clueSuffix(n int) string {
	switch {
	case n == 1:
		return "\n\n*You found a clue!* Examine your evidence collection to learn more."
	case n > 1:
		return fmt.Sprintf("\n\n*You found %d clues!* Examine your evidence collection to learn more.", n)
	default:
		return ""
	}
}
