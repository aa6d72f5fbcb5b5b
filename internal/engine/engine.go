// Package engine sequences gameplay: it resolves player actions,
// tracks discovery and examination, validates puzzles and advances the
// session through scenes. All state mutation flows through here.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jwebster45206/mystery-room/internal/chain"
	"github.com/jwebster45206/mystery-room/internal/narrator"
	"github.com/jwebster45206/mystery-room/internal/services"
	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/narrative"
	"github.com/jwebster45206/mystery-room/pkg/puzzle"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

// ErrPuzzleLocked is returned for puzzle attempts made before every
// clue in the scene has been discovered.
var ErrPuzzleLocked = errors.New("puzzle is locked until all clues in the scene are discovered")

// Publisher broadcasts gameplay events. Satisfied by events.Broadcaster.
type Publisher interface {
	PublishClueDiscovered(ctx context.Context, gameID uuid.UUID, clueID string) error
	PublishClueExamined(ctx context.Context, gameID uuid.UUID, clueID string) error
	PublishPuzzleSolved(ctx context.Context, gameID uuid.UUID, sceneID string) error
	PublishSceneCompleted(ctx context.Context, gameID uuid.UUID, sceneID string, nextSceneID string) error
	PublishGameCompleted(ctx context.Context, gameID uuid.UUID, progress int) error
}

// NopPublisher discards all events.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

func (NopPublisher) PublishClueDiscovered(context.Context, uuid.UUID, string) error { return nil }
func (NopPublisher) PublishClueExamined(context.Context, uuid.UUID, string) error   { return nil }
func (NopPublisher) PublishPuzzleSolved(context.Context, uuid.UUID, string) error   { return nil }
func (NopPublisher) PublishSceneCompleted(context.Context, uuid.UUID, string, string) error {
	return nil
}
func (NopPublisher) PublishGameCompleted(context.Context, uuid.UUID, int) error { return nil }

// Engine coordinates a session's gameplay against the catalog, model
// layer, storage and optional side channels.
type Engine struct {
	catalog     *catalog.Catalog
	storage     services.Storage
	gateway     *narrator.Gateway
	coordinator *narrator.Coordinator
	recorder    chain.Recorder
	publisher   Publisher
	logger      *slog.Logger
}

func New(c *catalog.Catalog, storage services.Storage, gateway *narrator.Gateway, recorder chain.Recorder, publisher Publisher, logger *slog.Logger) *Engine {
	if recorder == nil {
		recorder = chain.Unavailable{}
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Engine{
		catalog:     c,
		storage:     storage,
		gateway:     gateway,
		coordinator: narrator.NewCoordinator(gateway),
		recorder:    recorder,
		publisher:   publisher,
		logger:      logger,
	}
}

// Catalog exposes the engine's evidence catalog for read-only use.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// CreateGame starts a new session and persists it.
func (e *Engine) CreateGame(ctx context.Context) (*state.GameState, error) {
	gs := state.NewGameState(e.catalog)
	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return nil, fmt.Errorf("failed to save gamestate: %w", err)
	}

	e.logger.Info("Game created", "game_id", gs.ID, "case", gs.CaseName)
	return gs, nil
}

// LoadGame retrieves a session. Returns nil when it does not exist.
func (e *Engine) LoadGame(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	return e.storage.LoadGameState(ctx, id.String())
}

// DeleteGame removes a session.
func (e *Engine) DeleteGame(ctx context.Context, id uuid.UUID) error {
	return e.storage.DeleteGameState(ctx, id.String())
}

// RestartGame resets a session's progress in place.
func (e *Engine) RestartGame(ctx context.Context, gs *state.GameState) error {
	gs.Restart(e.catalog)
	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return fmt.Errorf("failed to save gamestate: %w", err)
	}

	e.logger.Info("Game restarted", "game_id", gs.ID)
	return nil
}

// ExamineClue generates an enriched examination narrative for a clue and
// marks it examined. Examination implies discovery. Unknown clue ids are
// rejected before any model call.
func (e *Engine) ExamineClue(ctx context.Context, gs *state.GameState, clueID string) (*chat.ExamineResponse, error) {
	clue := e.catalog.Clue(clueID)
	if clue == nil {
		return nil, fmt.Errorf("unknown clue %q", clueID)
	}

	res := e.gateway.Generate(ctx, &narrative.Request{
		Type:            narrative.ClueExamination,
		SceneID:         clue.SceneID,
		ClueID:          clueID,
		DiscoveredClues: gs.DiscoveredClueIDs(),
	})

	changed := gs.ExamineClue(clueID)
	gs.SetEnrichedContent(clueID, res.Content)

	if changed {
		if err := e.publisher.PublishClueExamined(ctx, gs.ID, clueID); err != nil {
			e.logger.Warn("Failed to publish clue examined event", "error", err)
		}
	}

	e.checkSceneCompletion(ctx, gs, clue.SceneID)

	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return nil, fmt.Errorf("failed to save gamestate: %w", err)
	}

	return &chat.ExamineResponse{
		GameStateID: gs.ID,
		ClueID:      clueID,
		Narrative:   res.Content,
		Progress:    gs.Progress(e.catalog.TotalClues()),
	}, nil
}

// SceneNarrative returns the memoized scene description, regenerating
// when force is set or the player's discoveries changed.
func (e *Engine) SceneNarrative(ctx context.Context, gs *state.GameState, sceneID string, force bool) (*chat.NarrativeResponse, error) {
	scene := e.catalog.Scene(sceneID)
	if scene == nil {
		return nil, fmt.Errorf("unknown scene %q", sceneID)
	}

	res := e.coordinator.Generate(ctx, narrator.GenerateRequest{
		Request: &narrative.Request{
			Type:    narrative.SceneDescription,
			SceneID: sceneID,
			Force:   force,
		},
		DiscoveredCount: e.discoveredInScene(gs, scene),
	})

	return &chat.NarrativeResponse{
		GameStateID: gs.ID,
		SceneID:     sceneID,
		Narrative:   res.Content,
	}, nil
}

// AttemptPuzzle validates a capstone puzzle solution. The attempt is
// rejected until every clue in the scene is discovered.
func (e *Engine) AttemptPuzzle(ctx context.Context, gs *state.GameState, req *chat.PuzzleRequest) (*chat.PuzzleResponse, error) {
	scene := e.catalog.Scene(req.SceneID)
	if scene == nil {
		return nil, fmt.Errorf("unknown scene %q", req.SceneID)
	}
	cfg := e.catalog.Puzzle(req.SceneID)
	if cfg == nil {
		return nil, fmt.Errorf("scene %q has no puzzle", req.SceneID)
	}
	if !gs.SceneCluesComplete(scene) {
		return nil, ErrPuzzleLocked
	}

	ss := gs.SceneStatusFor(req.SceneID)
	if ss.Puzzle == puzzle.StatusSolved {
		return &chat.PuzzleResponse{
			GameStateID: gs.ID,
			SceneID:     req.SceneID,
			Solved:      true,
			Message:     puzzle.SolvedMessage,
			Progress:    gs.Progress(e.catalog.TotalClues()),
		}, nil
	}

	attempt := puzzle.Solution{
		Sequence: req.Sequence,
		Code:     req.Code,
	}
	for _, p := range req.Pairs {
		attempt.Pairs = append(attempt.Pairs, catalog.Pair(p))
	}

	solved := puzzle.Validate(cfg, attempt)
	ss.Puzzle = puzzle.Advance(ss.Puzzle, solved)

	message := puzzle.FailedMessage
	if solved {
		message = puzzle.SolvedMessage
		if err := e.publisher.PublishPuzzleSolved(ctx, gs.ID, req.SceneID); err != nil {
			e.logger.Warn("Failed to publish puzzle solved event", "error", err)
		}
		e.checkSceneCompletion(ctx, gs, req.SceneID)
	}

	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return nil, fmt.Errorf("failed to save gamestate: %w", err)
	}

	return &chat.PuzzleResponse{
		GameStateID: gs.ID,
		SceneID:     req.SceneID,
		Solved:      solved,
		Message:     message,
		Progress:    gs.Progress(e.catalog.TotalClues()),
	}, nil
}

// Progression generates a narrative update connecting the evidence so
// far. Requires at least one discovered clue.
func (e *Engine) Progression(ctx context.Context, gs *state.GameState, playerContext string) (*chat.NarrativeResponse, error) {
	if gs.DiscoveredCount() == 0 {
		return nil, fmt.Errorf("no clues discovered yet")
	}

	res := e.gateway.Generate(ctx, &narrative.Request{
		Type:            narrative.StoryProgression,
		DiscoveredClues: gs.DiscoveredClueIDs(),
		PlayerContext:   playerContext,
	})

	return &chat.NarrativeResponse{
		GameStateID: gs.ID,
		Narrative:   res.Content,
	}, nil
}

// Conclude generates the case conclusion and completes the game.
// Requires at least three examined clues.
func (e *Engine) Conclude(ctx context.Context, gs *state.GameState, playerContext string) (*chat.NarrativeResponse, error) {
	if gs.ExaminedCount() < 3 {
		return nil, fmt.Errorf("at least 3 examined clues are required to solve the case")
	}

	examined := make([]string, 0, gs.ExaminedCount())
	for _, id := range gs.DiscoveredClueIDs() {
		if cs := gs.Clues[id]; cs != nil && cs.Examined {
			examined = append(examined, id)
		}
	}

	res := e.gateway.Generate(ctx, &narrative.Request{
		Type:            narrative.Conclusion,
		DiscoveredClues: examined,
		PlayerContext:   playerContext,
	})

	if !gs.Completed {
		gs.Completed = true
		progress := gs.Progress(e.catalog.TotalClues())
		if err := e.publisher.PublishGameCompleted(ctx, gs.ID, progress); err != nil {
			e.logger.Warn("Failed to publish game completed event", "error", err)
		}
		e.recordSceneMilestone(ctx, gs, gs.CurrentScene, true)
	}

	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return nil, fmt.Errorf("failed to save gamestate: %w", err)
	}

	return &chat.NarrativeResponse{
		GameStateID: gs.ID,
		Narrative:   res.Content,
	}, nil
}

// checkSceneCompletion completes a scene once every clue is discovered
// and, for scenes with a puzzle, the puzzle is solved. Completion
// advances the session to the next scene in catalog order.
func (e *Engine) checkSceneCompletion(ctx context.Context, gs *state.GameState, sceneID string) {
	scene := e.catalog.Scene(sceneID)
	if scene == nil {
		return
	}

	ss := gs.SceneStatusFor(sceneID)
	if ss.Completed || !gs.SceneCluesComplete(scene) {
		return
	}
	if e.catalog.Puzzle(sceneID) != nil && ss.Puzzle != puzzle.StatusSolved {
		return
	}

	ss.Completed = true
	next := e.nextScene(sceneID)
	if next != "" && gs.CurrentScene == sceneID {
		gs.CurrentScene = next
	}

	e.logger.Info("Scene completed", "game_id", gs.ID, "scene", sceneID, "next", next)
	if err := e.publisher.PublishSceneCompleted(ctx, gs.ID, sceneID, next); err != nil {
		e.logger.Warn("Failed to publish scene completed event", "error", err)
	}
	e.recordSceneMilestone(ctx, gs, sceneID, next == "")
}

// recordSceneMilestone mirrors a completion to the chain relay. Local
// state is already updated; failures are logged and dropped.
func (e *Engine) recordSceneMilestone(ctx context.Context, gs *state.GameState, sceneID string, gameCompleted bool) {
	err := e.recorder.RecordSceneComplete(ctx, chain.SceneRecord{
		GameID:        gs.ID.String(),
		SceneID:       sceneID,
		CluesFound:    gs.DiscoveredCount(),
		Elapsed:       gs.Elapsed(),
		GameCompleted: gameCompleted,
		FinalProgress: gs.Progress(e.catalog.TotalClues()),
	})
	if err != nil && err != chain.ErrUnavailable {
		e.logger.Warn("Failed to record scene completion", "scene", sceneID, "error", err)
	}
}

func (e *Engine) discoveredInScene(gs *state.GameState, scene *catalog.Scene) int {
	n := 0
	for _, id := range scene.ClueIDs {
		if cs, ok := gs.Clues[id]; ok && cs.Discovered {
			n++
		}
	}
	return n
}

func (e *Engine) nextScene(sceneID string) string {
	scenes := e.catalog.Scenes()
	for i, s := range scenes {
		if s.ID == sceneID && i+1 < len(scenes) {
			return scenes[i+1].ID
		}
	}
	return ""
}
