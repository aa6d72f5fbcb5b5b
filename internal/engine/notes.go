package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwebster45206/mystery-room/pkg/state"
)

// AddNote appends a player note and persists the session. Returns the
// created note so callers see its id and timestamp.
func (e *Engine) AddNote(ctx context.Context, gs *state.GameState, text string) (state.PlayerNote, error) {
	note := gs.AddNote(text)
	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return state.PlayerNote{}, fmt.Errorf("failed to save gamestate: %w", err)
	}
	return note, nil
}

// EditNote replaces a note's content, refreshes its timestamp and
// persists the session.
func (e *Engine) EditNote(ctx context.Context, gs *state.GameState, noteID uuid.UUID, text string) error {
	if err := gs.EditNote(noteID, text); err != nil {
		return err
	}
	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return fmt.Errorf("failed to save gamestate: %w", err)
	}
	return nil
}

// DeleteNote removes a note by id and persists the session.
func (e *Engine) DeleteNote(ctx context.Context, gs *state.GameState, noteID uuid.UUID) error {
	if err := gs.DeleteNote(noteID); err != nil {
		return err
	}
	if err := e.storage.SaveGameState(ctx, gs.ID.String(), gs); err != nil {
		return fmt.Errorf("failed to save gamestate: %w", err)
	}
	return nil
}
