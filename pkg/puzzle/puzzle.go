// Package puzzle validates capstone puzzle attempts. Validation is pure:
// the same config and attempt always produce the same verdict.
package puzzle

import (
	"strings"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
)

// Status is the lifecycle of a scene's puzzle. Solved is terminal.
type Status string

const (
	StatusNotAttempted Status = "not_attempted"
	StatusInProgress   Status = "in_progress"
	StatusSolved       Status = "solved"
)

// Player-facing verdict messages.
const (
	SolvedMessage = "Excellent work, detective! You've solved the puzzle and unlocked the next scene."
	FailedMessage = "That's not quite right. Review the clues again and try a different approach."
)

// Solution is a player's attempt. Exactly one field is meaningful,
// selected by the puzzle's type.
type Solution struct {
	Sequence []string       `json:"sequence,omitempty"`
	Pairs    []catalog.Pair `json:"pairs,omitempty"`
	Code     string         `json:"code,omitempty"`
}

// Validate reports whether the attempt solves the puzzle.
//
// Sequence puzzles require exact ordered equality. Connection puzzles
// require every canonical pair to be covered by some submitted pair,
// ignoring left/right order; extra submitted pairs do not fail the
// attempt. Code puzzles compare case-insensitively after trimming.
func Validate(cfg *catalog.PuzzleConfig, attempt Solution) bool {
	if cfg == nil {
		return false
	}

	switch cfg.Type {
	case catalog.PuzzleSequence:
		return sequenceMatches(cfg.SolutionSequence, attempt.Sequence)
	case catalog.PuzzleConnection:
		return pairsCovered(cfg.SolutionPairs, attempt.Pairs)
	case catalog.PuzzleCode:
		code := strings.TrimSpace(attempt.Code)
		return code != "" && strings.EqualFold(code, cfg.SolutionCode)
	default:
		return false
	}
}

// Advance returns the status after an attempt. Solved never regresses.
func Advance(current Status, solved bool) Status {
	if current == StatusSolved || solved {
		return StatusSolved
	}
	return StatusInProgress
}

func sequenceMatches(want, got []string) bool {
	if len(want) == 0 || len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func pairsCovered(want []catalog.Pair, got []catalog.Pair) bool {
	if len(want) == 0 {
		return false
	}
	for _, w := range want {
		covered := false
		for _, g := range got {
			if w.Matches(g) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
