// Package match maps free-text player actions to the clue ids they can
// reveal. Matching is pure and deterministic: identical input always
// produces the identical result, independent of any model call.
package match

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
)

// investigativeVerbs trigger the object-token fallback when no literal
// phrase from the scene's keyword table matches.
var investigativeVerbs = []string{"search", "examine", "inspect", "look at", "check"}

// maxSuggestDistance bounds how far a near-miss phrase may be from the
// player's action before Suggest gives up.
const maxSuggestDistance = 3

// Match returns the clue ids a free-text action can reveal in a scene.
//
// The scene's keyword table is scanned in declared order; the first
// entry whose phrase appears in the action wins. If no phrase matches
// and the action contains an investigative verb, every entry whose
// object token (the phrase minus its leading verb) appears in the
// action contributes its clue ids. Unknown scenes and blank actions
// yield an empty result.
func Match(c *catalog.Catalog, sceneID, actionText string) []string {
	action := strings.ToLower(strings.TrimSpace(actionText))
	if action == "" {
		return nil
	}

	scene := c.Scene(sceneID)
	if scene == nil {
		return nil
	}

	// Direct phrase match, first match wins.
	for _, entry := range scene.Keywords {
		if strings.Contains(action, entry.Phrase) {
			return dedupe(entry.ClueIDs)
		}
	}

	if !containsVerb(action) {
		return nil
	}

	// Object-token fallback: union every entry whose verb-stripped
	// remainder appears in the action.
	var revealed []string
	for _, entry := range scene.Keywords {
		object := objectToken(entry.Phrase)
		if object != "" && strings.Contains(action, object) {
			revealed = append(revealed, entry.ClueIDs...)
		}
	}

	return dedupe(revealed)
}

// Suggest returns the keyword phrase closest to the action when Match
// found nothing, for "did you mean" display. It never affects which
// clues an action reveals. Returns "" when nothing is close enough.
func Suggest(c *catalog.Catalog, sceneID, actionText string) string {
	action := strings.ToLower(strings.TrimSpace(actionText))
	if action == "" {
		return ""
	}

	scene := c.Scene(sceneID)
	if scene == nil {
		return ""
	}

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, entry := range scene.Keywords {
		// Strictly-smaller comparison keeps the earliest table entry
		// on ties, so suggestions are deterministic.
		if d := levenshtein.ComputeDistance(action, entry.Phrase); d < bestDist {
			best = entry.Phrase
			bestDist = d
		}
	}

	return best
}

func containsVerb(action string) bool {
	for _, verb := range investigativeVerbs {
		if strings.Contains(action, verb) {
			return true
		}
	}
	return false
}

// objectToken strips the leading verb word from a keyword phrase,
// leaving the object portion ("search writing desk" -> "writing desk").
func objectToken(phrase string) string {
	parts := strings.SplitN(phrase, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
