package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PuzzleType identifies the validation rule for a scene's capstone puzzle.
type PuzzleType string

const (
	PuzzleSequence   PuzzleType = "sequence"
	PuzzleConnection PuzzleType = "connection"
	PuzzleCode       PuzzleType = "code"
)

// Pair is an unordered pair of clue ids used by connection puzzles.
type Pair [2]string

// Matches reports whether two pairs are equal regardless of left/right order.
func (p Pair) Matches(other Pair) bool {
	return (p[0] == other[0] && p[1] == other[1]) ||
		(p[0] == other[1] && p[1] == other[0])
}

// PuzzleConfig is the static definition of a scene's capstone puzzle.
// Exactly one of the Solution fields is meaningful, selected by Type.
type PuzzleConfig struct {
	Type        PuzzleType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`

	// Prompt data shown to the player
	Items []string          `json:"items,omitempty"` // sequence: tokens to arrange
	Pairs []Pair            `json:"pairs,omitempty"` // connection: board pairs
	Code  string            `json:"code,omitempty"`  // code: ciphertext to decode
	Hints map[string]string `json:"hints,omitempty"` // code: clue id -> hint text

	SolutionSequence []string `json:"solution_sequence,omitempty"`
	SolutionPairs    []Pair   `json:"solution_pairs,omitempty"`
	SolutionCode     string   `json:"solution_code,omitempty"`
}

// KeywordEntry maps a literal action phrase to the clue ids it can reveal.
// Entries are ordered; matching is first-match-wins over this order.
type KeywordEntry struct {
	Phrase  string   `json:"phrase"`
	ClueIDs []string `json:"clue_ids"`
}

// Scene is a discrete investigable location.
type Scene struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	BackgroundImage string         `json:"background_image,omitempty"`
	ClueIDs         []string       `json:"clue_ids"`
	Keywords        []KeywordEntry `json:"keywords,omitempty"`
}

// Clue is a discoverable piece of evidence owned by exactly one scene.
type Clue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SceneID     string `json:"scene_id"`
}

// Catalog is the immutable evidence table for a case: scenes, clues and
// puzzle configurations keyed by id. It is shared read-only across sessions.
type Catalog struct {
	Name string

	scenes     map[string]*Scene
	sceneOrder []string
	clues      map[string]*Clue
	puzzles    map[string]*PuzzleConfig
}

var titleCaser = cases.Title(language.English)

// New builds a catalog and validates referential integrity between
// scenes and clues. Names missing from the source data are derived
// from ids (e.g. "locked_drawer" -> "Locked Drawer").
func New(name string, scenes []Scene, clues []Clue, puzzles map[string]PuzzleConfig) (*Catalog, error) {
	c := &Catalog{
		Name:    name,
		scenes:  make(map[string]*Scene, len(scenes)),
		clues:   make(map[string]*Clue, len(clues)),
		puzzles: make(map[string]*PuzzleConfig, len(puzzles)),
	}

	for i := range scenes {
		s := scenes[i]
		if s.ID == "" {
			return nil, fmt.Errorf("scene %d has no id", i)
		}
		if _, exists := c.scenes[s.ID]; exists {
			return nil, fmt.Errorf("duplicate scene id %q", s.ID)
		}
		if s.Name == "" {
			s.Name = nameFromID(s.ID)
		}
		c.scenes[s.ID] = &s
		c.sceneOrder = append(c.sceneOrder, s.ID)
	}

	for i := range clues {
		cl := clues[i]
		if cl.ID == "" {
			return nil, fmt.Errorf("clue %d has no id", i)
		}
		if _, exists := c.clues[cl.ID]; exists {
			return nil, fmt.Errorf("duplicate clue id %q", cl.ID)
		}
		if _, ok := c.scenes[cl.SceneID]; !ok {
			return nil, fmt.Errorf("clue %q references unknown scene %q", cl.ID, cl.SceneID)
		}
		if cl.Name == "" {
			cl.Name = nameFromID(cl.ID)
		}
		c.clues[cl.ID] = &cl
	}

	for _, s := range c.scenes {
		for _, id := range s.ClueIDs {
			cl, ok := c.clues[id]
			if !ok {
				return nil, fmt.Errorf("scene %q lists unknown clue %q", s.ID, id)
			}
			if cl.SceneID != s.ID {
				return nil, fmt.Errorf("clue %q belongs to scene %q but is listed by %q", id, cl.SceneID, s.ID)
			}
		}
	}

	for sceneID, p := range puzzles {
		if _, ok := c.scenes[sceneID]; !ok {
			return nil, fmt.Errorf("puzzle references unknown scene %q", sceneID)
		}
		pc := p
		c.puzzles[sceneID] = &pc
	}

	return c, nil
}

// Scene returns the scene with the given id, or nil.
func (c *Catalog) Scene(id string) *Scene {
	return c.scenes[id]
}

// Clue returns the clue with the given id, or nil.
func (c *Catalog) Clue(id string) *Clue {
	return c.clues[id]
}

// Scenes returns all scenes in catalog order.
func (c *Catalog) Scenes() []*Scene {
	out := make([]*Scene, 0, len(c.sceneOrder))
	for _, id := range c.sceneOrder {
		out = append(out, c.scenes[id])
	}
	return out
}

// CluesForScene returns the scene's clues in the scene's declared order.
// Unknown scene ids yield an empty slice.
func (c *Catalog) CluesForScene(sceneID string) []*Clue {
	s := c.scenes[sceneID]
	if s == nil {
		return nil
	}
	out := make([]*Clue, 0, len(s.ClueIDs))
	for _, id := range s.ClueIDs {
		if cl := c.clues[id]; cl != nil {
			out = append(out, cl)
		}
	}
	return out
}

// Puzzle returns the puzzle configuration for a scene, or nil when the
// scene has no capstone puzzle.
func (c *Catalog) Puzzle(sceneID string) *PuzzleConfig {
	return c.puzzles[sceneID]
}

// TotalClues returns the number of clues in the catalog.
func (c *Catalog) TotalClues() int {
	return len(c.clues)
}

// file is the on-disk JSON shape for a catalog.
type file struct {
	Name    string                  `json:"name"`
	Scenes  []Scene                 `json:"scenes"`
	Clues   []Clue                  `json:"clues"`
	Puzzles map[string]PuzzleConfig `json:"puzzles,omitempty"`
}

// LoadFile reads a catalog definition from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	return New(f.Name, f.Scenes, f.Clues, f.Puzzles)
}

func nameFromID(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}
