package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <catalog.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &CatalogValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog file is valid!")
}

type CatalogValidator struct {
	errors []string
}

// catalogFile mirrors the on-disk catalog shape for strict decoding.
type catalogFile struct {
	Name    string                          `json:"name"`
	Scenes  []catalog.Scene                 `json:"scenes"`
	Clues   []catalog.Clue                  `json:"clues"`
	Puzzles map[string]catalog.PuzzleConfig `json:"puzzles,omitempty"`
}

func (v *CatalogValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("catalog file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidCatalogFilename(nameWithoutExt) {
		return fmt.Errorf("catalog filename '%s' must be lowercase snake_case (e.g., manor_case.json, not ManorCase.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var f catalogFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&f); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateCatalog(&f)

	// catalog.New enforces referential integrity between scenes and clues
	if _, err := catalog.New(f.Name, f.Scenes, f.Clues, f.Puzzles); err != nil {
		v.addError(err.Error())
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *CatalogValidator) validateCatalog(f *catalogFile) {
	if f.Name == "" {
		v.addError("catalog has no name")
	}
	if len(f.Scenes) == 0 {
		v.addError("catalog has no scenes")
	}

	sceneClues := make(map[string]map[string]bool, len(f.Scenes))
	for i := range f.Scenes {
		scene := &f.Scenes[i]
		v.validateIDFormat("scene ID", scene.ID)

		clueSet := make(map[string]bool, len(scene.ClueIDs))
		for _, clueID := range scene.ClueIDs {
			v.validateIDFormat("clue ID", clueID)
			clueSet[clueID] = true
		}
		sceneClues[scene.ID] = clueSet

		v.validateKeywords(scene, clueSet)
	}

	for i := range f.Clues {
		v.validateIDFormat("clue ID", f.Clues[i].ID)
	}

	for sceneID, puzzle := range f.Puzzles {
		v.validatePuzzle(&puzzle, sceneID, sceneClues[sceneID])
	}
}

func (v *CatalogValidator) validateKeywords(scene *catalog.Scene, clueSet map[string]bool) {
	for _, kw := range scene.Keywords {
		if strings.TrimSpace(kw.Phrase) == "" {
			v.addError(fmt.Sprintf("scene %s has a keyword entry with an empty phrase", scene.ID))
		}
		if len(kw.ClueIDs) == 0 {
			v.addError(fmt.Sprintf("keyword '%s' in scene %s reveals no clues", kw.Phrase, scene.ID))
		}
		for _, clueID := range kw.ClueIDs {
			if !clueSet[clueID] {
				v.addError(fmt.Sprintf("keyword '%s' in scene %s reveals clue '%s' which the scene does not list", kw.Phrase, scene.ID, clueID))
			}
		}
	}
}

func (v *CatalogValidator) validatePuzzle(p *catalog.PuzzleConfig, sceneID string, clueSet map[string]bool) {
	context := fmt.Sprintf("puzzle in scene %s", sceneID)

	switch p.Type {
	case catalog.PuzzleSequence:
		if len(p.SolutionSequence) == 0 {
			v.addError(fmt.Sprintf("%s has no solution_sequence", context))
			return
		}
		if len(p.Items) > 0 && !isPermutation(p.Items, p.SolutionSequence) {
			v.addError(fmt.Sprintf("%s solution_sequence is not a permutation of its items", context))
		}
		for _, id := range p.SolutionSequence {
			if clueSet != nil && !clueSet[id] {
				v.addError(fmt.Sprintf("%s solution references clue '%s' outside the scene", context, id))
			}
		}

	case catalog.PuzzleConnection:
		if len(p.SolutionPairs) == 0 {
			v.addError(fmt.Sprintf("%s has no solution_pairs", context))
			return
		}
		for _, pair := range p.SolutionPairs {
			for _, id := range pair {
				if clueSet != nil && !clueSet[id] {
					v.addError(fmt.Sprintf("%s solution pair references clue '%s' outside the scene", context, id))
				}
			}
		}

	case catalog.PuzzleCode:
		if p.SolutionCode == "" {
			v.addError(fmt.Sprintf("%s has no solution_code", context))
		}
		if p.Code == "" {
			v.addError(fmt.Sprintf("%s has no ciphertext to show the player", context))
		}
		for clueID := range p.Hints {
			if clueSet != nil && !clueSet[clueID] {
				v.addError(fmt.Sprintf("%s hint references clue '%s' outside the scene", context, clueID))
			}
		}

	default:
		v.addError(fmt.Sprintf("%s has unknown type '%s'", context, p.Type))
	}
}

func isPermutation(items, solution []string) bool {
	if len(items) != len(solution) {
		return false
	}
	counts := make(map[string]int, len(items))
	for _, id := range items {
		counts[id]++
	}
	for _, id := range solution {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}

func (v *CatalogValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *CatalogValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidCatalogFilename(name string) bool {
	// Allow 'x.' prefix for experimental cases
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
