package catalog

// Default returns the built-in case: a vanished professor, three scenes,
// fifteen clues. Used when no catalog file is configured.
func Default() *Catalog {
	c, err := New("The Vanished Professor", defaultScenes, defaultClues, defaultPuzzles)
	if err != nil {
		// Built-in data is validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

var defaultScenes = []Scene{
	{
		ID:          "study",
		Name:        "Professor's Study",
		Description: "The dimly lit study contains a large oak desk covered with papers, a wall of bookshelves, and several curious artifacts. A painting hangs slightly askew on the wall.",
		ClueIDs:     []string{"drawer", "painting", "letters", "bookshelf", "paperweight"},
		Keywords: []KeywordEntry{
			{Phrase: "search desk", ClueIDs: []string{"drawer"}},
			{Phrase: "look at desk", ClueIDs: []string{"drawer"}},
			{Phrase: "open drawer", ClueIDs: []string{"drawer"}},
			{Phrase: "check drawers", ClueIDs: []string{"drawer"}},
			{Phrase: "investigate desk", ClueIDs: []string{"drawer"}},
			{Phrase: "examine painting", ClueIDs: []string{"painting"}},
			{Phrase: "look at painting", ClueIDs: []string{"painting"}},
			{Phrase: "inspect wall", ClueIDs: []string{"painting"}},
			{Phrase: "check paintings", ClueIDs: []string{"painting"}},
			{Phrase: "investigate artwork", ClueIDs: []string{"painting"}},
			{Phrase: "look at papers", ClueIDs: []string{"letters"}},
			{Phrase: "examine documents", ClueIDs: []string{"letters"}},
			{Phrase: "check papers", ClueIDs: []string{"letters"}},
			{Phrase: "read documents", ClueIDs: []string{"letters"}},
			{Phrase: "sort through papers", ClueIDs: []string{"letters"}},
			{Phrase: "search bookshelf", ClueIDs: []string{"bookshelf"}},
			{Phrase: "examine books", ClueIDs: []string{"bookshelf"}},
			{Phrase: "check bookshelf", ClueIDs: []string{"bookshelf"}},
			{Phrase: "examine paperweight", ClueIDs: []string{"paperweight"}},
			{Phrase: "look at paperweight", ClueIDs: []string{"paperweight"}},
			{Phrase: "inspect crystal", ClueIDs: []string{"paperweight"}},
		},
	},
	{
		ID:          "library",
		Name:        "University Library",
		Description: "Tall bookshelves line the walls of this vast library. Dust particles dance in the beams of light from the stained glass windows. A librarian's desk stands empty.",
		ClueIDs:     []string{"book", "desk", "window", "catalog", "floorboard"},
		Keywords: []KeywordEntry{
			{Phrase: "search bookshelf", ClueIDs: []string{"book"}},
			{Phrase: "examine books", ClueIDs: []string{"book"}},
			{Phrase: "look for unusual books", ClueIDs: []string{"book"}},
			{Phrase: "check bookshelf", ClueIDs: []string{"book"}},
			{Phrase: "inspect shelves", ClueIDs: []string{"book"}},
			{Phrase: "check desk", ClueIDs: []string{"desk"}},
			{Phrase: "search writing desk", ClueIDs: []string{"desk"}},
			{Phrase: "look at librarian desk", ClueIDs: []string{"desk"}},
			{Phrase: "examine desk", ClueIDs: []string{"desk"}},
			{Phrase: "inspect study area", ClueIDs: []string{"desk"}},
			{Phrase: "look at windows", ClueIDs: []string{"window"}},
			{Phrase: "examine stained glass", ClueIDs: []string{"window"}},
			{Phrase: "inspect windows", ClueIDs: []string{"window"}},
			{Phrase: "check for light patterns", ClueIDs: []string{"window"}},
			{Phrase: "study light from windows", ClueIDs: []string{"window"}},
			{Phrase: "check catalog", ClueIDs: []string{"catalog"}},
			{Phrase: "search card catalog", ClueIDs: []string{"catalog"}},
			{Phrase: "examine floor", ClueIDs: []string{"floorboard"}},
			{Phrase: "check floorboards", ClueIDs: []string{"floorboard"}},
			{Phrase: "look under table", ClueIDs: []string{"floorboard"}},
		},
	},
	{
		ID:          "basement",
		Name:        "Hidden Basement",
		Description: "A damp, musty basement hidden beneath the university. Strange symbols adorn the walls, and old scientific equipment fills the shelves. A single lightbulb provides minimal illumination.",
		ClueIDs:     []string{"symbols", "lockbox", "photograph", "equipment", "journal"},
		Keywords: []KeywordEntry{
			{Phrase: "inspect wall markings", ClueIDs: []string{"symbols"}},
			{Phrase: "examine symbols", ClueIDs: []string{"symbols"}},
			{Phrase: "look at strange markings", ClueIDs: []string{"symbols"}},
			{Phrase: "study wall patterns", ClueIDs: []string{"symbols"}},
			{Phrase: "trace wall symbols", ClueIDs: []string{"symbols"}},
			{Phrase: "search floor", ClueIDs: []string{"lockbox"}},
			{Phrase: "check corners", ClueIDs: []string{"lockbox"}},
			{Phrase: "look for containers", ClueIDs: []string{"lockbox"}},
			{Phrase: "inspect metal box", ClueIDs: []string{"lockbox"}},
			{Phrase: "search for hidden items", ClueIDs: []string{"lockbox"}},
			{Phrase: "look for pictures", ClueIDs: []string{"photograph"}},
			{Phrase: "search for photographs", ClueIDs: []string{"photograph"}},
			{Phrase: "check picture frames", ClueIDs: []string{"photograph"}},
			{Phrase: "examine photographs", ClueIDs: []string{"photograph"}},
			{Phrase: "investigate personal items", ClueIDs: []string{"photograph"}},
			{Phrase: "examine equipment", ClueIDs: []string{"equipment"}},
			{Phrase: "inspect machines", ClueIDs: []string{"equipment"}},
			{Phrase: "search shelves", ClueIDs: []string{"equipment"}},
			{Phrase: "look for journal", ClueIDs: []string{"journal"}},
			{Phrase: "check wall bricks", ClueIDs: []string{"journal"}},
			{Phrase: "search hollow brick", ClueIDs: []string{"journal"}},
		},
	},
}

var defaultClues = []Clue{
	{ID: "drawer", Name: "Locked Drawer", SceneID: "study",
		Description: "A locked drawer in the professor's desk. Inside was a mysterious key with unusual markings."},
	{ID: "painting", Name: "Crooked Painting", SceneID: "study",
		Description: "A painting hanging askew on the wall. Behind it was a small safe with a numerical code."},
	{ID: "letters", Name: "Threatening Letters", SceneID: "study",
		Description: "A stack of letters with threatening messages sent to the professor over the past month."},
	{ID: "bookshelf", Name: "Disturbed Bookshelf", SceneID: "study",
		Description: "A bookshelf with several books clearly moved recently. One book about ancient symbols is partially pulled out."},
	{ID: "paperweight", Name: "Unusual Paperweight", SceneID: "study",
		Description: "A heavy crystal paperweight with strange inscriptions around its base. It seems to be more than just a decorative item."},

	{ID: "book", Name: "Marked Reference Book", SceneID: "library",
		Description: "A reference book on ancient civilizations with several pages marked and annotated in the professor's handwriting."},
	{ID: "desk", Name: "Librarian's Log", SceneID: "library",
		Description: "A log book showing the professor repeatedly requested access to restricted archives late at night."},
	{ID: "window", Name: "Broken Window Latch", SceneID: "library",
		Description: "A window with a broken latch, suggesting someone may have entered or exited the library through it."},
	{ID: "catalog", Name: "Modified Catalog Entry", SceneID: "library",
		Description: "A library catalog entry that has been altered to hide the existence of a rare manuscript on occult practices."},
	{ID: "floorboard", Name: "Loose Floorboard", SceneID: "library",
		Description: "A loose floorboard beneath the main reading table concealing a small notebook with coded messages."},

	{ID: "symbols", Name: "Wall Symbols", SceneID: "basement",
		Description: "Strange symbols drawn on the basement walls that match those in the professor's research notes."},
	{ID: "lockbox", Name: "Hidden Lockbox", SceneID: "basement",
		Description: "A metal lockbox concealed behind some equipment containing a ritual dagger and mystical amulet."},
	{ID: "photograph", Name: "Old Photograph", SceneID: "basement",
		Description: "A faded photograph showing the professor with an unknown group of people, all wearing matching pendants."},
	{ID: "equipment", Name: "Modified Scientific Equipment", SceneID: "basement",
		Description: "Laboratory equipment that has been modified for unknown purposes. It appears to be designed to measure unusual energy patterns."},
	{ID: "journal", Name: "Hidden Research Journal", SceneID: "basement",
		Description: "A leather-bound journal containing the professor's most radical theories and experiments, hidden inside a hollow brick in the wall."},
}

var defaultPuzzles = map[string]PuzzleConfig{
	"study": {
		Type:             PuzzleSequence,
		Title:            "The Professor's Timeline",
		Description:      "Arrange the clues in the correct chronological order to understand the professor's activities leading up to the incident.",
		Items:            []string{"drawer", "painting", "letters", "bookshelf", "paperweight"},
		SolutionSequence: []string{"letters", "bookshelf", "painting", "drawer", "paperweight"},
	},
	"library": {
		Type:        PuzzleConnection,
		Title:       "The Hidden Message",
		Description: "Connect the related clues to reveal a hidden message in the library. Each pair of clues is connected in some way.",
		Pairs: []Pair{
			{"book", "desk"},
			{"window", "catalog"},
			{"floorboard", "book"},
		},
		SolutionPairs: []Pair{
			{"book", "catalog"},
			{"window", "floorboard"},
			{"desk", "book"},
		},
	},
	"basement": {
		Type:        PuzzleCode,
		Title:       "Decrypt the Symbols",
		Description: "Use the clues you've found to decrypt the coded message on the wall. Each clue provides part of the decryption key.",
		Code:        "XMTPH RFKGJ QWDSB",
		Hints: map[string]string{
			"symbols":    "First letter is 'T'",
			"lockbox":    "Shift each letter 3 positions",
			"photograph": "Every second letter is significant",
			"equipment":  "Read backwards for clarity",
			"journal":    "The final key is 'TRUTH'",
		},
		SolutionCode: "TRUTH",
	},
}
