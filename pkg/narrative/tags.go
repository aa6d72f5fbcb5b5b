package narrative

import (
	"regexp"
	"strings"
)

// Control tokens the model is instructed to embed in its replies.
const (
	TagHintGiven     = "HINT_GIVEN"
	TagActionSuccess = "ACTION_SUCCESS"
	tagCluePrefix    = "CLUE_DISCOVERED:"
)

var clueTagRe = regexp.MustCompile(tagCluePrefix + `([a-zA-Z0-9_,]+)`)

// Tags is the structured result of parsing control tokens out of a
// model reply.
type Tags struct {
	ClueIDs   []string // ids from the first CLUE_DISCOVERED token
	HintGiven bool
	Success   bool
}

// ParseTags extracts control tokens from model prose and returns the
// cleaned text with every token occurrence removed. Only the first
// CLUE_DISCOVERED token contributes ids; text that does not match the
// token grammar exactly is left untouched and yields no tags.
func ParseTags(content string) (string, Tags) {
	var tags Tags

	if m := clueTagRe.FindStringSubmatch(content); m != nil {
		for _, id := range strings.Split(m[1], ",") {
			if id != "" {
				tags.ClueIDs = append(tags.ClueIDs, id)
			}
		}
	}

	tags.HintGiven = strings.Contains(content, TagHintGiven)
	tags.Success = strings.Contains(content, TagActionSuccess) || len(tags.ClueIDs) > 0

	cleaned := clueTagRe.ReplaceAllString(content, "")
	cleaned = strings.ReplaceAll(cleaned, TagHintGiven, "")
	cleaned = strings.ReplaceAll(cleaned, TagActionSuccess, "")

	return strings.TrimSpace(cleaned), tags
}
