// Package narrator adapts the model layer for gameplay. The Gateway
// converts narrative requests into prompts and parses tagged replies;
// the Coordinator de-duplicates concurrent generation requests.
package narrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/mystery-room/internal/services"
	"github.com/jwebster45206/mystery-room/pkg/catalog"
	"github.com/jwebster45206/mystery-room/pkg/narrative"
	"github.com/jwebster45206/mystery-room/pkg/prompts"
)

// Fallbacks returned when the model layer fails. Gameplay always
// continues with one of these instead of an error.
const (
	FallbackSceneAction      = "The detective tried that approach, but couldn't make progress. Perhaps try something else?"
	FallbackClueExamination  = "You examine the %s closely but find nothing of note."
	FallbackStoryProgression = "You review the evidence but can't make any clear connections yet."
	FallbackConclusion       = "Your theory has some inconsistencies. Review the evidence again."
	FallbackGeneric          = "Something went wrong while generating the narrative. Please try again."
)

// Result is the parsed outcome of a narrative generation request.
type Result struct {
	Content  string
	Tags     narrative.Tags
	Fallback bool // true when the model layer failed and Content is deterministic
}

// Gateway generates narrative prose for gameplay requests. Model errors
// never escape it; callers always receive usable content.
type Gateway struct {
	llm     services.LLMService
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewGateway(llm services.LLMService, c *catalog.Catalog, logger *slog.Logger) *Gateway {
	return &Gateway{
		llm:     llm,
		catalog: c,
		logger:  logger,
	}
}

// Generate produces prose for the request, parsing and stripping any
// control tokens from the model reply.
func (g *Gateway) Generate(ctx context.Context, req *narrative.Request) *Result {
	messages, err := prompts.BuildMessages(g.catalog, req)
	if err != nil {
		g.logger.Warn("Prompt build failed", "type", req.Type, "error", err)
		return g.fallback(req)
	}

	raw, err := g.llm.Chat(ctx, messages)
	if err != nil {
		g.logger.Warn("Narrative generation failed", "type", req.Type, "scene", req.SceneID, "error", err)
		return g.fallback(req)
	}

	content, tags := narrative.ParseTags(raw)
	if content == "" {
		return g.fallback(req)
	}

	return &Result{Content: content, Tags: tags}
}

// fallback returns the deterministic stand-in text for a failed request.
func (g *Gateway) fallback(req *narrative.Request) *Result {
	content := FallbackGeneric

	switch req.Type {
	case narrative.SceneAction:
		content = FallbackSceneAction
	case narrative.SceneDescription:
		if scene := g.catalog.Scene(req.SceneID); scene != nil {
			content = "You enter " + scene.Description
		}
	case narrative.ClueExamination:
		if clue := g.catalog.Clue(req.ClueID); clue != nil {
			content = fmt.Sprintf(FallbackClueExamination, clue.Name)
		}
	case narrative.StoryProgression:
		content = FallbackStoryProgression
	case narrative.Conclusion:
		content = FallbackConclusion
	}

	return &Result{Content: content, Fallback: true}
}
