package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/sleepcheck/internal/scoring"
)

// ScoreTool handles the sleep_score_answers MCP tool. It never calls a
// model.
type ScoreTool struct{}

func NewScoreTool() *ScoreTool { return &ScoreTool{} }

type scoreResult struct {
	Overall    int            `json:"overall"`
	Band       scoring.Band   `json:"band"`
	Categories map[string]int `json:"categories"`
}

// Definition returns the MCP tool definition for sleep_score_answers.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("sleep_score_answers",
		mcp.WithDescription(
			"Score answers with the local heuristic only. Answers are positional: "+
				"hours slept, time to fall asleep, night waking, morning feeling, device use. "+
				"Free text is accepted; unrecognised answers leave their categories at the 65 baseline.",
		),
		mcp.WithArray("answers",
			mcp.Required(),
			mcp.WithStringItems(),
			mcp.MinItems(1),
			mcp.MaxItems(5),
			mcp.Description("Answer text per question slot, in order. Use an empty string to skip a slot."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the sleep_score_answers tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers, err := answersArg(req, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}

	scores := scoring.Score(answers)
	out := scoreResult{
		Overall:    scoring.Overall(scores),
		Categories: map[string]int{},
	}
	out.Band = scoring.BandFor(out.Overall)
	for c, v := range scores {
		out.Categories[string(c)] = v
	}
	return jsonResult(out)
}
