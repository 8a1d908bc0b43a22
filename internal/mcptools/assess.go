package mcptools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/llm"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/questionnaire"
	"github.com/abhisek/sleepcheck/internal/report"
)

// AssessTool handles the sleep_assess MCP tool: the full insight stage on
// answers to the default question set.
type AssessTool struct {
	oracle oracle.Oracle
	cfg    assessment.Config
}

func NewAssessTool(o oracle.Oracle, cfg assessment.Config) *AssessTool {
	return &AssessTool{oracle: o, cfg: cfg}
}

// Definition returns the MCP tool definition for sleep_assess.
func (t *AssessTool) Definition() mcp.Tool {
	return mcp.NewTool("sleep_assess",
		mcp.WithDescription(
			"Assess last night's sleep from answers to the default questions (see sleep_questions). "+
				"Returns the overall score, five category scores, a short analysis and three recommendations as JSON. "+
				"If the model is unavailable the analysis falls back to defaults and scores to the local heuristic.",
		),
		mcp.WithArray("answers",
			mcp.Required(),
			mcp.WithStringItems(),
			mcp.MinItems(1),
			mcp.MaxItems(5),
			mcp.Description("Exact option text per question, in question order"),
		),
	)
}

// Handle processes the sleep_assess tool call.
func (t *AssessTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers, err := answersArg(req, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}

	attemptID := uuid.NewString()
	qs := questionnaire.DefaultQuestionSet()
	result, outcome := assessment.Analyze(llm.WithAttempt(ctx, attemptID), t.oracle, t.cfg, qs, answers)

	rep := report.New(result, outcome.Kind, qs, answers)
	rep.AttemptID = attemptID
	data, err := report.MarshalValid(rep)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build report: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
