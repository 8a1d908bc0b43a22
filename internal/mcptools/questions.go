package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

// QuestionsTool handles the sleep_questions MCP tool.
type QuestionsTool struct {
	oracle oracle.Oracle
	cfg    assessment.Config
}

func NewQuestionsTool(o oracle.Oracle, cfg assessment.Config) *QuestionsTool {
	return &QuestionsTool{oracle: o, cfg: cfg}
}

type questionsResult struct {
	Generated bool           `json:"generated"`
	Questions []questionJSON `json:"questions"`
}

type questionJSON struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Definition returns the MCP tool definition for sleep_questions.
func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("sleep_questions",
		mcp.WithDescription(
			"List the multiple-choice questions about last night's sleep. "+
				"Answers passed to sleep_assess must be exact option texts from the default set, in question order.",
		),
		mcp.WithBoolean("generate",
			mcp.Description("Ask the configured model for a fresh question set instead of the default one (default: false)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the sleep_questions tool call.
func (t *QuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	qs, generated := questionnaire.DefaultQuestionSet(), false
	if req.GetBool("generate", false) {
		qs, generated = assessment.GenerateQuestions(ctx, t.oracle, t.cfg)
	}

	out := questionsResult{Generated: generated}
	for i, q := range qs {
		out.Questions = append(out.Questions, questionJSON{Index: i, Question: q.Text, Options: q.Options})
	}
	return jsonResult(out)
}
