package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/oracle"
)

const instructions = `sleepcheck scores one night of sleep from five multiple-choice answers.
Call sleep_questions to get the options, then sleep_assess with the chosen option texts.
sleep_score_answers gives the local heuristic score without calling a model.`

// NewServer registers every sleep tool on a new MCP server.
func NewServer(o oracle.Oracle, cfg assessment.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"sleepcheck",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	questionsTool := NewQuestionsTool(o, cfg)
	s.AddTool(questionsTool.Definition(), questionsTool.Handle)

	scoreTool := NewScoreTool()
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	assessTool := NewAssessTool(o, cfg)
	s.AddTool(assessTool.Definition(), assessTool.Handle)

	return s
}
