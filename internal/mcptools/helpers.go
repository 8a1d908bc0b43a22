// Package mcptools exposes the sleep assessment as MCP tools.
//
// Each tool is a struct with its dependencies injected via constructor,
// a Definition() returning the mcp.Tool schema and a Handle() method.
package mcptools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

// answersArg reads the positional "answers" array. With strict set, each
// answer must be one of the default question's options.
func answersArg(req mcp.CallToolRequest, strict bool) (questionnaire.AnswerSet, error) {
	raw, err := req.RequireStringSlice("answers")
	if err != nil {
		return nil, err
	}
	qs := questionnaire.DefaultQuestionSet()
	if len(raw) == 0 || len(raw) > len(qs) {
		return nil, fmt.Errorf("'answers' must hold 1 to %d entries, got %d", len(qs), len(raw))
	}

	answers := questionnaire.AnswerSet{}
	for i, v := range raw {
		if v == "" {
			continue
		}
		if strict && !qs[i].HasOption(v) {
			return nil, fmt.Errorf("answer %d %q is not an option of %q", i, v, qs[i].Text)
		}
		answers.Record(i, v)
	}
	return answers, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
