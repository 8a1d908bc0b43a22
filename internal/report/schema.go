package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/sleepcheck/internal/parser"
	"github.com/abhisek/sleepcheck/internal/scoring"
)

const schemaURL = "schema://sleepcheck/report.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Schema returns the JSON Schema document for Report.
func Schema() map[string]any {
	score := map[string]any{"type": "integer", "minimum": 0, "maximum": 100}
	source := map[string]any{"type": "string", "enum": []any{"oracle", "default", "heuristic"}}

	categories := map[string]any{}
	required := []any{}
	for _, c := range scoring.Categories() {
		categories[string(c)] = score
		required = append(required, string(c))
	}

	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []any{"completed_at", "overall", "band", "delta_from_baseline", "categories", "analysis", "recommendations", "sources", "outcome", "answers"},
		"properties": map[string]any{
			"attempt_id":          map[string]any{"type": "string"},
			"completed_at":        map[string]any{"type": "string", "minLength": 1},
			"overall":             score,
			"band":                map[string]any{"type": "string", "enum": []any{"excellent", "good", "fair", "poor"}},
			"delta_from_baseline": map[string]any{"type": "integer", "minimum": -scoring.Baseline, "maximum": 100 - scoring.Baseline},
			"categories": map[string]any{
				"type":                 "object",
				"properties":           categories,
				"required":             required,
				"additionalProperties": false,
			},
			"analysis": map[string]any{"type": "string", "minLength": 1},
			"recommendations": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": parser.RecommendationCount,
				"maxItems": parser.RecommendationCount,
			},
			"sources": map[string]any{
				"type":     "object",
				"required": []any{"analysis", "recommendations", "scores"},
				"properties": map[string]any{
					"analysis":        source,
					"recommendations": source,
					"scores":          source,
				},
			},
			"outcome": map[string]any{"type": "string", "enum": []any{"parsed", "unparseable", "failed"}},
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question", "answer"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants decoded JSON values, not Go ints and slices.
		raw, err := json.Marshal(Schema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks a JSON document against the report schema.
func Validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile report schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("report schema validation failed: %w", err)
	}
	return nil
}
