// Package report renders a completed assessment as a JSON document or a
// plain-text summary. JSON output is validated against an embedded schema
// before it leaves the process.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/questionnaire"
	"github.com/abhisek/sleepcheck/internal/scoring"
)

// Report is the serialized form of one completed attempt.
type Report struct {
	AttemptID         string         `json:"attempt_id,omitempty"`
	CompletedAt       time.Time      `json:"completed_at"`
	Overall           int            `json:"overall"`
	Band              scoring.Band   `json:"band"`
	DeltaFromBaseline int            `json:"delta_from_baseline"`
	Categories        map[string]int `json:"categories"`
	Analysis          string         `json:"analysis"`
	Recommendations   []string       `json:"recommendations"`
	Sources           Sources        `json:"sources"`
	Outcome           string         `json:"outcome"`
	Answers           []Answer       `json:"answers"`
}

// Sources records where each section of the result came from.
type Sources struct {
	Analysis        assessment.Source `json:"analysis"`
	Recommendations assessment.Source `json:"recommendations"`
	Scores          assessment.Source `json:"scores"`
}

// Answer pairs a question with the option the user chose.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// New builds a Report from a result and the answers that produced it.
// Unanswered or out-of-range indices are skipped.
func New(r assessment.Result, outcome assessment.OutcomeKind, questions questionnaire.QuestionSet, answers questionnaire.AnswerSet) *Report {
	rep := &Report{
		CompletedAt:       r.CompletedAt.UTC(),
		Overall:           r.Overall,
		Band:              r.Band(),
		DeltaFromBaseline: r.DeltaFromBaseline(),
		Categories:        make(map[string]int, len(r.Categories)),
		Analysis:          r.Analysis,
		Recommendations:   append([]string(nil), r.Recommendations...),
		Sources: Sources{
			Analysis:        r.AnalysisSource,
			Recommendations: r.RecommendationsSource,
			Scores:          r.ScoresSource,
		},
		Outcome: outcome.String(),
		Answers: []Answer{},
	}
	for c, v := range r.Categories {
		rep.Categories[string(c)] = v
	}
	for _, i := range answers.Indices() {
		if i < 0 || i >= len(questions) {
			continue
		}
		v, _ := answers.Get(i)
		rep.Answers = append(rep.Answers, Answer{Question: questions[i].Text, Answer: v})
	}
	return rep
}

// FromSnapshot builds a Report for the snapshot's latest result.
func FromSnapshot(snap assessment.Snapshot) (*Report, error) {
	if snap.Result == nil {
		return nil, fmt.Errorf("no completed assessment")
	}
	rep := New(*snap.Result, snap.Outcome, snap.Questions, snap.Answers)
	rep.AttemptID = snap.AttemptID
	return rep, nil
}

// MarshalValid encodes r as indented JSON and validates it against the
// result schema.
func MarshalValid(r *Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}
