package assessment

import (
	"slices"
	"time"

	"github.com/abhisek/sleepcheck/internal/scoring"
)

// Source tells where a piece of a Result came from.
type Source string

const (
	SourceOracle    Source = "oracle"
	SourceDefault   Source = "default"
	SourceHeuristic Source = "heuristic"
)

// Result is the outcome of one completed attempt. Build it with NewResult
// so Overall always matches Categories.
type Result struct {
	Analysis        string
	Recommendations []string
	Categories      scoring.CategoryScores
	Overall         int

	AnalysisSource        Source
	RecommendationsSource Source
	ScoresSource          Source

	CompletedAt time.Time
}

// NewResult copies its inputs and computes Overall from categories.
func NewResult(analysis string, recs []string, categories scoring.CategoryScores, at time.Time) Result {
	return Result{
		Analysis:        analysis,
		Recommendations: slices.Clone(recs),
		Categories:      categories.Clone(),
		Overall:         scoring.Overall(categories),
		CompletedAt:     at,
	}
}

// DeltaFromBaseline is Overall minus the static 65 average.
func (r Result) DeltaFromBaseline() int {
	return r.Overall - scoring.Baseline
}

// Band classifies Overall for display.
func (r Result) Band() scoring.Band {
	return scoring.BandFor(r.Overall)
}

// FromOracle reports whether every section came from the oracle.
func (r Result) FromOracle() bool {
	return r.AnalysisSource == SourceOracle &&
		r.RecommendationsSource == SourceOracle &&
		r.ScoresSource == SourceOracle
}

func (r Result) clone() Result {
	c := r
	c.Recommendations = slices.Clone(r.Recommendations)
	c.Categories = r.Categories.Clone()
	return c
}
