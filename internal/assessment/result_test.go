package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/sleepcheck/internal/scoring"
)

func TestNewResult_OverallByConstruction(t *testing.T) {
	cats := scoring.CategoryScores{
		scoring.Quality: 90, scoring.Duration: 80, scoring.Consistency: 70,
		scoring.Environment: 60, scoring.Habits: 51,
	}
	recs := []string{"a", "b", "c"}
	r := NewResult("fine", recs, cats, time.Time{})

	assert.Equal(t, 70, r.Overall)
	assert.Equal(t, 5, r.DeltaFromBaseline())
	assert.Equal(t, scoring.BandGood, r.Band())

	cats[scoring.Quality] = 0
	recs[0] = "mutated"
	assert.Equal(t, 90, r.Categories[scoring.Quality], "inputs must be copied")
	assert.Equal(t, "a", r.Recommendations[0])
}

func TestResult_NegativeDelta(t *testing.T) {
	r := NewResult("", nil, scoring.CategoryScores{
		scoring.Quality: 40, scoring.Duration: 40, scoring.Consistency: 40,
		scoring.Environment: 40, scoring.Habits: 40,
	}, time.Time{})
	assert.Equal(t, -25, r.DeltaFromBaseline())
	assert.Equal(t, scoring.BandPoor, r.Band())
}

func TestState_Loading(t *testing.T) {
	for _, s := range []State{Idle, Answering, Complete} {
		assert.False(t, s.Loading(), s.String())
	}
	assert.True(t, QuestionsLoading.Loading())
	assert.True(t, InsightsLoading.Loading())
	assert.Equal(t, "insights-loading", InsightsLoading.String())
}
