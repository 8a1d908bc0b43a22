package assessment

import (
	"slices"
	"time"
)

const defaultAnalysis = "Based on your sleep data, you had a moderately restful night with some areas for improvement. " +
	"Your sleep patterns indicate you could benefit from adjustments to your sleep environment and pre-bedtime routine."

var defaultRecommendations = []string{
	"Dim all lights one hour before your target bedtime tonight",
	"Drink chamomile tea 30 minutes before bed to promote relaxation",
	"Set your bedroom temperature between 60-67°F for optimal sleep",
}

// Config is threaded into every Session and Analyze call.
type Config struct {
	// OracleTimeout bounds each oracle call. Expiry counts as a failure.
	OracleTimeout time.Duration

	DefaultAnalysis        string
	DefaultRecommendations []string

	// Now stamps results. Defaults to time.Now.
	Now func() time.Time
}

func DefaultConfig() Config {
	return Config{
		OracleTimeout:          30 * time.Second,
		DefaultAnalysis:        defaultAnalysis,
		DefaultRecommendations: slices.Clone(defaultRecommendations),
		Now:                    time.Now,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.OracleTimeout <= 0 {
		c.OracleTimeout = d.OracleTimeout
	}
	if c.DefaultAnalysis == "" {
		c.DefaultAnalysis = d.DefaultAnalysis
	}
	if len(c.DefaultRecommendations) != len(d.DefaultRecommendations) {
		c.DefaultRecommendations = d.DefaultRecommendations
	}
	if c.Now == nil {
		c.Now = d.Now
	}
	return c
}
