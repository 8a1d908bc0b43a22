package scoring

import (
	"math"
	"strings"
)

// Category is one of the fixed scoring dimensions.
type Category string

const (
	Quality     Category = "Quality"
	Duration    Category = "Duration"
	Consistency Category = "Consistency"
	Environment Category = "Environment"
	Habits      Category = "Habits"
)

// Baseline is the neutral starting score for every category, and the static
// average the overall score is compared against.
const Baseline = 65

// Categories returns the fixed categories in display order.
func Categories() []Category {
	return []Category{Quality, Duration, Consistency, Environment, Habits}
}

// ParseCategory matches name case-insensitively against the fixed categories.
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Categories() {
		if strings.EqualFold(name, string(c)) {
			return c, true
		}
	}
	return "", false
}

// CategoryScores maps each category to a score in [0,100].
type CategoryScores map[Category]int

// BaselineScores returns scores with every category at Baseline.
func BaselineScores() CategoryScores {
	s := make(CategoryScores, 5)
	for _, c := range Categories() {
		s[c] = Baseline
	}
	return s
}

// Complete reports whether all five categories are present.
func (s CategoryScores) Complete() bool {
	for _, c := range Categories() {
		if _, ok := s[c]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a copy of the scores.
func (s CategoryScores) Clone() CategoryScores {
	out := make(CategoryScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Clamp limits v to [0,100].
func Clamp(v int) int {
	return max(0, min(100, v))
}

// Overall returns round(mean) over the five fixed categories. Missing
// categories count as zero; callers only pass complete maps.
func Overall(s CategoryScores) int {
	total := 0
	for _, c := range Categories() {
		total += s[c]
	}
	return int(math.Round(float64(total) / float64(len(Categories()))))
}

// Band is a coarse rating of a score for display.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

// BandFor classifies score into a display band.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 65:
		return BandGood
	case score >= 50:
		return BandFair
	default:
		return BandPoor
	}
}
