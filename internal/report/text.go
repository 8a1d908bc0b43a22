package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/sleepcheck/internal/scoring"
)

// Bar renders score as a fixed-width bar of filled and empty cells.
func Bar(score, width int) string {
	if width <= 0 {
		return ""
	}
	filled := scoring.Clamp(score) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatDelta renders a delta against the baseline, e.g. "+12 from average".
func FormatDelta(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%d from average", delta)
	case delta < 0:
		return fmt.Sprintf("%d from average", delta)
	default:
		return "at average"
	}
}

// WriteText prints a plain-text summary of r.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Sleep score: %d/100 (%s, %s)\n", r.Overall, r.Band, FormatDelta(r.DeltaFromBaseline))
	fmt.Fprintf(&b, "%s\n\n", Bar(r.Overall, 10))

	for _, c := range scoring.Categories() {
		v := r.Categories[string(c)]
		fmt.Fprintf(&b, "  %-12s %3d  %s\n", c, v, Bar(v, 20))
	}

	fmt.Fprintf(&b, "\n%s\n\nRecommendations:\n", r.Analysis)
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
	}

	if r.Sources.Scores != "oracle" {
		b.WriteString("\nScores estimated locally from your answers.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
