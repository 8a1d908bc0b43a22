package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/report"
	"github.com/abhisek/sleepcheck/internal/scoring"
	"github.com/abhisek/sleepcheck/internal/ui/theme"
)

// ScoreSummary renders the headline score, its band bar and the delta from
// the baseline average. A nil result renders the empty state.
func ScoreSummary(r *assessment.Result, cw int) string {
	if r == nil {
		return lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("No assessment yet"),
			"",
			theme.Subtitle.Render(fmt.Sprintf("Average sleep score is %d", scoring.Baseline)),
			theme.Hint.Render("Take a one-minute check on last night's sleep."),
		)
	}

	c := theme.BandColor(r.Band())
	score := lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf("%d", r.Overall)) +
		theme.Hint.Render(" / 100")

	delta := report.FormatDelta(r.DeltaFromBaseline())
	deltaStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch {
	case r.DeltaFromBaseline() > 0:
		deltaStyle = deltaStyle.Foreground(theme.Success)
	case r.DeltaFromBaseline() < 0:
		deltaStyle = deltaStyle.Foreground(theme.Error)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Sleep score"),
		score,
		SegmentBar(r.Overall, 10, c),
		deltaStyle.Render(delta),
		theme.Hint.Render("Last assessed "+LastAssessed(r.CompletedAt, time.Now())),
	)
}

// CategoryBars renders one progress bar per category.
func CategoryBars(r *assessment.Result, cw int) string {
	rows := make([]string, 0, len(scoring.Categories()))
	for _, c := range scoring.Categories() {
		v := scoring.Baseline
		if r != nil {
			v = r.Categories[c]
		}
		bar := NewProgressBar(string(c), v, true, cw)
		bar.LabelWidth = 12
		bar.Color = theme.BandColor(scoring.BandFor(v))
		rows = append(rows, bar.View())
	}
	return strings.Join(rows, "\n")
}

// Insights renders the analysis paragraph and numbered recommendations.
func Insights(r *assessment.Result, cw int) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Body.Width(cw).Render(r.Analysis))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Tonight, try:"))
	for i, rec := range r.Recommendations {
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(cw).Render(fmt.Sprintf("%d. %s", i+1, rec)))
	}
	if r.ScoresSource != assessment.SourceOracle {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Scores estimated locally from your answers."))
	}
	return b.String()
}

// LastAssessed formats t relative to now for the score card.
func LastAssessed(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour && now.YearDay() == t.YearDay():
		return "today at " + t.Format("15:04")
	default:
		return t.Format("Jan 2 at 15:04")
	}
}
