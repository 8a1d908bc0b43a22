package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sleepcheck/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a 0-100 score.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Score      int
	ShowScore  bool
	Width      int
	Color      color.Color
}

// NewProgressBar creates a progress bar filled in the theme's secondary colour.
func NewProgressBar(label string, score int, showScore bool, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Score:     score,
		ShowScore: showScore,
		Width:     width,
		Color:     theme.Secondary,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		lw := p.LabelWidth
		if lw < lipgloss.Width(p.Label) {
			lw = lipgloss.Width(p.Label)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Width(lw).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	scoreWidth := 0
	if p.ShowScore {
		scoreWidth = 5 // "  100"
	}

	barWidth := p.Width - labelWidth - scoreWidth
	if barWidth < 4 {
		barWidth = 4
	}

	score := min(max(p.Score, 0), 100)
	filled := barWidth * score / 100
	empty := barWidth - filled

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}
	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowScore {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3d", p.Score))
	}

	return result
}

// SegmentBar renders score as a row of n segments, filled in the band colour.
func SegmentBar(score, n int, c color.Color) string {
	score = min(max(score, 0), 100)
	filled := score * n / 100
	on := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("■", filled))
	off := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("■", n-filled))
	return on + off
}
