package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sleep "github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/ui/components"
	"github.com/abhisek/sleepcheck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	snap := s.session.Snapshot()
	cw := components.ContentWidth(width)

	var body string
	switch snap.State {
	case sleep.QuestionsLoading:
		body = components.Loading(s.spinner, "Preparing your questions...")
	case sleep.InsightsLoading:
		body = components.Loading(s.spinner, "Analyzing last night's sleep...")
	case sleep.Answering:
		body = s.renderQuestion(snap, cw)
	case sleep.Complete:
		body = renderResults(snap, cw)
	default:
		body = theme.Hint.Render("Starting...")
	}

	if s.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)
	}
	return components.Center(body, width, height)
}

func (s *Screen) renderQuestion(snap sleep.Snapshot, cw int) string {
	q, ok := snap.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", snap.Index+1, len(snap.Questions))))
	b.WriteString("  ")
	b.WriteString(stepDots(snap.Index, len(snap.Questions)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Width(cw).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(s.options.View(cw))
	return components.Card(b.String(), cw)
}

func stepDots(current, total int) string {
	var b strings.Builder
	for i := range total {
		switch {
		case i < current:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("●"))
		case i == current:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return b.String()
}

func renderResults(snap sleep.Snapshot, cw int) string {
	r := snap.Result
	return lipgloss.JoinVertical(lipgloss.Center,
		components.Card(components.ScoreSummary(r, cw), cw),
		components.Card(components.CategoryBars(r, cw-6), cw),
		components.Card(components.Insights(r, cw-6), cw),
	)
}
