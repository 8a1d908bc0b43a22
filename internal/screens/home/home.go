// Package home is the landing screen: the latest score card and the menu.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/router"
	"github.com/abhisek/sleepcheck/internal/scoring"
	"github.com/abhisek/sleepcheck/internal/screen"
	quiz "github.com/abhisek/sleepcheck/internal/screens/assessment"
	"github.com/abhisek/sleepcheck/internal/ui/components"
	"github.com/abhisek/sleepcheck/internal/ui/layout"
)

// HomeScreen shows the most recent result held by the session.
type HomeScreen struct {
	session *assessment.Session
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen bound to session.
func New(session *assessment.Session) *HomeScreen {
	h := &HomeScreen{session: session}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "CHECK LAST NIGHT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(session)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)
	r := h.session.Snapshot().Result

	var sections []string

	if !compact {
		var band *scoring.Band
		if r != nil {
			b := r.Band()
			band = &b
		}
		sections = append(sections, RenderMoon(variantFor(band)))
	}

	sections = append(sections, components.Card(components.ScoreSummary(r, cw), cw))

	if r != nil && !compact {
		sections = append(sections, components.Card(components.CategoryBars(r, cw-6), cw))
		sections = append(sections, components.Card(components.Insights(r, cw-6), cw))
	}

	sections = append(sections, h.menu.View(cw/2))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.Center(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
