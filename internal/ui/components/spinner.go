package components

import (
	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sleepcheck/internal/ui/theme"
)

// NewSpinner returns the spinner used on loading views.
func NewSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Moon),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
}

// Loading renders a spinner frame next to a message.
func Loading(s spinner.Model, message string) string {
	return s.View() + " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(message)
}
