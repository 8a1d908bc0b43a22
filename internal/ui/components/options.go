package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sleepcheck/internal/ui/theme"
)

// OptionList is a numbered single-choice list. Enter or a digit key picks
// an option; the caller reads Chosen and resets it after handling.
type OptionList struct {
	Options  []string
	Selected int
	// Answered marks the option recorded earlier, if any (-1 when none).
	Answered int
	Chosen   int
}

// NewOptionList creates a list with the cursor on the previously answered
// option, or the first one.
func NewOptionList(options []string, answered string) OptionList {
	l := OptionList{Options: options, Answered: -1, Chosen: -1}
	for i, o := range options {
		if o == answered {
			l.Answered, l.Selected = i, i
			break
		}
	}
	return l
}

// Update handles keyboard navigation and selection.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.Options) == 0 {
		return l, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
	case "enter":
		l.Chosen = l.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(l.Options) {
				l.Selected, l.Chosen = i, i
			}
		}
	}
	return l, nil
}

// View renders the options, one per line.
func (l OptionList) View(width int) string {
	var b strings.Builder
	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}
		mark := ""
		if i == l.Answered {
			mark = "  ✓"
		}
		line := fmt.Sprintf("%s%d. %s%s", prefix, i+1, opt, mark)

		style := theme.Unselected
		switch {
		case i == l.Selected:
			style = theme.Selected
		case i == l.Answered:
			style = theme.Answered
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

