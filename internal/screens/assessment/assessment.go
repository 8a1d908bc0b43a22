// Package assessment is the quiz screen: one question at a time, then the
// results card.
package assessment

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	sleep "github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/router"
	"github.com/abhisek/sleepcheck/internal/screen"
	"github.com/abhisek/sleepcheck/internal/ui/components"
	"github.com/abhisek/sleepcheck/internal/ui/layout"
)

// Screen implements screen.Screen for a single attempt.
type Screen struct {
	session *sleep.Session
	spinner spinner.Model
	options components.OptionList
	// index is the question the option list was built for.
	index int
	// waiting is set while a start or analysis command is outstanding.
	waiting bool
	errMsg  string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.BackHandler     = (*Screen)(nil)
)

// New creates the quiz screen. The attempt starts on Init.
func New(session *sleep.Session) *Screen {
	return &Screen{
		session: session,
		spinner: components.NewSpinner(),
		index:   -1,
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.start(), s.spinner.Tick)
}

func (s *Screen) Title() string {
	switch s.session.Snapshot().State {
	case sleep.Complete:
		return "Results"
	default:
		return "Last Night"
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.session.Snapshot().State {
	case sleep.Answering:
		return []layout.KeyHint{
			{Key: "↑↓/1-9", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "B", Description: "Back"},
			{Key: "Esc", Description: "Cancel"},
		}
	case sleep.Complete:
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "Enter/Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
}

// Back cancels an unfinished attempt before leaving the screen.
func (s *Screen) Back() tea.Cmd {
	if st := s.session.Snapshot().State; st != sleep.Idle && st != sleep.Complete {
		_ = s.session.Cancel()
	}
	return pop
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case analyzedMsg:
		return s.handleAnalyzed(msg)
	case spinner.TickMsg:
		if !s.waiting && !s.session.Snapshot().State.Loading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) start() tea.Cmd {
	s.waiting = true
	return func() tea.Msg {
		return startedMsg{Err: s.session.Start(context.Background())}
	}
}

func (s *Screen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if errors.Is(msg.Err, sleep.ErrStale) {
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.syncOptions()
	return s, nil
}

func (s *Screen) handleAnalyzed(msg analyzedMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if errors.Is(msg.Err, sleep.ErrStale) {
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	snap := s.session.Snapshot()

	switch snap.State {
	case sleep.Complete:
		switch msg.String() {
		case "r":
			s.index = -1
			return s, tea.Batch(s.start(), s.spinner.Tick)
		case "enter", "q":
			return s, pop
		}
		return s, nil

	case sleep.Answering:
		switch msg.String() {
		case "b", "left", "backspace":
			if err := s.session.Previous(); err == nil {
				s.syncOptions()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		if s.options.Chosen < 0 {
			return s, cmd
		}
		return s, s.submit(snap, s.options.Chosen)
	}
	return s, nil
}

// submit records the chosen option. Intermediate answers apply
// immediately; the last one runs the insight stage in a command.
func (s *Screen) submit(snap sleep.Snapshot, choice int) tea.Cmd {
	s.options.Chosen = -1
	q, ok := snap.Current()
	if !ok || choice >= len(q.Options) {
		return nil
	}
	value := q.Options[choice]

	if snap.Index < len(snap.Questions)-1 {
		if err := s.session.Answer(context.Background(), snap.Index, value); err != nil {
			s.errMsg = err.Error()
			return nil
		}
		s.errMsg = ""
		s.syncOptions()
		return nil
	}

	index := snap.Index
	s.waiting = true
	answer := func() tea.Msg {
		return analyzedMsg{Err: s.session.Answer(context.Background(), index, value)}
	}
	return tea.Batch(answer, s.spinner.Tick)
}

// syncOptions rebuilds the option list when the current question changes.
func (s *Screen) syncOptions() {
	snap := s.session.Snapshot()
	q, ok := snap.Current()
	if !ok {
		return
	}
	if snap.Index == s.index {
		return
	}
	prev, _ := snap.Answers.Get(snap.Index)
	s.options = components.NewOptionList(q.Options, prev)
	s.index = snap.Index
}

func pop() tea.Msg { return router.PopScreenMsg{} }
