package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/router"
)

func TestEscCancelsQuizAndPops(t *testing.T) {
	sess := assessment.NewSession(oracle.Offline{}, assessment.DefaultConfig())
	m := newAppModel(Options{Session: sess, Status: "offline"})

	// Home menu: enter pushes the quiz.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.router.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if err := sess.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("esc should pop the quiz")
	}
	if st := sess.Snapshot().State; st != assessment.Idle {
		t.Errorf("state = %s, want idle", st)
	}
}

func TestEscOnHomeIsNoop(t *testing.T) {
	m := newAppModel(Options{Session: assessment.NewSession(nil, assessment.DefaultConfig())})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on home should do nothing")
	}
}
