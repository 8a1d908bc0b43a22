package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/router"
	"github.com/abhisek/sleepcheck/internal/scoring"
)

func TestHomeView_EmptyState(t *testing.T) {
	h := New(assessment.NewSession(oracle.Offline{}, assessment.DefaultConfig()))
	view := h.View(100, 34)
	if !strings.Contains(view, "No assessment yet") {
		t.Errorf("expected empty state:\n%s", view)
	}
	if !strings.Contains(view, "CHECK LAST NIGHT") {
		t.Error("menu missing")
	}
}

func TestHomeView_ShowsLatestResult(t *testing.T) {
	sess := assessment.NewSession(oracle.Offline{}, assessment.DefaultConfig())
	if err := sess.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	for i, q := range sess.Snapshot().Questions {
		if err := sess.Answer(context.Background(), i, q.Options[0]); err != nil {
			t.Fatal(err)
		}
	}

	view := New(sess).View(100, 34)
	for _, want := range []string{"Sleep score", "from average", "Tonight, try:", string(scoring.Habits)} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeMenu_PushesQuiz(t *testing.T) {
	h := New(assessment.NewSession(oracle.Offline{}, assessment.DefaultConfig()))
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should return a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if msg.Screen.Title() != "Last Night" {
		t.Errorf("pushed %q", msg.Screen.Title())
	}
}

func TestVariantFor(t *testing.T) {
	good, poor := scoring.BandGood, scoring.BandPoor
	if variantFor(nil) != MoonSleepy || variantFor(&good) != MoonRested || variantFor(&poor) != MoonRestless {
		t.Error("unexpected moon variant")
	}
}
