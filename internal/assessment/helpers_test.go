package assessment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/sleepcheck/internal/llm"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

var errOracleDown = errors.New("oracle down")

// failing always errors.
var failing = oracle.Func(func(context.Context, string) (string, error) {
	return "", errOracleDown
})

// scripted answers by purpose and counts calls.
type scripted struct {
	questions string
	analysis  string
	err       error

	calls    atomic.Int32
	mu       sync.Mutex
	attempts []string
}

func (s *scripted) Generate(ctx context.Context, _ string) (string, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.attempts = append(s.attempts, llm.AttemptFrom(ctx))
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	if llm.PurposeFrom(ctx) == oracle.PurposeQuestions {
		return s.questions, nil
	}
	return s.analysis, nil
}

// blocking waits for release or ctx. entered is signalled on each call.
type blocking struct {
	entered chan string
	release chan struct{}
	reply   string
}

func newBlocking(reply string) *blocking {
	return &blocking{entered: make(chan string, 4), release: make(chan struct{}), reply: reply}
}

func (b *blocking) Generate(ctx context.Context, _ string) (string, error) {
	b.entered <- llm.PurposeFrom(ctx)
	select {
	case <-b.release:
		return b.reply, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.OracleTimeout = 2 * time.Second
	cfg.Now = func() time.Time { return time.Date(2024, 3, 9, 7, 30, 0, 0, time.UTC) }
	return cfg
}

// bestOption picks the healthiest default option for each slot.
func bestOption(slot int, q questionnaire.Question) string {
	if slot == int(questionnaire.SlotDuration) {
		return "7-8 hours (optimal sleep duration)"
	}
	return q.Options[0]
}

// answerAll answers every question in order using pick.
func answerAll(t *testing.T, s *Session, pick func(int, questionnaire.Question) string) error {
	t.Helper()
	qs := s.Snapshot().Questions
	for i, q := range qs {
		err := s.Answer(context.Background(), i, pick(i, q))
		if i < len(qs)-1 {
			require.NoError(t, err, "answer %d", i)
			continue
		}
		return err
	}
	return nil
}

func waitForState(t *testing.T, s *Session, want State) {
	t.Helper()
	require.Eventually(t, func() bool { return s.Snapshot().State == want },
		2*time.Second, 5*time.Millisecond, "state never reached %s", want)
}
