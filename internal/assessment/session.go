// Package assessment runs the sleep assessment: question generation,
// linear answering, and the insight stage, with every oracle failure
// absorbed into defaults and the heuristic scorer.
package assessment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/sleepcheck/internal/llm"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

// Snapshot is a read-only copy of session state.
type Snapshot struct {
	State     State
	Index     int
	AttemptID string

	Questions           questionnaire.QuestionSet
	QuestionsFromOracle bool
	Answers             questionnaire.AnswerSet

	// Result is the most recent completed result. It survives Start and
	// Cancel until the next attempt completes.
	Result *Result
	// Outcome classifies the oracle call behind Result.
	Outcome OutcomeKind
}

// Current returns the question at Index while answering.
func (s Snapshot) Current() (questionnaire.Question, bool) {
	if s.State != Answering || s.Index < 0 || s.Index >= len(s.Questions) {
		return questionnaire.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Session is one user's assessment state machine. All methods are safe for
// concurrent use; the lock is never held across an oracle call.
type Session struct {
	oracle oracle.Oracle
	cfg    Config

	mu                  sync.Mutex
	state               State
	index               int
	questions           questionnaire.QuestionSet
	questionsFromOracle bool
	answers             questionnaire.AnswerSet
	result              *Result
	outcome             OutcomeKind

	// epoch changes whenever an attempt starts or is cancelled. An oracle
	// reply is applied only if the epoch it was issued under is current.
	epoch     uint64
	attemptID string
	inflight  context.CancelFunc
}

// NewSession returns an idle session. A nil oracle behaves like
// oracle.Offline.
func NewSession(o oracle.Oracle, cfg Config) *Session {
	if o == nil {
		o = oracle.Offline{}
	}
	return &Session{
		oracle:  o,
		cfg:     cfg.withDefaults(),
		answers: questionnaire.AnswerSet{},
	}
}

// Start begins a new attempt from Idle or Complete. With a cached question
// set it moves straight to Answering(0); otherwise it blocks on question
// generation. It returns ErrStale if the attempt was cancelled meanwhile.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.state.Loading():
		s.mu.Unlock()
		return ErrBusy
	case s.state != Idle && s.state != Complete:
		st := s.state
		s.mu.Unlock()
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, st)
	}

	s.beginAttempt()
	if s.questions != nil {
		s.state, s.index = Answering, 0
		s.mu.Unlock()
		return nil
	}

	s.state = QuestionsLoading
	ctx, epoch := s.track(ctx)
	s.mu.Unlock()

	qs, fromOracle := GenerateQuestions(ctx, s.oracle, s.cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(epoch, QuestionsLoading) {
		return ErrStale
	}
	s.release()
	s.questions, s.questionsFromOracle = qs, fromOracle
	s.state, s.index = Answering, 0
	return nil
}

// Answer records value for the current question. Answering the last
// question runs the insight stage and blocks until Complete.
func (s *Session) Answer(ctx context.Context, index int, value string) error {
	s.mu.Lock()
	if err := s.checkAnswering(); err != nil {
		s.mu.Unlock()
		return err
	}
	if index != s.index {
		s.mu.Unlock()
		return fmt.Errorf("%w: question %d is not current (at %d)", ErrInvalidAnswer, index, s.index)
	}
	if !s.questions[index].HasOption(value) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q is not an option for question %d", ErrInvalidAnswer, value, index)
	}

	s.answers.Record(index, value)
	if index < len(s.questions)-1 {
		s.index++
		s.mu.Unlock()
		return nil
	}

	s.state = InsightsLoading
	questions, answers := s.questions.Clone(), s.answers.Clone()
	ctx, epoch := s.track(ctx)
	s.mu.Unlock()

	result, outcome := Analyze(ctx, s.oracle, s.cfg, questions, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(epoch, InsightsLoading) {
		return ErrStale
	}
	s.release()
	s.result, s.outcome = &result, outcome.Kind
	s.state = Complete
	return nil
}

// Previous steps back one question. Recorded answers are kept.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAnswering(); err != nil {
		return err
	}
	if s.index == 0 {
		return fmt.Errorf("%w: already at the first question", ErrInvalidTransition)
	}
	s.index--
	return nil
}

// Cancel abandons the current attempt and returns to Idle, discarding its
// answers and any in-flight oracle reply. It is accepted in every state
// except Idle and Complete.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Idle || s.state == Complete {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, s.state)
	}
	s.release()
	s.epoch++
	s.state, s.index = Idle, 0
	s.answers = questionnaire.AnswerSet{}
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:               s.state,
		Index:               s.index,
		AttemptID:           s.attemptID,
		Questions:           s.questions.Clone(),
		QuestionsFromOracle: s.questionsFromOracle,
		Answers:             s.answers.Clone(),
		Outcome:             s.outcome,
	}
	if s.result != nil {
		r := s.result.clone()
		snap.Result = &r
	}
	return snap
}

// beginAttempt resets per-attempt state. Caller holds mu.
func (s *Session) beginAttempt() {
	s.epoch++
	s.attemptID = uuid.NewString()
	s.answers = questionnaire.AnswerSet{}
	s.index = 0
}

// track derives the oracle context for the current epoch and registers its
// cancel func. Caller holds mu.
func (s *Session) track(ctx context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(llm.WithAttempt(ctx, s.attemptID))
	s.inflight = cancel
	return ctx, s.epoch
}

// release cancels the in-flight oracle context, if any. Caller holds mu.
func (s *Session) release() {
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
}

// current reports whether a reply issued under epoch may be applied.
// Caller holds mu.
func (s *Session) current(epoch uint64, want State) bool {
	return s.epoch == epoch && s.state == want
}

func (s *Session) checkAnswering() error {
	switch {
	case s.state.Loading():
		return ErrBusy
	case s.state != Answering:
		return fmt.Errorf("%w: not answering (%s)", ErrInvalidTransition, s.state)
	}
	return nil
}
