package assessment

import (
	"context"

	"github.com/abhisek/sleepcheck/internal/llm"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/parser"
	"github.com/abhisek/sleepcheck/internal/questionnaire"
	"github.com/abhisek/sleepcheck/internal/scoring"
)

// OutcomeKind classifies one oracle round trip.
type OutcomeKind int

const (
	// OutcomeParsed: the oracle answered and at least one section was usable.
	OutcomeParsed OutcomeKind = iota
	// OutcomeUnparseable: the oracle answered but nothing was usable.
	OutcomeUnparseable
	// OutcomeFailed: the oracle call errored or timed out.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeParsed:
		return "parsed"
	case OutcomeUnparseable:
		return "unparseable"
	default:
		return "failed"
	}
}

// Outcome is the classified result of the insight oracle call.
type Outcome struct {
	Kind     OutcomeKind
	Analysis parser.Analysis // only set for OutcomeParsed
	Err      error           // only set for OutcomeFailed
}

// classify turns a raw oracle reply into an Outcome.
func classify(text string, err error) Outcome {
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: err}
	}
	a := parser.ParseAnalysisResponse(text)
	if !a.HasText() && !a.HasRecommendations() && !a.HasScores() {
		return Outcome{Kind: OutcomeUnparseable}
	}
	return Outcome{Kind: OutcomeParsed, Analysis: a}
}

// Collapse resolves the outcome into a Result. Each section is either the
// oracle's, when usable, or the default; scores are never merged across
// sources.
func (o Outcome) Collapse(cfg Config, answers questionnaire.AnswerSet) Result {
	cfg = cfg.withDefaults()

	var a parser.Analysis
	if o.Kind == OutcomeParsed {
		a = o.Analysis
	}

	analysis, analysisSrc := cfg.DefaultAnalysis, SourceDefault
	if a.HasText() {
		analysis, analysisSrc = a.Text, SourceOracle
	}
	recs, recsSrc := cfg.DefaultRecommendations, SourceDefault
	if a.HasRecommendations() {
		recs, recsSrc = a.Recommendations, SourceOracle
	}
	scores, scoresSrc := a.Scores, SourceOracle
	if !a.HasScores() {
		scores, scoresSrc = scoring.Score(answers), SourceHeuristic
	}

	r := NewResult(analysis, recs, scores, cfg.Now())
	r.AnalysisSource = analysisSrc
	r.RecommendationsSource = recsSrc
	r.ScoresSource = scoresSrc
	return r
}

// GenerateQuestions asks the oracle for a question set. It returns the
// default set and false on any failure or unusable reply.
func GenerateQuestions(ctx context.Context, o oracle.Oracle, cfg Config) (questionnaire.QuestionSet, bool) {
	text, err := callOracle(ctx, o, cfg, oracle.PurposeQuestions, parser.BuildQuestionPrompt())
	if err != nil {
		return questionnaire.DefaultQuestionSet(), false
	}
	return parser.ParseQuestionResponse(text)
}

// Analyze runs the insight stage on a finished answer set. It never fails:
// oracle errors, timeouts and unusable replies all degrade to defaults and
// the heuristic scorer.
func Analyze(ctx context.Context, o oracle.Oracle, cfg Config, questions questionnaire.QuestionSet, answers questionnaire.AnswerSet) (Result, Outcome) {
	text, err := callOracle(ctx, o, cfg, oracle.PurposeAnalysis, parser.BuildAnalysisPrompt(questions, answers))
	out := classify(text, err)
	return out.Collapse(cfg, answers), out
}

func callOracle(ctx context.Context, o oracle.Oracle, cfg Config, purpose, prompt string) (string, error) {
	cfg = cfg.withDefaults()
	if o == nil {
		o = oracle.Offline{}
	}
	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, purpose), cfg.OracleTimeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)
	go func() {
		text, err := o.Generate(ctx, prompt)
		done <- reply{text, err}
	}()

	// An oracle that ignores ctx must not hold the stage past the timeout.
	select {
	case r := <-done:
		return r.text, r.err
	case <-ctx.Done():
		return "", &oracle.Error{Purpose: purpose, Err: ctx.Err()}
	}
}
