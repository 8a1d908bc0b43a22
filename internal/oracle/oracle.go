// Package oracle adapts text-generation backends to the single call the
// assessment pipeline needs: prompt in, free text out.
package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/sleepcheck/internal/llm"
)

// Purpose labels attached to oracle calls in the call log.
const (
	PurposeQuestions = "question-gen"
	PurposeAnalysis  = "sleep-analysis"
)

// Oracle returns free text for a prompt or fails. Callers treat any error
// as final for the current stage.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to Oracle.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Error wraps any failure surfaced by an Oracle implementation.
type Error struct {
	Purpose string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Purpose, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrNotConfigured is returned by Offline.
var ErrNotConfigured = errors.New("no text-generation provider configured")

// Offline always fails. The pipeline then runs on defaults and the local
// heuristic.
type Offline struct{}

func (Offline) Generate(ctx context.Context, _ string) (string, error) {
	return "", &Error{Purpose: llm.PurposeFrom(ctx), Err: ErrNotConfigured}
}

var errEmpty = errors.New("empty response")
