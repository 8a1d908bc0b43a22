package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/sleepcheck/internal/store"
)

// CallLog receives one record per provider call. *store.Store's event repo
// satisfies it.
type CallLog interface {
	AppendLLMCall(ctx context.Context, call store.LLMCall) error
}

// LoggingProvider records every call in the call log. Logging failures are
// reported on stderr and never fail the call.
type LoggingProvider struct {
	inner    Provider
	provider string
	repo     CallLog
}

// WithLogging wraps p. providerName is the backend label stored per call.
func WithLogging(p Provider, providerName string, repo CallLog) Provider {
	return &LoggingProvider{inner: p, provider: providerName, repo: repo}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Complete(ctx, req)

	rec := store.LLMCall{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		AttemptID:   AttemptFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: formatRequest(req),
	}
	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			rec.Model = resp.Model
		}
		rec.ResponseBody = resp.Text
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// The call's own context may already be done; the record still belongs
	// in the log.
	if logErr := l.repo.AppendLLMCall(context.WithoutCancel(ctx), rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM call: %v\n", logErr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func formatRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}
