package oracle

import (
	"context"
	"strings"

	"github.com/abhisek/sleepcheck/internal/llm"
)

const systemPrompt = `You are a sleep coach helping someone reflect on how they slept LAST NIGHT.
Follow the requested output format exactly. Use plain text, no markdown, and no introductions.`

// Config tunes the LLM-backed oracle.
type Config struct {
	System      string
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		System:      systemPrompt,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// LLM issues one provider call per Generate.
type LLM struct {
	provider llm.Provider
	cfg      Config
}

func NewLLM(provider llm.Provider, cfg Config) *LLM {
	return &LLM{provider: provider, cfg: cfg}
}

// Generate returns the provider's text. A blank reply counts as a failure.
func (o *LLM) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.provider.Complete(ctx, llm.UserRequest(o.cfg.System, prompt, o.cfg.MaxTokens, o.cfg.Temperature))
	if err != nil {
		return "", &Error{Purpose: llm.PurposeFrom(ctx), Err: err}
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", &Error{Purpose: llm.PurposeFrom(ctx), Err: &llm.ErrInvalidResponse{Err: errEmpty}}
	}
	return resp.Text, nil
}

// ModelID names the model behind the oracle.
func (o *LLM) ModelID() string {
	return o.provider.ModelID()
}
