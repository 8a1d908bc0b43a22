package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/sleepcheck/internal/llm"
)

func TestLLM_ReturnsText(t *testing.T) {
	mock := llm.NewTextMock("QUESTION: How long did you sleep?\n7h, 8h")
	o := NewLLM(mock, DefaultConfig())

	got, err := o.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "QUESTION: How long did you sleep?\n7h, 8h" {
		t.Errorf("text = %q", got)
	}
	call := mock.Calls[0]
	if call.System != systemPrompt || call.MaxTokens != 1024 || call.Messages[0].Content != "prompt" {
		t.Errorf("request = %+v", call)
	}
	if o.ModelID() != "mock" {
		t.Errorf("ModelID = %q", o.ModelID())
	}
}

func TestLLM_WrapsProviderError(t *testing.T) {
	cause := &llm.ErrRateLimit{Err: errors.New("429")}
	o := NewLLM(llm.NewMockProvider(llm.MockResponse{Err: cause}), DefaultConfig())

	ctx := llm.WithPurpose(context.Background(), PurposeAnalysis)
	_, err := o.Generate(ctx, "p")

	var oe *Error
	if !errors.As(err, &oe) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if oe.Purpose != PurposeAnalysis {
		t.Errorf("purpose = %q", oe.Purpose)
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Error("provider error should unwrap")
	}
}

func TestLLM_BlankTextIsFailure(t *testing.T) {
	o := NewLLM(llm.NewTextMock("  \n "), DefaultConfig())
	_, err := o.Generate(context.Background(), "p")
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestOffline(t *testing.T) {
	_, err := Offline{}.Generate(context.Background(), "p")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFunc(t *testing.T) {
	var o Oracle = Func(func(ctx context.Context, prompt string) (string, error) {
		return "echo " + prompt, nil
	})
	got, _ := o.Generate(context.Background(), "x")
	if got != "echo x" {
		t.Errorf("got %q", got)
	}
}
