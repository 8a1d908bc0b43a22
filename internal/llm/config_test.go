package llm

import (
	"context"
	"testing"
)

var providerEnvKeys = []string{
	"SLEEPCHECK_LLM_PROVIDER",
	"SLEEPCHECK_ANTHROPIC_API_KEY", "SLEEPCHECK_ANTHROPIC_MODEL",
	"SLEEPCHECK_OPENAI_API_KEY", "SLEEPCHECK_OPENAI_MODEL", "SLEEPCHECK_OPENAI_BASE_URL",
	"SLEEPCHECK_GEMINI_API_KEY", "SLEEPCHECK_GEMINI_MODEL",
	"SLEEPCHECK_OPENROUTER_API_KEY", "SLEEPCHECK_OPENROUTER_MODEL",
	"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
}

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range providerEnvKeys {
		t.Setenv(k, "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "llama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("SLEEPCHECK_LLM_PROVIDER", "openai")
	t.Setenv("SLEEPCHECK_OPENAI_API_KEY", "sk-test")
	t.Setenv("SLEEPCHECK_OPENAI_BASE_URL", "http://localhost:11434/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("base URL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model default lost: %q", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with empty env")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENAI_API_KEY", "o")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderOpenAI {
		t.Fatalf("expected openai to win over anthropic, got %q", cfg.Provider)
	}

	t.Setenv("GEMINI_API_KEY", "g")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g" {
		t.Fatalf("expected gemini first, got %+v", cfg)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	clearProviderEnv(t)
	if _, err := NewProviderFromEnv(context.Background(), nil); err == nil {
		t.Fatal("expected error with nothing configured")
	}

	t.Setenv("SLEEPCHECK_LLM_PROVIDER", "mock")
	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestNewProvider_WrapsWithRetryAndLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	cfg.OpenAI.APIKey = "k"

	p, err := NewProvider(context.Background(), cfg, &recordingLog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := p.(*RetryProvider)
	if !ok {
		t.Fatalf("outer layer = %T, want *RetryProvider", p)
	}
	if _, ok := r.inner.(*LoggingProvider); !ok {
		t.Fatalf("inner layer = %T, want *LoggingProvider", r.inner)
	}
}
