package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured backend wrapped as
// caller → retry → logging → backend. A nil log skips the logging layer.
func NewProvider(ctx context.Context, cfg Config, log CallLog) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if log != nil {
		base = WithLogging(base, cfg.Provider, log)
	}
	return WithRetry(base, cfg.Retry), nil
}

// NewProviderFromEnv reads SLEEPCHECK_* variables and, when they do not
// name a usable provider, falls back to DiscoverConfig.
func NewProviderFromEnv(ctx context.Context, log CallLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
