package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/lessonlint/internal/store"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware. The call chain is
// caller, retry, logging, base.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenAIProvider(openRouterAsOpenAI(cfg.OpenRouter))
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from LESSONLINT_* configuration,
// falling back to probing the standard API key env vars when the
// configured provider has no key.
func NewProviderFromEnv(ctx context.Context, events store.LLMEventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}

// openRouterAsOpenAI maps OpenRouter config onto the OpenAI provider,
// which speaks the same wire protocol.
func openRouterAsOpenAI(cfg OpenRouterConfig) OpenAIConfig {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	return OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}
}
