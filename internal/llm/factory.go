package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware. Call order: caller, retry, logging, base.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, eventRepo, log), cfg.Retry), nil
}
