package llm

import (
	"context"
	"fmt"

	"github.com/Latesh-31/Adaptlearn/internal/logger"
)

// NewProvider creates a Provider from configuration, wrapped with the
// timeout, logging, and retry decorators.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → timeout (per attempt) → logging → backend
	return WithRetry(WithTimeout(WithLogging(base, log), cfg.Timeout), cfg.Retry), nil
}
