package llm

import (
	"fmt"
	"time"
)

// Config holds oracle provider configuration.
type Config struct {
	// Provider selects the backend. Values: "gemini", "openai", "mock".
	Provider string

	Gemini GeminiConfig
	OpenAI OpenAIConfig
	Retry  RetryConfig

	// Timeout bounds a single Generate attempt.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// RetryConfig configures retry behavior for transient transport failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults: one retry on
// transient transport errors, 60s per attempt.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini:   GeminiConfig{Model: "gemini-flash"},
		OpenAI:   OpenAIConfig{Model: "gpt-4o-mini"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 1 * time.Second,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown AI provider: %q", c.Provider)
	}
	return nil
}
