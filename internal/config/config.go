package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Latesh-31/Adaptlearn/internal/llm"
)

type Config struct {
	Env        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string
	RedisAddr  string

	AIProvider    string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// AssessmentTTL is how long a generated quiz stays gradable.
	AssessmentTTL time.Duration
}

func Load() *Config {
	return &Config{
		Env:        getEnv("APP_ENV", "dev"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "adaptlearn"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),

		AIProvider:    getEnv("AI_PROVIDER", "gemini"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),

		AssessmentTTL: getEnvMinutes("ASSESSMENT_TTL_MINUTES", 60),
	}
}

// LLM maps the app config onto oracle provider configuration.
func (c *Config) LLM() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Provider = c.AIProvider
	cfg.Gemini.APIKey = c.GeminiAPIKey
	if c.GeminiModel != "" {
		cfg.Gemini.Model = c.GeminiModel
	}
	cfg.OpenAI.APIKey = c.OpenAIAPIKey
	if c.OpenAIModel != "" {
		cfg.OpenAI.Model = c.OpenAIModel
	}
	cfg.OpenAI.BaseURL = c.OpenAIBaseURL
	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvMinutes(key string, fallback int) time.Duration {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return time.Duration(fallback) * time.Minute
}
