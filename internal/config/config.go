package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"travelhelper/pkg/utils"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var defaultModels = map[string]string{
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGemini: "gemini-1.5-flash",
}

type Config struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	Store     StoreConfig
	Inference InferenceConfig

	TagMaxAttempts int
}

type StoreConfig struct {
	Backend     string
	SQLitePath  string
	PostgresURL string
}

type InferenceConfig struct {
	Provider      string
	Model         string
	OpenAIKey     string
	OpenAIBaseURL string
	GeminiKey     string
	Timeout       time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:      getEnvWithDefault("PORT", "8080"),
		GinMode:   getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:  getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvWithDefault("LOG_FORMAT", "json"),
		Store: StoreConfig{
			Backend:     strings.ToLower(getEnvWithDefault("STORE_BACKEND", BackendSQLite)),
			SQLitePath:  getEnvWithDefault("SQLITE_PATH", "data/default.db"),
			PostgresURL: os.Getenv("POSTGRES_URL"),
		},
		Inference: InferenceConfig{
			Provider:      strings.ToLower(getEnvWithDefault("INFERENCE_PROVIDER", ProviderOpenAI)),
			Model:         os.Getenv("INFERENCE_MODEL"),
			OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
			GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		},
	}

	var err error
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Inference.Timeout, err = getDuration("INFERENCE_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.TagMaxAttempts, err = getInt("TAG_MAX_ATTEMPTS", 1); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if c.Store.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when using the postgres store")
		}
	default:
		return fmt.Errorf("%w: %s. Use 'sqlite', 'postgres' or 'memory'", utils.ErrUnsupportedBackend, c.Store.Backend)
	}

	switch c.Inference.Provider {
	case ProviderOpenAI:
		// A local OpenAI-compatible server may not need a key.
		if c.Inference.OpenAIKey == "" && c.Inference.OpenAIBaseURL == "" {
			return errors.New("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case ProviderGemini:
		if c.Inference.GeminiKey == "" {
			return errors.New("GEMINI_API_KEY is required when using Gemini provider")
		}
	default:
		return fmt.Errorf("%w: %s. Use 'openai' or 'gemini'", utils.ErrUnsupportedProvider, c.Inference.Provider)
	}
	if c.Inference.Model == "" {
		c.Inference.Model = defaultModels[c.Inference.Provider]
	}

	if c.TagMaxAttempts < 1 {
		return fmt.Errorf("TAG_MAX_ATTEMPTS must be at least 1, got %d", c.TagMaxAttempts)
	}
	return nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}
