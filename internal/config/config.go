package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration read once at startup.
type Config struct {
	// Server
	Port           int           `env:"PORT" envDefault:"5000"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`

	// LLM. Defaults for these live in the llm package; empty means unset.
	LLMProvider    string `env:"LLM_PROVIDER"` // "openai" (official SDK) or "openai-compatible" (any /chat/completions endpoint)
	LLMModel       string `env:"LLM_MODEL"`
	OpenAIKey      string `env:"OPENAI_API_KEY"`
	LLMAPIKey      string `env:"LLM_API_KEY"`
	LLMBaseURL     string `env:"OPENAI_BASE_URL"`
	LLMTemperature string `env:"LLM_TEMPERATURE"` // parsed by llm.ResolveConfig so a bad value can fall back
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// LoadFrom is Load against an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// LoadEnvFile loads variables from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadEnvFile(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Lookup returns the non-empty value configured for an environment variable
// name. It is the lookup capability handed to llm.ResolveConfig.
func (c Config) Lookup(name string) (string, bool) {
	var v string
	switch name {
	case "LLM_PROVIDER":
		v = c.LLMProvider
	case "LLM_MODEL":
		v = c.LLMModel
	case "OPENAI_API_KEY":
		v = c.OpenAIKey
	case "LLM_API_KEY":
		v = c.LLMAPIKey
	case "OPENAI_BASE_URL":
		v = c.LLMBaseURL
	case "LLM_TEMPERATURE":
		v = c.LLMTemperature
	}
	return v, v != ""
}
