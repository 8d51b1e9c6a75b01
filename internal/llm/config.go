package llm

import (
	"log/slog"
	"strconv"
	"strings"
)

const (
	ProviderOpenAI     = "openai"
	ProviderCompatible = "openai-compatible"

	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.2
	DefaultBaseURL     = "https://api.openai.com/v1"
)

// ClientConfig is resolved once when a client is built and is not changed afterwards.
type ClientConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
}

// Overrides are explicit values that take precedence over the environment.
// Empty strings and a nil Temperature mean "not given".
type Overrides struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature *float64
}

// LookupFunc returns the value of a named external setting and whether it is set.
type LookupFunc func(name string) (string, bool)

// ResolveConfig applies override > environment > default independently for
// every field. The API key falls back from OPENAI_API_KEY to LLM_API_KEY.
// A temperature that does not parse as a float falls back to the default.
func ResolveConfig(o Overrides, lookup LookupFunc, log *slog.Logger) ClientConfig {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	if log == nil {
		log = slog.Default()
	}

	cfg := ClientConfig{
		Provider: firstNonEmpty(o.Provider, env(lookup, "LLM_PROVIDER"), ProviderOpenAI),
		Model:    firstNonEmpty(o.Model, env(lookup, "LLM_MODEL"), DefaultModel),
		APIKey:   firstNonEmpty(o.APIKey, env(lookup, "OPENAI_API_KEY"), env(lookup, "LLM_API_KEY")),
		BaseURL:  firstNonEmpty(o.BaseURL, env(lookup, "OPENAI_BASE_URL")),
	}

	cfg.Temperature = DefaultTemperature
	if o.Temperature != nil {
		cfg.Temperature = *o.Temperature
	} else if raw := env(lookup, "LLM_TEMPERATURE"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Warn("ignoring invalid LLM_TEMPERATURE", "value", raw, "default", DefaultTemperature, "err", err)
		} else {
			cfg.Temperature = t
		}
	}
	return cfg
}

func env(lookup LookupFunc, name string) string {
	v, ok := lookup(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
