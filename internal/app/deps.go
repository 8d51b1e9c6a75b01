package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"llm-qa/internal/config"
	"llm-qa/internal/llm"
	"llm-qa/internal/logger"
	"llm-qa/internal/qa"
)

// Deps bundles common runtime dependencies for the front ends.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	LLM    llm.Client
	QA     *qa.Service
}

// Options adjust Build for a particular front end.
type Options struct {
	// Overrides take precedence over the environment when resolving the LLM client.
	Overrides llm.Overrides
	// LogLevel replaces LOG_LEVEL when set.
	LogLevel string
	// LogOutput defaults to stdout.
	LogOutput io.Writer
	// EnvFiles are loaded before reading the environment; defaults to .env.
	EnvFiles []string
}

// Build loads env, config, and shared components.
func Build(opts Options) (Deps, error) {
	if err := config.LoadEnvFile(opts.EnvFiles...); err != nil {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	return BuildFrom(cfg, opts)
}

// BuildFrom wires components from an already loaded configuration.
func BuildFrom(cfg config.Config, opts Options) (Deps, error) {
	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stdout
	}
	log := logger.NewTo(out, level)

	llmClient, err := buildLLM(cfg, opts.Overrides, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	return Deps{
		Config: cfg,
		Log:    log,
		LLM:    llmClient,
		QA:     qa.NewService(llmClient, log),
	}, nil
}

// Close releases resources held by the LLM client.
func (d Deps) Close() error {
	if closer, ok := d.LLM.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func buildLLM(cfg config.Config, overrides llm.Overrides, log *slog.Logger) (llm.Client, error) {
	clientCfg := llm.ResolveConfig(overrides, cfg.Lookup, log)
	client, err := llm.New(clientCfg, log)
	if err != nil {
		return nil, err
	}
	if !client.Configured() {
		log.Warn("no LLM API key configured; answers will use the offline response", "model", clientCfg.Model)
		return client, nil
	}
	log.Info("using LLM client",
		"provider", clientCfg.Provider,
		"model", clientCfg.Model,
		"base_url", clientCfg.BaseURL,
		"temperature", clientCfg.Temperature,
	)
	return client, nil
}
