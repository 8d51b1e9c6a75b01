package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	offlineTemplate = `[Offline Response]
Unable to reach the configured LLM provider. Please verify that an API key
is available (set OPENAI_API_KEY or LLM_API_KEY). Last prompt line:
"%s..."`

	failurePrefix = "[LLM Error] Unable to fetch response: "

	previewLimit = 120
)

// New returns the client matching cfg: the offline client when no API key is
// configured, otherwise a remote client over the configured provider.
func New(cfg ClientConfig, log *slog.Logger) (Client, error) {
	if log == nil {
		log = slog.Default()
	}
	if cfg.APIKey == "" {
		return Offline{}, nil
	}
	var p Provider
	switch cfg.Provider {
	case ProviderOpenAI, "":
		p = NewOpenAIProvider(cfg)
	case ProviderCompatible:
		p = NewCompatibleProvider(cfg)
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: %s, %s)", cfg.Provider, ProviderOpenAI, ProviderCompatible)
	}
	return NewRemote(cfg, p, log), nil
}

// Offline never calls a provider.
type Offline struct{}

func (Offline) Configured() bool { return false }

func (Offline) Generate(_ context.Context, prompt string) Response {
	return OfflineResponse(prompt)
}

// Remote sends prompts to a Provider and converts every failure into text.
type Remote struct {
	cfg      ClientConfig
	provider Provider
	log      *slog.Logger
}

// NewRemote wraps p with the fallback and failure handling of the answer client.
func NewRemote(cfg ClientConfig, p Provider, log *slog.Logger) *Remote {
	if log == nil {
		log = slog.Default()
	}
	return &Remote{cfg: cfg, provider: p, log: log}
}

func (c *Remote) Configured() bool {
	return c != nil && c.provider != nil && c.cfg.APIKey != ""
}

func (c *Remote) Generate(ctx context.Context, prompt string) Response {
	if !c.Configured() {
		return OfflineResponse(prompt)
	}
	segments, err := c.provider.Complete(ctx, Request{
		Model:       c.cfg.Model,
		Prompt:      prompt,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		c.log.Warn("llm call failed", "provider", c.cfg.Provider, "model", c.cfg.Model, "err", err)
		return FailureResponse(err)
	}

	var nonEmpty []string
	for _, s := range segments {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	text := strings.TrimSpace(strings.Join(nonEmpty, "\n"))
	if text == "" {
		c.log.Warn("llm returned no text", "provider", c.cfg.Provider, "model", c.cfg.Model)
		return OfflineResponse(prompt)
	}
	return Response{Outcome: OutcomeAnswered, Text: text}
}

// Close releases the provider's transport if it holds one.
func (c *Remote) Close() error {
	if closer, ok := c.provider.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// OfflineResponse is the canned answer used when no provider call is made.
func OfflineResponse(prompt string) Response {
	preview := []rune(lastLine(prompt))
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	return Response{
		Outcome: OutcomeOffline,
		Text:    fmt.Sprintf(offlineTemplate, string(preview)),
	}
}

// FailureResponse renders err as a single-line "[LLM Error]" answer.
func FailureResponse(err error) Response {
	msg := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(err.Error())
	return Response{
		Outcome: OutcomeFailed,
		Text:    failurePrefix + msg,
		Err:     err,
	}
}

// lastLine returns the final line of s. A single trailing line break does not
// start a new line.
func lastLine(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if i := strings.LastIndexAny(s, "\r\n"); i >= 0 {
		return s[i+1:]
	}
	return s
}
