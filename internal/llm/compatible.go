package llm

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"
)

// CompatibleProvider talks to any server exposing an OpenAI-style
// /chat/completions endpoint (local model servers, proxies, gateways).
type CompatibleProvider struct {
	httpClient *resty.Client
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

func NewCompatibleProvider(cfg ClientConfig) *CompatibleProvider {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(base, "/"))
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	return &CompatibleProvider{httpClient: client}
}

func (p *CompatibleProvider) Close() error {
	return p.httpClient.Close()
}

func (p *CompatibleProvider) Complete(ctx context.Context, req Request) ([]string, error) {
	body := chatCompletionRequest{
		Model:       req.Model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
	}
	response, err := p.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&chatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("post chat completion: %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	result, ok := response.Result().(*chatCompletionResponse)
	if !ok || result == nil {
		return nil, fmt.Errorf("unexpected response body: %s", response.String())
	}
	segments := make([]string, 0, len(result.Choices))
	for _, choice := range result.Choices {
		segments = append(segments, choice.Message.Content)
	}
	return segments, nil
}
