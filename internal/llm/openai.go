package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider calls the OpenAI Chat Completions API through the official SDK.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider builds a provider for cfg. SDK retries are disabled; a
// failed call is reported once.
func NewOpenAIProvider(cfg ClientConfig) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAIProvider{client: &cli}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req Request) ([]string, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("nil openai client")
	}
	model := openai.ChatModel(req.Model)
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       model,
		Messages:    []openai.ChatCompletionMessageParamUnion{userMessage(req.Prompt)},
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return nil, err
	}
	segments := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		segments = append(segments, choice.Message.Content)
	}
	return segments, nil
}

func userMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: openai.String(content),
			},
		},
	}
}
