package qa

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"llm-qa/internal/llm"
)

// AnswerResult is everything produced for one question. It is built fresh per
// call and owned by the caller.
type AnswerResult struct {
	ID                uuid.UUID   `json:"id"`
	OriginalQuestion  string      `json:"original_question"`
	ProcessedQuestion string      `json:"processed_question"`
	Tokens            []string    `json:"tokens"`
	Prompt            string      `json:"prompt"`
	Answer            string      `json:"answer"`
	Outcome           llm.Outcome `json:"outcome"`
}

// Service couples question preprocessing with an answer client.
type Service struct {
	client llm.Client
	log    *slog.Logger
}

func NewService(client llm.Client, log *slog.Logger) *Service {
	if client == nil {
		client = llm.Offline{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{client: client, log: log}
}

// Answer runs normalize, prompt, and generate in order. Provider problems are
// reported inside the answer text, so there is no error return.
func (s *Service) Answer(ctx context.Context, question string) AnswerResult {
	start := time.Now()
	processed := Normalize(question)
	prompt := BuildPrompt(processed)
	resp := s.client.Generate(ctx, prompt)

	result := AnswerResult{
		ID:                uuid.New(),
		OriginalQuestion:  processed.Original,
		ProcessedQuestion: processed.Text,
		Tokens:            processed.Tokens,
		Prompt:            prompt,
		Answer:            resp.Text,
		Outcome:           resp.Outcome,
	}
	s.log.Info("question answered",
		"id", result.ID,
		"tokens", len(result.Tokens),
		"outcome", result.Outcome,
		"configured", s.client.Configured(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result
}
