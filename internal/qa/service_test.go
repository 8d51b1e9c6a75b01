package qa

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"llm-qa/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceAnswer(t *testing.T) {
	client := new(llm.MockClient)
	client.On("Configured").Return(true).Maybe()
	client.On("Generate", mock.Anything, BuildPrompt(Normalize("What is NLP?"))).
		Return(llm.Response{Outcome: llm.OutcomeAnswered, Text: "Natural language processing."}).Once()

	svc := NewService(client, discardLogger())
	got := svc.Answer(context.Background(), "  What is NLP?  ")

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "What is NLP?", got.OriginalQuestion)
	assert.Equal(t, "what is nlp", got.ProcessedQuestion)
	assert.Equal(t, []string{"what", "is", "nlp"}, got.Tokens)
	assert.Contains(t, got.Prompt, "Original question: What is NLP?")
	assert.Equal(t, "Natural language processing.", got.Answer)
	assert.Equal(t, llm.OutcomeAnswered, got.Outcome)
	client.AssertExpectations(t)
}

func TestServiceAnswerPassesFailureThrough(t *testing.T) {
	client := new(llm.MockClient)
	client.On("Configured").Return(true).Maybe()
	client.On("Generate", mock.Anything, mock.Anything).
		Return(llm.Response{Outcome: llm.OutcomeFailed, Text: "[LLM Error] Unable to fetch response: timeout"}).Once()

	got := NewService(client, discardLogger()).Answer(context.Background(), "Explain recursion")

	assert.Equal(t, "[LLM Error] Unable to fetch response: timeout", got.Answer)
	assert.Equal(t, llm.OutcomeFailed, got.Outcome)
	client.AssertExpectations(t)
}

func TestServiceAnswerOffline(t *testing.T) {
	svc := NewService(llm.Offline{}, discardLogger())

	got := svc.Answer(context.Background(), "Explain recursion")

	assert.True(t, strings.HasPrefix(got.Answer, "[Offline Response]"))
	assert.Equal(t, llm.OutcomeOffline, got.Outcome)
	assert.Equal(t, []string{"explain", "recursion"}, got.Tokens)
}

func TestServiceAnswerFreshResults(t *testing.T) {
	svc := NewService(nil, nil)

	a := svc.Answer(context.Background(), "one two")
	b := svc.Answer(context.Background(), "one two")

	assert.NotEqual(t, a.ID, b.ID)
	a.Tokens[0] = "changed"
	assert.Equal(t, "one", b.Tokens[0])
}
