package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"llm-qa/internal/llm"
	"llm-qa/internal/qa"
)

type mockAnswerer struct {
	mock.Mock
}

func (m *mockAnswerer) Answer(ctx context.Context, question string) qa.AnswerResult {
	args := m.Called(ctx, question)
	return args.Get(0).(qa.AnswerResult)
}

func init() {
	color.NoColor = true
}

func offlineService() *qa.Service {
	return qa.NewService(llm.Offline{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		result qa.AnswerResult
		want   string
	}{
		{
			name: "short token list",
			result: qa.AnswerResult{
				ProcessedQuestion: "what is nlp",
				Tokens:            []string{"what", "is", "nlp"},
				Answer:            "Natural language processing.",
			},
			want: "\nProcessed question: what is nlp\nTokens (3): what, is, nlp\nAnswer:\nNatural language processing.\n",
		},
		{
			name: "more than ten tokens are truncated",
			result: qa.AnswerResult{
				ProcessedQuestion: "a b c d e f g h i j k l",
				Tokens:            strings.Fields("a b c d e f g h i j k l"),
				Answer:            "ok",
			},
			want: "\nProcessed question: a b c d e f g h i j k l\nTokens (12): a, b, c, d, e, f, g, h, i, j, ...\nAnswer:\nok\n",
		},
		{
			name: "exactly ten tokens have no ellipsis",
			result: qa.AnswerResult{
				ProcessedQuestion: "a b c d e f g h i j",
				Tokens:            strings.Fields("a b c d e f g h i j"),
				Answer:            "ok",
			},
			want: "\nProcessed question: a b c d e f g h i j\nTokens (10): a, b, c, d, e, f, g, h, i, j\nAnswer:\nok\n",
		},
		{
			name:   "no tokens",
			result: qa.AnswerResult{Tokens: []string{}, Answer: "ok"},
			want:   "\nProcessed question: \nTokens (0): \nAnswer:\nok\n",
		},
	}

	s := NewSession(nil, strings.NewReader(""), io.Discard)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Render(tt.result))
		})
	}
}

func TestAskOffline(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(offlineService(), strings.NewReader(""), &out)

	require.NoError(t, s.Ask(context.Background(), "What is NLP?"))

	assert.Contains(t, out.String(), "Processed question: what is nlp\n")
	assert.Contains(t, out.String(), "Tokens (3): what, is, nlp\n")
	assert.Contains(t, out.String(), "Answer:\n[Offline Response]")
}

func TestRun(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantQuestions []string
		wantEnding    string
	}{
		{
			name:          "quit ends the loop",
			input:         "What is NLP?\n\n   \nquit\nnever asked\n",
			wantQuestions: []string{"What is NLP?"},
			wantEnding:    "Goodbye.\n",
		},
		{
			name:          "exit is case insensitive",
			input:         "  EXIT  \n",
			wantQuestions: nil,
			wantEnding:    "Goodbye.\n",
		},
		{
			name:          "end of input",
			input:         "first\nsecond\n",
			wantQuestions: []string{"first", "second"},
			wantEnding:    "\nExiting.\n",
		},
		{
			name:          "last line without newline is still answered",
			input:         "first\n  second question",
			wantQuestions: []string{"first", "second question"},
			wantEnding:    "\nExiting.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answerer := new(mockAnswerer)
			for _, q := range tt.wantQuestions {
				answerer.On("Answer", mock.Anything, q).
					Return(qa.AnswerResult{ProcessedQuestion: strings.ToLower(q), Tokens: []string{}, Answer: "answer to " + q}).Once()
			}

			var out bytes.Buffer
			err := NewSession(answerer, strings.NewReader(tt.input), &out).Run(context.Background())

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out.String(), "LLM Q&A CLI."))
			assert.True(t, strings.HasSuffix(out.String(), tt.wantEnding), out.String())
			for _, q := range tt.wantQuestions {
				assert.Contains(t, out.String(), "answer to "+q)
			}
			answerer.AssertExpectations(t)
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewSession(new(mockAnswerer), reader, &out).Run(ctx)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "\nExiting.\n"))
}
