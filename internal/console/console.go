// Package console implements the line interface: a single question or an
// interactive prompt loop over any reader and writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"llm-qa/internal/qa"
)

const (
	prompt        = "Q> "
	previewTokens = 10
)

// Answerer is the single operation the line interface needs.
type Answerer interface {
	Answer(ctx context.Context, question string) qa.AnswerResult
}

// Session reads questions from in and writes rendered answers to out.
type Session struct {
	answerer Answerer
	in       *bufio.Reader
	out      io.Writer
	label    *color.Color
	notice   *color.Color
}

func NewSession(answerer Answerer, in io.Reader, out io.Writer) *Session {
	return &Session{
		answerer: answerer,
		in:       bufio.NewReader(in),
		out:      out,
		label:    color.New(color.Bold),
		notice:   color.New(color.FgYellow),
	}
}

// Ask answers one question and prints the result.
func (s *Session) Ask(ctx context.Context, question string) error {
	result := s.answerer.Answer(ctx, question)
	_, err := fmt.Fprintln(s.out, s.Render(result))
	return err
}

// Render formats a result: normalized question, up to ten tokens, and the answer.
func (s *Session) Render(result qa.AnswerResult) string {
	preview := result.Tokens
	if len(preview) > previewTokens {
		preview = preview[:previewTokens]
	}
	tokens := strings.Join(preview, ", ")
	if len(result.Tokens) > previewTokens {
		tokens += ", ..."
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.label.Sprint("Processed question:"))
	b.WriteString(" " + result.ProcessedQuestion + "\n")
	b.WriteString(s.label.Sprintf("Tokens (%d):", len(result.Tokens)))
	b.WriteString(" " + tokens + "\n")
	b.WriteString(s.label.Sprint("Answer:"))
	b.WriteString("\n" + result.Answer + "\n")
	return b.String()
}

type line struct {
	text string
	err  error
}

// Run loops until "exit"/"quit", end of input, or ctx is cancelled. Blank
// lines are skipped.
func (s *Session) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(s.out, s.notice.Sprint("LLM Q&A CLI. Type 'exit' or 'quit' to stop.")+"\n"); err != nil {
		return err
	}

	lines := make(chan line)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			text, err := s.in.ReadString('\n')
			select {
			case lines <- line{text: text, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		fmt.Fprint(s.out, prompt)

		var next line
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "\nExiting.")
			return nil
		case next = <-lines:
		}

		question := strings.TrimSpace(next.text)
		switch strings.ToLower(question) {
		case "":
		case "exit", "quit":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			if err := s.Ask(ctx, question); err != nil {
				return err
			}
		}

		if next.err != nil {
			fmt.Fprintln(s.out, "\nExiting.")
			if errors.Is(next.err, io.EOF) {
				return nil
			}
			return next.err
		}
	}
}
