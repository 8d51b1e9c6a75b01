package llm

import "context"

// Client turns a prompt into displayable answer text. Implementations never
// return Go errors; failures come back in-band through Response.
type Client interface {
	// Configured reports whether a real provider call will be attempted.
	Configured() bool
	Generate(ctx context.Context, prompt string) Response
}

// Outcome tells which path produced a Response.
type Outcome string

const (
	OutcomeAnswered Outcome = "answered"
	OutcomeOffline  Outcome = "offline"
	OutcomeFailed   Outcome = "failed"
)

// Response is the result of a Generate call. Text is always safe to show to a
// user regardless of Outcome.
type Response struct {
	Outcome Outcome
	Text    string
	Err     error
}

// Request is a single-message completion request sent to a Provider.
type Request struct {
	Model       string
	Prompt      string
	Temperature float64
}

// Provider is the network transport behind the remote client. It returns the
// text segments of the provider's reply in order.
type Provider interface {
	Complete(ctx context.Context, req Request) ([]string, error)
}
