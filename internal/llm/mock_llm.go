package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockClient) Generate(ctx context.Context, prompt string) Response {
	args := m.Called(ctx, prompt)
	return args.Get(0).(Response)
}

// MockProvider is a mock implementation of Provider using testify/mock.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Complete(ctx context.Context, req Request) ([]string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
