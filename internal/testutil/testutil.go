package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"marketdash/internal/upstream"
)

// MockInvoker is a mock implementation of the upstream.Invoker interface for testing
type MockInvoker struct {
	InvokeFunc func(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)

	mu    sync.Mutex
	calls []Call
}

// Call records one Invoke invocation
type Call struct {
	Path   string
	Params map[string]string
}

// Invoke implements the upstream.Invoker interface
func (m *MockInvoker) Invoke(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Path: path, Params: params})
	m.mu.Unlock()

	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, path, params)
	}
	return json.RawMessage(`{}`), nil
}

// CallCount returns how many times Invoke was called
func (m *MockInvoker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded invocations
func (m *MockInvoker) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// NewMockInvoker creates a mock that always returns the given body and error
func NewMockInvoker(body string, err error) *MockInvoker {
	return &MockInvoker{
		InvokeFunc: func(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
			if err != nil {
				return nil, err
			}
			return json.RawMessage(body), nil
		},
	}
}

var _ upstream.Invoker = (*MockInvoker)(nil)
