package gateway

import (
	"context"
	"slices"
	"sync"
)

// Call records one invocation made through a MockRunner.
type Call struct {
	Executable string
	Args       []string
}

// MockRunner is an in-memory Runner for testing. It records every call and
// answers with the first registered response whose executable and argument
// prefix match. Unmatched calls succeed with empty output.
type MockRunner struct {
	mu        sync.Mutex
	calls     []Call
	responses []mockResponse
}

type mockResponse struct {
	executable string
	prefix     []string
	result     Result
	err        error
}

// NewMockRunner creates an empty MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// On registers result for calls to executable whose arguments start with prefix.
func (m *MockRunner) On(result Result, executable string, prefix ...string) *MockRunner {
	return m.OnError(result, nil, executable, prefix...)
}

// OnError registers a result and error for matching calls.
func (m *MockRunner) OnError(result Result, err error, executable string, prefix ...string) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses = append(m.responses, mockResponse{
		executable: executable,
		prefix:     prefix,
		result:     result,
		err:        err,
	})

	return m
}

// Run implements Runner.
func (m *MockRunner) Run(_ context.Context, executable string, args ...string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{Executable: executable, Args: slices.Clone(args)})

	for _, resp := range m.responses {
		if resp.executable != executable || len(args) < len(resp.prefix) {
			continue
		}

		if slices.Equal(args[:len(resp.prefix)], resp.prefix) {
			return resp.result, resp.err
		}
	}

	return Result{Success: true}, nil
}

// Calls returns a copy of every recorded call in order.
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.calls)
}

// CallsWith returns the recorded calls to executable whose first argument is sub.
func (m *MockRunner) CallsWith(executable, sub string) []Call {
	var matched []Call

	for _, call := range m.Calls() {
		if call.Executable == executable && len(call.Args) > 0 && call.Args[0] == sub {
			matched = append(matched, call)
		}
	}

	return matched
}
