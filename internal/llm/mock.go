package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one canned reply in the MockProvider queue.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// HintsResponse builds a canned reply shaped like the drafting
// assistant's hint ladder output.
func HintsResponse(hints ...string) MockResponse {
	content, _ := json.Marshal(map[string]any{"hints": hints})
	return MockResponse{Content: content}
}

// StrategyResponse builds a canned reply shaped like the drafting
// assistant's misconception analysis output.
func StrategyResponse(rootCause, strategy string) MockResponse {
	content, _ := json.Marshal(map[string]string{
		"root_cause": rootCause,
		"strategy":   strategy,
	})
	return MockResponse{Content: content}
}

// MockProvider replays canned replies in order and records every request
// along with its event-logging purpose. Drafting tests drive it in place
// of a real backend.
type MockProvider struct {
	mu       sync.Mutex
	queue    []MockResponse
	Calls    []Request
	Purposes []string
}

// NewMockProvider creates a MockProvider preloaded with canned replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{queue: replies}
}

// Generate pops the next canned reply. An empty queue reports the
// provider unavailable, mirroring a backend outage.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{Err: errors.New("mock reply queue is empty")}
	}

	reply := m.queue[0]
	m.queue = m.queue[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}

	return &Response{
		Content:    reply.Content,
		Usage:      reply.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse queues another canned reply.
func (m *MockProvider) AddResponse(reply MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, reply)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
