package suggestion

import (
	"context"
	"sync"
)

// MockClient is a Client returning a canned answer. It records every prompt.
type MockClient struct {
	Response string
	Err      error
	// Block, when set, makes Generate wait until it is closed or ctx is done.
	Block chan struct{}

	mu      sync.Mutex
	prompts []string
}

// Generate implements Client.
func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Prompts returns the prompts received so far.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
