// Package suggestion asks a generative model for budget lines and turns its
// answer into drafts the session can apply.
package suggestion

import "context"

// Client sends one prompt to a text generation model and returns the raw answer.
// Implementations wrap a concrete provider so the suggestion flow can be tested
// without network access.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
