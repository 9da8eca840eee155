// Package llm extracts candidate signal matches from item text using a
// language model. It is a second, lower-trust match source: its output
// feeds the same collapse/score pipeline as keyword matches, with
// confidence capped by configuration.
package llm

import "context"

// Provider is a minimal completion interface over an LLM backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends one prompt and returns the raw model output.
	Complete(ctx context.Context, prompt string) (string, error)

	// IsAvailable checks whether the provider is configured and
	// reachable.
	IsAvailable(ctx context.Context) bool
}

// extractionSystemPrompt steers the model toward strict JSON output.
const extractionSystemPrompt = "You analyze short news and social media text for situational-awareness signals. Respond only with the requested JSON, no prose."
