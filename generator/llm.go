package generator

import "context"

// LLMClient abstracts the text-generation backend so the real API client and
// the deterministic mock are interchangeable.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the base configuration handed to concrete implementations.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
