package models

import (
	"strings"
	"time"
)

// Post is the persisted result of one successful pipeline run. It references
// its persona by id only; deleting the persona leaves the post intact.
// Posts are never mutated after creation.
type Post struct {
	ID               string    `json:"id"`
	PersonaID        string    `json:"persona_id"`
	Topic            string    `json:"topic"`
	Content          string    `json:"content"`
	ImagePrompt      string    `json:"image_prompt"`
	MarketAnalysis   string    `json:"market_analysis"`
	GenerationPrompt string    `json:"generation_prompt,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Validate checks the all-or-nothing invariant: a post only exists fully
// populated.
func (p *Post) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"id", p.ID},
		{"persona_id", p.PersonaID},
		{"topic", p.Topic},
		{"content", p.Content},
		{"image_prompt", p.ImagePrompt},
		{"market_analysis", p.MarketAnalysis},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "must not be empty"}
		}
	}
	if p.CreatedAt.IsZero() {
		return &ValidationError{Field: "created_at", Reason: "must be set"}
	}
	return nil
}

// GenerationRequest carries one pipeline invocation. It lives only for the
// duration of the call and is never persisted.
type GenerationRequest struct {
	PersonaID string `json:"persona_id"`
	Topic     string `json:"topic"`
	Context   string `json:"context,omitempty"`
}
