package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Tones recognized by persona validation. Free text is rejected so the
// prompt builders can rely on the value.
var ValidTones = []string{
	"professional",
	"casual",
	"inspirational",
	"enthusiastic",
	"authoritative",
	"educational",
}

const DefaultLanguage = "English (US)"

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Persona describes the voice, audience, and brand used to steer post
// generation. IDs are user-chosen and immutable after creation.
type Persona struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Niche           string   `json:"niche"`
	TargetAudience  string   `json:"target_audience"`
	Industry        string   `json:"industry"`
	ContentThemes   []string `json:"content_themes"`
	BrandKeywords   []string `json:"brand_keywords"`
	Tone            string   `json:"tone"`
	Language        string   `json:"language,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	EngagementStyle string   `json:"engagement_style,omitempty"`
	PostingFreq     string   `json:"posting_frequency,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// Validate trims and normalizes the persona in place, then checks every
// invariant. Optional fields get their defaults here so downstream code
// never sees an empty tone or language.
func (p *Persona) Validate() error {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Niche = strings.TrimSpace(p.Niche)
	p.TargetAudience = strings.TrimSpace(p.TargetAudience)
	p.Industry = strings.TrimSpace(p.Industry)
	p.Tone = strings.ToLower(strings.TrimSpace(p.Tone))
	p.Language = strings.TrimSpace(p.Language)
	p.ExperienceLevel = strings.TrimSpace(p.ExperienceLevel)
	p.EngagementStyle = strings.TrimSpace(p.EngagementStyle)
	p.PostingFreq = strings.TrimSpace(p.PostingFreq)
	p.Description = strings.TrimSpace(p.Description)
	p.ContentThemes = normalizeList(p.ContentThemes)
	p.BrandKeywords = normalizeList(p.BrandKeywords)

	if p.ID == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if !idPattern.MatchString(p.ID) {
		return &ValidationError{Field: "id", Reason: "must match " + idPattern.String()}
	}
	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"niche", p.Niche},
		{"target_audience", p.TargetAudience},
		{"industry", p.Industry},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Reason: "must not be empty"}
		}
	}
	if len(p.ContentThemes) == 0 {
		return &ValidationError{Field: "content_themes", Reason: "needs at least one entry"}
	}
	if len(p.BrandKeywords) == 0 {
		return &ValidationError{Field: "brand_keywords", Reason: "needs at least one entry"}
	}

	if p.Tone == "" {
		p.Tone = "professional"
	}
	if !validTone(p.Tone) {
		return &ValidationError{
			Field:  "tone",
			Reason: fmt.Sprintf("%q is not one of %s", p.Tone, strings.Join(ValidTones, ", ")),
		}
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.ExperienceLevel == "" {
		p.ExperienceLevel = "senior"
	}
	if p.EngagementStyle == "" {
		p.EngagementStyle = "storytelling"
	}
	if p.PostingFreq == "" {
		p.PostingFreq = "weekly"
	}
	return nil
}

func validTone(tone string) bool {
	for _, t := range ValidTones {
		if t == tone {
			return true
		}
	}
	return false
}

// normalizeList trims each entry and drops empties, keeping the supplied order.
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SplitList turns a comma-separated CLI value into a normalized list.
func SplitList(raw string) []string {
	return normalizeList(strings.Split(raw, ","))
}
