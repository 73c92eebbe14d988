package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPersona() Persona {
	return Persona{
		ID:             "tech-ceo",
		Name:           "Ada Rivera",
		Niche:          "SaaS leadership",
		TargetAudience: "startup founders",
		Industry:       "Technology",
		ContentThemes:  []string{"leadership", "innovation"},
		BrandKeywords:  []string{"saas", "scaling"},
		Tone:           "inspirational",
	}
}

func TestPersonaValidateAccepts(t *testing.T) {
	p := validPersona()
	require.NoError(t, p.Validate())

	// Defaults filled in for optional fields.
	assert.Equal(t, DefaultLanguage, p.Language)
	assert.Equal(t, "senior", p.ExperienceLevel)
	assert.Equal(t, "storytelling", p.EngagementStyle)
	assert.Equal(t, "weekly", p.PostingFreq)
}

func TestPersonaValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Persona)
		field  string
	}{
		{"empty id", func(p *Persona) { p.ID = "" }, "id"},
		{"whitespace id", func(p *Persona) { p.ID = "   " }, "id"},
		{"bad id pattern", func(p *Persona) { p.ID = "Tech CEO!" }, "id"},
		{"empty name", func(p *Persona) { p.Name = "  " }, "name"},
		{"empty niche", func(p *Persona) { p.Niche = "" }, "niche"},
		{"empty audience", func(p *Persona) { p.TargetAudience = "\t" }, "target_audience"},
		{"empty industry", func(p *Persona) { p.Industry = "" }, "industry"},
		{"no themes", func(p *Persona) { p.ContentThemes = []string{" ", ""} }, "content_themes"},
		{"no keywords", func(p *Persona) { p.BrandKeywords = nil }, "brand_keywords"},
		{"unknown tone", func(p *Persona) { p.Tone = "sarcastic" }, "tone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPersona()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestPersonaValidateNormalizesLists(t *testing.T) {
	p := validPersona()
	p.ContentThemes = []string{"  leadership ", "", "innovation", "   "}
	p.BrandKeywords = []string{" saas", "scaling "}
	require.NoError(t, p.Validate())
	assert.Equal(t, []string{"leadership", "innovation"}, p.ContentThemes)
	assert.Equal(t, []string{"saas", "scaling"}, p.BrandKeywords)
}

func TestPersonaValidateToneCaseInsensitive(t *testing.T) {
	p := validPersona()
	p.Tone = " Inspirational "
	require.NoError(t, p.Validate())
	assert.Equal(t, "inspirational", p.Tone)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, SplitList(" a, b c ,,d, "))
	assert.Empty(t, SplitList("  ,  "))
}
