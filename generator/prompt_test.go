package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkodin/generator"
	"linkodin/models"
)

func promptPersona(t *testing.T) models.Persona {
	t.Helper()
	p := models.Persona{
		ID:             "growth-lead",
		Name:           "Sam Okoye",
		Niche:          "B2B growth",
		TargetAudience: "marketing managers",
		Industry:       "Marketing",
		ContentThemes:  []string{"funnels", "retention"},
		BrandKeywords:  []string{"growth loops"},
		Tone:           "casual",
	}
	require.NoError(t, p.Validate())
	return p
}

func TestBuildMarketAnalysisPrompt(t *testing.T) {
	p := promptPersona(t)
	prompt := generator.BuildMarketAnalysisPrompt(p, "churn reduction", "Q3 planning")

	assert.Equal(t, generator.StageMarketAnalysis, prompt.Stage)
	assert.NotEmpty(t, prompt.System)
	for _, want := range []string{
		"Sam Okoye", "B2B growth", "marketing managers", "casual",
		"funnels, retention", "growth loops",
		"Topic: churn reduction", "Additional Context: Q3 planning",
	} {
		assert.Contains(t, prompt.User, want)
	}
}

func TestBuildMarketAnalysisPromptNoContext(t *testing.T) {
	prompt := generator.BuildMarketAnalysisPrompt(promptPersona(t), "churn reduction", "")
	assert.NotContains(t, prompt.User, "Additional Context")
}

func TestBuildContentPromptUsesGenerationPrompt(t *testing.T) {
	p := promptPersona(t)
	prompt := generator.BuildContentPrompt("refined prompt from stage one", p)

	assert.Equal(t, generator.StageContent, prompt.Stage)
	assert.Contains(t, prompt.User, "refined prompt from stage one")
	assert.Contains(t, prompt.User, "Sam Okoye")
	assert.Contains(t, prompt.User, "casual")
}

func TestBuildImagePrompt(t *testing.T) {
	p := promptPersona(t)
	prompt := generator.BuildImagePrompt("the post body", "the analysis", p)

	assert.Equal(t, generator.StageImagePrompt, prompt.Stage)
	assert.Contains(t, prompt.User, "the post body")
	assert.Contains(t, prompt.User, "the analysis")
	assert.Contains(t, prompt.User, "B2B growth")
	assert.Contains(t, prompt.User, "growth loops")
}
