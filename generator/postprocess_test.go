package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkodin/generator"
)

func TestParseAnalysisWithMarkers(t *testing.T) {
	raw := "MARKET ANALYSIS: the market wants stories\nGENERATION PROMPT: write a story post"
	analysis, prompt, ok := generator.ParseAnalysis(raw)
	require.True(t, ok)
	assert.Equal(t, "the market wants stories", analysis)
	assert.Equal(t, "write a story post", prompt)
}

func TestParseAnalysisMissingAnalysisMarker(t *testing.T) {
	raw := "the market wants stories\nGENERATION PROMPT: write a story post"
	analysis, prompt, ok := generator.ParseAnalysis(raw)
	require.True(t, ok)
	assert.Equal(t, "the market wants stories", analysis)
	assert.Equal(t, "write a story post", prompt)
}

func TestParseAnalysisFallbackHalfSplit(t *testing.T) {
	raw := "first half of the answer and then the second half of the answer"
	analysis, prompt, ok := generator.ParseAnalysis(raw)
	require.True(t, ok)
	assert.NotEmpty(t, analysis)
	assert.NotEmpty(t, prompt)
}

func TestParseAnalysisEmpty(t *testing.T) {
	_, _, ok := generator.ParseAnalysis("   \n  ")
	assert.False(t, ok)
}

func TestParseAnalysisEmptyPromptSection(t *testing.T) {
	_, _, ok := generator.ParseAnalysis("MARKET ANALYSIS: something\nGENERATION PROMPT:   ")
	assert.False(t, ok)
}
