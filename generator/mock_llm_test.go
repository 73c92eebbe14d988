package generator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkodin/generator"
)

func TestMockLLMStageOutputs(t *testing.T) {
	mock := generator.MockLLM{}

	analysisOut, err := mock.Complete(context.Background(), generator.Prompt{Stage: generator.StageMarketAnalysis, User: "persona details"})
	require.NoError(t, err)
	analysis, prompt, ok := generator.ParseAnalysis(analysisOut)
	require.True(t, ok, "stage-1 mock output must be parseable")
	assert.NotEmpty(t, analysis)
	assert.NotEmpty(t, prompt)

	content, err := mock.Complete(context.Background(), generator.Prompt{Stage: generator.StageContent})
	require.NoError(t, err)
	assert.NotEmpty(t, content)

	image, err := mock.Complete(context.Background(), generator.Prompt{Stage: generator.StageImagePrompt})
	require.NoError(t, err)
	assert.NotEmpty(t, image)
}

func TestMockLLMDeterministic(t *testing.T) {
	mock := generator.MockLLM{}
	p := generator.Prompt{Stage: generator.StageContent}
	a, err := mock.Complete(context.Background(), p)
	require.NoError(t, err)
	b, err := mock.Complete(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
