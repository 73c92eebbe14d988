package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidate(t *testing.T) {
	post := Post{
		ID:             "p1",
		PersonaID:      "tech-ceo",
		Topic:          "AI transformation",
		Content:        "content",
		ImagePrompt:    "image",
		MarketAnalysis: "analysis",
		CreatedAt:      time.Now(),
	}
	require.NoError(t, post.Validate())

	missing := post
	missing.ImagePrompt = "   "
	err := missing.Validate()
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "image_prompt", vErr.Field)

	zeroTime := post
	zeroTime.CreatedAt = time.Time{}
	require.Error(t, zeroTime.Validate())
}
