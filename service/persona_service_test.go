package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkodin/models"
	"linkodin/service"
	"linkodin/store"
)

func newService() *service.PersonaService {
	return service.NewPersonaService(store.NewMemoryPersonaStore())
}

func persona() models.Persona {
	return models.Persona{
		ID:             "tech-ceo",
		Name:           "Ada Rivera",
		Niche:          "SaaS leadership",
		TargetAudience: "founders",
		Industry:       "Technology",
		ContentThemes:  []string{"leadership"},
		BrandKeywords:  []string{"saas"},
		Tone:           "inspirational",
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := newService()
	p := persona()
	require.NoError(t, svc.Create(&p))

	got, err := svc.Get("tech-ceo")
	require.NoError(t, err)
	assert.Equal(t, "Ada Rivera", got.Name)
	// Defaults were applied before the save.
	assert.Equal(t, models.DefaultLanguage, got.Language)
}

func TestCreateDuplicate(t *testing.T) {
	svc := newService()
	p := persona()
	require.NoError(t, svc.Create(&p))
	dup := persona()
	require.ErrorIs(t, svc.Create(&dup), models.ErrPersonaExists)
}

func TestCreateInvalidNeverPersisted(t *testing.T) {
	svc := newService()
	p := persona()
	p.Tone = "grumpy"
	var vErr *models.ValidationError
	require.ErrorAs(t, svc.Create(&p), &vErr)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "invalid input must not reach persistence")
}

func TestUpdate(t *testing.T) {
	svc := newService()
	p := persona()
	require.NoError(t, svc.Create(&p))

	p.Niche = "Platform engineering"
	require.NoError(t, svc.Update(&p))
	got, err := svc.Get("tech-ceo")
	require.NoError(t, err)
	assert.Equal(t, "Platform engineering", got.Niche)

	missing := persona()
	missing.ID = "ghost"
	require.ErrorIs(t, svc.Update(&missing), models.ErrPersonaNotFound)
}

func TestDelete(t *testing.T) {
	svc := newService()
	p := persona()
	require.NoError(t, svc.Create(&p))
	require.NoError(t, svc.Delete("tech-ceo"))
	require.ErrorIs(t, svc.Delete("tech-ceo"), models.ErrPersonaNotFound)
}
