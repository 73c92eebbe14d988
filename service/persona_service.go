package service

import (
	"errors"

	"linkodin/models"
	"linkodin/store"
)

// PersonaService enforces the persona lifecycle rules on top of the store:
// validation on every write, unique ids on create, existing ids on update.
type PersonaService struct {
	store store.PersonaStore
}

func NewPersonaService(s store.PersonaStore) *PersonaService {
	return &PersonaService{store: s}
}

func (s *PersonaService) Create(p *models.Persona) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := s.store.Get(p.ID)
	if err == nil {
		return models.ErrPersonaExists
	}
	if !errors.Is(err, models.ErrPersonaNotFound) {
		return err
	}
	return s.store.Save(*p)
}

func (s *PersonaService) Update(p *models.Persona) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.store.Get(p.ID); err != nil {
		return err
	}
	return s.store.Save(*p)
}

func (s *PersonaService) Get(id string) (models.Persona, error) {
	return s.store.Get(id)
}

func (s *PersonaService) List() ([]models.Persona, error) {
	return s.store.All()
}

func (s *PersonaService) Delete(id string) error {
	return s.store.Delete(id)
}
