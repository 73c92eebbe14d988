package store

import (
	"sort"
	"sync"

	"linkodin/models"
)

// MemoryPersonaStore is an in-memory PersonaStore for tests and throwaway runs.
type MemoryPersonaStore struct {
	mu       sync.Mutex
	personas map[string]models.Persona
}

func NewMemoryPersonaStore() *MemoryPersonaStore {
	return &MemoryPersonaStore{personas: map[string]models.Persona{}}
}

func (s *MemoryPersonaStore) Save(p models.Persona) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personas[p.ID] = p
	return nil
}

func (s *MemoryPersonaStore) Get(id string) (models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.personas[id]
	if !ok {
		return models.Persona{}, models.ErrPersonaNotFound
	}
	return p, nil
}

func (s *MemoryPersonaStore) All() ([]models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Persona, 0, len(s.personas))
	for _, p := range s.personas {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryPersonaStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.personas[id]; !ok {
		return models.ErrPersonaNotFound
	}
	delete(s.personas, id)
	return nil
}

// MemoryPostStore is an in-memory PostStore for tests and throwaway runs.
type MemoryPostStore struct {
	mu    sync.Mutex
	posts map[string]models.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: map[string]models.Post{}}
}

func (s *MemoryPostStore) Save(p models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p
	return nil
}

func (s *MemoryPostStore) Get(id string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return models.Post{}, models.ErrPostNotFound
	}
	return p, nil
}

func (s *MemoryPostStore) All() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortByCreation(s.posts, ""), nil
}

func (s *MemoryPostStore) ByPersona(personaID string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortByCreation(s.posts, personaID), nil
}

func (s *MemoryPostStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return models.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}
