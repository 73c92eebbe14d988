package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"linkodin/models"
)

// PostStore persists generated posts. Listings come back in creation order.
type PostStore interface {
	Save(p models.Post) error
	Get(id string) (models.Post, error)
	All() ([]models.Post, error)
	ByPersona(personaID string) ([]models.Post, error)
	Delete(id string) error
}

// FilePostStore mirrors FilePersonaStore: one JSON document keyed by post id.
type FilePostStore struct {
	mu   sync.Mutex
	path string
}

func NewFilePostStore(path string) *FilePostStore {
	return &FilePostStore{path: path}
}

func (s *FilePostStore) load() (map[string]models.Post, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.Post{}, nil
		}
		return nil, err
	}
	posts := map[string]models.Post{}
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *FilePostStore) flush(posts map[string]models.Post) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FilePostStore) Save(p models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.load()
	if err != nil {
		return err
	}
	posts[p.ID] = p
	return s.flush(posts)
}

func (s *FilePostStore) Get(id string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.load()
	if err != nil {
		return models.Post{}, err
	}
	p, ok := posts[id]
	if !ok {
		return models.Post{}, models.ErrPostNotFound
	}
	return p, nil
}

func (s *FilePostStore) All() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortByCreation(posts, ""), nil
}

func (s *FilePostStore) ByPersona(personaID string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortByCreation(posts, personaID), nil
}

func (s *FilePostStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := posts[id]; !ok {
		return models.ErrPostNotFound
	}
	delete(posts, id)
	return s.flush(posts)
}

func sortByCreation(posts map[string]models.Post, personaID string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if personaID != "" && p.PersonaID != personaID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
