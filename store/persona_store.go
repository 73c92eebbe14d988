package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"linkodin/models"
)

// PersonaStore is the persistence contract the CLI, server, and pipeline
// consume. Locking inside one process is the store's job; cross-process
// safety of the backing file is out of scope.
type PersonaStore interface {
	Save(p models.Persona) error
	Get(id string) (models.Persona, error)
	All() ([]models.Persona, error)
	Delete(id string) error
}

// FilePersonaStore keeps personas in a single JSON document keyed by id.
// Every operation loads and rewrites the whole file, which keeps the format
// hand-editable and matches the small data volumes this tool deals with.
type FilePersonaStore struct {
	mu   sync.Mutex
	path string
}

func NewFilePersonaStore(path string) *FilePersonaStore {
	return &FilePersonaStore{path: path}
}

func (s *FilePersonaStore) load() (map[string]models.Persona, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.Persona{}, nil
		}
		return nil, err
	}
	personas := map[string]models.Persona{}
	if err := json.Unmarshal(data, &personas); err != nil {
		return nil, err
	}
	return personas, nil
}

func (s *FilePersonaStore) flush(personas map[string]models.Persona) error {
	data, err := json.MarshalIndent(personas, "", "  ")
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

func (s *FilePersonaStore) Save(p models.Persona) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	personas, err := s.load()
	if err != nil {
		return err
	}
	personas[p.ID] = p
	return s.flush(personas)
}

func (s *FilePersonaStore) Get(id string) (models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	personas, err := s.load()
	if err != nil {
		return models.Persona{}, err
	}
	p, ok := personas[id]
	if !ok {
		return models.Persona{}, models.ErrPersonaNotFound
	}
	return p, nil
}

func (s *FilePersonaStore) All() ([]models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	personas, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.Persona, 0, len(personas))
	for _, p := range personas {
		out = append(out, p)
	}
	// The file is an object keyed by id, so sort for a stable listing.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *FilePersonaStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	personas, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := personas[id]; !ok {
		return models.ErrPersonaNotFound
	}
	delete(personas, id)
	return s.flush(personas)
}
