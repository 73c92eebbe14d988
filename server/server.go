package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"linkodin/generator"
	"linkodin/models"
	"linkodin/service"
	"linkodin/store"
)

// generateTimeout bounds the three sequential LLM calls of one request.
const generateTimeout = 180 * time.Second

type Server struct {
	personas *service.PersonaService
	posts    store.PostStore
	pipeline *generator.Pipeline
}

func New(personas *service.PersonaService, posts store.PostStore, pipeline *generator.Pipeline) (*Server, error) {
	if personas == nil || posts == nil || pipeline == nil {
		return nil, errors.New("persona service, post store, and pipeline are required")
	}
	return &Server{personas: personas, posts: posts, pipeline: pipeline}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/personas", s.handlePersonas)
	mux.HandleFunc("/api/personas/", s.handlePersonaByID)
	mux.HandleFunc("/api/posts", s.handlePosts)
	mux.HandleFunc("/api/posts/generate", s.handleGenerate)
	mux.HandleFunc("/api/posts/", s.handlePostByID)
	return logMiddleware(mux)
}

// --- Persona handlers ---

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		personas, err := s.personas.List()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, personas)
	case http.MethodPost:
		var p models.Persona
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.personas.Create(&p); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, p)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handlePersonaByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/personas/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.personas.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, p)
	case http.MethodPut:
		var p models.Persona
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// The path id wins; the persona id is immutable.
		p.ID = id
		if err := s.personas.Update(&p); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, p)
	case http.MethodDelete:
		if err := s.personas.Delete(id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// --- Post handlers ---

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var (
		posts []models.Post
		err   error
	)
	if personaID := r.URL.Query().Get("persona"); personaID != "" {
		posts, err = s.posts.ByPersona(personaID)
	} else {
		posts, err = s.posts.All()
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, posts)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()
	post, err := s.pipeline.Generate(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, post)
}

func (s *Server) handlePostByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/posts/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if sub == "preview" {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handlePreview(w, r, id)
		return
	}
	if sub != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		post, err := s.posts.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, post)
	case http.MethodDelete:
		if err := s.posts.Delete(id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePreview renders the post content (the models tend to emit markdown)
// as HTML for a quick look in the browser.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request, id string) {
	post, err := s.posts.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(post.Content), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var (
		vErr *models.ValidationError
		gErr *generator.GenerationError
		pErr *generator.PersistenceError
	)
	switch {
	case errors.As(err, &vErr), errors.Is(err, generator.ErrEmptyTopic):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrPersonaExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrPersonaNotFound), errors.Is(err, models.ErrPostNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &gErr):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &pErr):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[http] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
