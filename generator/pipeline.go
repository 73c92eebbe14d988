package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkodin/models"
)

// PersonaSource is the persona lookup the pipeline depends on.
type PersonaSource interface {
	Get(id string) (models.Persona, error)
}

// PostSink receives the assembled post. Saving happens exactly once per
// successful run.
type PostSink interface {
	Save(p models.Post) error
}

// Pipeline turns (persona id, topic) into a persisted post via three
// dependent LLM calls: market analysis, content generation, image prompt.
// Each stage consumes the previous stage's output, so the calls run strictly
// in sequence and nothing is cached between invocations.
type Pipeline struct {
	personas PersonaSource
	posts    PostSink
	llm      LLMClient
}

func NewPipeline(personas PersonaSource, posts PostSink, llm LLMClient) (*Pipeline, error) {
	if personas == nil || posts == nil {
		return nil, errors.New("persona and post stores are required")
	}
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Pipeline{personas: personas, posts: posts, llm: llm}, nil
}

// Generate runs the three-stage flow and persists the assembled post. Any
// failure aborts the whole call; no partial post is ever saved and no stage
// is retried.
func (p *Pipeline) Generate(ctx context.Context, req models.GenerationRequest) (models.Post, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return models.Post{}, ErrEmptyTopic
	}

	persona, err := p.personas.Get(strings.TrimSpace(req.PersonaID))
	if err != nil {
		return models.Post{}, err
	}

	raw, err := p.llm.Complete(ctx, BuildMarketAnalysisPrompt(persona, topic, strings.TrimSpace(req.Context)))
	if err != nil {
		return models.Post{}, &GenerationError{Stage: StageMarketAnalysis, Err: err}
	}
	analysis, generationPrompt, ok := ParseAnalysis(raw)
	if !ok {
		return models.Post{}, &GenerationError{Stage: StageMarketAnalysis, Err: errors.New("empty or unparseable analysis output")}
	}

	content, err := p.llm.Complete(ctx, BuildContentPrompt(generationPrompt, persona))
	if err != nil {
		return models.Post{}, &GenerationError{Stage: StageContent, Err: err}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Post{}, &GenerationError{Stage: StageContent, Err: errors.New("empty content output")}
	}

	imagePrompt, err := p.llm.Complete(ctx, BuildImagePrompt(content, analysis, persona))
	if err != nil {
		return models.Post{}, &GenerationError{Stage: StageImagePrompt, Err: err}
	}
	imagePrompt = strings.TrimSpace(imagePrompt)
	if imagePrompt == "" {
		return models.Post{}, &GenerationError{Stage: StageImagePrompt, Err: errors.New("empty image prompt output")}
	}

	post := models.Post{
		ID:               uuid.NewString(),
		PersonaID:        persona.ID,
		Topic:            topic,
		Content:          content,
		ImagePrompt:      imagePrompt,
		MarketAnalysis:   analysis,
		GenerationPrompt: generationPrompt,
		CreatedAt:        time.Now().UTC(),
	}
	if err := post.Validate(); err != nil {
		return models.Post{}, err
	}

	if err := p.posts.Save(post); err != nil {
		return models.Post{}, &PersistenceError{Err: err}
	}
	return post, nil
}
