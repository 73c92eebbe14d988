package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"linkodin/config"
	"linkodin/generator"
	"linkodin/models"
	"linkodin/server"
	"linkodin/service"
	"linkodin/store"
)

const usage = `linkodin - AI-powered LinkedIn post generator

Usage:
  linkodin persona create   --id ID --name NAME --niche NICHE --audience AUDIENCE --industry INDUSTRY --themes A,B --keywords A,B [options]
  linkodin persona list
  linkodin persona show     ID
  linkodin persona update   ID [options]
  linkodin persona delete   ID
  linkodin post generate    PERSONA_ID --topic TOPIC [--context TEXT] [--mock]
  linkodin post list        [--persona ID]
  linkodin post show        ID
  linkodin serve            [--addr ADDR] [--mock]

Global flags (per subcommand):
  --config PATH   path to config.json (default "config.json")
`

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if len(os.Args) < 3 && (len(os.Args) < 2 || os.Args[1] != "serve") {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "persona":
		err = runPersona(os.Args[2], os.Args[3:])
	case "post":
		err = runPost(os.Args[2], os.Args[3:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type env struct {
	cfg      config.Config
	personas *service.PersonaService
	posts    store.PostStore
}

func buildEnv(configPath string) (env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return env{}, err
	}
	personaStore := store.NewFilePersonaStore(filepath.Join(cfg.DataDir, "personas.json"))
	postStore := store.NewFilePostStore(filepath.Join(cfg.DataDir, "posts.json"))
	return env{
		cfg:      cfg,
		personas: service.NewPersonaService(personaStore),
		posts:    postStore,
	}, nil
}

func buildLLM(cfg config.Config, mock bool) (generator.LLMClient, error) {
	if mock {
		return generator.MockLLM{}, nil
	}
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible endpoint; base_url is required.
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

// splitID peels a leading positional ID off the argument list so commands
// can be written as `persona show ID --config ...`. The stdlib flag package
// stops at the first non-flag argument, so the ID has to come off first.
func splitID(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}

// --- persona subcommands ---

func runPersona(cmd string, args []string) error {
	switch cmd {
	case "create":
		return personaCreate(args)
	case "list":
		return personaList(args)
	case "show":
		return personaShow(args)
	case "update":
		return personaUpdate(args)
	case "delete":
		return personaDelete(args)
	default:
		return fmt.Errorf("unknown persona subcommand %q", cmd)
	}
}

func personaCreate(args []string) error {
	fs := flag.NewFlagSet("persona create", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	id := fs.String("id", "", "unique persona identifier")
	name := fs.String("name", "", "persona name")
	niche := fs.String("niche", "", "niche/expertise area")
	audience := fs.String("audience", "", "target audience description")
	industry := fs.String("industry", "", "industry/sector")
	themes := fs.String("themes", "", "content themes (comma-separated)")
	keywords := fs.String("keywords", "", "brand keywords (comma-separated)")
	tone := fs.String("tone", "professional", "tone of voice")
	language := fs.String("language", models.DefaultLanguage, "language and regional localization")
	experience := fs.String("experience", "senior", "experience level")
	style := fs.String("style", "storytelling", "engagement style")
	frequency := fs.String("frequency", "weekly", "posting frequency")
	description := fs.String("description", "", "optional description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	p := models.Persona{
		ID:              *id,
		Name:            *name,
		Niche:           *niche,
		TargetAudience:  *audience,
		Industry:        *industry,
		ContentThemes:   models.SplitList(*themes),
		BrandKeywords:   models.SplitList(*keywords),
		Tone:            *tone,
		Language:        *language,
		ExperienceLevel: *experience,
		EngagementStyle: *style,
		PostingFreq:     *frequency,
		Description:     *description,
	}
	if err := e.personas.Create(&p); err != nil {
		return err
	}
	fmt.Printf("Persona %q created.\n", p.Name)
	return nil
}

func personaList(args []string) error {
	fs := flag.NewFlagSet("persona list", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	personas, err := e.personas.List()
	if err != nil {
		return err
	}
	if len(personas) == 0 {
		fmt.Println("No personas found.")
		return nil
	}
	for _, p := range personas {
		fmt.Printf("  %s: %s (%s)\n", p.ID, p.Name, p.Niche)
	}
	return nil
}

func personaShow(args []string) error {
	id, args := splitID(args)
	fs := flag.NewFlagSet("persona show", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("usage: linkodin persona show ID")
	}
	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	p, err := e.personas.Get(id)
	if err != nil {
		return err
	}
	printPersona(p)
	return nil
}

func printPersona(p models.Persona) {
	fmt.Printf("Persona: %s\n", p.Name)
	fmt.Printf("ID: %s\n", p.ID)
	fmt.Printf("Niche: %s\n", p.Niche)
	fmt.Printf("Target Audience: %s\n", p.TargetAudience)
	fmt.Printf("Industry: %s\n", p.Industry)
	fmt.Printf("Tone: %s\n", p.Tone)
	fmt.Printf("Language: %s\n", p.Language)
	fmt.Printf("Experience Level: %s\n", p.ExperienceLevel)
	fmt.Printf("Content Themes: %s\n", strings.Join(p.ContentThemes, ", "))
	fmt.Printf("Engagement Style: %s\n", p.EngagementStyle)
	fmt.Printf("Brand Keywords: %s\n", strings.Join(p.BrandKeywords, ", "))
	fmt.Printf("Posting Frequency: %s\n", p.PostingFreq)
	if p.Description != "" {
		fmt.Printf("Description: %s\n", p.Description)
	}
}

func personaUpdate(args []string) error {
	id, args := splitID(args)
	fs := flag.NewFlagSet("persona update", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	name := fs.String("name", "", "persona name")
	niche := fs.String("niche", "", "niche/expertise area")
	audience := fs.String("audience", "", "target audience description")
	industry := fs.String("industry", "", "industry/sector")
	themes := fs.String("themes", "", "content themes (comma-separated)")
	keywords := fs.String("keywords", "", "brand keywords (comma-separated)")
	tone := fs.String("tone", "", "tone of voice")
	language := fs.String("language", "", "language and regional localization")
	experience := fs.String("experience", "", "experience level")
	style := fs.String("style", "", "engagement style")
	frequency := fs.String("frequency", "", "posting frequency")
	description := fs.String("description", "", "optional description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("usage: linkodin persona update ID [options]")
	}

	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	p, err := e.personas.Get(id)
	if err != nil {
		return err
	}
	// Only flags the user actually passed override the stored values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			p.Name = *name
		case "niche":
			p.Niche = *niche
		case "audience":
			p.TargetAudience = *audience
		case "industry":
			p.Industry = *industry
		case "themes":
			p.ContentThemes = models.SplitList(*themes)
		case "keywords":
			p.BrandKeywords = models.SplitList(*keywords)
		case "tone":
			p.Tone = *tone
		case "language":
			p.Language = *language
		case "experience":
			p.ExperienceLevel = *experience
		case "style":
			p.EngagementStyle = *style
		case "frequency":
			p.PostingFreq = *frequency
		case "description":
			p.Description = *description
		}
	})
	if err := e.personas.Update(&p); err != nil {
		return err
	}
	fmt.Printf("Persona %q updated.\n", p.ID)
	return nil
}

func personaDelete(args []string) error {
	id, args := splitID(args)
	fs := flag.NewFlagSet("persona delete", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("usage: linkodin persona delete ID")
	}
	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	if err := e.personas.Delete(id); err != nil {
		return err
	}
	fmt.Printf("Persona %q deleted.\n", id)
	return nil
}

// --- post subcommands ---

func runPost(cmd string, args []string) error {
	switch cmd {
	case "generate":
		return postGenerate(args)
	case "list":
		return postList(args)
	case "show":
		return postShow(args)
	default:
		return fmt.Errorf("unknown post subcommand %q", cmd)
	}
}

func postGenerate(args []string) error {
	personaID, args := splitID(args)
	fs := flag.NewFlagSet("post generate", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	topic := fs.String("topic", "", "topic for the post")
	contextHint := fs.String("context", "", "additional context for generation")
	mock := fs.Bool("mock", false, "use the mock LLM (no API key required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if personaID == "" {
		return fmt.Errorf("usage: linkodin post generate PERSONA_ID --topic TOPIC")
	}

	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	llm, err := buildLLM(e.cfg, *mock)
	if err != nil {
		return err
	}
	pipeline, err := generator.NewPipeline(e.personas, e.posts, llm)
	if err != nil {
		return err
	}

	if *mock {
		log.Printf("[post] generating with the mock LLM (demo mode)")
	} else {
		log.Printf("[post] generating with %s model %s", e.cfg.LLM.Provider, e.cfg.LLM.Model)
	}
	log.Printf("[post] running market analysis, content, and image prompt stages")

	post, err := pipeline.Generate(context.Background(), models.GenerationRequest{
		PersonaID: personaID,
		Topic:     *topic,
		Context:   *contextHint,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Post generated: %s\n", post.ID)
	fmt.Printf("\nContent:\n%s\n", post.Content)
	fmt.Printf("\nImage Prompt:\n%s\n", post.ImagePrompt)
	return nil
}

func postList(args []string) error {
	fs := flag.NewFlagSet("post list", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	personaID := fs.String("persona", "", "filter by persona id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	var posts []models.Post
	if *personaID != "" {
		posts, err = e.posts.ByPersona(*personaID)
	} else {
		posts, err = e.posts.All()
	}
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("No posts found.")
		return nil
	}
	for _, p := range posts {
		fmt.Printf("  %s (persona: %s, topic: %s) - %s\n", p.ID, p.PersonaID, p.Topic, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func postShow(args []string) error {
	id, args := splitID(args)
	fs := flag.NewFlagSet("post show", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("usage: linkodin post show ID")
	}
	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	p, err := e.posts.Get(id)
	if err != nil {
		return err
	}
	fmt.Printf("Post: %s\n", p.ID)
	fmt.Printf("Persona: %s\n", p.PersonaID)
	fmt.Printf("Topic: %s\n", p.Topic)
	fmt.Printf("Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("\nContent:\n%s\n", p.Content)
	fmt.Printf("\nImage Prompt:\n%s\n", p.ImagePrompt)
	fmt.Printf("\nMarket Analysis:\n%s\n", p.MarketAnalysis)
	return nil
}

// --- serve ---

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "path to config.json")
	addr := fs.String("addr", "", "http listen address (overrides config.server_addr)")
	mock := fs.Bool("mock", false, "use the mock LLM (no API key required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := buildEnv(*configPath)
	if err != nil {
		return err
	}
	llm, err := buildLLM(e.cfg, *mock)
	if err != nil {
		return err
	}
	pipeline, err := generator.NewPipeline(e.personas, e.posts, llm)
	if err != nil {
		return err
	}
	srv, err := server.New(e.personas, e.posts, pipeline)
	if err != nil {
		return err
	}

	listen := e.cfg.ServerAddr
	if *addr != "" {
		listen = *addr
	}
	if listen == "" {
		listen = ":8080"
	}
	log.Printf("[serve] listening on %s", listen)
	return http.ListenAndServe(listen, srv.Routes())
}
