package config

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LLMConfig selects the text-generation backend. api_key falls back to
// OPENAI_API_KEY from the environment (or a .env file).
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// Config holds runtime settings for the CLI and the web server.
type Config struct {
	DataDir    string     `json:"data_dir,omitempty"`
	ServerAddr string     `json:"server_addr,omitempty"`
	LLM        *LLMConfig `json:"llm,omitempty"`
}

const (
	DefaultDataDir  = "."
	DefaultProvider = "openai"
	DefaultModel    = "gpt-4"
)

// Load reads JSON config from disk and fills in defaults. A missing file is
// not an error: the tool runs with defaults plus environment variables.
func Load(path string) (Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.LLM == nil {
		cfg.LLM = &LLMConfig{}
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = DefaultProvider
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg, nil
}
