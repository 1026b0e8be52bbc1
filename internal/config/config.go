package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
)

type (
	// Config is built once at startup and passed explicitly to every
	// component; nothing reads the environment after LoadConfig returns.
	Config struct {
		Language    string         `json:"language,omitempty"`
		GitHub      GitHubConfig   `json:"github"`
		AI          AIConfig       `json:"ai"`
		Imagen      ImagenConfig   `json:"imagen"`
		LinkedIn    LinkedInConfig `json:"linkedin"`
		HistoryPath string         `json:"history_path,omitempty"`
		PathFile    string         `json:"-"`
	}

	GitHubConfig struct {
		Token    string `json:"token,omitempty"`
		Username string `json:"username,omitempty"`
	}

	AIConfig struct {
		Provider     string `json:"provider,omitempty"` // "groq" or "gemini"
		Model        string `json:"model,omitempty"`
		GroqAPIKey   string `json:"groq_api_key,omitempty"`
		GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	}

	ImagenConfig struct {
		APIKey string `json:"api_key,omitempty"`
		Model  string `json:"model,omitempty"`
	}

	LinkedInConfig struct {
		AccessToken  string `json:"access_token,omitempty"`
		IDToken      string `json:"id_token,omitempty"`
		PersonURN    string `json:"person_urn,omitempty"`
		ClientID     string `json:"client_id,omitempty"`
		ClientSecret string `json:"client_secret,omitempty"`
	}
)

const (
	defaultLang     = "en"
	defaultProvider = ProviderGroq

	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultImagenModel = "imagen-4.0-generate-001"
)

// LoadConfig reads the optional config file under path (or the file
// itself when given a .json path), creating a default one on first run,
// then applies environment overrides. The environment always wins so
// that CI and cron setups work without a config file at all.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".daily-post")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	config := defaultConfig(configPath)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
		config.PathFile = configPath
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()

	return config, nil
}

func defaultConfig(path string) *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Language:    defaultLang,
		AI:          AIConfig{Provider: defaultProvider},
		Imagen:      ImagenConfig{Model: DefaultImagenModel},
		HistoryPath: filepath.Join(homeDir, ".daily-post", "examples.json"),
		PathFile:    path,
	}
}

// applyEnv overlays environment variables on top of whatever the config
// file provided. Both the canonical names and the legacy lowercase
// names (access_token, id_token) are honored.
func (c *Config) applyEnv() {
	setIfPresent(&c.GitHub.Token, "GIT_TOKEN", "GITHUB_TOKEN")
	setIfPresent(&c.GitHub.Username, "GIT_USERNAME", "GITHUB_USERNAME")
	setIfPresent(&c.AI.Provider, "AI_PROVIDER")
	setIfPresent(&c.AI.Model, "AI_MODEL")
	setIfPresent(&c.AI.GroqAPIKey, "GROQ_API_KEY", "Groq_Api_Key")
	setIfPresent(&c.AI.GeminiAPIKey, "GEMINI_API_KEY", "Gemini_Api_Key")
	setIfPresent(&c.Imagen.APIKey, "IMAGEN_API_KEY", "GEMINI_API_KEY", "Gemini_Api_Key")
	setIfPresent(&c.LinkedIn.AccessToken, "LINKEDIN_ACCESS_TOKEN", "access_token")
	setIfPresent(&c.LinkedIn.IDToken, "LINKEDIN_ID_TOKEN", "id_token")
	setIfPresent(&c.LinkedIn.PersonURN, "PERSON_URN")
	setIfPresent(&c.LinkedIn.ClientID, "LINKEDIN_CLIENT_ID", "CLIENT_ID")
	setIfPresent(&c.LinkedIn.ClientSecret, "LINKEDIN_CLIENT_SECRET", "CLIENT_SECRET")
	setIfPresent(&c.HistoryPath, "HISTORY_PATH")
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = defaultLang
	}
	if c.AI.Provider == "" {
		c.AI.Provider = defaultProvider
	}
	if c.AI.Model == "" {
		switch c.AI.Provider {
		case ProviderGemini:
			c.AI.Model = DefaultGeminiModel
		default:
			c.AI.Model = DefaultGroqModel
		}
	}
	if c.Imagen.Model == "" {
		c.Imagen.Model = DefaultImagenModel
	}
}

func setIfPresent(dst *string, keys ...string) {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
			return
		}
	}
}

// SaveConfig persists the config back to its file. API keys sourced
// only from the environment end up in the file too, so this is only
// called from explicit config commands, never from the workflow.
func SaveConfig(config *Config) error {
	if config.PathFile == "" {
		return domainerrors.NewConfigError("path_file", "config file path is not set", nil)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// ValidateForRun checks everything the daily workflow needs before any
// network call. The imagen key is deliberately not required: its
// absence degrades the run to text-only instead of failing it. Dry runs
// stop before publishing, so they skip the LinkedIn checks too.
func (c *Config) ValidateForRun(dryRun bool) error {
	if c.GitHub.Token == "" {
		return domainerrors.NewConfigError("github.token", "GitHub token is required (set GIT_TOKEN)", nil)
	}
	if c.GitHub.Username == "" {
		return domainerrors.NewConfigError("github.username", "GitHub username is required (set GIT_USERNAME)", nil)
	}

	switch c.AI.Provider {
	case ProviderGroq:
		if c.AI.GroqAPIKey == "" {
			return domainerrors.NewConfigError("ai.groq_api_key", "Groq API key is required (set GROQ_API_KEY)", nil)
		}
	case ProviderGemini:
		if c.AI.GeminiAPIKey == "" {
			return domainerrors.NewConfigError("ai.gemini_api_key", "Gemini API key is required (set GEMINI_API_KEY)", nil)
		}
	default:
		return domainerrors.NewConfigError("ai.provider", fmt.Sprintf("unsupported AI provider: %s", c.AI.Provider), nil)
	}

	if !dryRun && c.LinkedIn.AccessToken == "" {
		return domainerrors.NewConfigError("linkedin.access_token", "LinkedIn access token is required (set LINKEDIN_ACCESS_TOKEN)", nil)
	}
	if c.HistoryPath == "" {
		return domainerrors.NewConfigError("history_path", "history file path is required", nil)
	}

	return nil
}
