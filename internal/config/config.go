// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
)

// Default values applied after the config file and environment.
const (
	DefaultModel = "gemini-2.5-flash"
	DefaultPort  = 8080
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvLegacyAPIKey = "API_KEY"
	EnvModel        = "GEMINI_MODEL"
	EnvPort         = "PORT"
)

// Config represents settings that can be loaded from a JSON file or the environment.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume file (.txt, .md, .pdf, .docx)
	Job    string `json:"job,omitempty"`     // Path to job description file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job description from

	// Model
	APIKey      string   `json:"api_key,omitempty"`     // Gemini API key
	Model       string   `json:"model,omitempty"`       // Gemini model id
	Temperature *float32 `json:"temperature,omitempty"` // Sampling temperature (0.0-2.0)

	// Server
	Port          int    `json:"port,omitempty"`
	AllowedOrigin string `json:"allowed_origin,omitempty"` // CORS origin for the browser front end

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for script-rendered job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	temperature := llm.DefaultTemperature
	return Config{
		Model:         DefaultModel,
		Temperature:   &temperature,
		Port:          DefaultPort,
		AllowedOrigin: "*",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables using getenv
// (os.Getenv in production). GEMINI_API_KEY takes precedence over API_KEY.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config

	cfg.APIKey = strings.TrimSpace(getenv(EnvAPIKey))
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(getenv(EnvLegacyAPIKey))
	}
	cfg.Model = strings.TrimSpace(getenv(EnvModel))

	if raw := strings.TrimSpace(getenv(EnvPort)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s=%q is not a number", EnvPort, raw)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by the CLI after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// Layering is done by chaining: file.MergeWithDefaults(env).MergeWithDefaults(Defaults()).
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	// Job sources are one choice; only inherit when neither is set.
	if result.Job == "" && result.JobURL == "" {
		result.Job = defaults.Job
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Temperature == nil && defaults.Temperature != nil {
		temperature := *defaults.Temperature
		result.Temperature = &temperature
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.AllowedOrigin == "" {
		result.AllowedOrigin = defaults.AllowedOrigin
	}

	// Bools cannot distinguish unset from false, so either layer may enable them.
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Resolve layers a config file (may be nil) over the environment and built-in defaults.
func Resolve(file *Config, env Config) Config {
	if file == nil {
		file = &Config{}
	}
	merged := file.MergeWithDefaults(env)
	return merged.MergeWithDefaults(Defaults())
}

// LLMConfig returns the model configuration for the configured model and temperature.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Model != "" {
		cfg = cfg.WithModel(llm.TierStandard, c.Model)
	}
	if c.Temperature != nil {
		cfg.Temperature = *c.Temperature
	}
	return cfg
}
