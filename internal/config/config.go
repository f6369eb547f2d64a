// Package config provides configuration loading and validation for the CLI
// and the API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultQuestionCount is the number of questions asked when neither the
// config file nor the CLI overrides it.
const DefaultQuestionCount = 5

// Config represents settings that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Interview defaults
	Role          string `json:"role,omitempty"`           // Target role, e.g. "Software Engineer"
	Domain        string `json:"domain,omitempty"`         // Optional specialization within the role
	InterviewType string `json:"interview_type,omitempty"` // "technical" or "behavioral"
	QuestionCount int    `json:"question_count,omitempty"` // Questions per session

	// Output
	SessionsDir string `json:"sessions_dir,omitempty"` // Directory for saved session JSON
	ExportPDF   bool   `json:"export_pdf,omitempty"`   // Print a PDF report after each session
	VerifyLinks bool   `json:"verify_links,omitempty"` // Check suggested resource URLs before reporting

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // Optional PostgreSQL archive
	ServerAddr  string `json:"server_addr,omitempty"`  // Listen address for serve mode
	Env         string `json:"env,omitempty"`          // "dev" or "prod", controls log encoding
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

// Validate checks that the configuration has valid values.
// Required fields are not checked here; those are enforced by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if c.QuestionCount < 0 {
		return fmt.Errorf("config error: 'question_count' must be non-negative")
	}
	if c.InterviewType != "" && c.InterviewType != "technical" && c.InterviewType != "behavioral" {
		return fmt.Errorf("config error: 'interview_type' must be \"technical\" or \"behavioral\", got %q", c.InterviewType)
	}
	if c.Env != "" && c.Env != "dev" && c.Env != "prod" {
		return fmt.Errorf("config error: 'env' must be \"dev\" or \"prod\", got %q", c.Env)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Domain == "" {
		result.Domain = defaults.Domain
	}
	if result.InterviewType == "" {
		result.InterviewType = defaults.InterviewType
	}
	if result.SessionsDir == "" {
		result.SessionsDir = defaults.SessionsDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ServerAddr == "" {
		result.ServerAddr = defaults.ServerAddr
	}
	if result.Env == "" {
		result.Env = defaults.Env
	}

	if result.QuestionCount == 0 {
		if defaults.QuestionCount > 0 {
			result.QuestionCount = defaults.QuestionCount
		} else {
			result.QuestionCount = DefaultQuestionCount
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
