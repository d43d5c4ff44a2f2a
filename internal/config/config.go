// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume file (.txt or .pdf)
	Job    string `json:"job,omitempty"`    // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job description from
	Skills string `json:"skills,omitempty"` // Path to skill vocabulary JSON file

	// Tuning
	FuzzyThreshold   int `json:"fuzzy_threshold,omitempty"`   // Minimum confidence for skill matches (0-100)
	CrossThreshold   int `json:"cross_threshold,omitempty"`   // Minimum confidence for job keyword cross-matches (0-100)
	SummarySentences int `json:"summary_sentences,omitempty"` // Number of sentences in the extractive summary

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed report sections
	Port    int  `json:"port,omitempty"`    // HTTP server port for serve mode
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 100")
	}
	if c.CrossThreshold < 0 || c.CrossThreshold > 100 {
		return fmt.Errorf("config error: 'cross_threshold' must be between 0 and 100")
	}
	if c.SummarySentences < 0 {
		return fmt.Errorf("config error: 'summary_sentences' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	// Validate file paths exist (if specified)
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

	if c.Skills != "" {
		if _, err := os.Stat(c.Skills); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.Skills)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Skills == "" {
		result.Skills = defaults.Skills
	}

	// Int fields: use default if zero
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.CrossThreshold == 0 {
		result.CrossThreshold = defaults.CrossThreshold
	}
	if result.SummarySentences == 0 {
		result.SummarySentences = defaults.SummarySentences
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
