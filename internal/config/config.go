// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags, and flags win over file values.
type Config struct {
	// Paths
	Resumes    string `json:"resumes,omitempty"`    // Directory of resume files to rank
	Job        string `json:"job,omitempty"`        // Path to job description text file
	JobURL     string `json:"job_url,omitempty"`    // URL to fetch the job posting from
	Vocabulary string `json:"vocabulary,omitempty"` // Path to skill vocabulary JSON file
	CSV        string `json:"csv,omitempty"`        // Path to write the ranking CSV export

	// Ranking inputs
	RequiredSkills string `json:"required_skills,omitempty"` // Comma-separated required skills
	Keywords       string `json:"keywords,omitempty"`        // Comma-separated keywords

	// Behavior
	MinScore   float64 `json:"min_score,omitempty"`   // Minimum total score to display
	UseBrowser bool    `json:"use_browser,omitempty"` // Headless browser fallback for SPA job boards
	Verbose    bool    `json:"verbose,omitempty"`     // Print per-candidate parsed details
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values. Required-field
// checks happen after merging with CLI flags, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.MinScore < 0 {
		return fmt.Errorf("config error: 'min_score' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}
