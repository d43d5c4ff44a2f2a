package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"job_url": "https://example.com/job",
		"fuzzy_threshold": 80,
		"summary_sentences": 3,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, 80, cfg.FuzzyThreshold)
	assert.Equal(t, 3, cfg.SummarySentences)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Job:    "job.txt",
		JobURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_ThresholdOutOfRange(t *testing.T) {
	cfg := &Config{FuzzyThreshold: 101}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzy_threshold")

	cfg = &Config{CrossThreshold: -1}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cross_threshold")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		FuzzyThreshold:   72,
		CrossThreshold:   75,
		SummarySentences: 2,
		Port:             8080,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:           "default-resume.txt",
		Skills:           "skills.json",
		FuzzyThreshold:   72,
		SummarySentences: 2,
	}

	partial := Config{
		Resume:         "custom-resume.txt",
		FuzzyThreshold: 85,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-resume.txt", merged.Resume)
	assert.Equal(t, 85, merged.FuzzyThreshold)

	// Default values should fill in empty fields
	assert.Equal(t, "skills.json", merged.Skills)
	assert.Equal(t, 2, merged.SummarySentences)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Resume: "resume.txt",
		Port:   9000,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "resume.txt", merged.Resume)
	assert.Equal(t, 9000, merged.Port)
}
