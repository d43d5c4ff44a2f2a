package matching

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chhaviambor/resume-improvement-assistant/internal/schemas"
)

//go:embed skills.json
var defaultSkills []byte

// VocabularyError indicates the skill vocabulary could not be loaded.
// The pipeline cannot run without a usable vocabulary.
type VocabularyError struct {
	Path  string
	Cause error
}

func (e *VocabularyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("skill vocabulary %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("skill vocabulary: %v", e.Cause)
}

func (e *VocabularyError) Unwrap() error {
	return e.Cause
}

// LoadVocabulary reads a skill vocabulary from a JSON file: a flat
// array of skill-name strings, validated against the vocabulary
// schema. Entries are whitespace-trimmed and empty entries dropped;
// insertion order is preserved. The loaded vocabulary is read-only for
// the process lifetime.
func LoadVocabulary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &VocabularyError{Path: path, Cause: err}
	}

	vocab, err := parseVocabulary(data)
	if err != nil {
		return nil, &VocabularyError{Path: path, Cause: err}
	}
	return vocab, nil
}

// DefaultVocabulary returns the skill vocabulary bundled with the
// binary, used when the caller supplies no vocabulary file.
func DefaultVocabulary() ([]string, error) {
	vocab, err := parseVocabulary(defaultSkills)
	if err != nil {
		return nil, &VocabularyError{Cause: err}
	}
	return vocab, nil
}

func parseVocabulary(data []byte) ([]string, error) {
	if err := schemas.ValidateVocabulary(data); err != nil {
		return nil, err
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	vocab := make([]string, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		vocab = append(vocab, entry)
	}
	if len(vocab) == 0 {
		return nil, errors.New("vocabulary contains no skills")
	}
	return vocab, nil
}
