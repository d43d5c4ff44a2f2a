// Package schemas provides JSON Schema validation for external data
// artifacts consumed by the pipeline.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// vocabularySchema describes the skill vocabulary file: a flat JSON
// array of skill-name strings.
const vocabularySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Skill Vocabulary",
  "type": "array",
  "items": {
    "type": "string"
  }
}`

// ValidationError reports schema violations with their field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateVocabulary checks raw JSON against the vocabulary schema.
// A malformed document or any schema violation returns an error.
func ValidateVocabulary(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(vocabularySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate vocabulary document: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return ve
	}
	return nil
}
