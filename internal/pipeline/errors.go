package pipeline

import "fmt"

// InputError indicates a required pipeline input is missing. It is
// fatal for the run and surfaced to the caller before any scoring
// executes.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}
