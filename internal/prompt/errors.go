package prompt

import (
	"fmt"
	"strings"
)

// ValidationError reports input fields that failed their declared
// constraints. The model is never called when validation fails.
type ValidationError struct {
	TemplateID string
	Fields     []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prompt %s: invalid input fields: %s", e.TemplateID, strings.Join(e.Fields, ", "))
}

// GenerationError wraps a transport or model failure.
type GenerationError struct {
	TemplateID string
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("prompt %s: generation failed: %v", e.TemplateID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// OutputValidationError reports model output that does not match the
// declared output shape.
type OutputValidationError struct {
	TemplateID string
	Reason     string
	Err        error
}

func (e *OutputValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prompt %s: invalid model output: %s: %v", e.TemplateID, e.Reason, e.Err)
	}
	return fmt.Sprintf("prompt %s: invalid model output: %s", e.TemplateID, e.Reason)
}

func (e *OutputValidationError) Unwrap() error { return e.Err }
