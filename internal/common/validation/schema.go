// Package validation checks job and request payloads against the input schemas of the activity
// registry.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/pkg/registry"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Validator holds the compiled input schema of every registered activity.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the input schemas of reg.
func NewValidator(reg *registry.ActivityRegistry) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(reg.Activities))}
	for _, activity := range reg.Activities {
		if len(activity.InputSchema) == 0 {
			continue
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(activity.InputSchema))
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", activity.TaskType, err)
		}
		v.schemas[activity.TaskType] = schema
	}
	return v, nil
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
	defaultErr       error
)

// Default returns the validator built from the embedded registry.
func Default() (*Validator, error) {
	defaultOnce.Do(func() {
		reg, err := registry.Default()
		if err != nil {
			defaultErr = err
			return
		}
		defaultValidator, defaultErr = NewValidator(reg)
	})
	return defaultValidator, defaultErr
}

// Check validates input (any JSON-marshalable value) against the schema of taskType. Task types
// without a schema always pass.
func (v *Validator) Check(taskType string, input interface{}) (*ValidationResult, error) {
	schema, ok := v.schemas[taskType]
	if !ok {
		return &ValidationResult{Valid: true}, nil
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(input))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return out, nil
}

// ValidateInput is Check folded into a single INVALID_INPUT StandardError.
func (v *Validator) ValidateInput(taskType string, input interface{}) error {
	result, err := v.Check(taskType, input)
	if err != nil {
		return apperrors.NewInvalidInputError(err.Error())
	}
	if result.Valid {
		return nil
	}

	msgs := make([]string, len(result.Errors))
	for i, e := range result.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return apperrors.NewInvalidInputError(strings.Join(msgs, "; "))
}

// ValidateActivityInput validates against the embedded registry.
func ValidateActivityInput(taskType string, input interface{}) error {
	v, err := Default()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return v.ValidateInput(taskType, input)
}
