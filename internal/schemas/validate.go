// Package schemas provides JSON Schema validation for untrusted JSON documents,
// such as model output, before they are decoded into Go types.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or compiling the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// DocumentError is returned when the document is not well-formed JSON
type DocumentError struct {
	Cause error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document is not valid JSON: %v", e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// Validator validates documents against one compiled schema.
// It is safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles a schema given as a Go value (for example map[string]any).
func NewValidator(schema any) (*Validator, error) {
	return newValidator(gojsonschema.NewGoLoader(schema))
}

func newValidator(loader gojsonschema.JSONLoader) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, &SchemaLoadError{Message: "schema compilation failed", Cause: err}
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks a JSON document against the compiled schema.
func (v *Validator) Validate(document []byte) error {
	var probe any
	if err := json.Unmarshal(document, &probe); err != nil {
		return &DocumentError{Cause: err}
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &DocumentError{Cause: err}
	}

	return toValidationError(result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	v, err := newValidator(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return err
	}
	return v.Validate([]byte(jsonContent))
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
