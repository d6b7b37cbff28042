package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "age"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0, "maximum": 130}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": "test", "age": 30}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
		field    string
	}{
		{name: "missing field", document: `{"name": "test"}`, field: "(root)"},
		{name: "wrong type", document: `{"name": "test", "age": "thirty"}`, field: "age"},
		{name: "fractional integer", document: `{"name": "test", "age": 30.5}`, field: "age"},
		{name: "above maximum", document: `{"name": "test", "age": 200}`, field: "age"},
		{name: "below minimum", document: `{"name": "test", "age": -1}`, field: "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(personSchema, tt.document)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
		})
	}
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(personSchema, "{not json")
	require.Error(t, err)

	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestNewValidator_GoSchema(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"items"},
		"properties": map[string]any{
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}

	v, err := NewValidator(schema)
	require.NoError(t, err)

	assert.NoError(t, v.Validate([]byte(`{"items": []}`)))
	assert.NoError(t, v.Validate([]byte(`{"items": ["a", "b"]}`)))
	assert.Error(t, v.Validate([]byte(`{"items": [1]}`)))
	assert.Error(t, v.Validate([]byte(`{}`)))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}
