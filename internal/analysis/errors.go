package analysis

import (
	"errors"
	"fmt"
)

// ConfigurationError means no credential is configured. No request was attempted.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ServiceError wraps a failure creating the model client or calling the model.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("AI service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError means the model returned no text payload.
type EmptyResponseError struct {
	Cause error
}

func (e *EmptyResponseError) Error() string {
	return "empty response from AI"
}

func (e *EmptyResponseError) Unwrap() error {
	return e.Cause
}

// ParseError means the payload was not JSON or did not satisfy the result schema.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InputError means the caller passed a blank resume or job description.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// DefaultFailureMessage is shown when an error carries no better description.
const DefaultFailureMessage = "Failed to analyze resume. Please try again."

// UserMessage turns any analysis failure into a message fit for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		configErr *ConfigurationError
		emptyErr  *EmptyResponseError
		parseErr  *ParseError
		svcErr    *ServiceError
		inputErr  *InputError
	)
	switch {
	case errors.As(err, &configErr):
		return "API key is missing. Please check your environment configuration."
	case errors.As(err, &inputErr):
		return fmt.Sprintf("Please provide a %s.", inputErr.Field)
	case errors.As(err, &emptyErr):
		return "The AI service returned an empty response. Please try again."
	case errors.As(err, &parseErr):
		return "The AI service returned an analysis that could not be read. Please try again."
	case errors.As(err, &svcErr):
		return svcErr.Error()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultFailureMessage
}
