package analysis

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseResult turns raw model output into a validated AnalysisResult.
// The text is untrusted: it must be well-formed JSON, match ResultSchema
// (presence, types, integer bounds) and pass struct validation.
func ParseResult(raw string) (*types.AnalysisResult, error) {
	text := llm.CleanJSONBlock(raw)
	if text == "" {
		return nil, &EmptyResponseError{}
	}

	validator, err := resultSchemaValidator()
	if err != nil {
		return nil, &ParseError{Message: "result schema unavailable", Cause: err}
	}

	if err := validator.Validate([]byte(text)); err != nil {
		var docErr *schemas.DocumentError
		if errors.As(err, &docErr) {
			return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
		}
		return nil, &ParseError{Message: "response does not match the analysis schema", Cause: err}
	}

	// The schema accepts integral floats such as 72.0 or 7.2e1 as integers;
	// rewrite them so they decode into int fields.
	var decoded any
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()
	if err := decoder.Decode(&decoded); err != nil {
		return nil, &ParseError{Message: "failed to decode analysis result", Cause: err}
	}
	normalized, err := json.Marshal(integralNumbers(decoded))
	if err != nil {
		return nil, &ParseError{Message: "failed to decode analysis result", Cause: err}
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(normalized, &result); err != nil {
		return nil, &ParseError{Message: "failed to decode analysis result", Cause: err}
	}

	if err := result.Validate(); err != nil {
		return nil, &ParseError{Message: "analysis result failed validation", Cause: err}
	}

	return &result, nil
}

// integralNumbers rewrites numbers with no fractional part in integer form.
// Other values pass through unchanged.
func integralNumbers(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for key, child := range node {
			node[key] = integralNumbers(child)
		}
	case []any:
		for i, child := range node {
			node[i] = integralNumbers(child)
		}
	case json.Number:
		if _, err := node.Int64(); err == nil {
			return node
		}
		f, err := node.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactFloatInt {
			return node
		}
		return json.Number(strconv.FormatInt(int64(f), 10))
	}
	return v
}

// maxExactFloatInt is the largest integer a float64 represents exactly.
const maxExactFloatInt = 1 << 53
