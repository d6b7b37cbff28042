package analysis

import (
	"sync"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

// Result field names as they appear on the wire.
const (
	FieldMatchScore      = "matchScore"
	FieldSummary         = "summary"
	FieldTechnicalSkills = "technicalSkills"
	FieldSoftSkills      = "softSkills"
	FieldMissingKeywords = "missingKeywords"
	FieldSuggestions     = "suggestions"
)

func percent(description string) *llm.Schema {
	lo, hi := llm.IntRange(0, 100)
	return &llm.Schema{Type: llm.TypeInteger, Description: description, Minimum: lo, Maximum: hi}
}

func skillPointSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"name":       {Type: llm.TypeString, Description: "Skill name"},
			"score":      percent("Proficiency level inferred from the resume (0-100)"),
			"importance": percent("Importance of this skill to the specific job (0-100)"),
		},
		Required: []string{"name", "score", "importance"},
	}
}

// ResultSchema returns the structured-output schema for an analysis result.
// The same definition drives the model request and the validation of its reply.
func ResultSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			FieldMatchScore: percent("A score from 0 to 100 indicating how well the resume matches the job description."),
			FieldSummary: {
				Type:        llm.TypeString,
				Description: "A professional executive summary of the candidate's fit for the role.",
			},
			FieldTechnicalSkills: {Type: llm.TypeArray, Items: skillPointSchema()},
			FieldSoftSkills:      {Type: llm.TypeArray, Items: skillPointSchema()},
			FieldMissingKeywords: {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "Critical keywords or skills found in the job description but missing from the resume. Important for ATS.",
			},
			FieldSuggestions: {
				Type: llm.TypeArray,
				Items: &llm.Schema{
					Type: llm.TypeObject,
					Properties: map[string]*llm.Schema{
						"section":      {Type: llm.TypeString, Description: "Resume section, e.g. Experience, Summary, Skills"},
						"originalText": {Type: llm.TypeString, Description: "A snippet from the original resume, or 'N/A' if the suggestion adds new content"},
						"improvedText": {Type: llm.TypeString, Description: "An ATS-friendly rewrite of that snippet using action verbs and keywords"},
						"reasoning":    {Type: llm.TypeString, Description: "Why this change helps, e.g. 'Adds quantitative impact'"},
					},
					Required: []string{"section", "originalText", "improvedText", "reasoning"},
				},
			},
		},
		Required: []string{
			FieldMatchScore,
			FieldSummary,
			FieldTechnicalSkills,
			FieldSoftSkills,
			FieldMissingKeywords,
			FieldSuggestions,
		},
	}
}

var (
	resultValidatorOnce sync.Once
	resultValidator     *schemas.Validator
	resultValidatorErr  error
)

// resultSchemaValidator compiles the JSON Schema for results once per process.
func resultSchemaValidator() (*schemas.Validator, error) {
	resultValidatorOnce.Do(func() {
		resultValidator, resultValidatorErr = schemas.NewValidator(ResultSchema().JSONSchema())
	})
	return resultValidator, resultValidatorErr
}
