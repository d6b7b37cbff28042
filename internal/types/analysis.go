// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// NewContentSentinel is the OriginalText value used when a suggestion adds content
// rather than rewriting an existing snippet.
const NewContentSentinel = "N/A"

// SkillPoint is a named skill with two independent 0-100 ratings.
// A high Importance paired with a low Score is the gap signal.
type SkillPoint struct {
	Name       string `json:"name" validate:"required"`
	Score      int    `json:"score" validate:"min=0,max=100"`      // Proficiency inferred from the resume
	Importance int    `json:"importance" validate:"min=0,max=100"` // Relevance to the target job
}

// Gap returns how far the candidate's proficiency falls short of the job's need.
// Zero means no gap.
func (s SkillPoint) Gap() int {
	if s.Importance > s.Score {
		return s.Importance - s.Score
	}
	return 0
}

// RewriteSuggestion is a concrete before/after edit to the resume.
type RewriteSuggestion struct {
	Section      string `json:"section"`
	OriginalText string `json:"originalText"`
	ImprovedText string `json:"improvedText"`
	Reasoning    string `json:"reasoning"`
}

// IsNewContent reports whether the suggestion adds content instead of rewriting existing text.
func (s RewriteSuggestion) IsNewContent() bool {
	return strings.TrimSpace(s.OriginalText) == NewContentSentinel
}

// AnalysisResult is the validated outcome of one resume/job analysis.
// Collections must be present (non-nil) even when empty.
type AnalysisResult struct {
	MatchScore      int                 `json:"matchScore" validate:"min=0,max=100"`
	Summary         string              `json:"summary"`
	TechnicalSkills []SkillPoint        `json:"technicalSkills" validate:"required,dive"`
	SoftSkills      []SkillPoint        `json:"softSkills" validate:"required,dive"`
	MissingKeywords []string            `json:"missingKeywords" validate:"required"`
	Suggestions     []RewriteSuggestion `json:"suggestions" validate:"required,dive"`
}

// Validate checks score bounds and presence of every collection.
func (r *AnalysisResult) Validate() error {
	return sharedValidator().Struct(r)
}

// AllSkills returns technical skills followed by soft skills.
func (r *AnalysisResult) AllSkills() []SkillPoint {
	skills := make([]SkillPoint, 0, len(r.TechnicalSkills)+len(r.SoftSkills))
	skills = append(skills, r.TechnicalSkills...)
	return append(skills, r.SoftSkills...)
}

// InputState is the request payload for one analysis. It is never persisted.
type InputState struct {
	ResumeText     string `json:"resumeText" validate:"notblank"`
	JobDescription string `json:"jobDescription" validate:"notblank"`
}

// Validate checks that both inputs are non-empty after trimming.
func (in *InputState) Validate() error {
	return sharedValidator().Struct(in)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// sharedValidator returns the package validator; it caches struct metadata across calls.
func sharedValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Registration only fails for empty tags or nil funcs.
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}
