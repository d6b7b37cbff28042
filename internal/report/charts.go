// Package report renders an AnalysisResult as a plain-text dashboard and
// derives the chart data a graphical front end needs.
package report

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// RadarSkills is how many combined skills the radar view plots.
	RadarSkills = 6
	// BarSkills is how many skills each proficiency bar chart shows.
	BarSkills = 5
)

// FitTier buckets a match score the way the dashboard colours it.
type FitTier string

const (
	TierWeak     FitTier = "weak"
	TierModerate FitTier = "moderate"
	TierStrong   FitTier = "strong"
)

// TierFor returns the tier for a 0-100 match score.
func TierFor(score int) FitTier {
	switch {
	case score > 80:
		return TierStrong
	case score > 60:
		return TierModerate
	default:
		return TierWeak
	}
}

// RadarPoint is one spoke of the skill radar: the candidate's level against the job's need.
type RadarPoint struct {
	Subject string `json:"subject"`
	You     int    `json:"you"`
	Job     int    `json:"job"`
}

// Radar returns the first RadarSkills skills, technical before soft, in model order.
func Radar(result *types.AnalysisResult) []RadarPoint {
	skills := result.AllSkills()
	if len(skills) > RadarSkills {
		skills = skills[:RadarSkills]
	}

	points := make([]RadarPoint, 0, len(skills))
	for _, s := range skills {
		points = append(points, RadarPoint{Subject: s.Name, You: s.Score, Job: s.Importance})
	}
	return points
}

// TopSkills returns at most BarSkills skills in model order.
func TopSkills(skills []types.SkillPoint) []types.SkillPoint {
	if len(skills) > BarSkills {
		return skills[:BarSkills]
	}
	return skills
}

// Gaps returns every skill whose importance exceeds its score, largest gap
// first. Ties go to the more important skill, then by name.
func Gaps(result *types.AnalysisResult) []types.SkillPoint {
	var gaps []types.SkillPoint
	for _, s := range result.AllSkills() {
		if s.Gap() > 0 {
			gaps = append(gaps, s)
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Gap() != gaps[j].Gap() {
			return gaps[i].Gap() > gaps[j].Gap()
		}
		if gaps[i].Importance != gaps[j].Importance {
			return gaps[i].Importance > gaps[j].Importance
		}
		return gaps[i].Name < gaps[j].Name
	})
	return gaps
}

// Dashboard is the chart data for one result, ready to serialize.
type Dashboard struct {
	MatchScore      int                       `json:"matchScore"`
	Tier            FitTier                   `json:"tier"`
	Summary         string                    `json:"summary"`
	Radar           []RadarPoint              `json:"radar"`
	TechnicalBars   []types.SkillPoint        `json:"technicalBars"`
	SoftBars        []types.SkillPoint        `json:"softBars"`
	Gaps            []types.SkillPoint        `json:"gaps"`
	MissingKeywords []string                  `json:"missingKeywords"`
	Suggestions     []types.RewriteSuggestion `json:"suggestions"`
}

// BuildDashboard derives all chart data from result.
func BuildDashboard(result *types.AnalysisResult) Dashboard {
	gaps := Gaps(result)
	if gaps == nil {
		gaps = []types.SkillPoint{}
	}
	return Dashboard{
		MatchScore:      result.MatchScore,
		Tier:            TierFor(result.MatchScore),
		Summary:         result.Summary,
		Radar:           Radar(result),
		TechnicalBars:   TopSkills(result.TechnicalSkills),
		SoftBars:        TopSkills(result.SoftSkills),
		Gaps:            gaps,
		MissingKeywords: result.MissingKeywords,
		Suggestions:     result.Suggestions,
	}
}
