package report

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		MatchScore: 72,
		Summary:    "Solid frontend fundamentals; TypeScript and performance work are missing.",
		TechnicalSkills: []types.SkillPoint{
			{Name: "React", Score: 80, Importance: 90},
			{Name: "TypeScript", Score: 10, Importance: 95},
			{Name: "CSS", Score: 70, Importance: 40},
			{Name: "Tailwind CSS", Score: 20, Importance: 70},
			{Name: "Next.js", Score: 0, Importance: 30},
		},
		SoftSkills: []types.SkillPoint{
			{Name: "Mentoring", Score: 20, Importance: 60},
			{Name: "Leadership", Score: 30, Importance: 70},
		},
		MissingKeywords: []string{"TypeScript", "Tailwind CSS"},
		Suggestions: []types.RewriteSuggestion{
			{Section: "Skills", OriginalText: "N/A", ImprovedText: "Proficient in TypeScript and React", Reasoning: "Adds missing required keyword"},
			{Section: "Experience", OriginalText: "Fixed bugs and improved UI.", ImprovedText: "Resolved 120+ UI defects, improving Lighthouse scores by 25%.", Reasoning: "Adds quantitative impact"},
		},
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  FitTier
	}{
		{0, TierWeak},
		{60, TierWeak},
		{61, TierModerate},
		{80, TierModerate},
		{81, TierStrong},
		{100, TierStrong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score), "score %d", tt.score)
	}
}

func TestRadar_FirstSixCombinedSkills(t *testing.T) {
	points := Radar(sampleResult())

	assert.Len(t, points, RadarSkills)
	assert.Equal(t, RadarPoint{Subject: "React", You: 80, Job: 90}, points[0])
	assert.Equal(t, "Mentoring", points[5].Subject, "soft skills follow technical skills")
}

func TestRadar_FewSkills(t *testing.T) {
	result := &types.AnalysisResult{TechnicalSkills: []types.SkillPoint{{Name: "Go", Score: 1, Importance: 2}}}
	assert.Len(t, Radar(result), 1)
	assert.Empty(t, Radar(&types.AnalysisResult{}))
}

func TestGaps_SortedLargestFirst(t *testing.T) {
	gaps := Gaps(sampleResult())

	names := make([]string, 0, len(gaps))
	for _, g := range gaps {
		names = append(names, g.Name)
	}
	// TypeScript 85, Tailwind 50, Leadership 40, Mentoring 40, Next.js 30, React 10; CSS has none.
	assert.Equal(t, []string{"TypeScript", "Tailwind CSS", "Leadership", "Mentoring", "Next.js", "React"}, names)
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard(sampleResult())

	assert.Equal(t, 72, d.MatchScore)
	assert.Equal(t, TierModerate, d.Tier)
	assert.Len(t, d.TechnicalBars, BarSkills)
	assert.Len(t, d.SoftBars, 2)
	assert.Len(t, d.Suggestions, 2)
}

func TestBuildDashboard_NoGapsIsEmptyList(t *testing.T) {
	d := BuildDashboard(&types.AnalysisResult{
		TechnicalSkills: []types.SkillPoint{{Name: "Go", Score: 90, Importance: 80}},
	})
	assert.NotNil(t, d.Gaps)
	assert.Empty(t, d.Gaps)
}
