package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain JSON", raw: sampleResponse},
		{name: "fenced JSON", raw: "```json\n" + sampleResponse + "\n```"},
		{name: "surrounding whitespace", raw: "\n  " + sampleResponse + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, 72, result.MatchScore)
			assert.Equal(t, []string{"TypeScript"}, result.MissingKeywords)
		})
	}
}

func TestParseResult_Rejects(t *testing.T) {
	replace := func(old, new string) string {
		out := strings.Replace(sampleResponse, old, new, 1)
		if out == sampleResponse {
			t.Fatalf("fixture replacement %q had no effect", old)
		}
		return out
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "{not json"},
		{name: "prose", raw: "Here is your analysis: great fit!"},
		{name: "JSON array", raw: `[1,2,3]`},
		{name: "match score above 100", raw: replace(`"matchScore":72`, `"matchScore":140`)},
		{name: "negative match score", raw: replace(`"matchScore":72`, `"matchScore":-3`)},
		{name: "fractional match score", raw: replace(`"matchScore":72`, `"matchScore":72.5`)},
		{name: "match score as string", raw: replace(`"matchScore":72`, `"matchScore":"72"`)},
		{name: "skill score out of range", raw: replace(`"score":80`, `"score":101`)},
		{name: "importance out of range", raw: replace(`"importance":90`, `"importance":-1`)},
		{name: "missing soft skills", raw: replace(`"softSkills":[],`, ``)},
		{name: "null keywords", raw: replace(`"missingKeywords":["TypeScript"]`, `"missingKeywords":null`)},
		{name: "keyword of wrong type", raw: replace(`["TypeScript"]`, `[42]`)},
		{name: "suggestion missing reasoning", raw: replace(`,"reasoning":"Adds missing required keyword"`, ``)},
		{name: "skill missing name", raw: replace(`"name":"React",`, ``)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.raw)
			assert.Nil(t, result)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr, "got %v", err)
		})
	}
}

func TestParseResult_IntegralFloats(t *testing.T) {
	tests := []struct {
		name      string
		old, new  string
		wantScore int
	}{
		{name: "trailing zero", old: `"matchScore":72`, new: `"matchScore":72.0`, wantScore: 72},
		{name: "exponent", old: `"matchScore":72`, new: `"matchScore":7.2e1`, wantScore: 72},
		{name: "zero with fraction", old: `"matchScore":72`, new: `"matchScore":0.0`, wantScore: 0},
		{name: "skill score", old: `"score":80`, new: `"score":80.00`, wantScore: 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := strings.Replace(sampleResponse, tt.old, tt.new, 1)
			require.NotEqual(t, sampleResponse, raw)

			result, err := ParseResult(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.MatchScore)
			assert.Equal(t, 80, result.TechnicalSkills[0].Score)
		})
	}
}

func TestIntegralNumbers(t *testing.T) {
	in := map[string]any{
		"a": json.Number("72.0"),
		"b": []any{json.Number("1e2"), json.Number("2.5"), "text"},
		"c": json.Number("15"),
	}
	out := integralNumbers(in).(map[string]any)

	assert.Equal(t, json.Number("72"), out["a"])
	assert.Equal(t, []any{json.Number("100"), json.Number("2.5"), "text"}, out["b"])
	assert.Equal(t, json.Number("15"), out["c"])
}

func TestParseResult_Empty(t *testing.T) {
	_, err := ParseResult("   ")
	var emptyErr *EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestParseResult_RoundTrip(t *testing.T) {
	original := types.AnalysisResult{
		MatchScore: 55,
		Summary:    "Partial fit",
		TechnicalSkills: []types.SkillPoint{
			{Name: "Go", Score: 90, Importance: 70},
			{Name: "Kubernetes", Score: 0, Importance: 100},
		},
		SoftSkills:      []types.SkillPoint{{Name: "Mentoring", Score: 30, Importance: 60}},
		MissingKeywords: []string{"Kubernetes", "Helm"},
		Suggestions: []types.RewriteSuggestion{{
			Section:      "Experience",
			OriginalText: "Fixed bugs.",
			ImprovedText: "Resolved 40+ production defects, cutting incident volume by 30%.",
			Reasoning:    "Adds quantitative impact",
		}},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	parsed, err := ParseResult(string(data))
	require.NoError(t, err)
	assert.Equal(t, original, *parsed)
}

func TestResultSchema_MatchesJSONTags(t *testing.T) {
	data, err := json.Marshal(types.AnalysisResult{})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	schema := ResultSchema()
	for name := range fields {
		assert.Contains(t, schema.Properties, name)
	}
	assert.Len(t, schema.Properties, len(fields))
}
