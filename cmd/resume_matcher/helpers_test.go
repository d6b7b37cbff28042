package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	mu     sync.Mutex
	result *types.AnalysisResult
	err    error
	calls  int
	resume string
	job    string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, resumeText, jobDescription string) (*types.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.resume = resumeText
	f.job = jobDescription
	return f.result, f.err
}

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		MatchScore: 72,
		Summary:    "Strong frontend background, light on TypeScript.",
		TechnicalSkills: []types.SkillPoint{
			{Name: "React", Score: 85, Importance: 90},
			{Name: "TypeScript", Score: 20, Importance: 80},
		},
		SoftSkills:      []types.SkillPoint{{Name: "Communication", Score: 70, Importance: 60}},
		MissingKeywords: []string{"TypeScript"},
		Suggestions: []types.RewriteSuggestion{{
			Section:      "Experience",
			OriginalText: "Built web apps",
			ImprovedText: "Built React web apps serving 10k users",
			Reasoning:    "Quantifies impact",
		}},
	}
}

// withEnv swaps the environment lookup and analyzer factory for one test.
func withEnv(t *testing.T, env map[string]string, fake analysis.Analyzer) *config.Config {
	t.Helper()
	var seen config.Config

	origGetenv, origAnalyzer := getenv, newAnalyzer
	getenv = func(key string) string { return env[key] }
	newAnalyzer = func(cfg config.Config) analysis.Analyzer {
		seen = cfg
		return fake
	}
	t.Cleanup(func() {
		getenv, newAnalyzer = origGetenv, origAnalyzer
	})
	return &seen
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
