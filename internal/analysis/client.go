// Package analysis turns a resume/job description pair into a validated AnalysisResult
// with one schema-constrained call to a hosted generative model.
package analysis

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer is the contract the session layer depends on.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisResult, error)
}

// Config configures a Client. Zero values fall back to defaults.
type Config struct {
	APIKey string
	LLM    *llm.Config
	Tier   llm.ModelTier
	// NewLLM builds the model client per call; defaults to llm.NewClient.
	NewLLM llm.Factory
}

// Client implements Analyzer on top of an llm.Client.
type Client struct {
	apiKey    string
	llmConfig *llm.Config
	tier      llm.ModelTier
	newLLM    llm.Factory
}

// NewClient creates an analysis client. A missing API key is not an error here;
// it is reported by Analyze so the failure reaches the user as an analysis outcome.
func NewClient(cfg Config) *Client {
	c := &Client{
		apiKey:    strings.TrimSpace(cfg.APIKey),
		llmConfig: cfg.LLM,
		tier:      cfg.Tier,
		newLLM:    cfg.NewLLM,
	}
	if c.llmConfig == nil {
		c.llmConfig = llm.DefaultConfig()
	}
	if c.tier == "" {
		c.tier = llm.TierStandard
	}
	if c.newLLM == nil {
		c.newLLM = llm.NewClient
	}
	return c
}

// Model returns the model name analyses are sent to.
func (c *Client) Model() string {
	return c.llmConfig.GetModel(c.tier)
}

// Analyze sends one request to the model and returns the validated result.
// It never retries; every failure is one of the typed errors in this package.
func (c *Client) Analyze(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisResult, error) {
	if c.apiKey == "" {
		return nil, &ConfigurationError{Message: "API key is missing (set GEMINI_API_KEY)"}
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputError{Field: "resume"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &InputError{Field: "job description"}
	}

	client, err := c.newLLM(ctx, c.llmConfig, c.apiKey)
	if err != nil {
		return nil, &ServiceError{Message: "failed to create LLM client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	start := time.Now()
	raw, err := client.GenerateJSON(ctx, llm.Request{
		Prompt:            BuildPrompt(resumeText, jobDescription),
		SystemInstruction: SystemInstruction(),
		Schema:            ResultSchema(),
		Tier:              c.tier,
	})
	if err != nil {
		log.Printf("[analysis] model=%s failed after %v: %v", c.Model(), time.Since(start), err)
		if errors.Is(err, llm.ErrEmptyResponse) {
			return nil, &EmptyResponseError{Cause: err}
		}
		return nil, &ServiceError{Message: "failed to generate analysis", Cause: err}
	}
	log.Printf("[analysis] model=%s responded in %v (%d bytes)", c.Model(), time.Since(start), len(raw))

	return ParseResult(raw)
}
