package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/session"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a resume against a job description",
		Long: `Analyze sends the resume and job description to Gemini and prints the match
score, skill gaps, missing ATS keywords and rewrite suggestions.

The resume may be .txt, .md, .pdf or .docx. The job description comes from a
file (--job) or a URL (--job-url). Use --example to try the built-in sample.`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("resume", "r", "", "Path to resume file (.txt, .md, .pdf, .docx)")
	cmd.Flags().StringP("job", "j", "", "Path to job description file")
	cmd.Flags().StringP("job-url", "u", "", "URL to fetch the job description from")
	cmd.Flags().Bool("example", false, "Analyze the built-in example resume and job description")
	cmd.Flags().String("api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	cmd.Flags().String("model", "", "Gemini model id")
	cmd.Flags().Float32("temperature", 0, "Sampling temperature (0.0-2.0)")
	cmd.Flags().Bool("use-browser", false, "Render script-heavy job pages in headless Chrome")
	cmd.Flags().Bool("json", false, "Print the raw analysis result as JSON")
	cmd.Flags().Duration("timeout", 2*time.Minute, "Maximum time to wait for the analysis")
	cmd.MarkFlagsMutuallyExclusive("job", "job-url")
	cmd.MarkFlagsMutuallyExclusive("example", "resume")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	useExample, _ := cmd.Flags().GetBool("example")
	opts := ingestion.URLOptions{UseBrowser: cfg.UseBrowser, Verbose: cfg.Verbose}

	var loaded *ingestion.Loaded
	if useExample {
		loaded = &ingestion.Loaded{Input: ingestion.ExampleInput()}
	} else {
		loaded, err = ingestion.LoadInput(ctx,
			ingestion.Source{Path: cfg.Resume},
			ingestion.Source{Path: cfg.Job, URL: cfg.JobURL},
			opts)
		if err != nil {
			return err
		}
	}

	if cfg.Verbose {
		log.Printf("[VERBOSE] Model: %s, resume %d chars, job description %d chars",
			cfg.Model, len(loaded.Input.ResumeText), len(loaded.Input.JobDescription))
	}

	sess := session.New(newAnalyzer(cfg))
	if err := sess.Start(ctx, loaded.Input); err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Analyzing resume against job description...")
	snap, err := sess.Wait(ctx)
	if err != nil {
		return fmt.Errorf("analysis did not finish: %w", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	return printOutcome(cmd.OutOrStdout(), snap, asJSON)
}

func printOutcome(out io.Writer, snap session.Snapshot, asJSON bool) error {
	if snap.State == session.StateError {
		if !asJSON {
			report.NewPrinter(out).PrintError(snap.Error)
		}
		return fmt.Errorf("analysis failed: %s", snap.Error)
	}
	if snap.State != session.StateComplete || snap.Result == nil {
		return fmt.Errorf("analysis ended in state %s", snap.State)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap.Result)
	}
	report.NewPrinter(out).PrintResult(snap.Result)
	return nil
}
