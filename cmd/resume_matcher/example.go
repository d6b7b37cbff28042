package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or write the built-in example resume and job description",
		Args:  cobra.NoArgs,
		RunE:  runExample,
	}
	cmd.Flags().StringP("out", "o", "", "Directory to write example_resume.txt and example_job.txt into")
	return cmd
}

func runExample(cmd *cobra.Command, _ []string) error {
	input := ingestion.ExampleInput()

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(input)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	resumePath := filepath.Join(outDir, "example_resume.txt")
	jobPath := filepath.Join(outDir, "example_job.txt")
	if err := os.WriteFile(resumePath, []byte(input.ResumeText+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", resumePath, err)
	}
	if err := os.WriteFile(jobPath, []byte(input.JobDescription+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", jobPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s and %s\n", resumePath, jobPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Run: resume_matcher analyze --resume %s --job %s\n", resumePath, jobPath)
	return nil
}
