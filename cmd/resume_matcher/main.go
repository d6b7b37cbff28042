// Package main provides the resume_matcher command: analyze a resume against a
// job description from the terminal, or serve the analysis session over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resume_matcher",
		Short: "AI resume and job description matcher",
		Long: "resume_matcher scores how well a resume fits a job description using Gemini, " +
			"reports skill gaps and missing ATS keywords, and suggests concrete rewrites.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to a JSON config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "Print detailed debug information")

	root.AddCommand(
		newAnalyzeCmd(),
		newServeCmd(),
		newSchemaCmd(),
		newExampleCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
