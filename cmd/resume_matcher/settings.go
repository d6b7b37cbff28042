package main

import (
	"os"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/spf13/cobra"
)

// getenv is swapped in tests.
var getenv = os.Getenv

// newAnalyzer builds the analyzer for resolved settings; swapped in tests.
var newAnalyzer = func(cfg config.Config) analysis.Analyzer {
	return analysis.NewClient(analysis.Config{
		APIKey: cfg.APIKey,
		LLM:    cfg.LLMConfig(),
	})
}

// loadSettings resolves flags over the config file over the environment over defaults.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var file *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		file = loaded
	}

	env, err := config.FromEnv(getenv)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Resolve(file, env)
	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags into cfg. Flags a command does not
// define are skipped.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("resume") {
		cfg.Resume, _ = flags.GetString("resume")
	}
	if changed("job") {
		cfg.Job, _ = flags.GetString("job")
		cfg.JobURL = ""
	}
	if changed("job-url") {
		cfg.JobURL, _ = flags.GetString("job-url")
		if !changed("job") {
			cfg.Job = ""
		}
	}
	if changed("api-key") {
		cfg.APIKey, _ = flags.GetString("api-key")
	}
	if changed("model") {
		cfg.Model, _ = flags.GetString("model")
	}
	if changed("temperature") {
		temperature, _ := flags.GetFloat32("temperature")
		cfg.Temperature = &temperature
	}
	if changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if changed("allowed-origin") {
		cfg.AllowedOrigin, _ = flags.GetString("allowed-origin")
	}
	if changed("use-browser") {
		cfg.UseBrowser, _ = flags.GetBool("use-browser")
	}
	if changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
}
