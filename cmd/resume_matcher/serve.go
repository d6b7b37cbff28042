package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/session"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start an HTTP server that holds one analysis session for a browser front end.

Endpoints: GET /health, GET /example, GET /schema, GET /session,
POST /session/analyze, POST /session/reset, GET /session/events (SSE).`,
		RunE: runServe,
	}

	cmd.Flags().Int("port", 0, "Port to listen on (default 8080 or $PORT)")
	cmd.Flags().String("allowed-origin", "", "CORS allowed origin (default *)")
	cmd.Flags().String("api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	cmd.Flags().String("model", "", "Gemini model id")
	cmd.Flags().Float32("temperature", 0, "Sampling temperature (0.0-2.0)")
	cmd.Flags().Bool("use-browser", false, "Render script-heavy job pages in headless Chrome")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		// Not fatal: each analysis reports the missing key to the client.
		log.Printf("[http] Warning: no API key configured; analyses will fail until one is set")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Port:          cfg.Port,
		AllowedOrigin: cfg.AllowedOrigin,
		Model:         cfg.Model,
		URLOptions:    ingestion.URLOptions{UseBrowser: cfg.UseBrowser, Verbose: cfg.Verbose},
	}, session.New(newAnalyzer(cfg)))

	return srv.Start(ctx)
}
