package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// Source names one input. Exactly one field should be set; Text wins over
// Path, which wins over URL.
type Source struct {
	Text string
	Path string
	URL  string
}

func (s Source) empty() bool {
	return s.Text == "" && s.Path == "" && s.URL == ""
}

// Load returns the cleaned text of one source.
func (s Source) Load(ctx context.Context, opts URLOptions) (string, *Metadata, error) {
	switch {
	case s.Text != "":
		cleaned := CleanText(s.Text)
		return cleaned, NewMetadata(KindInline, "", cleaned), nil
	case s.Path != "":
		return LoadFile(s.Path)
	case s.URL != "":
		return LoadURL(ctx, s.URL, opts)
	default:
		return "", nil, fmt.Errorf("no input source given")
	}
}

// Loaded is the result of LoadInput.
type Loaded struct {
	Input  types.InputState
	Resume *Metadata
	Job    *Metadata
}

// LoadInput loads the resume and job description concurrently and validates the pair.
func LoadInput(ctx context.Context, resume, job Source, opts URLOptions) (*Loaded, error) {
	if resume.empty() {
		return nil, fmt.Errorf("a resume is required (--resume)")
	}
	if job.empty() {
		return nil, fmt.Errorf("a job description is required (--job or --job-url)")
	}

	loaded := &Loaded{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, meta, err := resume.Load(gctx, opts)
		if err != nil {
			return fmt.Errorf("resume: %w", err)
		}
		loaded.Input.ResumeText, loaded.Resume = text, meta
		return nil
	})
	g.Go(func() error {
		text, meta, err := job.Load(gctx, opts)
		if err != nil {
			return fmt.Errorf("job description: %w", err)
		}
		loaded.Input.JobDescription, loaded.Job = text, meta
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := loaded.Input.Validate(); err != nil {
		return nil, fmt.Errorf("inputs are empty after cleaning: %w", err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Resume: %d chars (%s), job description: %d chars (%s)",
			loaded.Resume.Chars, loaded.Resume.Kind, loaded.Job.Chars, loaded.Job.Kind)
	}
	return loaded, nil
}
