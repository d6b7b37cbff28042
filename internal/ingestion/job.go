package ingestion

import (
	"context"
	"errors"
	"log"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// ErrContentExtractionFailed is returned when a page yields no usable text.
var ErrContentExtractionFailed = errors.New("content extraction failed")

// URLOptions configures LoadURL.
type URLOptions struct {
	HTTP       *fetch.Options
	UseBrowser bool
	// Render replaces the headless browser; defaults to fetch.BrowserRenderer.
	Render  fetch.Renderer
	Verbose bool
}

// LoadURL fetches a job posting and returns its cleaned text. With UseBrowser,
// pages whose plain HTTP text is too short are re-rendered in a headless browser;
// a failed render falls back to the HTTP text.
func LoadURL(ctx context.Context, urlStr string, opts URLOptions) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s (platform %s)", urlStr, platform)
	}

	result, err := fetch.URL(ctx, urlStr, opts.HTTP)
	if err != nil {
		return "", nil, &Error{Source: urlStr, Message: "failed to fetch job posting", Cause: err}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, &Error{Source: urlStr, Message: "failed to extract text", Cause: err}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	usedBrowser := false
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		render := opts.Render
		if render == nil {
			render = fetch.BrowserRenderer(fetch.DefaultBrowserTimeout, opts.Verbose)
		}
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), rendering in browser...",
				len(text), fetch.MinContentLength)
		}

		if rendered, renderErr := render(ctx, urlStr); renderErr != nil {
			log.Printf("[ingestion] browser rendering failed for %s: %v; using HTTP content", urlStr, renderErr)
		} else if browserText, extractErr := fetch.ExtractMainText(rendered, contentSelectors, noiseSelectors...); extractErr != nil {
			log.Printf("[ingestion] browser content extraction failed for %s: %v", urlStr, extractErr)
		} else if len(browserText) > len(text) {
			text = browserText
			usedBrowser = true
		}
	} else if opts.Verbose && fetch.IsScriptRendered(platform) && fetch.ShouldUseBrowser(text) {
		log.Printf("[VERBOSE] %s postings are usually script-rendered; consider --use-browser", platform)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, &Error{Source: urlStr, Message: "no text content found", Cause: ErrContentExtractionFailed}
	}

	meta := NewMetadata(KindURL, urlStr, cleaned)
	meta.Format = "html"
	meta.Platform = platform
	meta.UsedBrowser = usedBrowser
	return cleaned, meta, nil
}
