// Package crawl drives the research-interest pipeline: it fetches one
// directory page, discovers profile links on it, and extracts a
// research-interests statement from each profile in turn.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/interests"
)

// Crawler orchestrates a single pass over a directory page and its profiles.
// Fetches happen one at a time in discovery order.
type Crawler struct {
	Fetcher    interests.Fetcher
	Parser     interests.Parser
	Discoverer interests.LinkDiscoverer
	Extractor  interests.Extractor
	Writer     interests.ResultWriter
	Archive    interests.ResultArchive // optional

	// BaseURL resolves relative profile hrefs. Defaults to the site root
	// of the directory URL.
	BaseURL string

	Logger *slog.Logger
}

// ProgressEvent reports progress through the profile list.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches the directory page and extracts research interests from every
// discovered profile. A failed directory fetch aborts the run. A failed
// profile fetch yields a row with empty interests and the run continues.
// Results are returned in discovery order.
func (c *Crawler) Run(ctx context.Context, directoryURL string, progress ProgressFunc) ([]interests.ExtractionResult, error) {
	html, err := c.Fetcher.Fetch(ctx, directoryURL)
	if err != nil {
		return nil, interests.WrapError(err, interests.ETRANSPORT, "directory fetch failed for %s", directoryURL)
	}

	doc, err := c.Parser.Parse(directoryURL, html)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = interests.SiteRoot(directoryURL)
	}
	links := c.Discoverer.Discover(doc, baseURL)

	total := len(links)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	results := make([]interests.ExtractionResult, 0, total)
	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := c.extractProfile(ctx, link.URL)
		if err != nil {
			// Cancellation is not a per-profile failure.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			c.logger().Warn("profile skipped", "url", link.URL, "err", err)
		}
		results = append(results, interests.ExtractionResult{
			ProfileURL:        link.URL,
			ResearchInterests: text,
		})

		if progress != nil {
			event := ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, URL: link.URL}
			if err != nil {
				event.Type = ProgressFailed
				event.Error = err
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results, nil
}

// extractProfile fetches one profile and returns its research interests.
// Parse failures count as "nothing found", not as errors.
func (c *Crawler) extractProfile(ctx context.Context, profileURL string) (string, error) {
	html, err := c.Fetcher.Fetch(ctx, profileURL)
	if err != nil {
		return "", err
	}

	doc, err := c.Parser.Parse(profileURL, html)
	if err != nil {
		c.logger().Debug("profile unparseable", "url", profileURL, "err", err)
		return "", nil
	}

	return c.Extractor.Extract(doc), nil
}

// Export runs the pipeline, writes the results with Writer, and records
// the run in Archive when one is configured. Nothing is written when the
// run fails.
func (c *Crawler) Export(ctx context.Context, directoryURL string, progress ProgressFunc) (*interests.Run, error) {
	run := &interests.Run{
		DirectoryURL: directoryURL,
		StartedAt:    time.Now().UTC(),
	}

	results, err := c.Run(ctx, directoryURL, progress)
	if err != nil {
		return nil, err
	}
	run.FinishedAt = time.Now().UTC()
	run.Count = len(results)
	for _, r := range results {
		if r.Found() {
			run.Found++
		}
	}

	if err := c.Writer.WriteResults(ctx, results); err != nil {
		return nil, fmt.Errorf("writing results: %w", err)
	}

	if c.Archive != nil {
		if err := c.Archive.CreateRun(ctx, run, results); err != nil {
			return nil, fmt.Errorf("archiving run: %w", err)
		}
	}

	return run, nil
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
