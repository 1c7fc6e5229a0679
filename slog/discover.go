package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/interests"
)

// Ensure LoggingDiscoverer implements interests.LinkDiscoverer.
var _ interests.LinkDiscoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a LinkDiscoverer and reports how many profile
// links each page yielded.
type LoggingDiscoverer struct {
	next   interests.LinkDiscoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next interests.LinkDiscoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the link count.
func (d *LoggingDiscoverer) Discover(doc interests.Document, baseURL string) (links []interests.CandidateLink) {
	defer func(begin time.Time) {
		d.logger.Info("link discovery",
			"url", doc.URL(),
			"base", baseURL,
			"count", len(links),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Discover(doc, baseURL)
}
