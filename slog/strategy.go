package slog

import (
	"log/slog"

	"github.com/fwojciec/interests"
)

// Ensure LoggingStrategy implements interests.Strategy.
var _ interests.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps an extraction Strategy with debug logging.
type LoggingStrategy struct {
	next   interests.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next interests.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name returns the wrapped strategy's name.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// Extract delegates to the wrapped strategy and logs whether it matched.
func (s *LoggingStrategy) Extract(doc interests.Document) (text string, found bool) {
	defer func() {
		s.logger.Debug("extract",
			"strategy", s.next.Name(),
			"url", doc.URL(),
			"found", found,
			"chars", len(text),
		)
	}()
	return s.next.Extract(doc)
}
