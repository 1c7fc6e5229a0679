package extract

import (
	"strings"

	"github.com/fwojciec/interests"
)

// headingTags are the heading levels scanned for a research section.
var headingTags = []string{"h2", "h3", "h4"}

// headingKeywords mark a heading as introducing research interests.
var headingKeywords = []string{"research", "interests"}

// Ensure HeadingExtractor implements interests.Strategy at compile time.
var _ interests.Strategy = (*HeadingExtractor)(nil)

// HeadingExtractor finds the content that follows a research heading.
type HeadingExtractor struct{}

// NewHeadingExtractor creates a new HeadingExtractor.
func NewHeadingExtractor() *HeadingExtractor {
	return &HeadingExtractor{}
}

// Name returns the strategy identifier.
func (e *HeadingExtractor) Name() string {
	return "heading"
}

// Extract returns the trimmed text of the element following the first
// qualifying h2-h4 heading. Only the first qualifying heading is consulted,
// even when its content is empty.
func (e *HeadingExtractor) Extract(doc interests.Document) (string, bool) {
	for _, h := range doc.Elements(headingTags...) {
		if !containsAny(strings.ToLower(h.Text()), headingKeywords) {
			continue
		}
		next, ok := h.Next()
		if !ok {
			return "", false
		}
		return strings.TrimSpace(next.Text()), true
	}
	return "", false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
