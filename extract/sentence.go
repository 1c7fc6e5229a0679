package extract

import (
	"strings"

	"github.com/fwojciec/interests"
)

// sentenceKeywords mark a sentence as a research-interests statement.
var sentenceKeywords = []string{"research", "interest"}

// Ensure SentenceExtractor implements interests.Strategy at compile time.
var _ interests.Strategy = (*SentenceExtractor)(nil)

// SentenceExtractor scans the page text sentence by sentence.
type SentenceExtractor struct {
	segmenter interests.Segmenter
}

// NewSentenceExtractor creates a SentenceExtractor using segmenter.
func NewSentenceExtractor(segmenter interests.Segmenter) *SentenceExtractor {
	return &SentenceExtractor{segmenter: segmenter}
}

// Name returns the strategy identifier.
func (e *SentenceExtractor) Name() string {
	return "sentence"
}

// Extract applies ExtractFromText to the page text.
func (e *SentenceExtractor) Extract(doc interests.Document) (string, bool) {
	return e.ExtractFromText(doc.Text())
}

// ExtractFromText returns the first sentence, in segmentation order, whose
// lower-cased form mentions research or interest. The sentence keeps its
// original casing and is trimmed.
func (e *SentenceExtractor) ExtractFromText(text string) (string, bool) {
	for _, sent := range e.segmenter.Segment(text) {
		if containsAny(strings.ToLower(sent), sentenceKeywords) {
			return strings.TrimSpace(sent), true
		}
	}
	return "", false
}
