// Package sentences implements interests.Segmenter with the Punkt sentence
// tokenizer from github.com/neurosnap/sentences.
package sentences

import (
	"strings"

	"github.com/fwojciec/interests"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Ensure Segmenter implements interests.Segmenter at compile time.
var _ interests.Segmenter = (*Segmenter)(nil)

// Segmenter splits text into sentences. Line breaks are hard boundaries;
// each line is then tokenized with the English Punkt model.
// Segmenter is safe for concurrent use.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSegmenter loads the English Punkt model. Loading is comparatively
// expensive, so a single Segmenter should be created at startup and shared.
func NewSegmenter() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, interests.WrapError(err, interests.EINTERNAL, "failed to load sentence model")
	}
	return &Segmenter{tokenizer: tokenizer}, nil
}

// Segment returns the non-empty, trimmed sentences of text in reading order.
func (s *Segmenter) Segment(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, sent := range s.tokenizer.Tokenize(line) {
			if t := strings.TrimSpace(sent.Text); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}
