package interests

// Segmenter splits text into sentences in reading order.
type Segmenter interface {
	Segment(text string) []string
}

// Strategy is one technique for locating a research-interests statement.
// Extract reports found=false when the technique does not apply.
type Strategy interface {
	Name() string
	Extract(doc Document) (text string, found bool)
}

// Extractor produces the research-interests statement for a profile page.
// An empty string means nothing was found; it is never an error.
type Extractor interface {
	Extract(doc Document) string
}

// Ensure ProfileExtractor implements Extractor at compile time.
var _ Extractor = (*ProfileExtractor)(nil)

// ProfileExtractor tries its strategies in order and returns the first
// non-empty result.
type ProfileExtractor struct {
	strategies []Strategy
}

// NewProfileExtractor returns a ProfileExtractor over the given strategies,
// highest priority first.
func NewProfileExtractor(strategies ...Strategy) *ProfileExtractor {
	return &ProfileExtractor{strategies: strategies}
}

// Extract returns the first non-empty strategy result, or "" if every
// strategy came up empty.
func (e *ProfileExtractor) Extract(doc Document) string {
	for _, s := range e.strategies {
		if text, found := s.Extract(doc); found && text != "" {
			return text
		}
	}
	return ""
}
