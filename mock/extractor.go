package mock

import "github.com/fwojciec/interests"

var _ interests.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of interests.Strategy.
type Strategy struct {
	NameFn    func() string
	ExtractFn func(doc interests.Document) (string, bool)
}

func (s *Strategy) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *Strategy) Extract(doc interests.Document) (string, bool) {
	return s.ExtractFn(doc)
}

var _ interests.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of interests.Extractor.
type Extractor struct {
	ExtractFn func(doc interests.Document) string
}

func (e *Extractor) Extract(doc interests.Document) string {
	return e.ExtractFn(doc)
}

var _ interests.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of interests.Segmenter.
type Segmenter struct {
	SegmentFn func(text string) []string
}

func (s *Segmenter) Segment(text string) []string {
	return s.SegmentFn(text)
}
