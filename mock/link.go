package mock

import "github.com/fwojciec/interests"

var _ interests.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of interests.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverFn func(doc interests.Document, baseURL string) []interests.CandidateLink
}

func (d *LinkDiscoverer) Discover(doc interests.Document, baseURL string) []interests.CandidateLink {
	return d.DiscoverFn(doc, baseURL)
}

var _ interests.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier is a mock implementation of interests.LinkClassifier.
type LinkClassifier struct {
	IsProfileLinkFn func(href string) bool
}

func (c *LinkClassifier) IsProfileLink(href string) bool {
	return c.IsProfileLinkFn(href)
}
