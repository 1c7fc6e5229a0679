// Package extract holds the profile discovery and research-interest
// extraction heuristics. It works on any interests.Document.
package extract

import (
	"strings"

	"github.com/fwojciec/interests"
)

// Ensure LinkDiscoverer implements interests.LinkDiscoverer at compile time.
var _ interests.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer keeps the anchors whose href the classifier accepts.
// Absolute hrefs are kept as-is unless FilterAbsolute is set.
type LinkDiscoverer struct {
	classifier     interests.LinkClassifier
	filterAbsolute bool
}

// DiscovererOption configures a LinkDiscoverer.
type DiscovererOption func(*LinkDiscoverer)

// FilterAbsolute applies the classifier to absolute hrefs as well, so an
// off-site link without a marker is dropped.
func FilterAbsolute() DiscovererOption {
	return func(d *LinkDiscoverer) {
		d.filterAbsolute = true
	}
}

// NewLinkDiscoverer creates a LinkDiscoverer. A nil classifier means
// interests.NewMarkerClassifier() with the default markers.
func NewLinkDiscoverer(classifier interests.LinkClassifier, opts ...DiscovererOption) *LinkDiscoverer {
	if classifier == nil {
		classifier = interests.NewMarkerClassifier()
	}
	d := &LinkDiscoverer{classifier: classifier}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover returns candidate links in document order without deduplication.
func (d *LinkDiscoverer) Discover(doc interests.Document, baseURL string) []interests.CandidateLink {
	var links []interests.CandidateLink
	for _, a := range doc.Elements("a") {
		href, ok := a.Attr("href")
		if !ok || !d.keep(href) {
			continue
		}
		links = append(links, interests.CandidateLink{
			URL:        interests.ResolveURL(baseURL, href),
			SourcePage: doc.URL(),
		})
	}
	return links
}

func (d *LinkDiscoverer) keep(href string) bool {
	if !d.filterAbsolute && strings.HasPrefix(href, "http") {
		return true
	}
	return d.classifier.IsProfileLink(href)
}
