package interests

import (
	"net/url"
	"slices"
	"strings"
)

// DefaultProfileMarkers are the href substrings that mark a link as a
// likely profile page.
var DefaultProfileMarkers = []string{"faculty", "profile", "persons"}

// LinkClassifier decides whether an href is likely to point at a profile page.
type LinkClassifier interface {
	IsProfileLink(href string) bool
}

// MarkerClassifier accepts any href containing one of its markers.
// Matching is a case-sensitive substring test, so non-page hrefs such as
// "profile-picture.jpg" are accepted too.
type MarkerClassifier struct {
	Markers []string
}

// NewMarkerClassifier returns a MarkerClassifier for the given markers.
// With no markers it uses DefaultProfileMarkers. The classifier owns a copy,
// so later edits to either slice do not leak across.
func NewMarkerClassifier(markers ...string) *MarkerClassifier {
	if len(markers) == 0 {
		markers = DefaultProfileMarkers
	}
	return &MarkerClassifier{Markers: slices.Clone(markers)}
}

// IsProfileLink reports whether href contains any marker.
func (c *MarkerClassifier) IsProfileLink(href string) bool {
	for _, m := range c.Markers {
		if strings.Contains(href, m) {
			return true
		}
	}
	return false
}

// LinkDiscoverer selects candidate profile links from a directory page.
type LinkDiscoverer interface {
	// Discover returns candidate links in document order.
	// Relative hrefs are resolved against baseURL with ResolveURL.
	Discover(doc Document, baseURL string) []CandidateLink
}

// ResolveURL makes href absolute. Hrefs starting with "http" are returned
// unchanged; anything else is appended to baseURL with exactly one slash
// at the join. No other normalization happens: dot segments, queries and
// fragments are carried over as written.
func ResolveURL(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}

// SiteRoot returns the scheme and host of rawURL followed by a slash, the
// default base for resolving relative profile hrefs. rawURL is returned
// unchanged if it has no host.
func SiteRoot(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return rawURL
	}
	return u.Scheme + "://" + u.Host + "/"
}
