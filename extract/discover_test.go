package extract_test

import (
	"testing"

	"github.com/fwojciec/interests"
	"github.com/fwojciec/interests/extract"
	"github.com/fwojciec/interests/goquery"
	"github.com/fwojciec/interests/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, pageURL, html string) interests.Document {
	t.Helper()

	doc, err := goquery.NewParser().Parse(pageURL, html)
	require.NoError(t, err)
	return doc
}

func urls(links []interests.CandidateLink) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.URL)
	}
	return out
}

func TestLinkDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	t.Run("filters and resolves in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/faculty/jane">Jane</a>
			<a href="http://x.org/other">Other</a>
			<a href="/about">About</a>
			<a href="persons/bob">Bob</a>
		</body></html>`
		doc := parse(t, "https://uni.edu/staff", html)

		links := extract.NewLinkDiscoverer(nil).Discover(doc, "https://uni.edu/")

		assert.Equal(t, []string{
			"https://uni.edu/faculty/jane",
			"http://x.org/other",
			"https://uni.edu/persons/bob",
		}, urls(links))
	})

	t.Run("FilterAbsolute drops absolute links without a marker", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/faculty/jane">Jane</a>
			<a href="http://x.org/other">Other</a>
			<a href="https://x.org/profile/9">Nine</a>`
		doc := parse(t, "https://uni.edu/staff", html)

		links := extract.NewLinkDiscoverer(nil, extract.FilterAbsolute()).Discover(doc, "https://uni.edu/")

		assert.Equal(t, []string{
			"https://uni.edu/faculty/jane",
			"https://x.org/profile/9",
		}, urls(links))
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/profile/1">A</a><a href="/profile/1">A again</a>`
		doc := parse(t, "https://uni.edu/staff", html)

		links := extract.NewLinkDiscoverer(nil).Discover(doc, "https://uni.edu/")

		assert.Equal(t, []string{
			"https://uni.edu/profile/1",
			"https://uni.edu/profile/1",
		}, urls(links))
	})

	t.Run("records the source page", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://uni.edu/staff", `<a href="/faculty/x">X</a>`)

		links := extract.NewLinkDiscoverer(nil).Discover(doc, "https://uni.edu/")

		require.Len(t, links, 1)
		assert.Equal(t, "https://uni.edu/staff", links[0].SourcePage)
	})

	t.Run("skips anchors without href", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://uni.edu/staff", `<a name="faculty">anchor</a><a href="/about">about</a>`)

		links := extract.NewLinkDiscoverer(nil).Discover(doc, "https://uni.edu/")

		assert.Empty(t, links)
	})

	t.Run("accepts image hrefs containing a marker", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://uni.edu/staff", `<a href="/img/profile-picture.jpg">pic</a>`)

		links := extract.NewLinkDiscoverer(nil).Discover(doc, "https://uni.edu/")

		assert.Equal(t, []string{"https://uni.edu/img/profile-picture.jpg"}, urls(links))
	})

	t.Run("returns empty when nothing qualifies", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://uni.edu/staff", `<a href="/about">About</a><a href="/contact">Contact</a>`)

		links := extract.NewLinkDiscoverer(nil).Discover(doc, "https://uni.edu/")

		assert.Empty(t, links)
	})

	t.Run("uses the injected classifier", func(t *testing.T) {
		t.Parallel()

		var seen []string
		classifier := &mock.LinkClassifier{
			IsProfileLinkFn: func(href string) bool {
				seen = append(seen, href)
				return href == "/people/ann"
			},
		}
		doc := parse(t, "https://uni.edu/staff", `<a href="/faculty/jane">J</a><a href="/people/ann">A</a>`)

		links := extract.NewLinkDiscoverer(classifier).Discover(doc, "https://uni.edu/")

		assert.Equal(t, []string{"/faculty/jane", "/people/ann"}, seen)
		assert.Equal(t, []string{"https://uni.edu/people/ann"}, urls(links))
	})
}
