package crawl_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/interests"
	"github.com/fwojciec/interests/crawl"
	"github.com/fwojciec/interests/extract"
	"github.com/fwojciec/interests/goquery"
	"github.com/fwojciec/interests/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pages returns a fetch function serving the given URL to HTML map.
// Unknown URLs fail with a transport error.
func pages(m map[string]string, fetched *[]string) func(context.Context, string) (string, error) {
	return func(_ context.Context, url string) (string, error) {
		if fetched != nil {
			*fetched = append(*fetched, url)
		}
		html, ok := m[url]
		if !ok {
			return "", interests.Errorf(interests.ETRANSPORT, "fetching %s: connection refused", url)
		}
		return html, nil
	}
}

// lineSegmenter treats every line as a sentence.
func lineSegmenter() *mock.Segmenter {
	return &mock.Segmenter{
		SegmentFn: func(text string) []string {
			return strings.Split(text, "\n")
		},
	}
}

func newCrawler(fetcher interests.Fetcher, writer interests.ResultWriter) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher:    fetcher,
		Parser:     goquery.NewParser(),
		Discoverer: extract.NewLinkDiscoverer(nil),
		Extractor: interests.NewProfileExtractor(
			extract.NewHeadingExtractor(),
			extract.NewSentenceExtractor(lineSegmenter()),
		),
		Writer: writer,
	}
}

const directoryURL = "https://uni.edu/staff/"

const directoryHTML = `<html><body>
<a href="/faculty/a">A</a>
<a href="/about">About</a>
<a href="/faculty/b">B</a>
</body></html>`

func TestCrawler_Run(t *testing.T) {
	t.Parallel()

	t.Run("directory fetch failure aborts without profile fetches", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{FetchFn: pages(map[string]string{}, &fetched)}

		results, err := newCrawler(fetcher, nil).Run(context.Background(), directoryURL, nil)

		require.Error(t, err)
		assert.Nil(t, results)
		assert.Equal(t, interests.ETRANSPORT, interests.ErrorCode(err))
		assert.Contains(t, err.Error(), directoryURL)
		assert.Equal(t, []string{directoryURL}, fetched)
	})

	t.Run("failed profile yields empty row and run continues", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: pages(map[string]string{
			directoryURL:                directoryHTML,
			"https://uni.edu/faculty/a": `<h2>Research Interests</h2><p>Climate policy.</p>`,
		}, nil)}

		results, err := newCrawler(fetcher, nil).Run(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.Equal(t, []interests.ExtractionResult{
			{ProfileURL: "https://uni.edu/faculty/a", ResearchInterests: "Climate policy."},
			{ProfileURL: "https://uni.edu/faculty/b", ResearchInterests: ""},
		}, results)
	})

	t.Run("falls back to sentences when no heading qualifies", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: pages(map[string]string{
			directoryURL:                `<a href="/persons/c">C</a>`,
			"https://uni.edu/persons/c": `<h2>About</h2><p>Joined 2019.</p><p>Her research covers fungi.</p>`,
		}, nil)}

		results, err := newCrawler(fetcher, nil).Run(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Her research covers fungi.", results[0].ResearchInterests)
	})

	t.Run("fetches profiles sequentially in discovery order", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{FetchFn: pages(map[string]string{
			directoryURL:                directoryHTML,
			"https://uni.edu/faculty/a": "<p>a</p>",
			"https://uni.edu/faculty/b": "<p>b</p>",
		}, &fetched)}

		_, err := newCrawler(fetcher, nil).Run(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{directoryURL, "https://uni.edu/faculty/a", "https://uni.edu/faculty/b"}, fetched)
	})

	t.Run("uses the configured base URL", func(t *testing.T) {
		t.Parallel()

		var gotBase string
		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{directoryURL: "<p></p>"}, nil)}, nil)
		c.BaseURL = "https://people.uni.edu/"
		c.Discoverer = &mock.LinkDiscoverer{
			DiscoverFn: func(_ interests.Document, baseURL string) []interests.CandidateLink {
				gotBase = baseURL
				return nil
			},
		}

		results, err := c.Run(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, "https://people.uni.edu/", gotBase)
	})

	t.Run("defaults the base URL to the directory site root", func(t *testing.T) {
		t.Parallel()

		var gotBase string
		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{directoryURL: "<p></p>"}, nil)}, nil)
		c.Discoverer = &mock.LinkDiscoverer{
			DiscoverFn: func(_ interests.Document, baseURL string) []interests.CandidateLink {
				gotBase = baseURL
				return nil
			},
		}

		_, err := c.Run(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.Equal(t, "https://uni.edu/", gotBase)
	})

	t.Run("logs skipped profiles", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{
			directoryURL: `<a href="/faculty/gone">Gone</a>`,
		}, nil)}, nil)
		c.Logger = slog.New(slog.NewTextHandler(&buf, nil))

		_, err := c.Run(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "profile skipped")
		assert.Contains(t, buf.String(), "url=https://uni.edu/faculty/gone")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: pages(map[string]string{
			directoryURL:                directoryHTML,
			"https://uni.edu/faculty/a": "<p>a</p>",
		}, nil)}

		var events []crawl.ProgressEvent
		_, err := newCrawler(fetcher, nil).Run(context.Background(), directoryURL, func(e crawl.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, crawl.ProgressCompleted, events[1].Type)
		assert.Equal(t, crawl.ProgressFailed, events[2].Type)
		assert.Equal(t, "https://uni.edu/faculty/b", events[2].URL)
		assert.Error(t, events[2].Error)
		assert.Equal(t, crawl.ProgressFinished, events[3].Type)
	})

	t.Run("cancellation aborts the run", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == directoryURL {
					return directoryHTML, nil
				}
				cancel()
				return "", ctx.Err()
			},
		}

		results, err := newCrawler(fetcher, nil).Run(ctx, directoryURL, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, results)
	})

	t.Run("unparseable profile counts as nothing found", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{
			directoryURL:                directoryHTML,
			"https://uni.edu/faculty/a": "x",
			"https://uni.edu/faculty/b": "y",
		}, nil)}, nil)
		c.Parser = &mock.Parser{
			ParseFn: func(pageURL, html string) (interests.Document, error) {
				if pageURL == directoryURL {
					return goquery.NewParser().Parse(pageURL, html)
				}
				return nil, errors.New("unreadable")
			},
		}

		results, err := c.Run(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.Equal(t, []interests.ExtractionResult{
			{ProfileURL: "https://uni.edu/faculty/a"},
			{ProfileURL: "https://uni.edu/faculty/b"},
		}, results)
	})
}

func TestCrawler_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes results and archives the run", func(t *testing.T) {
		t.Parallel()

		var written []interests.ExtractionResult
		writer := &mock.ResultWriter{
			WriteResultsFn: func(_ context.Context, results []interests.ExtractionResult) error {
				written = results
				return nil
			},
		}
		var archived *interests.Run
		var archivedResults []interests.ExtractionResult
		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{
			directoryURL:                directoryHTML,
			"https://uni.edu/faculty/a": `<h3>Interests</h3><p>Climate policy.</p>`,
		}, nil)}, writer)
		c.Archive = &mock.ResultArchive{
			CreateRunFn: func(_ context.Context, run *interests.Run, results []interests.ExtractionResult) error {
				run.ID = "run-1"
				archived = run
				archivedResults = results
				return nil
			},
		}

		run, err := c.Export(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.Equal(t, "run-1", run.ID)
		assert.Equal(t, 2, run.Count)
		assert.Equal(t, 1, run.Found)
		assert.Equal(t, directoryURL, run.DirectoryURL)
		assert.False(t, run.FinishedAt.Before(run.StartedAt))
		assert.Same(t, run, archived)
		assert.Equal(t, written, archivedResults)
		assert.Equal(t, []interests.ExtractionResult{
			{ProfileURL: "https://uni.edu/faculty/a", ResearchInterests: "Climate policy."},
			{ProfileURL: "https://uni.edu/faculty/b"},
		}, written)
	})

	t.Run("writes an empty result set", func(t *testing.T) {
		t.Parallel()

		called := false
		writer := &mock.ResultWriter{
			WriteResultsFn: func(_ context.Context, results []interests.ExtractionResult) error {
				called = true
				assert.Empty(t, results)
				return nil
			},
		}
		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{directoryURL: "<p>none</p>"}, nil)}, writer)

		run, err := c.Export(context.Background(), directoryURL, nil)

		require.NoError(t, err)
		assert.True(t, called)
		assert.Zero(t, run.Count)
	})

	t.Run("writes nothing when the directory fetch fails", func(t *testing.T) {
		t.Parallel()

		writer := &mock.ResultWriter{
			WriteResultsFn: func(context.Context, []interests.ExtractionResult) error {
				t.Fatal("writer must not be called")
				return nil
			},
		}
		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{}, nil)}, writer)

		_, err := c.Export(context.Background(), directoryURL, nil)

		require.Error(t, err)
		assert.Equal(t, interests.ETRANSPORT, interests.ErrorCode(err))
	})

	t.Run("surfaces writer failure and skips the archive", func(t *testing.T) {
		t.Parallel()

		writer := &mock.ResultWriter{
			WriteResultsFn: func(context.Context, []interests.ExtractionResult) error {
				return errors.New("disk full")
			},
		}
		c := newCrawler(&mock.Fetcher{FetchFn: pages(map[string]string{directoryURL: "<p></p>"}, nil)}, writer)
		c.Archive = &mock.ResultArchive{
			CreateRunFn: func(context.Context, *interests.Run, []interests.ExtractionResult) error {
				t.Fatal("archive must not be called")
				return nil
			},
		}

		_, err := c.Export(context.Background(), directoryURL, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
