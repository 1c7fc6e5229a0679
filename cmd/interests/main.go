package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/interests"
	"github.com/fwojciec/interests/crawl"
	"github.com/fwojciec/interests/extract"
	"github.com/fwojciec/interests/fs"
	"github.com/fwojciec/interests/goquery"
	ihttp "github.com/fwojciec/interests/http"
	"github.com/fwojciec/interests/rod"
	"github.com/fwojciec/interests/sentences"
	islog "github.com/fwojciec/interests/slog"
	"github.com/fwojciec/interests/sqlite"
)

// DefaultDirectoryURL is scraped when no --url is given.
const DefaultDirectoryURL = "https://www.roehampton.ac.uk/research/research-and-knowledge-exchange-centres/research-centre-for-inclusive-humanities/staff/"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database opened when --db is set.
	DB *sqlite.DB

	// Fetcher overrides the transport. Used by end-to-end tests.
	Fetcher interests.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("interests"),
		kong.Description("Extract research interests from a faculty directory into a CSV file"),
		kong.Vars{"default_url": DefaultDirectoryURL},
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Kong prints help from a hook and, since Exit is a no-op, then keeps
	// parsing. Stop there instead of reporting the leftover parse error.
	if slices.ContainsFunc(args, isHelpFlag) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	switch command(kongCtx) {
	case "scrape":
		closeFetcher, err := m.wireScrape(&cli.Scrape, deps)
		if err != nil {
			return err
		}
		defer closeFetcher()
	case "runs":
		if err := m.openDB(cli.Runs.DB, deps); err != nil {
			return err
		}
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

func isHelpFlag(arg string) bool {
	return arg == "--help" || arg == "-h"
}

// command returns the name of the selected top-level command.
func command(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// wireScrape builds the pipeline for the scrape command. The returned func
// releases the transport.
func (m *Main) wireScrape(cmd *ScrapeCmd, deps *Dependencies) (func(), error) {
	fetcher := m.Fetcher
	if fetcher == nil {
		if cmd.Browser {
			rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cmd.Timeout))
			if err != nil {
				fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return nil, fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = ihttp.NewFetcher(ihttp.WithTimeout(cmd.Timeout))
		}
	}
	if cmd.Rate > 0 {
		fetcher = crawl.NewLimitedFetcher(fetcher, crawl.NewDomainLimiter(cmd.Rate))
	}
	fetcher = islog.NewLoggingFetcher(fetcher, deps.Logger)

	segmenter, err := sentences.NewSegmenter()
	if err != nil {
		_ = fetcher.Close()
		return nil, err
	}

	var discoverOpts []extract.DiscovererOption
	if cmd.StrictMarkers {
		discoverOpts = append(discoverOpts, extract.FilterAbsolute())
	}
	discoverer := extract.NewLinkDiscoverer(interests.NewMarkerClassifier(cmd.Markers...), discoverOpts...)

	extractor := interests.NewProfileExtractor(
		islog.NewLoggingStrategy(extract.NewHeadingExtractor(), deps.Logger),
		islog.NewLoggingStrategy(extract.NewSentenceExtractor(segmenter), deps.Logger),
	)

	deps.Crawler = &crawl.Crawler{
		Fetcher:    fetcher,
		Parser:     goquery.NewParser(),
		Discoverer: islog.NewLoggingDiscoverer(discoverer, deps.Logger),
		Extractor:  extractor,
		Writer:     fs.NewCSVWriter(cmd.Output),
		BaseURL:    cmd.BaseURL,
		Logger:     deps.Logger,
	}

	if cmd.DB != "" {
		if err := m.openDB(cmd.DB, deps); err != nil {
			_ = fetcher.Close()
			return nil, err
		}
		deps.Crawler.Archive = deps.Archive
	}

	return func() { _ = fetcher.Close() }, nil
}

func (m *Main) openDB(path string, deps *Dependencies) error {
	if path == "" {
		return interests.Errorf(interests.EINVALID, "database path required (set --db or INTERESTS_DB)")
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Archive = sqlite.NewResultArchive(m.DB)
	return nil
}
