package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/interests"
	"github.com/fwojciec/interests/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Crawler *crawl.Crawler
	Archive interests.ResultArchive
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every fetch and extraction step"`

	Scrape ScrapeCmd `cmd:"" default:"withargs" help:"Scrape a directory page and its profiles (default)"`
	Runs   RunsCmd   `cmd:"" help:"List archived runs, or print the results of one run as CSV"`
}

// ScrapeCmd is the "scrape" subcommand. It also runs when no command is given.
type ScrapeCmd struct {
	URL           string        `short:"u" default:"${default_url}" env:"INTERESTS_URL" help:"Directory page listing the profiles"`
	Output        string        `short:"o" default:"faculty_research_interests.csv" env:"INTERESTS_OUTPUT" help:"CSV file to write"`
	BaseURL       string        `name:"base-url" help:"Prefix for relative profile links (default: the directory's site root)"`
	Markers       []string      `short:"m" name:"marker" help:"Substring marking a profile link (repeatable)"`
	StrictMarkers bool          `name:"strict-markers" help:"Require markers on absolute links too"`
	Timeout       time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate          float64       `default:"0" help:"Requests per second per host (0 means unlimited)"`
	Browser       bool          `help:"Render pages in headless Chrome"`
	DB            string        `env:"INTERESTS_DB" help:"SQLite database to archive the run in"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	ID    string `arg:"" optional:"" help:"Run ID whose results to print"`
	DB    string `env:"INTERESTS_DB" help:"SQLite database holding archived runs"`
	URL   string `name:"url" help:"Only list runs of this directory URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of runs to list"`
}
