package main

import (
	"fmt"

	"github.com/fwojciec/interests/crawl"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d profile links.\n", e.Total)
		case crawl.ProgressCompleted, crawl.ProgressFailed:
			deps.Logger.Debug("progress", "completed", e.Completed, "total", e.Total)
		}
	}

	run, err := deps.Crawler.Export(deps.Ctx, c.URL, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Data saved to %s! (%d of %d profiles with research interests)\n", c.Output, run.Found, run.Count)
	if run.ID != "" {
		fmt.Fprintf(deps.Stdout, "Archived run %s\n", run.ID)
		fmt.Fprintf(deps.Stdout, "%d profiles with new or changed interests since the previous run\n", run.Changed)
	}

	return nil
}
