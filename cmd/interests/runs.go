package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/interests"
	"github.com/fwojciec/interests/fs"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		results, err := deps.Archive.FindResults(deps.Ctx, c.ID)
		if err != nil {
			return err
		}
		return fs.WriteCSV(deps.Stdout, results)
	}

	filter := interests.RunFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.DirectoryURL = &c.URL
	}

	runs, err := deps.Archive.FindRuns(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'interests --db PATH' to archive one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d/%d  %d changed  %s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Found, r.Count, r.Changed, r.DirectoryURL)
	}

	return nil
}
