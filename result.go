package interests

import (
	"context"
	"time"
)

// ResultWriter serializes a completed set of extraction results.
type ResultWriter interface {
	// WriteResults replaces any previous output with results.
	WriteResults(ctx context.Context, results []ExtractionResult) error
}

// Run describes one completed pipeline run kept in the archive.
type Run struct {
	ID           string    `json:"id"`
	DirectoryURL string    `json:"directoryUrl"`
	Count        int       `json:"count"`
	Found        int       `json:"found"`
	Changed      int       `json:"changed"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.DirectoryURL == "" {
		return Errorf(EINVALID, "run directory URL required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	DirectoryURL *string `json:"directoryUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ResultArchive keeps the results of past runs.
type ResultArchive interface {
	// CreateRun stores a run and its results. ID, Count, Found and Changed
	// are set by the archive. Changed counts results with interests that
	// the previous run of the same directory did not have for that profile.
	CreateRun(ctx context.Context, run *Run, results []ExtractionResult) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindResults retrieves the results of a run in discovery order.
	// Returns ENOTFOUND if the run does not exist.
	FindResults(ctx context.Context, runID string) ([]ExtractionResult, error)
}
