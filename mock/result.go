package mock

import (
	"context"

	"github.com/fwojciec/interests"
)

var _ interests.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of interests.ResultWriter.
type ResultWriter struct {
	WriteResultsFn func(ctx context.Context, results []interests.ExtractionResult) error
}

func (w *ResultWriter) WriteResults(ctx context.Context, results []interests.ExtractionResult) error {
	return w.WriteResultsFn(ctx, results)
}

var _ interests.ResultArchive = (*ResultArchive)(nil)

// ResultArchive is a mock implementation of interests.ResultArchive.
type ResultArchive struct {
	CreateRunFn   func(ctx context.Context, run *interests.Run, results []interests.ExtractionResult) error
	FindRunByIDFn func(ctx context.Context, id string) (*interests.Run, error)
	FindRunsFn    func(ctx context.Context, filter interests.RunFilter) ([]*interests.Run, error)
	FindResultsFn func(ctx context.Context, runID string) ([]interests.ExtractionResult, error)
}

func (a *ResultArchive) CreateRun(ctx context.Context, run *interests.Run, results []interests.ExtractionResult) error {
	return a.CreateRunFn(ctx, run, results)
}

func (a *ResultArchive) FindRunByID(ctx context.Context, id string) (*interests.Run, error) {
	return a.FindRunByIDFn(ctx, id)
}

func (a *ResultArchive) FindRuns(ctx context.Context, filter interests.RunFilter) ([]*interests.Run, error) {
	return a.FindRunsFn(ctx, filter)
}

func (a *ResultArchive) FindResults(ctx context.Context, runID string) ([]interests.ExtractionResult, error) {
	return a.FindResultsFn(ctx, runID)
}
