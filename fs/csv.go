// Package fs provides file-based output for extraction results.
package fs

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/interests"
)

// CSVHeader is the header row of the results file.
var CSVHeader = []string{"Profile URL", "Research Interests"}

// Ensure CSVWriter implements interests.ResultWriter at compile time.
var _ interests.ResultWriter = (*CSVWriter)(nil)

// CSVWriter writes results as a CSV file with atomic replace semantics.
// Rows are written to path.tmp and renamed over path once complete, so a
// failed write never leaves a truncated file behind.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter targeting path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the output file path.
func (w *CSVWriter) Path() string {
	return w.path
}

func (w *CSVWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteResults replaces the output file with a header row followed by one
// row per result, in order.
func (w *CSVWriter) WriteResults(ctx context.Context, results []interests.ExtractionResult) error {
	if w.path == "" {
		return interests.Errorf(interests.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := w.writeTemp(results); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}
	return nil
}

func (w *CSVWriter) writeTemp(results []interests.ExtractionResult) error {
	f, err := os.Create(w.tempPath())
	if err != nil {
		return err
	}
	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes the header row and one row per result to out.
func WriteCSV(out io.Writer, results []interests.ExtractionResult) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.ProfileURL, r.ResearchInterests}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
