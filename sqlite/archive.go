package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/interests"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ interests.ResultArchive = (*ResultArchive)(nil)

// timeFormat keeps a fixed width so stored timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// ResultArchive implements interests.ResultArchive using SQLite.
type ResultArchive struct {
	db *DB
}

// NewResultArchive creates a new ResultArchive.
func NewResultArchive(db *DB) *ResultArchive {
	return &ResultArchive{db: db}
}

// CreateRun stores run and its results in a single transaction.
func (s *ResultArchive) CreateRun(ctx context.Context, run *interests.Run, results []interests.ExtractionResult) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.Count = len(results)
	run.Found = 0
	for _, r := range results {
		if r.Found() {
			run.Found++
		}
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = run.StartedAt
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	previous, err := previousHashes(ctx, tx, run)
	if err != nil {
		return err
	}

	hashes := make([]string, len(results))
	run.Changed = 0
	for i, r := range results {
		hashes[i] = hashText(r.ResearchInterests)
		if r.Found() && !previous[r.ProfileURL][hashes[i]] {
			run.Changed++
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, directory_url, count, found, changed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.DirectoryURL, run.Count, run.Found, run.Changed,
		run.StartedAt.UTC().Format(timeFormat), run.FinishedAt.UTC().Format(timeFormat)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, position, profile_url, research_interests, interests_hash)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.ExecContext(ctx, run.ID, i, r.ProfileURL, r.ResearchInterests, hashes[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// previousHashes returns the interests hashes of the latest run of the same
// directory that started no later than run, keyed by profile URL. A profile
// listed more than once maps to every hash it had.
func previousHashes(ctx context.Context, tx *sql.Tx, run *interests.Run) (map[string]map[string]bool, error) {
	var prevID string
	err := tx.QueryRowContext(ctx, `
		SELECT id
		FROM runs
		WHERE directory_url = ? AND started_at <= ?
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`, run.DirectoryURL, run.StartedAt.UTC().Format(timeFormat)).Scan(&prevID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT profile_url, interests_hash
		FROM results
		WHERE run_id = ? AND interests_hash != ''
	`, prevID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hashes := make(map[string]map[string]bool)
	for rows.Next() {
		var profileURL, hash string
		if err := rows.Scan(&profileURL, &hash); err != nil {
			return nil, err
		}
		if hashes[profileURL] == nil {
			hashes[profileURL] = make(map[string]bool)
		}
		hashes[profileURL][hash] = true
	}

	return hashes, rows.Err()
}

// FindRunByID retrieves a run by ID.
func (s *ResultArchive) FindRunByID(ctx context.Context, id string) (*interests.Run, error) {
	run, err := scanRun(s.db.QueryRowContext(ctx, `
		SELECT id, directory_url, count, found, changed, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, interests.Errorf(interests.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *ResultArchive) FindRuns(ctx context.Context, filter interests.RunFilter) ([]*interests.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, directory_url, count, found, changed, started_at, finished_at FROM runs WHERE 1=1")

	if filter.DirectoryURL != nil {
		query.WriteString(" AND directory_url = ?")
		args = append(args, *filter.DirectoryURL)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*interests.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// FindResults retrieves the results of a run in discovery order.
func (s *ResultArchive) FindResults(ctx context.Context, runID string) ([]interests.ExtractionResult, error) {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT profile_url, research_interests
		FROM results
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []interests.ExtractionResult{}
	for rows.Next() {
		var r interests.ExtractionResult
		if err := rows.Scan(&r.ProfileURL, &r.ResearchInterests); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*interests.Run, error) {
	var run interests.Run
	var startedAt, finishedAt string

	if err := row.Scan(&run.ID, &run.DirectoryURL, &run.Count, &run.Found, &run.Changed, &startedAt, &finishedAt); err != nil {
		return nil, err
	}

	var err error
	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &run, nil
}
