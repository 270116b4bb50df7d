package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Status represents the lifecycle of a recorded build run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrRunNotFound indicates no build run exists for the given identifier.
var ErrRunNotFound = errors.New("build run not found")

// Run is one recorded build attempt. Outcome fields stay null until the
// run settles.
type Run struct {
	ID               int64
	RunID            string
	Status           Status
	Forced           bool
	BaseURL          string
	ArtifactPath     string
	RowCount         *int64
	ArtifactBytes    *int64
	PeopleMatched    *int64
	PeopleUnresolved *int64
	ErrorMessage     *string
	StartedAt        time.Time
	FinishedAt       *time.Time
}

// Duration reports how long the run took. Zero while still running.
func (r *Run) Duration() time.Duration {
	if r == nil || r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Summary captures the measurable outcome of a successful build.
type Summary struct {
	RowCount         int64
	ArtifactBytes    int64
	PeopleMatched    int64
	PeopleUnresolved int64
}

const runColumns = "id, run_id, status, forced, base_url, artifact_path, row_count, artifact_bytes, people_matched, people_unresolved, error_message, started_at, finished_at"

// Begin records a new run in the running state.
func (s *Store) Begin(ctx context.Context, runID string, forced bool, baseURL, artifactPath string) (*Run, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO build_runs (run_id, status, forced, base_url, artifact_path, started_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		runID, StatusRunning, boolToInt(forced), baseURL, artifactPath, now)
	if err != nil {
		return nil, fmt.Errorf("insert build run: %w", err)
	}
	return s.GetByRunID(ctx, runID)
}

// Complete marks a run succeeded and attaches its summary.
func (s *Store) Complete(ctx context.Context, runID string, summary Summary) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE build_runs
         SET status = ?, row_count = ?, artifact_bytes = ?, people_matched = ?, people_unresolved = ?, finished_at = ?
         WHERE run_id = ?`,
		StatusSucceeded, summary.RowCount, summary.ArtifactBytes, summary.PeopleMatched, summary.PeopleUnresolved, now, runID)
	if err != nil {
		return fmt.Errorf("complete build run: %w", err)
	}
	return requireRowAffected(res, runID)
}

// Fail marks a run failed and records the causing error.
func (s *Store) Fail(ctx context.Context, runID string, cause error) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	message := "unknown error"
	if cause != nil {
		message = cause.Error()
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE build_runs SET status = ?, error_message = ?, finished_at = ? WHERE run_id = ?`,
		StatusFailed, message, now, runID)
	if err != nil {
		return fmt.Errorf("fail build run: %w", err)
	}
	return requireRowAffected(res, runID)
}

// GetByRunID returns the run with the given identifier.
func (s *Store) GetByRunID(ctx context.Context, runID string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+runColumns+" FROM build_runs WHERE run_id = ?", runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("get build run: %w", err)
	}
	return run, nil
}

// Recent returns the latest runs, newest first. A non-positive limit
// returns up to 20 runs.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM build_runs ORDER BY started_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list build runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan build run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate build runs: %w", err)
	}
	return runs, nil
}

// LastSuccessful returns the most recent succeeded run, or nil when no
// build has succeeded yet.
func (s *Store) LastSuccessful(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+runColumns+" FROM build_runs WHERE status = ? ORDER BY started_at DESC, id DESC LIMIT 1",
		StatusSucceeded)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last successful run: %w", err)
	}
	return run, nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		id               int64
		runID            string
		statusStr        string
		forced           int64
		baseURL          string
		artifactPath     string
		rowCount         sql.NullInt64
		artifactBytes    sql.NullInt64
		peopleMatched    sql.NullInt64
		peopleUnresolved sql.NullInt64
		errorMessage     sql.NullString
		startedRaw       string
		finishedRaw      sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&runID,
		&statusStr,
		&forced,
		&baseURL,
		&artifactPath,
		&rowCount,
		&artifactBytes,
		&peopleMatched,
		&peopleUnresolved,
		&errorMessage,
		&startedRaw,
		&finishedRaw,
	); err != nil {
		return nil, err
	}

	startedAt, err := time.Parse(time.RFC3339Nano, startedRaw)
	if err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}

	run := &Run{
		ID:           id,
		RunID:        runID,
		Status:       Status(statusStr),
		Forced:       forced != 0,
		BaseURL:      baseURL,
		ArtifactPath: artifactPath,
		StartedAt:    startedAt,
	}
	if rowCount.Valid {
		run.RowCount = &rowCount.Int64
	}
	if artifactBytes.Valid {
		run.ArtifactBytes = &artifactBytes.Int64
	}
	if peopleMatched.Valid {
		run.PeopleMatched = &peopleMatched.Int64
	}
	if peopleUnresolved.Valid {
		run.PeopleUnresolved = &peopleUnresolved.Int64
	}
	if errorMessage.Valid {
		run.ErrorMessage = &errorMessage.String
	}
	if finishedRaw.Valid {
		finishedAt, err := time.Parse(time.RFC3339Nano, finishedRaw.String)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		run.FinishedAt = &finishedAt
	}
	return run, nil
}

func requireRowAffected(res sql.Result, runID string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
