package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/spacescope/pkg/domain"
)

// JobRunRepository keeps the last outcome of each background job
type JobRunRepository struct {
	db *sqlx.DB
}

// NewJobRunRepository creates a new job run repository
func NewJobRunRepository(db *sqlx.DB) *JobRunRepository {
	return &JobRunRepository{db: db}
}

// Record stores the outcome of a job, replacing the previous one
func (r *JobRunRepository) Record(ctx context.Context, name, summary string, finishedAt time.Time) error {
	query := `
		INSERT INTO job_runs (name, finished_at, summary) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET finished_at = excluded.finished_at, summary = excluded.summary
	`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, name, utc(finishedAt), summary)
		return err
	})
	if err != nil {
		return fmt.Errorf("record job run: %w", err)
	}
	return nil
}

// List returns the last outcome of every job that ran
func (r *JobRunRepository) List(ctx context.Context) ([]domain.JobRun, error) {
	var rows []struct {
		Name       string    `db:"name"`
		FinishedAt time.Time `db:"finished_at"`
		Summary    string    `db:"summary"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT name, finished_at, summary FROM job_runs ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list job runs: %w", err)
	}
	res := make([]domain.JobRun, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.JobRun{Name: row.Name, FinishedAt: row.FinishedAt, Summary: row.Summary})
	}
	return res, nil
}
