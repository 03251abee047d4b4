package main

import (
	"context"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/repository"
	"github.com/umputun/spacescope/pkg/semantic"
)

// statusAdapter exposes store health to the server status endpoint
type statusAdapter struct {
	repos *repository.Repositories
	index *semantic.Store
}

// Ping checks the database connection
func (a *statusAdapter) Ping(ctx context.Context) error {
	return a.repos.Ping(ctx)
}

// JobRuns returns the last run of every background job
func (a *statusAdapter) JobRuns(ctx context.Context) ([]domain.JobRun, error) {
	return a.repos.JobRun.List(ctx)
}

// IndexedDocuments returns the size of the semantic index
func (a *statusAdapter) IndexedDocuments(ctx context.Context) (int, error) {
	return a.index.Count(ctx)
}
