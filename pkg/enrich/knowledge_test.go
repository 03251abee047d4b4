package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/enrich/mocks"
	"github.com/umputun/spacescope/pkg/repository"
)

func setupRecords(t *testing.T) *repository.EnrichmentRepository {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos.Enrichment
}

func okIndex() *mocks.IndexMock {
	return &mocks.IndexMock{
		AddFunc:    func(ctx context.Context, docs ...domain.Document) error { return nil },
		DeleteFunc: func(ctx context.Context, ids ...string) (int, error) { return len(ids), nil },
	}
}

func TestKnowledgeStore_PutAndRead(t *testing.T) {
	ctx := context.Background()
	index := okIndex()
	ks := NewKnowledgeStore(setupRecords(t), index, 0)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ks.now = func() time.Time { return now }

	fresh, err := ks.HasFresh(ctx, domain.EntityLaunch, "l1")
	require.NoError(t, err)
	assert.False(t, fresh)

	rec, err := ks.Put(ctx, domain.EntityLaunch, "l1", "Artemis II", domain.ContentMissionObjectives,
		map[string]any{"primary_goal": "first version"}, []string{"https://nasa.gov"})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, now.Add(7*24*time.Hour), rec.ExpiresAt)

	now = now.Add(time.Minute)
	_, err = ks.Put(ctx, domain.EntityLaunch, "l1", "Artemis II", domain.ContentMissionObjectives,
		map[string]any{"primary_goal": "second version"}, nil)
	require.NoError(t, err)
	_, err = ks.Put(ctx, domain.EntityLaunch, "l1", "Artemis II", domain.ContentTechnicalDetails,
		map[string]any{"vehicle": map[string]any{"name": "SLS"}}, nil)
	require.NoError(t, err)

	fresh, err = ks.HasFresh(ctx, domain.EntityLaunch, "l1")
	require.NoError(t, err)
	assert.True(t, fresh)

	got, err := ks.GetFresh(ctx, domain.EntityLaunch, "l1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second version", got[domain.ContentMissionObjectives]["primary_goal"], "newest record wins")

	calls := index.AddCalls()
	require.Len(t, calls, 3)
	doc := calls[0].Docs[0]
	assert.Equal(t, "launch:l1:mission_objectives", doc.ID)
	assert.Equal(t, map[string]string{"type": "enrichment", "entity_type": "launch", "entity_id": "l1",
		"content_type": "mission_objectives", "entity_name": "Artemis II"}, doc.Metadata)
	var mirrored map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.Text), &mirrored))
	assert.Equal(t, "first version", mirrored["primary_goal"])

	// past expiry everything reads as absent
	now = now.Add(8 * 24 * time.Hour)
	fresh, err = ks.HasFresh(ctx, domain.EntityLaunch, "l1")
	require.NoError(t, err)
	assert.False(t, fresh)
	got, err = ks.GetFresh(ctx, domain.EntityLaunch, "l1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKnowledgeStore_IndexFailureSwallowed(t *testing.T) {
	ctx := context.Background()
	index := &mocks.IndexMock{AddFunc: func(ctx context.Context, docs ...domain.Document) error { return errors.New("index down") }}
	ks := NewKnowledgeStore(setupRecords(t), index, time.Hour)

	rec, err := ks.Put(ctx, domain.EntityLaunch, "l2", "Crew-12", domain.ContentCrewProfiles, map[string]any{"crew": []any{}}, nil)
	require.NoError(t, err)
	require.NotNil(t, rec)

	got, err := ks.GetFresh(ctx, domain.EntityLaunch, "l2")
	require.NoError(t, err)
	assert.Contains(t, got, domain.ContentCrewProfiles)
}

func TestKnowledgeStore_RecordFailurePropagates(t *testing.T) {
	records := &mocks.RecordStoreMock{CreateFunc: func(ctx context.Context, rec *domain.EnrichedContent) error {
		return errors.New("disk full")
	}}
	index := okIndex()
	ks := NewKnowledgeStore(records, index, time.Hour)

	_, err := ks.Put(context.Background(), domain.EntityLaunch, "l3", "X", domain.ContentTechnicalDetails, map[string]any{"a": 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, index.AddCalls(), "nothing mirrored when the record write fails")
}

func TestKnowledgeStore_Purge(t *testing.T) {
	ctx := context.Background()
	index := okIndex()
	ks := NewKnowledgeStore(setupRecords(t), index, time.Hour)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ks.now = func() time.Time { return now }

	_, err := ks.Put(ctx, domain.EntityLaunch, "old", "Old", domain.ContentHistoricalContext, map[string]any{"a": "b"}, nil)
	require.NoError(t, err)
	now = now.Add(30 * time.Minute)
	_, err = ks.Put(ctx, domain.EntityLaunch, "new", "New", domain.ContentHistoricalContext, map[string]any{"a": "b"}, nil)
	require.NoError(t, err)

	n, err := ks.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, index.DeleteCalls())

	now = now.Add(45 * time.Minute)
	n, err = ks.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, index.DeleteCalls(), 1)
	assert.Equal(t, []string{"launch:old:historical_context"}, index.DeleteCalls()[0].Ids)
}
