package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/domain"
)

func TestEnrichmentRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	expired := &domain.EnrichedContent{EntityType: "launch", EntityID: "L1", ContentType: domain.ContentTechnicalDetails,
		Content: map[string]any{"vehicle": "old"}, CreatedAt: now.Add(-8 * 24 * time.Hour)}
	require.NoError(t, repos.Enrichment.Create(ctx, expired))
	assert.True(t, expired.ExpiresAt.Equal(expired.CreatedAt.Add(7*24*time.Hour)), "default ttl applied")

	t.Run("expired record is absent", func(t *testing.T) {
		fresh, err := repos.Enrichment.HasFresh(ctx, "launch", "L1", now)
		require.NoError(t, err)
		assert.False(t, fresh)
		recs, err := repos.Enrichment.ListFresh(ctx, "launch", "L1", now)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	first := &domain.EnrichedContent{EntityType: "launch", EntityID: "L1", ContentType: domain.ContentMissionObjectives,
		Content: map[string]any{"primary_goal": "first"}, Sources: []string{"https://a"},
		CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour)}
	second := &domain.EnrichedContent{EntityType: "launch", EntityID: "L1", ContentType: domain.ContentMissionObjectives,
		Content: map[string]any{"primary_goal": "second"}, CreatedAt: now.Add(-time.Minute), ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repos.Enrichment.Create(ctx, first))
	require.NoError(t, repos.Enrichment.Create(ctx, second))

	t.Run("fresh records oldest first", func(t *testing.T) {
		fresh, err := repos.Enrichment.HasFresh(ctx, "launch", "L1", now)
		require.NoError(t, err)
		assert.True(t, fresh)

		recs, err := repos.Enrichment.ListFresh(ctx, "launch", "L1", now)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "first", recs[0].Content["primary_goal"])
		assert.Equal(t, "second", recs[1].Content["primary_goal"])
		assert.Equal(t, []string{"https://a"}, recs[0].Sources)
		assert.Empty(t, recs[1].Sources)
	})

	t.Run("other entity", func(t *testing.T) {
		fresh, err := repos.Enrichment.HasFresh(ctx, "launch", "L2", now)
		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("expired document ids", func(t *testing.T) {
		ids, err := repos.Enrichment.ExpiredDocumentIDs(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"launch:L1:technical_details"}, ids)

		ids, err = repos.Enrichment.ExpiredDocumentIDs(ctx, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"launch:L1:technical_details", "launch:L1:mission_objectives"}, ids)
	})
}
