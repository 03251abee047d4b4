package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/domain"
)

func TestInsightRepository_SaveAnalysis(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	insights := []domain.Insight{
		{ID: "i1", Type: domain.InsightConnection, Title: "low", ConfidenceScore: 0.55, Category: "stars", GeneratedAt: now},
		{ID: "i2", Type: domain.InsightTrend, Title: "high", ConfidenceScore: 0.9, Category: "galaxies",
			RelatedNewsIDs: []string{"n1", "n2"}, GeneratedAt: now},
		{ID: "i3", Type: domain.InsightGap, Title: "mid", ConfidenceScore: 0.75, Category: "stars", GeneratedAt: now.Add(time.Minute)},
	}
	alerts := []domain.Alert{
		{ID: "a2", InsightID: "i2", Priority: domain.PriorityHigh, CreatedAt: now},
		{ID: "a3", InsightID: "i3", Priority: domain.PriorityMedium, CreatedAt: now.Add(time.Minute)},
	}
	require.NoError(t, repos.Insight.SaveAnalysis(ctx, insights, alerts))

	t.Run("list ordered by confidence", func(t *testing.T) {
		res, err := repos.Insight.List(ctx, domain.InsightFilter{Limit: 20})
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, []string{"i2", "i3", "i1"}, []string{res[0].ID, res[1].ID, res[2].ID})
		assert.Equal(t, []string{"n1", "n2"}, res[0].RelatedNewsIDs)
		assert.Empty(t, res[2].RelatedNewsIDs)
	})

	t.Run("list filtered", func(t *testing.T) {
		res, err := repos.Insight.List(ctx, domain.InsightFilter{Category: "stars", Type: domain.InsightGap})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "i3", res[0].ID)
	})

	t.Run("recent confident", func(t *testing.T) {
		res, err := repos.Insight.RecentConfident(ctx, 0.7, 5)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "i3", res[0].ID)
	})

	t.Run("get", func(t *testing.T) {
		res, err := repos.Insight.Get(ctx, "i2")
		require.NoError(t, err)
		assert.Equal(t, domain.InsightTrend, res.Type)
		_, err = repos.Insight.Get(ctx, "missing")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("counts", func(t *testing.T) {
		count, err := repos.Insight.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		byType, err := repos.Insight.CountByType(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, byType[domain.InsightTrend])
	})

	t.Run("alerts and mark seen", func(t *testing.T) {
		res, err := repos.Insight.Alerts(ctx, true, 20)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "a3", res[0].ID)
		require.NotNil(t, res[0].Insight)
		assert.Equal(t, "i3", res[0].Insight.ID)
		assert.Equal(t, "mid", res[0].Insight.Title)

		found, err := repos.Insight.MarkAlertSeen(ctx, "a3")
		require.NoError(t, err)
		assert.True(t, found)
		found, err = repos.Insight.MarkAlertSeen(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)

		unread, err := repos.Insight.CountUnreadAlerts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, unread)

		all, err := repos.Insight.Alerts(ctx, false, 20)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestInsightRepository_SaveAnalysisRollback(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	insights := []domain.Insight{
		{ID: "ok", Type: domain.InsightTrend, Title: "fine", ConfidenceScore: 0.8, GeneratedAt: time.Now()},
		{ID: "bad", Type: domain.InsightTrend, Title: "out of range", ConfidenceScore: 1.5, GeneratedAt: time.Now()},
	}
	err := repos.Insight.SaveAnalysis(ctx, insights, []domain.Alert{{ID: "a", InsightID: "ok",
		Priority: domain.PriorityMedium, CreatedAt: time.Now()}})
	require.Error(t, err)

	count, err := repos.Insight.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "no insight of a failed run is kept")
	unread, err := repos.Insight.CountUnreadAlerts(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
