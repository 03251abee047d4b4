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

func TestNewsRepository_Create(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	item := &domain.NewsItem{Source: "apod", ExternalID: "apod_2024-05-01", Title: "Pillars",
		PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	created, err := repos.News.Create(ctx, item)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.CategoryOther, item.Category)

	t.Run("duplicate identity is not stored", func(t *testing.T) {
		dup := &domain.NewsItem{Source: "apod", ExternalID: "apod_2024-05-01", Title: "Pillars again",
			PublishedAt: time.Now()}
		created, err := repos.News.Create(ctx, dup)
		require.NoError(t, err)
		assert.False(t, created)
		count, err := repos.News.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same external id from another source", func(t *testing.T) {
		other := &domain.NewsItem{Source: "webb", ExternalID: "apod_2024-05-01", Title: "x", PublishedAt: time.Now()}
		created, err := repos.News.Create(ctx, other)
		require.NoError(t, err)
		assert.True(t, created)
	})

	exists, err := repos.News.Exists(ctx, "apod", "apod_2024-05-01")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repos.News.Exists(ctx, "apod", "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewsRepository_Queries(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	items := []*domain.NewsItem{
		{Source: "webb", ExternalID: "1", Title: "old galaxy", Category: "galaxies",
			PublishedAt: base.Add(-72 * time.Hour), CreatedAt: base.Add(-10 * 24 * time.Hour)},
		{Source: "webb", ExternalID: "2", Title: "new exoplanet", Category: "exoplanets",
			PublishedAt: base, CreatedAt: base.Add(-time.Hour)},
		{Source: "donki", ExternalID: "3", Title: "flare", Category: "space_weather",
			PublishedAt: base.Add(-time.Hour), CreatedAt: base.Add(-2 * time.Hour)},
	}
	for _, item := range items {
		_, err := repos.News.Create(ctx, item)
		require.NoError(t, err)
	}

	t.Run("list newest published first", func(t *testing.T) {
		res, err := repos.News.List(ctx, domain.NewsFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, "new exoplanet", res[0].Title)
		assert.Equal(t, "flare", res[1].Title)
		assert.Equal(t, "old galaxy", res[2].Title)
	})

	t.Run("list filtered", func(t *testing.T) {
		res, err := repos.News.List(ctx, domain.NewsFilter{Source: "webb", Category: "galaxies"})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "1", res[0].ExternalID)
	})

	t.Run("created since window", func(t *testing.T) {
		res, err := repos.News.CreatedSince(ctx, base.Add(-7*24*time.Hour), 100)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "new exoplanet", res[0].Title)
	})

	t.Run("get by ids keeps order and skips unknown", func(t *testing.T) {
		res, err := repos.News.GetByIDs(ctx, []string{items[2].ID, "enrichment:launch:x", items[0].ID})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, items[2].ID, res[0].ID)
		assert.Equal(t, items[0].ID, res[1].ID)

		res, err = repos.News.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("get", func(t *testing.T) {
		item, err := repos.News.Get(ctx, items[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "exoplanets", item.Category)
		assert.True(t, item.PublishedAt.Equal(base))

		_, err = repos.News.Get(ctx, "nope")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("embedding ref", func(t *testing.T) {
		require.NoError(t, repos.News.SetEmbeddingRef(ctx, items[0].ID, items[0].ID))
		item, err := repos.News.Get(ctx, items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, items[0].ID, item.EmbeddingRef)
	})

	t.Run("counts", func(t *testing.T) {
		byCat, err := repos.News.CountByCategory(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"galaxies": 1, "exoplanets": 1, "space_weather": 1}, byCat)
	})
}
