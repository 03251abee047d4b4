package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, repos.Ping(ctx))

	item := &domain.NewsItem{Source: "webb", ExternalID: "2024-101", Title: "Webb spots carbon dioxide",
		Summary: "exoplanet atmosphere", Category: "exoplanets", PublishedAt: time.Now().Add(-time.Hour)}
	created, err := repos.News.Create(ctx, item)
	require.NoError(t, err)
	require.True(t, created)

	insight := domain.Insight{ID: "ins-1", Type: domain.InsightTrend, Title: "More CO2 detections",
		ConfidenceScore: 0.9, RelatedNewsIDs: []string{item.ID}, Category: "exoplanets", GeneratedAt: time.Now()}
	alert := domain.Alert{ID: "al-1", InsightID: insight.ID, Priority: domain.PriorityHigh, CreatedAt: time.Now()}
	require.NoError(t, repos.Insight.SaveAnalysis(ctx, []domain.Insight{insight}, []domain.Alert{alert}))

	alerts, err := repos.Insight.Alerts(ctx, true, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.NotNil(t, alerts[0].Insight)
	assert.Equal(t, []string{item.ID}, alerts[0].Insight.RelatedNewsIDs)

	require.NoError(t, repos.JobRun.Record(ctx, "collect", `{"stored":1}`, time.Now()))
	runs, err := repos.JobRun.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "collect", runs[0].Name)
}

func TestNewRepositories_InvalidDSN(t *testing.T) {
	_, err := NewRepositories(context.Background(), Config{DSN: "file:/nonexistent/dir/db.sqlite?mode=ro"})
	assert.Error(t, err)
}

func TestRepositories_Close(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	assert.NoError(t, repos.Close())
	assert.NoError(t, repos.Close())
}

func TestChatRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		conv := &domain.ChatConversation{UserQuery: fmt.Sprintf("q%d", i), AssistantResponse: "a",
			SourcesUsed: []string{"n1"}, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repos.Chat.Create(ctx, conv))
		assert.NotEmpty(t, conv.ID)
	}

	history, err := repos.Chat.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "q2", history[0].UserQuery)
	assert.Equal(t, "q1", history[1].UserQuery)
	assert.Equal(t, []string{"n1"}, history[0].SourcesUsed)

	t.Run("nil sources stored as empty", func(t *testing.T) {
		require.NoError(t, repos.Chat.Create(ctx, &domain.ChatConversation{UserQuery: "q", CreatedAt: base.Add(time.Hour)}))
		history, err := repos.Chat.Recent(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, history[0].SourcesUsed)
	})
}

func TestCriticalError(t *testing.T) {
	originalErr := fmt.Errorf("test error message")
	critErr := &criticalError{err: originalErr}

	assert.Equal(t, "test error message", critErr.Error())
	assert.ErrorIs(t, critErr, errStopRetry)
	assert.ErrorIs(t, critErr, originalErr)
}

func TestWithLockRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), func() error {
			calls++
			return fmt.Errorf("constraint failed")
		})
		require.Error(t, err)
		assert.Equal(t, "constraint failed", err.Error())
		assert.Equal(t, 1, calls)
	})
}

func TestIsLockError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"sqlite busy error", fmt.Errorf("SQLITE_BUSY: database is busy"), true},
		{"database locked error", fmt.Errorf("database is locked"), true},
		{"table locked error", fmt.Errorf("database table is locked"), true},
		{"non-lock error", fmt.Errorf("syntax error"), false},
		{"empty error message", fmt.Errorf(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockError(tt.err))
		})
	}
}

func TestJSONColumns(t *testing.T) {
	t.Run("nil strings", func(t *testing.T) {
		var s stringsSQL
		value, err := s.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	})

	t.Run("strings scan", func(t *testing.T) {
		var s stringsSQL
		require.NoError(t, s.Scan([]byte(`["a","b"]`)))
		assert.Equal(t, stringsSQL{"a", "b"}, s)
		require.NoError(t, s.Scan(nil))
		assert.Empty(t, s)
	})

	t.Run("object round trip", func(t *testing.T) {
		o := objectSQL{"primary_goal": "land", "experiments": []any{"a"}}
		value, err := o.Value()
		require.NoError(t, err)
		var back objectSQL
		require.NoError(t, back.Scan(value))
		assert.Equal(t, "land", back["primary_goal"])
	})

	t.Run("vector round trip", func(t *testing.T) {
		v := vectorSQL{0.5, -1.25, 3}
		value, err := v.Value()
		require.NoError(t, err)
		var back vectorSQL
		require.NoError(t, back.Scan(value))
		assert.Equal(t, v, back)

		var empty vectorSQL
		value, err = empty.Value()
		require.NoError(t, err)
		assert.Nil(t, value)
		assert.Error(t, back.Scan([]byte{1, 2, 3}))
	})
}
