package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/chat"
	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/enrich"
	"github.com/umputun/spacescope/pkg/intel"
	"github.com/umputun/spacescope/server/mocks"
)

func TestServer_statsHandler(t *testing.T) {
	intelSvc := &mocks.IntelServiceMock{
		GetDashboardStatsFunc: func(ctx context.Context) (*domain.DashboardStats, error) {
			return &domain.DashboardStats{
				TotalNews:     12,
				TotalInsights: 3,
				UnreadAlerts:  1,
				InsightTypes:  map[domain.InsightType]int{domain.InsightTrend: 2, domain.InsightGap: 1},
			}, nil
		},
	}
	srv := New(Params{Intel: intelSvc})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	var stats domain.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 12, stats.TotalNews)
	assert.Equal(t, 2, stats.InsightTypes[domain.InsightTrend])

	intelSvc.GetDashboardStatsFunc = func(ctx context.Context) (*domain.DashboardStats, error) {
		return nil, errors.New("db closed")
	}
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"db closed"}`, w.Body.String())
}

func TestServer_listNewsHandler(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter domain.NewsFilter
	}{
		{name: "defaults", query: "", filter: domain.NewsFilter{Limit: 50}},
		{name: "filtered", query: "?source=apod&category=astronomy&limit=5",
			filter: domain.NewsFilter{Source: "apod", Category: "astronomy", Limit: 5}},
		{name: "bad limit", query: "?limit=abc", filter: domain.NewsFilter{Limit: 50}},
		{name: "capped limit", query: "?limit=1000", filter: domain.NewsFilter{Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newsSvc := &mocks.NewsServiceMock{
				GetRecentNewsFunc: func(ctx context.Context, filter domain.NewsFilter) ([]domain.NewsItem, error) {
					return []domain.NewsItem{{ID: "n1", Source: "apod", Title: "Horsehead Nebula"}}, nil
				},
			}
			srv := New(Params{News: newsSvc})

			w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/news"+tt.query, http.NoBody))
			require.Equal(t, http.StatusOK, w.Code)
			require.Len(t, newsSvc.GetRecentNewsCalls(), 1)
			assert.Equal(t, tt.filter, newsSvc.GetRecentNewsCalls()[0].Filter)

			var items []domain.NewsItem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			require.Len(t, items, 1)
			assert.Equal(t, "Horsehead Nebula", items[0].Title)
		})
	}
}

func TestServer_collectNewsHandler(t *testing.T) {
	newsSvc := &mocks.NewsServiceMock{
		CollectAllFunc: func(ctx context.Context) domain.CollectSummary {
			return domain.CollectSummary{TotalCollected: 10, Stored: 7, SkippedDuplicates: 2, Failed: 1}
		},
	}
	srv := New(Params{News: newsSvc})

	w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/news/collect", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_collected":10,"stored":7,"skipped_duplicates":2,"failed":1}`, w.Body.String())
	assert.Len(t, newsSvc.CollectAllCalls(), 1)
}

func TestServer_listInsightsHandler(t *testing.T) {
	intelSvc := &mocks.IntelServiceMock{
		GetInsightsFunc: func(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, error) {
			return []domain.Insight{{ID: "i1", Type: domain.InsightTrend, Title: "More cubesats"}}, nil
		},
	}
	srv := New(Params{Intel: intelSvc})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights?type=trend&category=launch&limit=3", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, intelSvc.GetInsightsCalls(), 1)
	assert.Equal(t, domain.InsightFilter{Type: domain.InsightTrend, Category: "launch", Limit: 3}, intelSvc.GetInsightsCalls()[0].Filter)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.InsightFilter{Limit: 20}, intelSvc.GetInsightsCalls()[1].Filter)
}

func TestServer_getInsightHandler(t *testing.T) {
	intelSvc := &mocks.IntelServiceMock{
		GetInsightByIDFunc: func(ctx context.Context, id string) (*domain.InsightDetail, error) {
			switch id {
			case "i1":
				return &domain.InsightDetail{
					Insight:     domain.Insight{ID: "i1", Title: "Solar maximum"},
					RelatedNews: []domain.NewsItem{{ID: "n1", Title: "X-class flare"}},
				}, nil
			case "broken":
				return nil, errors.New("db closed")
			default:
				return nil, fmt.Errorf("insight %s: %w", id, domain.ErrNotFound)
			}
		},
	}
	srv := New(Params{Intel: intelSvc})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights/i1", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	var detail domain.InsightDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Solar maximum", detail.Title)
	require.Len(t, detail.RelatedNews, 1)
	assert.Equal(t, "X-class flare", detail.RelatedNews[0].Title)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights/missing", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights/broken", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_analyzeHandler(t *testing.T) {
	intelSvc := &mocks.IntelServiceMock{
		AnalyzePatternsFunc: func(ctx context.Context, days int) intel.AnalysisResult {
			return intel.AnalysisResult{AnalyzedNewsCount: 4, PatternsFound: 1}
		},
	}
	srv := New(Params{Intel: intelSvc, AnalyzeDays: 7})

	w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/insights/analyze", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, intelSvc.AnalyzePatternsCalls()[0].Days)

	var res intel.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 4, res.AnalyzedNewsCount)
	assert.Equal(t, 1, res.PatternsFound)

	w = serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/insights/analyze?days=14", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 14, intelSvc.AnalyzePatternsCalls()[1].Days)

	for _, bad := range []string{"0", "-1", "week"} {
		w = serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/insights/analyze?days="+bad, http.NoBody))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
	assert.Len(t, intelSvc.AnalyzePatternsCalls(), 2)
}

func TestServer_alertHandlers(t *testing.T) {
	intelSvc := &mocks.IntelServiceMock{
		GetAlertsFunc: func(ctx context.Context, unreadOnly bool, limit int) ([]domain.Alert, error) {
			return []domain.Alert{{ID: "a1", InsightID: "i1", Priority: domain.PriorityHigh}}, nil
		},
		MarkAlertSeenFunc: func(ctx context.Context, id string) (bool, error) {
			switch id {
			case "a1":
				return true, nil
			case "broken":
				return false, errors.New("db closed")
			default:
				return false, nil
			}
		},
	}
	srv := New(Params{Intel: intelSvc})

	t.Run("list unread by default", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/alerts", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		call := intelSvc.GetAlertsCalls()[0]
		assert.True(t, call.UnreadOnly)
		assert.Equal(t, 20, call.Limit)

		var alerts []domain.Alert
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
		require.Len(t, alerts, 1)
		assert.Equal(t, domain.PriorityHigh, alerts[0].Priority)
	})

	t.Run("list all", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/alerts?unread_only=false&limit=5", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		call := intelSvc.GetAlertsCalls()[1]
		assert.False(t, call.UnreadOnly)
		assert.Equal(t, 5, call.Limit)
	})

	t.Run("bad unread_only", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/alerts?unread_only=maybe", http.NoBody))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mark seen", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodPut, "/api/v1/alerts/a1/seen", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"a1","seen":true}`, w.Body.String())

		w = serve(srv, httptest.NewRequest(http.MethodPut, "/api/v1/alerts/nope/seen", http.NoBody))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = serve(srv, httptest.NewRequest(http.MethodPut, "/api/v1/alerts/broken/seen", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_chatHandler(t *testing.T) {
	convID := "c1"
	chatSvc := &mocks.ChatServiceMock{
		ChatFunc: func(ctx context.Context, query string, history []domain.ChatMessage) chat.Response {
			return chat.Response{
				Response:       "Artemis II flies around the Moon [Source 1].",
				Sources:        []domain.NewsRef{{ID: "n1", Title: "Artemis II crew named", Source: "nasa"}},
				ConversationID: &convID,
			}
		},
	}
	srv := New(Params{Chat: chatSvc})

	t.Run("answer", func(t *testing.T) {
		body := `{"query":"what is artemis ii?","conversation_history":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, w.Code)

		require.Len(t, chatSvc.ChatCalls(), 1)
		call := chatSvc.ChatCalls()[0]
		assert.Equal(t, "what is artemis ii?", call.Query)
		assert.Equal(t, []domain.ChatMessage{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}}, call.History)

		var resp chat.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Response, "Artemis II")
		require.NotNil(t, resp.ConversationID)
		assert.Equal(t, "c1", *resp.ConversationID)
		require.Len(t, resp.Sources, 1)
	})

	t.Run("empty query", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"query":""}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"query is required"}`, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"query":`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	assert.Len(t, chatSvc.ChatCalls(), 1)
}

func TestServer_chatHistoryAndSuggestions(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	chatSvc := &mocks.ChatServiceMock{
		GetChatHistoryFunc: func(ctx context.Context, limit int) ([]domain.ChatConversation, error) {
			return []domain.ChatConversation{{ID: "c1", UserQuery: "q", AssistantResponse: "a", CreatedAt: created}}, nil
		},
		GetSuggestedQuestionsFunc: func(ctx context.Context) []string {
			return []string{"What missions are launching soon?"}
		},
	}
	srv := New(Params{Chat: chatSvc})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/chat/history?limit=10", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, chatSvc.GetChatHistoryCalls()[0].Limit)
	var convs []domain.ChatConversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &convs))
	require.Len(t, convs, 1)
	assert.Equal(t, "c1", convs[0].ID)

	chatSvc.GetChatHistoryFunc = func(ctx context.Context, limit int) ([]domain.ChatConversation, error) {
		return nil, errors.New("db closed")
	}
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/chat/history", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/chat/suggestions", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"questions":["What missions are launching soon?"]}`, w.Body.String())
}

func TestServer_enrichmentHandlers(t *testing.T) {
	enrichSvc := &mocks.EnrichmentServiceMock{
		TriggerEnrichmentFunc: func(ctx context.Context, entityType, entityID string) (enrich.LaunchResult, error) {
			switch {
			case entityType != "launch":
				return enrich.LaunchResult{}, fmt.Errorf("%s: %w", entityType, enrich.ErrUnsupportedEntity)
			case entityID == "missing":
				return enrich.LaunchResult{}, fmt.Errorf("launch %s: %w", entityID, domain.ErrNotFound)
			}
			return enrich.LaunchResult{
				LaunchID: entityID,
				Name:     "Artemis II",
				Score:    120,
				Results: map[domain.ContentType]enrich.ContentResult{
					domain.ContentCrewProfiles: {Status: enrich.StatusCreated},
				},
			}, nil
		},
		RunDailyEnrichmentFunc: func(ctx context.Context) enrich.RunSummary {
			return enrich.RunSummary{LaunchesProcessed: 5, LaunchesEnriched: 2, Errors: []string{}}
		},
		GetEnrichmentForLaunchFunc: func(ctx context.Context, launchID string) (map[domain.ContentType]map[string]any, error) {
			return map[domain.ContentType]map[string]any{
				domain.ContentMissionObjectives: {"objectives": []any{"crewed lunar flyby"}},
			}, nil
		},
	}
	srv := New(Params{Enrichment: enrichSvc})

	t.Run("trigger", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/enrichment/trigger/launch/l1", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		call := enrichSvc.TriggerEnrichmentCalls()[0]
		assert.Equal(t, "launch", call.EntityType)
		assert.Equal(t, "l1", call.EntityID)

		var res enrich.LaunchResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Artemis II", res.Name)
		assert.Equal(t, enrich.StatusCreated, res.Results[domain.ContentCrewProfiles].Status)
	})

	t.Run("trigger unsupported entity", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/enrichment/trigger/rocket/r1", http.NoBody))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("trigger unknown launch", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/enrichment/trigger/launch/missing", http.NoBody))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("run", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/enrichment/run", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"launches_processed":5,"launches_enriched":2,"errors":[]}`, w.Body.String())
	})

	t.Run("launch content", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/enrichment/launch/l1", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"launch_id":"l1","content":{"mission_objectives":{"objectives":["crewed lunar flyby"]}}}`, w.Body.String())
	})
}

func TestQueryLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 20}, {"limit=7", 7}, {"limit=0", 20}, {"limit=-3", 20}, {"limit=x", 20}, {"limit=100", 100}, {"limit=101", 100},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, http.NoBody)
		assert.Equal(t, tt.want, queryLimit(r, 20), tt.query)
	}
}
