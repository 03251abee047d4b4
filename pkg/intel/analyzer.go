// Package intel detects patterns across recently collected news and serves the resulting
// insights and alerts.
package intel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/llm"
)

//go:generate moq -out mocks/news_reader.go -pkg mocks -skip-ensure -fmt goimports . NewsReader
//go:generate moq -out mocks/insight_store.go -pkg mocks -skip-ensure -fmt goimports . InsightStore

// NewsReader reads stored news items
type NewsReader interface {
	CreatedSince(ctx context.Context, since time.Time, limit int) ([]domain.NewsItem, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.NewsItem, error)
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// InsightStore persists insights and alerts
type InsightStore interface {
	SaveAnalysis(ctx context.Context, insights []domain.Insight, alerts []domain.Alert) error
	List(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, error)
	RecentConfident(ctx context.Context, minConfidence float64, limit int) ([]domain.Insight, error)
	Get(ctx context.Context, id string) (*domain.Insight, error)
	Count(ctx context.Context) (int, error)
	CountByType(ctx context.Context) (map[domain.InsightType]int, error)
	Alerts(ctx context.Context, unreadOnly bool, limit int) ([]domain.Alert, error)
	MarkAlertSeen(ctx context.Context, id string) (bool, error)
	CountUnreadAlerts(ctx context.Context) (int, error)
}

// analysis limits and pattern defaults
const (
	maxAnalyzedItems  = 100
	defaultConfidence = 0.5
	defaultTitle      = "Untitled Pattern"
	analysisMaxTokens = 4096
)

// AnalysisResult is the outcome of one analysis run. Error is set instead of returning a Go error.
type AnalysisResult struct {
	AnalyzedNewsCount int              `json:"analyzed_news_count"`
	PatternsFound     int              `json:"patterns_found"`
	Insights          []domain.Insight `json:"insights"`
	Message           string           `json:"message,omitempty"`
	Error             string           `json:"error,omitempty"`
}

// Analyzer asks the llm for patterns across recent news
type Analyzer struct {
	news     NewsReader
	insights InsightStore
	llm      *llm.Lazy
	now      func() time.Time
}

// NewAnalyzer makes an analyzer
func NewAnalyzer(news NewsReader, insights InsightStore, client *llm.Lazy) *Analyzer {
	return &Analyzer{news: news, insights: insights, llm: client, now: time.Now}
}

// AnalyzePatterns looks for patterns in items collected during the last days.
// All insights and alerts of a run are stored together or not at all.
func (a *Analyzer) AnalyzePatterns(ctx context.Context, days int) AnalysisResult {
	client, err := a.llm.Get()
	if err != nil {
		return AnalysisResult{Insights: []domain.Insight{}, Error: err.Error()}
	}

	since := a.now().AddDate(0, 0, -days)
	items, err := a.news.CreatedSince(ctx, since, maxAnalyzedItems)
	if err != nil {
		return AnalysisResult{Insights: []domain.Insight{}, Error: fmt.Sprintf("load news: %v", err)}
	}
	if len(items) == 0 {
		return AnalysisResult{Insights: []domain.Insight{}, Message: "No news items to analyze"}
	}

	ids := make(map[int64]string, len(items))
	for i, item := range items {
		ids[int64(i+1)] = item.ID
	}

	req := llm.UserRequest(analysisSystemPrompt, analysisPrompt(items))
	req.MaxTokens = analysisMaxTokens
	reply, err := client.Complete(ctx, req)
	if err != nil {
		return AnalysisResult{AnalyzedNewsCount: len(items), Insights: []domain.Insight{},
			Error: fmt.Sprintf("analyze patterns: %v", err)}
	}

	parsed := llm.ExtractArray[[]json.RawMessage](reply)
	if !parsed.OK() && !errors.Is(parsed.Err, llm.ErrNoJSON) {
		log.Printf("[WARN] can't parse analysis reply: %v", parsed.Err)
	}

	now := a.now().UTC()
	insights := []domain.Insight{}
	alerts := []domain.Alert{}
	// the >0.5 confidence cut is asked for in the prompt, every returned pattern is stored
	for _, raw := range parsed.OrZero() {
		var p pattern
		if err := json.Unmarshal(raw, &p); err != nil {
			log.Printf("[DEBUG] skip malformed pattern %s: %v", string(raw), err)
			continue
		}
		insight := p.insight(ids)
		insight.ID = uuid.NewString()
		insight.GeneratedAt = now
		insights = append(insights, insight)
		if priority, ok := domain.PriorityFor(insight.ConfidenceScore); ok {
			alerts = append(alerts, domain.Alert{ID: uuid.NewString(), InsightID: insight.ID, Priority: priority, CreatedAt: now})
		}
	}

	if err := a.insights.SaveAnalysis(ctx, insights, alerts); err != nil {
		return AnalysisResult{AnalyzedNewsCount: len(items), Insights: []domain.Insight{},
			Error: fmt.Sprintf("store analysis: %v", err)}
	}
	log.Printf("[INFO] analyzed %d news items, %d patterns, %d alerts", len(items), len(insights), len(alerts))
	return AnalysisResult{AnalyzedNewsCount: len(items), PatternsFound: len(insights), Insights: insights}
}

// pattern is one entry of the model reply, fields are loose as the model may put anything there
type pattern struct {
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Confidence  json.RawMessage `json:"confidence_score"`
	Evidence    string          `json:"evidence"`
	Category    string          `json:"category"`
	Related     json.RawMessage `json:"related_news_ids"`
}

// insight converts the pattern, related entries are kept only if they are integer positions in ids
func (p pattern) insight(ids map[int64]string) domain.Insight {
	res := domain.Insight{
		Type:            domain.ParseInsightType(p.Type),
		Title:           strings.TrimSpace(p.Title),
		Description:     p.Description,
		ConfidenceScore: confidence(p.Confidence),
		RelatedNewsIDs:  []string{},
		Category:        strings.TrimSpace(p.Category),
		Evidence:        p.Evidence,
	}
	if res.Title == "" {
		res.Title = defaultTitle
	}
	if res.Category == "" {
		res.Category = domain.CategoryOther
	}
	var related []json.RawMessage
	if len(p.Related) > 0 {
		_ = json.Unmarshal(p.Related, &related) // anything but a list carries no usable reference
	}
	for _, raw := range related {
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			continue // strings, floats and anything else are not positions
		}
		if id, ok := ids[n]; ok && !slices.Contains(res.RelatedNewsIDs, id) {
			res.RelatedNewsIDs = append(res.RelatedNewsIDs, id)
		}
	}
	return res
}

// confidence reads a number or numeric string, clamped to [0,1]
func confidence(raw json.RawMessage) float64 {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return defaultConfidence
	}
	return min(max(v, 0), 1)
}
