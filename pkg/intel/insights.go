package intel

import (
	"context"
	"fmt"

	"github.com/umputun/spacescope/pkg/domain"
)

// read side defaults
const (
	defaultListLimit   = 20
	recentHighLimit    = 5
	highConfidenceMark = domain.AlertThreshold
)

// GetInsights returns insights by confidence, newest first among equals
func (a *Analyzer) GetInsights(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return a.insights.List(ctx, filter)
}

// GetInsightByID returns the insight with its related news, domain.ErrNotFound if there is no such insight
func (a *Analyzer) GetInsightByID(ctx context.Context, id string) (*domain.InsightDetail, error) {
	insight, err := a.insights.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := a.news.GetByIDs(ctx, insight.RelatedNewsIDs)
	if err != nil {
		return nil, fmt.Errorf("related news of %s: %w", id, err)
	}
	return &domain.InsightDetail{Insight: *insight, RelatedNews: related}, nil
}

// GetAlerts returns alerts newest first with their insight
func (a *Analyzer) GetAlerts(ctx context.Context, unreadOnly bool, limit int) ([]domain.Alert, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return a.insights.Alerts(ctx, unreadOnly, limit)
}

// MarkAlertSeen flags the alert, false if it does not exist
func (a *Analyzer) MarkAlertSeen(ctx context.Context, id string) (bool, error) {
	return a.insights.MarkAlertSeen(ctx, id)
}

// GetDashboardStats aggregates counts of stored news, insights and alerts
func (a *Analyzer) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var err error
	stats := &domain.DashboardStats{}
	if stats.TotalNews, err = a.news.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalInsights, err = a.insights.Count(ctx); err != nil {
		return nil, err
	}
	if stats.UnreadAlerts, err = a.insights.CountUnreadAlerts(ctx); err != nil {
		return nil, err
	}
	if stats.NewsCategories, err = a.news.CountByCategory(ctx); err != nil {
		return nil, err
	}
	byType, err := a.insights.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	stats.InsightTypes = map[domain.InsightType]int{}
	for _, t := range []domain.InsightType{domain.InsightConnection, domain.InsightTrend, domain.InsightGap, domain.InsightAnomaly} {
		stats.InsightTypes[t] = byType[t]
	}
	if stats.RecentHighConfidence, err = a.insights.RecentConfident(ctx, highConfidenceMark, recentHighLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentInsights returns the newest insights with confidence at least minConfidence
func (a *Analyzer) RecentInsights(ctx context.Context, minConfidence float64, limit int) ([]domain.Insight, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return a.insights.RecentConfident(ctx, minConfidence, limit)
}
