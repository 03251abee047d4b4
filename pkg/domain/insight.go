package domain

import "time"

// InsightType is a pattern kind detected across news items
type InsightType string

// insight types
const (
	InsightConnection InsightType = "connection"
	InsightTrend      InsightType = "trend"
	InsightGap        InsightType = "gap"
	InsightAnomaly    InsightType = "anomaly"
)

// ParseInsightType normalizes a raw type name, unknown and empty values map to connection
func ParseInsightType(s string) InsightType {
	switch t := InsightType(normalize(s)); t {
	case InsightConnection, InsightTrend, InsightGap, InsightAnomaly:
		return t
	default:
		return InsightConnection
	}
}

// Insight is a pattern reported by the analyzer
type Insight struct {
	ID              string      `json:"id"`
	Type            InsightType `json:"type"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	ConfidenceScore float64     `json:"confidence_score"`
	RelatedNewsIDs  []string    `json:"related_news_ids"`
	Category        string      `json:"category"`
	Evidence        string      `json:"evidence"`
	GeneratedAt     time.Time   `json:"generated_at"`
}

// InsightDetail is an insight with its related news resolved
type InsightDetail struct {
	Insight
	RelatedNews []NewsItem `json:"related_news"`
}

// InsightFilter narrows insight listings, empty fields are ignored
type InsightFilter struct {
	Type     InsightType
	Category string
	Limit    int
}

// AlertPriority is the priority derived from insight confidence
type AlertPriority string

// alert priorities
const (
	PriorityHigh   AlertPriority = "high"
	PriorityMedium AlertPriority = "medium"
	PriorityLow    AlertPriority = "low"
)

// alert thresholds on insight confidence
const (
	AlertThreshold        = 0.7
	HighPriorityThreshold = 0.85
)

// PriorityFor returns the alert priority for the confidence and false if no alert is due
func PriorityFor(confidence float64) (AlertPriority, bool) {
	switch {
	case confidence >= HighPriorityThreshold:
		return PriorityHigh, true
	case confidence >= AlertThreshold:
		return PriorityMedium, true
	default:
		return PriorityLow, false
	}
}

// Alert is raised for every confident insight
type Alert struct {
	ID        string        `json:"id"`
	InsightID string        `json:"insight_id"`
	Priority  AlertPriority `json:"priority"`
	Seen      bool          `json:"seen"`
	CreatedAt time.Time     `json:"created_at"`
	Insight   *Insight      `json:"insight,omitempty"`
}

// DashboardStats aggregates counts over the stored records
type DashboardStats struct {
	TotalNews            int                 `json:"total_news"`
	TotalInsights        int                 `json:"total_insights"`
	UnreadAlerts         int                 `json:"unread_alerts"`
	InsightTypes         map[InsightType]int `json:"insight_types"`
	NewsCategories       map[string]int      `json:"news_categories"`
	RecentHighConfidence []Insight           `json:"recent_high_confidence"`
}
