package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/spacescope/pkg/domain"
)

// InsightRepository handles insight and alert database operations
type InsightRepository struct {
	db *sqlx.DB
}

// insightSQL represents an insight for SQL operations
type insightSQL struct {
	ID              string     `db:"id"`
	Type            string     `db:"type"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	ConfidenceScore float64    `db:"confidence_score"`
	RelatedNewsIDs  stringsSQL `db:"related_news_ids"`
	Category        string     `db:"category"`
	Evidence        string     `db:"evidence"`
	GeneratedAt     time.Time  `db:"generated_at"`
}

// alertSQL represents an alert joined with its insight
type alertSQL struct {
	ID        string     `db:"id"`
	InsightID string     `db:"insight_id"`
	Priority  string     `db:"priority"`
	Seen      bool       `db:"seen"`
	CreatedAt time.Time  `db:"created_at"`
	Insight   insightSQL `db:"insight"`
}

const insightColumns = "id, type, title, description, confidence_score, related_news_ids, category, evidence, generated_at"

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *sqlx.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

// SaveAnalysis stores the insights and alerts of one analysis run in a single transaction.
// Nothing is stored if any insert fails.
func (r *InsightRepository) SaveAnalysis(ctx context.Context, insights []domain.Insight, alerts []domain.Alert) error {
	if len(insights) == 0 && len(alerts) == 0 {
		return nil
	}

	err := withLockRetry(ctx, func() error {
		return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
			for i := range insights {
				row := fromInsightDomain(&insights[i])
				if _, err := tx.NamedExecContext(ctx, `
					INSERT INTO insights (`+insightColumns+`)
					VALUES (:id, :type, :title, :description, :confidence_score, :related_news_ids,
						:category, :evidence, :generated_at)`, row); err != nil {
					return fmt.Errorf("insert insight %q: %w", insights[i].Title, err)
				}
			}
			for _, a := range alerts {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO alerts (id, insight_id, priority, seen, created_at) VALUES (?, ?, ?, ?, ?)",
					a.ID, a.InsightID, string(a.Priority), a.Seen, utc(a.CreatedAt)); err != nil {
					return fmt.Errorf("insert alert for %s: %w", a.InsightID, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// List returns insights ordered by confidence then recency
func (r *InsightRepository) List(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, error) {
	qb := sq.Select(insightColumns).From("insights").OrderBy("confidence_score DESC", "generated_at DESC")
	if filter.Type != "" {
		qb = qb.Where(sq.Eq{"type": string(filter.Type)})
	}
	if filter.Category != "" {
		qb = qb.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	return r.selectInsights(ctx, qb)
}

// RecentConfident returns the newest insights with confidence at least minConfidence
func (r *InsightRepository) RecentConfident(ctx context.Context, minConfidence float64, limit int) ([]domain.Insight, error) {
	qb := sq.Select(insightColumns).From("insights").
		Where(sq.GtOrEq{"confidence_score": minConfidence}).
		OrderBy("generated_at DESC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	return r.selectInsights(ctx, qb)
}

// Get returns a single insight
func (r *InsightRepository) Get(ctx context.Context, id string) (*domain.Insight, error) {
	var row insightSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+insightColumns+" FROM insights WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("insight %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get insight: %w", err)
	}
	insight := row.toDomain()
	return &insight, nil
}

// Count returns the number of insights
func (r *InsightRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM insights"); err != nil {
		return 0, fmt.Errorf("count insights: %w", err)
	}
	return count, nil
}

// CountByType returns the number of insights per type
func (r *InsightRepository) CountByType(ctx context.Context) (map[domain.InsightType]int, error) {
	var rows []struct {
		Type  string `db:"type"`
		Count int    `db:"cnt"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT type, COUNT(*) AS cnt FROM insights GROUP BY type"); err != nil {
		return nil, fmt.Errorf("count insights by type: %w", err)
	}
	res := make(map[domain.InsightType]int, len(rows))
	for _, row := range rows {
		res[domain.InsightType(row.Type)] = row.Count
	}
	return res, nil
}

// Alerts returns alerts newest first with their insight embedded
func (r *InsightRepository) Alerts(ctx context.Context, unreadOnly bool, limit int) ([]domain.Alert, error) {
	qb := sq.Select("a.id AS id", "a.insight_id AS insight_id", "a.priority AS priority", "a.seen AS seen",
		"a.created_at AS created_at",
		`i.id AS "insight.id"`, `i.type AS "insight.type"`, `i.title AS "insight.title"`,
		`i.description AS "insight.description"`, `i.confidence_score AS "insight.confidence_score"`,
		`i.related_news_ids AS "insight.related_news_ids"`, `i.category AS "insight.category"`,
		`i.evidence AS "insight.evidence"`, `i.generated_at AS "insight.generated_at"`).
		From("alerts a").Join("insights i ON i.id = a.insight_id").
		OrderBy("a.created_at DESC")
	if unreadOnly {
		qb = qb.Where(sq.Eq{"a.seen": false})
	}
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alerts query: %w", err)
	}
	var rows []alertSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select alerts: %w", err)
	}

	res := make([]domain.Alert, 0, len(rows))
	for _, row := range rows {
		insight := row.Insight.toDomain()
		res = append(res, domain.Alert{
			ID:        row.ID,
			InsightID: row.InsightID,
			Priority:  domain.AlertPriority(row.Priority),
			Seen:      row.Seen,
			CreatedAt: row.CreatedAt,
			Insight:   &insight,
		})
	}
	return res, nil
}

// MarkAlertSeen flags the alert as seen, returns false if no such alert exists
func (r *InsightRepository) MarkAlertSeen(ctx context.Context, id string) (bool, error) {
	var found bool
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE alerts SET seen = 1 WHERE id = ?", id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		found = n > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("mark alert seen: %w", err)
	}
	return found, nil
}

// CountUnreadAlerts returns the number of alerts not yet seen
func (r *InsightRepository) CountUnreadAlerts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM alerts WHERE seen = 0"); err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}
	return count, nil
}

func (r *InsightRepository) selectInsights(ctx context.Context, qb sq.SelectBuilder) ([]domain.Insight, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insights query: %w", err)
	}
	var rows []insightSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select insights: %w", err)
	}
	res := make([]domain.Insight, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

func fromInsightDomain(i *domain.Insight) insightSQL {
	return insightSQL{
		ID:              i.ID,
		Type:            string(i.Type),
		Title:           i.Title,
		Description:     i.Description,
		ConfidenceScore: i.ConfidenceScore,
		RelatedNewsIDs:  stringsSQL(i.RelatedNewsIDs),
		Category:        i.Category,
		Evidence:        i.Evidence,
		GeneratedAt:     utc(i.GeneratedAt),
	}
}

func (i insightSQL) toDomain() domain.Insight {
	return domain.Insight{
		ID:              i.ID,
		Type:            domain.InsightType(i.Type),
		Title:           i.Title,
		Description:     i.Description,
		ConfidenceScore: i.ConfidenceScore,
		RelatedNewsIDs:  []string(i.RelatedNewsIDs),
		Category:        i.Category,
		Evidence:        i.Evidence,
		GeneratedAt:     i.GeneratedAt,
	}
}
