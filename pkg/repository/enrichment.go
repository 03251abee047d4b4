package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/spacescope/pkg/domain"
)

// EnrichmentRepository handles enriched content database operations
type EnrichmentRepository struct {
	db *sqlx.DB
}

// enrichmentSQL represents an enriched content record for SQL operations
type enrichmentSQL struct {
	ID          string     `db:"id"`
	EntityType  string     `db:"entity_type"`
	EntityID    string     `db:"entity_id"`
	ContentType string     `db:"content_type"`
	Content     objectSQL  `db:"content"`
	Sources     stringsSQL `db:"sources"`
	CreatedAt   time.Time  `db:"created_at"`
	ExpiresAt   time.Time  `db:"expires_at"`
}

const enrichmentColumns = "id, entity_type, entity_id, content_type, content, sources, created_at, expires_at"

// NewEnrichmentRepository creates a new enrichment repository
func NewEnrichmentRepository(db *sqlx.DB) *EnrichmentRepository {
	return &EnrichmentRepository{db: db}
}

// Create inserts a new record. Existing records are never updated in place.
func (r *EnrichmentRepository) Create(ctx context.Context, rec *domain.EnrichedContent) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.ExpiresAt.IsZero() {
		rec.ExpiresAt = rec.CreatedAt.Add(domain.DefaultEnrichmentTTL)
	}
	if rec.Sources == nil {
		rec.Sources = []string{}
	}

	row := enrichmentSQL{
		ID:          rec.ID,
		EntityType:  rec.EntityType,
		EntityID:    rec.EntityID,
		ContentType: string(rec.ContentType),
		Content:     objectSQL(rec.Content),
		Sources:     stringsSQL(rec.Sources),
		CreatedAt:   utc(rec.CreatedAt),
		ExpiresAt:   utc(rec.ExpiresAt),
	}
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO enriched_content (`+enrichmentColumns+`)
			VALUES (:id, :entity_type, :entity_id, :content_type, :content, :sources, :created_at, :expires_at)`, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("create enriched content: %w", err)
	}
	return nil
}

// ListFresh returns records of the entity not expired at now, oldest first
func (r *EnrichmentRepository) ListFresh(ctx context.Context, entityType, entityID string, now time.Time) ([]domain.EnrichedContent, error) {
	var rows []enrichmentSQL
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+enrichmentColumns+` FROM enriched_content
		WHERE entity_type = ? AND entity_id = ? AND expires_at > ?
		ORDER BY created_at ASC, rowid ASC`, entityType, entityID, utc(now))
	if err != nil {
		return nil, fmt.Errorf("list fresh enrichment: %w", err)
	}
	res := make([]domain.EnrichedContent, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// HasFresh checks if any record of the entity is not expired at now
func (r *EnrichmentRepository) HasFresh(ctx context.Context, entityType, entityID string, now time.Time) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(SELECT 1 FROM enriched_content WHERE entity_type = ? AND entity_id = ? AND expires_at > ?)`,
		entityType, entityID, utc(now))
	if err != nil {
		return false, fmt.Errorf("check fresh enrichment: %w", err)
	}
	return exists, nil
}

// ExpiredDocumentIDs returns semantic document ids of keys whose every record expired at or before now
func (r *EnrichmentRepository) ExpiredDocumentIDs(ctx context.Context, now time.Time) ([]string, error) {
	var rows []struct {
		EntityType  string `db:"entity_type"`
		EntityID    string `db:"entity_id"`
		ContentType string `db:"content_type"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT entity_type, entity_id, content_type FROM enriched_content
		GROUP BY entity_type, entity_id, content_type
		HAVING MAX(expires_at) <= ?`, utc(now))
	if err != nil {
		return nil, fmt.Errorf("list expired enrichment keys: %w", err)
	}
	res := make([]string, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.DocumentID(row.EntityType, row.EntityID, domain.ContentType(row.ContentType)))
	}
	return res, nil
}

func (e enrichmentSQL) toDomain() domain.EnrichedContent {
	return domain.EnrichedContent{
		ID:          e.ID,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		ContentType: domain.ContentType(e.ContentType),
		Content:     map[string]any(e.Content),
		Sources:     []string(e.Sources),
		CreatedAt:   e.CreatedAt,
		ExpiresAt:   e.ExpiresAt,
	}
}
