package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/spacescope/pkg/domain"
)

// NewsRepository handles news item database operations
type NewsRepository struct {
	db *sqlx.DB
}

// newsSQL represents a news item for SQL operations
type newsSQL struct {
	ID           string    `db:"id"`
	Source       string    `db:"source"`
	ExternalID   string    `db:"external_id"`
	Title        string    `db:"title"`
	Summary      string    `db:"summary"`
	Content      string    `db:"content"`
	URL          string    `db:"url"`
	ImageURL     string    `db:"image_url"`
	Category     string    `db:"category"`
	PublishedAt  time.Time `db:"published_at"`
	EmbeddingRef string    `db:"embedding_ref"`
	CreatedAt    time.Time `db:"created_at"`
}

const newsColumns = "id, source, external_id, title, summary, content, url, image_url, category, " +
	"published_at, embedding_ref, created_at"

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create inserts the item unless (source, external_id) is already stored.
// Returns false for a duplicate. ID and CreatedAt are assigned when empty.
func (r *NewsRepository) Create(ctx context.Context, item *domain.NewsItem) (bool, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if item.Category == "" {
		item.Category = domain.CategoryOther
	}
	row := fromNewsDomain(item)

	query := `
		INSERT INTO news_items (` + newsColumns + `)
		VALUES (:id, :source, :external_id, :title, :summary, :content, :url, :image_url, :category,
			:published_at, :embedding_ref, :created_at)
		ON CONFLICT(source, external_id) DO NOTHING
	`
	var created bool
	err := withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		created = n > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("create news item: %w", err)
	}
	return created, nil
}

// Exists checks if an item with the identity key is stored
func (r *NewsRepository) Exists(ctx context.Context, source, externalID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM news_items WHERE source = ? AND external_id = ?)", source, externalID)
	if err != nil {
		return false, fmt.Errorf("check news item exists: %w", err)
	}
	return exists, nil
}

// SetEmbeddingRef records the semantic document id of the item
func (r *NewsRepository) SetEmbeddingRef(ctx context.Context, id, ref string) error {
	err := withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE news_items SET embedding_ref = ? WHERE id = ?", ref, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("set embedding ref: %w", err)
	}
	return nil
}

// Get returns a single item by id
func (r *NewsRepository) Get(ctx context.Context, id string) (*domain.NewsItem, error) {
	var row newsSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+newsColumns+" FROM news_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("news item %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get news item: %w", err)
	}
	item := row.toDomain()
	return &item, nil
}

// List returns items newest published first
func (r *NewsRepository) List(ctx context.Context, filter domain.NewsFilter) ([]domain.NewsItem, error) {
	qb := sq.Select(newsColumns).From("news_items").OrderBy("published_at DESC", "created_at DESC")
	if filter.Source != "" {
		qb = qb.Where(sq.Eq{"source": filter.Source})
	}
	if filter.Category != "" {
		qb = qb.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	return r.selectItems(ctx, qb)
}

// CreatedSince returns items stored at or after since, newest published first
func (r *NewsRepository) CreatedSince(ctx context.Context, since time.Time, limit int) ([]domain.NewsItem, error) {
	qb := sq.Select(newsColumns).From("news_items").
		Where(sq.GtOrEq{"created_at": utc(since)}).
		OrderBy("published_at DESC", "created_at DESC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	return r.selectItems(ctx, qb)
}

// GetByIDs returns the stored items among ids, in the order of ids. Unknown ids are skipped.
func (r *NewsRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.NewsItem, error) {
	if len(ids) == 0 {
		return []domain.NewsItem{}, nil
	}
	found, err := r.selectItems(ctx, sq.Select(newsColumns).From("news_items").Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.NewsItem, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}
	res := make([]domain.NewsItem, 0, len(found))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			res = append(res, item)
			delete(byID, id)
		}
	}
	return res, nil
}

// Count returns the number of stored items
func (r *NewsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM news_items"); err != nil {
		return 0, fmt.Errorf("count news items: %w", err)
	}
	return count, nil
}

// CountByCategory returns the number of items per category
func (r *NewsRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Category string `db:"category"`
		Count    int    `db:"cnt"`
	}
	err := r.db.SelectContext(ctx, &rows, "SELECT category, COUNT(*) AS cnt FROM news_items GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("count news by category: %w", err)
	}
	res := make(map[string]int, len(rows))
	for _, row := range rows {
		res[row.Category] = row.Count
	}
	return res, nil
}

func (r *NewsRepository) selectItems(ctx context.Context, qb sq.SelectBuilder) ([]domain.NewsItem, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build news query: %w", err)
	}
	var rows []newsSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select news items: %w", err)
	}
	res := make([]domain.NewsItem, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

func fromNewsDomain(item *domain.NewsItem) newsSQL {
	return newsSQL{
		ID:           item.ID,
		Source:       item.Source,
		ExternalID:   item.ExternalID,
		Title:        item.Title,
		Summary:      item.Summary,
		Content:      item.Content,
		URL:          item.URL,
		ImageURL:     item.ImageURL,
		Category:     item.Category,
		PublishedAt:  utc(item.PublishedAt),
		EmbeddingRef: item.EmbeddingRef,
		CreatedAt:    utc(item.CreatedAt),
	}
}

func (n newsSQL) toDomain() domain.NewsItem {
	return domain.NewsItem{
		ID:           n.ID,
		Source:       n.Source,
		ExternalID:   n.ExternalID,
		Title:        n.Title,
		Summary:      n.Summary,
		Content:      n.Content,
		URL:          n.URL,
		ImageURL:     n.ImageURL,
		Category:     n.Category,
		PublishedAt:  n.PublishedAt,
		EmbeddingRef: n.EmbeddingRef,
		CreatedAt:    n.CreatedAt,
	}
}
