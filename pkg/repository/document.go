package repository

import (
	"context"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/spacescope/pkg/domain"
)

// DocumentRepository persists semantic index documents
type DocumentRepository struct {
	db *sqlx.DB
}

type documentSQL struct {
	ID        string    `db:"id"`
	Text      string    `db:"text"`
	Metadata  labelsSQL `db:"metadata"`
	Embedding vectorSQL `db:"embedding"`
	UpdatedAt time.Time `db:"updated_at"`
}

// vectorSQL is a float32 vector stored as a little-endian blob, nil is stored as NULL
type vectorSQL []float32

// Value implements driver.Valuer for database storage
func (v vectorSQL) Value() (driver.Value, error) {
	if len(v) == 0 {
		return nil, nil
	}
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf, nil
}

// Scan implements sql.Scanner for database retrieval
func (v *vectorSQL) Scan(value any) error {
	*v = nil
	data, ok := value.([]byte)
	if !ok || len(data) == 0 {
		return nil
	}
	if len(data)%4 != 0 {
		return fmt.Errorf("invalid vector blob length %d", len(data))
	}
	res := make(vectorSQL, len(data)/4)
	for i := range res {
		res[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	*v = res
	return nil
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Upsert inserts or replaces documents by id in one transaction
func (r *DocumentRepository) Upsert(ctx context.Context, docs []domain.StoredDocument) error {
	if len(docs) == 0 {
		return nil
	}
	err := withLockRetry(ctx, func() error {
		return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
			for _, d := range docs {
				updated := d.UpdatedAt
				if updated.IsZero() {
					updated = time.Now()
				}
				row := documentSQL{ID: d.ID, Text: d.Text, Metadata: labelsSQL(d.Metadata),
					Embedding: vectorSQL(d.Embedding), UpdatedAt: utc(updated)}
				if _, err := tx.NamedExecContext(ctx, `
					INSERT INTO semantic_documents (id, text, metadata, embedding, updated_at)
					VALUES (:id, :text, :metadata, :embedding, :updated_at)
					ON CONFLICT(id) DO UPDATE SET text = excluded.text, metadata = excluded.metadata,
						embedding = excluded.embedding, updated_at = excluded.updated_at`, row); err != nil {
					return fmt.Errorf("upsert %s: %w", d.ID, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("upsert documents: %w", err)
	}
	return nil
}

// All returns every stored document
func (r *DocumentRepository) All(ctx context.Context) ([]domain.StoredDocument, error) {
	var rows []documentSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, text, metadata, embedding, updated_at FROM semantic_documents ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}
	res := make([]domain.StoredDocument, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.StoredDocument{
			Document:  domain.Document{ID: row.ID, Text: row.Text, Metadata: map[string]string(row.Metadata)},
			Embedding: []float32(row.Embedding),
			UpdatedAt: row.UpdatedAt,
		})
	}
	return res, nil
}

// Delete removes documents by id, unknown ids are ignored
func (r *DocumentRepository) Delete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sq.Delete("semantic_documents").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}
	var deleted int
	err = withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		deleted = int(n)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete documents: %w", err)
	}
	return deleted, nil
}

// Count returns the number of stored documents
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM semantic_documents"); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}
