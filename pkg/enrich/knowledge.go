package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/domain"
)

//go:generate moq -out mocks/record_store.go -pkg mocks -skip-ensure -fmt goimports . RecordStore
//go:generate moq -out mocks/index.go -pkg mocks -skip-ensure -fmt goimports . Index

// RecordStore persists enriched content records
type RecordStore interface {
	Create(ctx context.Context, rec *domain.EnrichedContent) error
	ListFresh(ctx context.Context, entityType, entityID string, now time.Time) ([]domain.EnrichedContent, error)
	HasFresh(ctx context.Context, entityType, entityID string, now time.Time) (bool, error)
	ExpiredDocumentIDs(ctx context.Context, now time.Time) ([]string, error)
}

// Index is the secondary semantic index mirroring enriched content
type Index interface {
	Add(ctx context.Context, docs ...domain.Document) error
	Delete(ctx context.Context, ids ...string) (int, error)
}

// KnowledgeStore keeps synthesized content per entity. Records are authoritative,
// the semantic mirror is best effort and rebuildable.
type KnowledgeStore struct {
	records RecordStore
	index   Index
	ttl     time.Duration
	now     func() time.Time
}

// NewKnowledgeStore makes a store, zero ttl selects the default of 7 days
func NewKnowledgeStore(records RecordStore, index Index, ttl time.Duration) *KnowledgeStore {
	if ttl <= 0 {
		ttl = domain.DefaultEnrichmentTTL
	}
	return &KnowledgeStore{records: records, index: index, ttl: ttl, now: time.Now}
}

// HasFresh reports whether any unexpired record exists for the entity
func (k *KnowledgeStore) HasFresh(ctx context.Context, entityType, entityID string) (bool, error) {
	return k.records.HasFresh(ctx, entityType, entityID, k.now())
}

// GetFresh returns unexpired content of the entity by content type, the newest record wins
func (k *KnowledgeStore) GetFresh(ctx context.Context, entityType, entityID string) (map[domain.ContentType]map[string]any, error) {
	recs, err := k.records.ListFresh(ctx, entityType, entityID, k.now())
	if err != nil {
		return nil, err
	}
	res := make(map[domain.ContentType]map[string]any, len(recs))
	for _, rec := range recs {
		res[rec.ContentType] = rec.Content
	}
	return res, nil
}

// Put inserts a new record and mirrors it into the semantic index.
// Only a failure of the record write is returned.
func (k *KnowledgeStore) Put(ctx context.Context, entityType, entityID, entityName string, ct domain.ContentType,
	content map[string]any, sources []string) (*domain.EnrichedContent, error) {
	now := k.now()
	rec := &domain.EnrichedContent{
		EntityType:  entityType,
		EntityID:    entityID,
		ContentType: ct,
		Content:     content,
		Sources:     sources,
		CreatedAt:   now,
		ExpiresAt:   now.Add(k.ttl),
	}
	if err := k.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("put %s for %s %s: %w", ct, entityType, entityID, err)
	}

	text, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		log.Printf("[WARN] can't serialize %s of %s %s for semantic index: %v", ct, entityType, entityID, err)
		return rec, nil
	}
	doc := domain.Document{
		ID:   domain.DocumentID(entityType, entityID, ct),
		Text: string(text),
		Metadata: map[string]string{
			"type":         "enrichment",
			"entity_type":  entityType,
			"entity_id":    entityID,
			"content_type": string(ct),
			"entity_name":  entityName,
		},
	}
	if err := k.index.Add(ctx, doc); err != nil {
		log.Printf("[WARN] semantic mirror of %s failed, queued for retry: %v", doc.ID, err)
	}
	return rec, nil
}

// Purge removes semantic documents whose records have all expired, returns the number removed
func (k *KnowledgeStore) Purge(ctx context.Context) (int, error) {
	ids, err := k.records.ExpiredDocumentIDs(ctx, k.now())
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := k.index.Delete(ctx, ids...)
	if err != nil {
		return 0, fmt.Errorf("purge expired documents: %w", err)
	}
	return n, nil
}
