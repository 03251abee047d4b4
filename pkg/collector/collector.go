// Package collector pulls space science news from upstream providers, stores new items once
// and mirrors them into the semantic index.
package collector

import (
	"context"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/news_store.go -pkg mocks -skip-ensure -fmt goimports . NewsStore
//go:generate moq -out mocks/index.go -pkg mocks -skip-ensure -fmt goimports . Index

// Provider fetches normalized items from one upstream source
type Provider interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.NewsItem, error)
}

// NewsStore persists news items
type NewsStore interface {
	Create(ctx context.Context, item *domain.NewsItem) (bool, error)
	SetEmbeddingRef(ctx context.Context, id, ref string) error
	List(ctx context.Context, filter domain.NewsFilter) ([]domain.NewsItem, error)
}

// Index is the semantic index news items are mirrored into
type Index interface {
	Add(ctx context.Context, docs ...domain.Document) error
}

// Collector runs providers and stores their items
type Collector struct {
	store     NewsStore
	index     Index
	providers []Provider
	now       func() time.Time
}

// New makes a collector over providers, run in the given order
func New(store NewsStore, index Index, providers ...Provider) *Collector {
	return &Collector{store: store, index: index, providers: providers, now: time.Now}
}

// CollectAll fetches every provider and stores new items. A failing provider contributes nothing,
// the run itself never fails.
func (c *Collector) CollectAll(ctx context.Context) domain.CollectSummary {
	var all []domain.NewsItem
	for _, p := range c.providers {
		items, err := p.Fetch(ctx)
		if err != nil {
			log.Printf("[WARN] provider %s failed: %v", p.Name(), err)
			continue
		}
		log.Printf("[DEBUG] provider %s returned %d items", p.Name(), len(items))
		all = append(all, items...)
	}

	summary := domain.CollectSummary{TotalCollected: len(all)}
	for i := range all {
		item := &all[i]
		if ctx.Err() != nil {
			summary.Failed += len(all) - i
			break
		}
		c.prepare(item)

		created, err := c.store.Create(ctx, item)
		if err != nil {
			log.Printf("[WARN] can't store %s item %q: %v", item.Source, item.Title, err)
			summary.Failed++
			continue
		}
		if !created {
			summary.SkippedDuplicates++
			continue
		}
		summary.Stored++
		c.mirror(ctx, item)
	}

	log.Printf("[INFO] news collected: %d total, %d stored, %d duplicates, %d failed",
		summary.TotalCollected, summary.Stored, summary.SkippedDuplicates, summary.Failed)
	return summary
}

// prepare fills identity and dates of items providers left empty
func (c *Collector) prepare(item *domain.NewsItem) {
	if item.ExternalID == "" {
		item.ExternalID = contentHash(item.Source, item.Title)
	}
	if item.Category == "" {
		item.Category = domain.CategoryOther
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = c.now().UTC()
	}
}

// mirror adds the stored item to the semantic index and records the reference on success
func (c *Collector) mirror(ctx context.Context, item *domain.NewsItem) {
	doc := domain.Document{
		ID:   item.ID,
		Text: item.Title + "\n\n" + item.Summary,
		Metadata: map[string]string{
			"source":   item.Source,
			"category": item.Category,
			"title":    item.Title,
			"date":     item.PublishedAt.Format(time.RFC3339),
		},
	}
	if err := c.index.Add(ctx, doc); err != nil {
		log.Printf("[WARN] semantic mirror of news %s failed, queued for retry: %v", item.ID, err)
		return
	}
	if err := c.store.SetEmbeddingRef(ctx, item.ID, item.ID); err != nil {
		log.Printf("[WARN] can't set embedding ref of %s: %v", item.ID, err)
		return
	}
	item.EmbeddingRef = item.ID
}

// GetRecentNews returns up to limit stored items, newest published first
func (c *Collector) GetRecentNews(ctx context.Context, filter domain.NewsFilter) ([]domain.NewsItem, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return c.store.List(ctx, filter)
}
