package collector

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/content"
	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/feed"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Extractor pulls the article text of a page
type Extractor interface {
	Extract(ctx context.Context, url string) (content.Article, error)
}

// RSSProvider reads a configured RSS or Atom feed
type RSSProvider struct {
	name      string
	url       string
	parser    *feed.Parser
	extractor Extractor // optional, fills content of entries without one
}

// NewRSSProvider makes a provider storing items under source name
func NewRSSProvider(name, url string, parser *feed.Parser, extractor Extractor) *RSSProvider {
	return &RSSProvider{name: name, url: url, parser: parser, extractor: extractor}
}

// Name of the provider
func (p *RSSProvider) Name() string { return p.name }

// Fetch returns feed entries as news items
func (p *RSSProvider) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	entries, err := p.parser.Parse(ctx, p.url)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", p.name, err)
	}

	items := make([]domain.NewsItem, 0, len(entries))
	for _, e := range entries {
		body := e.Content
		if body == "" && p.extractor != nil && e.Link != "" {
			article, err := p.extractor.Extract(ctx, e.Link)
			if err != nil {
				log.Printf("[DEBUG] can't extract %s: %v", e.Link, err)
			} else {
				body = article.Text
			}
		}
		text := content.PlainText(body)
		summary := e.Description
		if summary == "" {
			summary = text
		}
		items = append(items, domain.NewsItem{
			Source:      p.name,
			ExternalID:  e.GUID,
			Title:       content.PlainText(e.Title),
			Summary:     summarize(summary),
			Content:     text,
			URL:         e.Link,
			ImageURL:    e.ImageURL,
			Category:    Categorize(e.Title, e.Description, e.Categories...),
			PublishedAt: e.Published.UTC(),
		})
	}
	return items, nil
}
