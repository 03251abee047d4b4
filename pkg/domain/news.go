package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// NewsItem is a single collected item from an upstream provider.
// Identity is (Source, ExternalID).
type NewsItem struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	ExternalID   string    `json:"external_id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Content      string    `json:"content,omitempty"`
	URL          string    `json:"url"`
	ImageURL     string    `json:"image_url,omitempty"`
	Category     string    `json:"category"`
	PublishedAt  time.Time `json:"published_at"`
	EmbeddingRef string    `json:"embedding_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryOther is assigned when no taxonomy keyword matches
const CategoryOther = "other"

// CollectSummary reports the outcome of one collection run
type CollectSummary struct {
	TotalCollected    int `json:"total_collected"`
	Stored            int `json:"stored"`
	SkippedDuplicates int `json:"skipped_duplicates"`
	Failed            int `json:"failed"`
}

// NewsRef is the short form of a news item used in chat responses
type NewsRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// Ref returns the short form of the item
func (n NewsItem) Ref() NewsRef {
	return NewsRef{ID: n.ID, Title: n.Title, Source: n.Source, URL: n.URL}
}

// NewsFilter narrows news listings, empty fields are ignored
type NewsFilter struct {
	Source   string
	Category string
	Limit    int
}
