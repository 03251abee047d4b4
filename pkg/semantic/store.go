// Package semantic implements the similarity index over (id, text, metadata) documents.
// Documents live in SQLite next to the structured records and are ranked by cosine similarity
// of embeddings, or by term overlap when no embedding provider is configured.
package semantic

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/domain"
)

//go:generate moq -out mocks/embedder.go -pkg mocks -skip-ensure -fmt goimports . Embedder
//go:generate moq -out mocks/document_store.go -pkg mocks -skip-ensure -fmt goimports . DocumentStore

// Embedder turns texts into vectors, one per text in the same order
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// DocumentStore persists documents
type DocumentStore interface {
	Upsert(ctx context.Context, docs []domain.StoredDocument) error
	All(ctx context.Context) ([]domain.StoredDocument, error)
	Delete(ctx context.Context, ids []string) (int, error)
	Count(ctx context.Context) (int, error)
}

// DefaultMaxPending bounds the retry queue of failed writes
const DefaultMaxPending = 1000

// Store is the semantic index. Failed Add calls are kept in a bounded queue and retried by Flush.
type Store struct {
	docs       DocumentStore
	embedder   Embedder
	maxPending int
	now        func() time.Time

	mu      sync.Mutex
	pending []domain.Document
}

// NewStore makes an index over docs, nil embedder selects lexical ranking
func NewStore(docs DocumentStore, embedder Embedder) *Store {
	return &Store{docs: docs, embedder: embedder, maxPending: DefaultMaxPending, now: time.Now}
}

// Add embeds and upserts docs by id. On failure the docs are queued for Flush and the error returned.
func (s *Store) Add(ctx context.Context, docs ...domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	if err := s.write(ctx, docs); err != nil {
		s.enqueue(docs)
		return err
	}
	return nil
}

func (s *Store) write(ctx context.Context, docs []domain.Document) error {
	stored := make([]domain.StoredDocument, len(docs))
	for i, d := range docs {
		stored[i] = domain.StoredDocument{Document: d, UpdatedAt: s.now()}
	}

	if s.embedder != nil {
		texts := make([]string, len(docs))
		for i, d := range docs {
			texts[i] = d.Text
		}
		vectors, err := s.embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed documents: %w", err)
		}
		if len(vectors) != len(docs) {
			return fmt.Errorf("embed documents: got %d vectors for %d texts", len(vectors), len(docs))
		}
		for i := range stored {
			stored[i].Embedding = vectors[i]
		}
	}

	if err := s.docs.Upsert(ctx, stored); err != nil {
		return fmt.Errorf("store documents: %w", err)
	}
	return nil
}

func (s *Store) enqueue(docs []domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make(map[string]bool, len(docs))
	for _, d := range docs {
		ids[d.ID] = true
	}
	kept := s.pending[:0]
	for _, d := range s.pending {
		if !ids[d.ID] {
			kept = append(kept, d)
		}
	}
	s.pending = append(kept, docs...)

	if over := len(s.pending) - s.maxPending; over > 0 {
		log.Printf("[WARN] semantic retry queue full, dropping %d oldest documents", over)
		s.pending = append([]domain.Document(nil), s.pending[over:]...)
	}
}

// Flush retries queued writes, returns the number of documents written
func (s *Store) Flush(ctx context.Context) (int, error) {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return 0, nil
	}
	if err := s.write(ctx, batch); err != nil {
		s.enqueue(batch)
		return 0, err
	}
	return len(batch), nil
}

// Pending returns the number of queued documents
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Delete removes docs by id, queued writes of those docs are discarded too
func (s *Store) Delete(ctx context.Context, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	s.mu.Lock()
	kept := s.pending[:0]
	for _, d := range s.pending {
		if !drop[d.ID] {
			kept = append(kept, d)
		}
	}
	s.pending = kept
	s.mu.Unlock()

	n, err := s.docs.Delete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete documents: %w", err)
	}
	return n, nil
}

// Count returns the number of indexed documents
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.docs.Count(ctx)
}

// Query returns up to k documents most similar to text, best first.
// Documents without any similarity to the query are not returned.
func (s *Store) Query(ctx context.Context, text string, k int) ([]domain.ScoredDocument, error) {
	if k <= 0 || strings.TrimSpace(text) == "" {
		return []domain.ScoredDocument{}, nil
	}
	all, err := s.docs.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	var queryVec []float32
	if s.embedder != nil {
		vectors, err := s.embedder.Embed(ctx, []string{text})
		switch {
		case err != nil:
			log.Printf("[WARN] embed query failed, using lexical ranking: %v", err)
		case len(vectors) == 1:
			queryVec = vectors[0]
		}
	}

	queryTerms := terms(text)
	res := make([]domain.ScoredDocument, 0, len(all))
	for _, d := range all {
		var score float64
		if len(queryVec) > 0 && len(d.Embedding) == len(queryVec) {
			score = cosine(queryVec, d.Embedding)
		} else {
			score = overlap(queryTerms, terms(d.Text))
		}
		if score <= 0 {
			continue
		}
		res = append(res, domain.ScoredDocument{Document: d.Document, Score: score})
	}

	// all is ordered by recency, stable sort keeps newer first on equal scores
	sort.SliceStable(res, func(i, j int) bool { return res[i].Score > res[j].Score })
	if len(res) > k {
		res = res[:k]
	}
	return res, nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// overlap is the share of distinct query terms present in the document
func overlap(query, doc map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	matched := 0
	for t := range query {
		if _, ok := doc[t]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(query))
}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "what": {}, "with": {}, "about": {},
	"from": {}, "this": {}, "that": {}, "how": {}, "any": {}, "has": {}, "have": {}, "tell": {},
	"me": {}, "is": {}, "of": {}, "in": {}, "on": {}, "to": {}, "an": {}, "a": {}, "do": {}, "does": {},
}

func terms(text string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	res := make(map[string]struct{}, len(words))
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		res[w] = struct{}{}
	}
	return res
}
