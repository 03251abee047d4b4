// Package enrich finds notable upcoming launches, researches them and keeps synthesized knowledge about them.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/domain"
)

//go:generate moq -out mocks/launch_source.go -pkg mocks -skip-ensure -fmt goimports . LaunchSource

// LaunchSource provides candidate launches
type LaunchSource interface {
	Upcoming(ctx context.Context, limit int) ([]domain.Launch, error)
	Launch(ctx context.Context, id string) (*domain.Launch, error)
}

// ContentSynthesizer produces structured content for an entity
type ContentSynthesizer interface {
	Synthesize(ctx context.Context, entityName string, ct domain.ContentType) SynthesisResult
}

// ContentStatus is the outcome of one content type of an enrichment
type ContentStatus string

// content statuses
const (
	StatusCreated ContentStatus = "created"
	StatusCached  ContentStatus = "cached"
	StatusError   ContentStatus = "error"
	StatusEmpty   ContentStatus = "empty"
)

// ContentResult reports one content type of an enrichment
type ContentResult struct {
	Status  ContentStatus  `json:"status"`
	Content map[string]any `json:"content,omitempty"`
	Sources []string       `json:"sources,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// LaunchResult reports the enrichment of one launch
type LaunchResult struct {
	LaunchID string                               `json:"launch_id"`
	Name     string                               `json:"name"`
	Score    int                                  `json:"score"`
	Tags     []string                             `json:"tags"`
	Results  map[domain.ContentType]ContentResult `json:"results"`
}

// Created reports whether any content was stored
func (r LaunchResult) Created() bool {
	for _, c := range r.Results {
		if c.Status == StatusCreated {
			return true
		}
	}
	return false
}

// RunSummary reports a daily enrichment run
type RunSummary struct {
	LaunchesProcessed int      `json:"launches_processed"`
	LaunchesEnriched  int      `json:"launches_enriched"`
	Errors            []string `json:"errors"`
}

// String returns a one-line form for job records
func (s RunSummary) String() string {
	return fmt.Sprintf("processed %d, enriched %d, errors %d", s.LaunchesProcessed, s.LaunchesEnriched, len(s.Errors))
}

// EnricherConfig holds daily run limits
type EnricherConfig struct {
	UpcomingLimit int // candidates fetched per run
	MaxPerRun     int // enrichment attempts per run
}

// Enricher runs launch enrichment
type Enricher struct {
	launches  LaunchSource
	synth     ContentSynthesizer
	knowledge *KnowledgeStore
	cfg       EnricherConfig
}

// NewEnricher makes an enricher, zero limits select 50 candidates and 5 attempts
func NewEnricher(launches LaunchSource, synth ContentSynthesizer, knowledge *KnowledgeStore, cfg EnricherConfig) *Enricher {
	if cfg.UpcomingLimit <= 0 {
		cfg.UpcomingLimit = 50
	}
	if cfg.MaxPerRun <= 0 {
		cfg.MaxPerRun = 5
	}
	return &Enricher{launches: launches, synth: synth, knowledge: knowledge, cfg: cfg}
}

// contentTypes returns what to synthesize for a launch with the given tags
func contentTypes(tags []string) []domain.ContentType {
	res := []domain.ContentType{domain.ContentMissionObjectives, domain.ContentHistoricalContext, domain.ContentTechnicalDetails}
	for _, t := range tags {
		if t == TagCrewed {
			return append([]domain.ContentType{domain.ContentCrewProfiles}, res...)
		}
	}
	return res
}

// RunDailyEnrichment enriches the most notable upcoming launches without fresh knowledge.
// It never fails, problems are reported in the summary.
func (e *Enricher) RunDailyEnrichment(ctx context.Context) RunSummary {
	summary := RunSummary{Errors: []string{}}

	launches, err := e.launches.Upcoming(ctx, e.cfg.UpcomingLimit)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("daily enrichment failed: %v", err))
		return summary
	}

	type candidate struct {
		launch domain.Launch
		score  int
	}
	candidates := make([]candidate, 0, len(launches))
	for _, l := range launches {
		if score := Score(l.Text()); score > 0 {
			candidates = append(candidates, candidate{launch: l, score: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	for _, c := range candidates {
		if summary.LaunchesProcessed >= e.cfg.MaxPerRun {
			break
		}
		if c.launch.ID == "" {
			continue
		}
		fresh, err := e.knowledge.HasFresh(ctx, domain.EntityLaunch, c.launch.ID)
		if err != nil {
			log.Printf("[WARN] can't check enrichment of %s: %v", c.launch.ID, err)
		}
		if fresh {
			continue
		}

		summary.LaunchesProcessed++
		res, err := e.EnrichLaunch(ctx, c.launch)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("failed to enrich %s: %v", c.launch.Name, err))
			continue
		}
		for _, ct := range contentTypes(res.Tags) {
			if r := res.Results[ct]; r.Status == StatusError {
				summary.Errors = append(summary.Errors, fmt.Sprintf("%s %s: %s", c.launch.Name, ct, r.Error))
			}
		}
		if res.Created() {
			summary.LaunchesEnriched++
		}
	}

	log.Printf("[INFO] daily enrichment done, %s", summary)
	return summary
}

// EnrichLaunch synthesizes every applicable content type of a launch, content types with
// fresh records are reported as cached and not synthesized again
func (e *Enricher) EnrichLaunch(ctx context.Context, launch domain.Launch) (LaunchResult, error) {
	text := launch.Text()
	res := LaunchResult{
		LaunchID: launch.ID,
		Name:     launch.Name,
		Score:    Score(text),
		Tags:     Tags(text),
		Results:  map[domain.ContentType]ContentResult{},
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}

	existing, err := e.knowledge.GetFresh(ctx, domain.EntityLaunch, launch.ID)
	if err != nil {
		return res, fmt.Errorf("load enrichment of %s: %w", launch.ID, err)
	}

	for _, ct := range contentTypes(res.Tags) {
		if content, ok := existing[ct]; ok {
			res.Results[ct] = ContentResult{Status: StatusCached, Content: content}
			continue
		}

		synth := e.synth.Synthesize(ctx, launch.Name, ct)
		if synth.Err != nil {
			log.Printf("[WARN] synthesis of %s for %s failed: %v", ct, launch.Name, synth.Err)
			res.Results[ct] = ContentResult{Status: StatusError, Error: synth.Err.Error()}
			continue
		}
		if len(synth.Content) == 0 {
			res.Results[ct] = ContentResult{Status: StatusEmpty}
			continue
		}

		if _, err := e.knowledge.Put(ctx, domain.EntityLaunch, launch.ID, launch.Name, ct, synth.Content, synth.Sources); err != nil {
			log.Printf("[WARN] %v", err)
			res.Results[ct] = ContentResult{Status: StatusError, Error: err.Error()}
			continue
		}
		res.Results[ct] = ContentResult{Status: StatusCreated, Content: synth.Content, Sources: synth.Sources}
	}

	log.Printf("[DEBUG] enriched launch %s (%s), score %d", launch.ID, launch.Name, res.Score)
	return res, nil
}

// ErrUnsupportedEntity is returned for entity types enrichment does not handle
var ErrUnsupportedEntity = errors.New("unsupported entity type")

// TriggerEnrichment enriches a single entity on demand. Only launches are supported.
func (e *Enricher) TriggerEnrichment(ctx context.Context, entityType, entityID string) (LaunchResult, error) {
	if entityType != domain.EntityLaunch {
		return LaunchResult{}, fmt.Errorf("%w: %s", ErrUnsupportedEntity, entityType)
	}
	launch, err := e.launches.Launch(ctx, entityID)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("get launch %s: %w", entityID, err)
	}
	return e.EnrichLaunch(ctx, *launch)
}

// GetEnrichmentForLaunch returns fresh content of a launch by content type
func (e *Enricher) GetEnrichmentForLaunch(ctx context.Context, launchID string) (map[domain.ContentType]map[string]any, error) {
	return e.knowledge.GetFresh(ctx, domain.EntityLaunch, launchID)
}

// Purge drops semantic documents of expired knowledge
func (e *Enricher) Purge(ctx context.Context) (int, error) {
	return e.knowledge.Purge(ctx)
}

// waitOrDone sleeps for d unless ctx is canceled first
func waitOrDone(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
