// Package scheduler runs the background jobs on cron schedules and records the outcome of every run.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/enrich"
	"github.com/umputun/spacescope/pkg/intel"
)

//go:generate moq -out mocks/collector.go -pkg mocks -skip-ensure -fmt goimports . Collector
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/index_flusher.go -pkg mocks -skip-ensure -fmt goimports . IndexFlusher
//go:generate moq -out mocks/job_recorder.go -pkg mocks -skip-ensure -fmt goimports . JobRecorder

// Collector gathers news from all providers
type Collector interface {
	CollectAll(ctx context.Context) domain.CollectSummary
}

// Analyzer detects patterns in recent news
type Analyzer interface {
	AnalyzePatterns(ctx context.Context, days int) intel.AnalysisResult
}

// Enricher runs the daily enrichment and drops expired semantic documents
type Enricher interface {
	RunDailyEnrichment(ctx context.Context) enrich.RunSummary
	Purge(ctx context.Context) (int, error)
}

// IndexFlusher retries queued semantic index writes
type IndexFlusher interface {
	Flush(ctx context.Context) (int, error)
}

// JobRecorder keeps the last outcome of each job
type JobRecorder interface {
	Record(ctx context.Context, name, summary string, finishedAt time.Time) error
}

// job names
const (
	JobEnrichment = "enrichment"
	JobCollect    = "collect"
	JobAnalyze    = "analyze"
)

// disabled is the schedule value turning a job off
const disabled = "-"

// Params groups scheduler dependencies and schedules
type Params struct {
	Collector      Collector
	Analyzer       Analyzer
	Enricher       Enricher
	Index          IndexFlusher
	Recorder       JobRecorder
	EnrichmentCron string
	CollectCron    string
	AnalyzeCron    string
	AnalyzeDays    int
}

// Scheduler triggers the jobs. Jobs may overlap, each one is safe to run next to the others.
type Scheduler struct {
	Params
	cron   *cron.Cron
	jobs   map[string]func(ctx context.Context) string
	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time
}

// NewScheduler makes a scheduler, nothing runs until Start
func NewScheduler(params Params) *Scheduler {
	if params.AnalyzeDays <= 0 {
		params.AnalyzeDays = 7
	}
	s := &Scheduler{Params: params, now: time.Now}
	s.jobs = map[string]func(ctx context.Context) string{
		JobEnrichment: s.enrichment,
		JobCollect:    s.collect,
		JobAnalyze:    s.analyze,
	}
	return s
}

// Start registers the enabled jobs and starts the cron runner
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron = cron.New(cron.WithLogger(cronLogger{}), cron.WithChain(cron.Recover(cronLogger{})))

	for _, j := range []struct{ name, spec string }{
		{JobEnrichment, s.EnrichmentCron}, {JobCollect, s.CollectCron}, {JobAnalyze, s.AnalyzeCron},
	} {
		spec := strings.TrimSpace(j.spec)
		if spec == "" || spec == disabled {
			log.Printf("[INFO] job %s disabled", j.name)
			continue
		}
		name := j.name
		if _, err := s.cron.AddFunc(spec, func() { s.run(s.ctx, name) }); err != nil {
			s.cancel()
			return fmt.Errorf("schedule %s job %q: %w", name, spec, err)
		}
		log.Printf("[INFO] job %s scheduled at %q", name, spec)
	}

	s.cron.Start()
	log.Printf("[INFO] scheduler started")
	return nil
}

// Stop cancels running jobs and waits for them to finish
func (s *Scheduler) Stop() {
	log.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	log.Printf("[INFO] scheduler stopped")
}

// RunOnce runs the named job synchronously and returns its summary
func (s *Scheduler) RunOnce(ctx context.Context, name string) (string, error) {
	if _, ok := s.jobs[name]; !ok {
		return "", fmt.Errorf("unknown job %q", name)
	}
	return s.run(ctx, name), nil
}

func (s *Scheduler) run(ctx context.Context, name string) string {
	st := s.now()
	log.Printf("[INFO] job %s started", name)
	summary := s.jobs[name](ctx)
	log.Printf("[INFO] job %s finished in %v: %s", name, s.now().Sub(st).Round(time.Millisecond), summary)

	// recorded even when the job context is gone
	if err := s.Recorder.Record(context.WithoutCancel(ctx), name, summary, s.now()); err != nil {
		log.Printf("[WARN] can't record %s job run: %v", name, err)
	}
	return summary
}

// enrichment runs the daily batch, then retries queued index writes and drops expired documents
func (s *Scheduler) enrichment(ctx context.Context) string {
	summary := s.Enricher.RunDailyEnrichment(ctx).String()

	flushed, err := s.Index.Flush(ctx)
	if err != nil {
		log.Printf("[WARN] semantic retry queue flush incomplete: %v", err)
	}
	purged, err := s.Enricher.Purge(ctx)
	if err != nil {
		log.Printf("[WARN] can't purge expired semantic documents: %v", err)
	}
	return fmt.Sprintf("%s, %d reindexed, %d purged", summary, flushed, purged)
}

func (s *Scheduler) collect(ctx context.Context) string {
	r := s.Collector.CollectAll(ctx)
	return fmt.Sprintf("collected %d, stored %d, duplicates %d, failed %d",
		r.TotalCollected, r.Stored, r.SkippedDuplicates, r.Failed)
}

func (s *Scheduler) analyze(ctx context.Context) string {
	r := s.Analyzer.AnalyzePatterns(ctx, s.AnalyzeDays)
	switch {
	case r.Error != "":
		return "analysis failed: " + r.Error
	case r.Message != "":
		return r.Message
	default:
		return fmt.Sprintf("analyzed %d news items, %d patterns", r.AnalyzedNewsCount, r.PatternsFound)
	}
}

// cronLogger sends cron messages to lgr
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Printf("[DEBUG] cron %s %v", msg, keysAndValues)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Printf("[ERROR] cron %s %v: %v", msg, keysAndValues, err)
}
