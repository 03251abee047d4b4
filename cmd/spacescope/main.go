package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/spacescope/pkg/chat"
	"github.com/umputun/spacescope/pkg/collector"
	"github.com/umputun/spacescope/pkg/config"
	"github.com/umputun/spacescope/pkg/content"
	"github.com/umputun/spacescope/pkg/enrich"
	"github.com/umputun/spacescope/pkg/feed"
	"github.com/umputun/spacescope/pkg/intel"
	"github.com/umputun/spacescope/pkg/launches"
	"github.com/umputun/spacescope/pkg/llm"
	"github.com/umputun/spacescope/pkg/repository"
	"github.com/umputun/spacescope/pkg/research"
	"github.com/umputun/spacescope/pkg/scheduler"
	"github.com/umputun/spacescope/pkg/semantic"
	"github.com/umputun/spacescope/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	RunOnce string `long:"run-once" choice:"collect" choice:"analyze" choice:"enrichment" description:"run a single job and exit"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// days of APOD entries and DONKI notifications requested per collection
const providerDays = 7

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting spacescope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and serves until ctx is canceled, or runs one job with --run-once
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	setupLog(opts.Debug, opts.NoColor, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	embedder, err := semantic.NewEmbedder(semantic.EmbedderConfig{
		Provider: cfg.Embedding.Provider,
		Endpoint: cfg.Embedding.Endpoint,
		APIKey:   cfg.Embedding.APIKey,
		Model:    cfg.Embedding.Model,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	index := semantic.NewStore(repos.Document, embedder)

	llmClient := llm.NewLazy(llm.Config{
		Provider:          cfg.LLM.Provider,
		Endpoint:          cfg.LLM.Endpoint,
		APIKey:            cfg.LLM.APIKey,
		Model:             cfg.LLM.Model,
		Temperature:       cfg.LLM.Temperature,
		MaxTokens:         cfg.LLM.MaxTokens,
		Timeout:           cfg.LLM.Timeout,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	})
	if !cfg.LLMEnabled() {
		log.Printf("[WARN] llm api key is not set, synthesis, analysis and chat are disabled")
	}

	search := research.NewClient(research.Config{
		Endpoint: cfg.Search.Endpoint,
		Retries:  cfg.Search.Retries,
		Backoff:  cfg.Search.Backoff,
		Timeout:  cfg.Search.Timeout,
	})
	knowledge := enrich.NewKnowledgeStore(repos.Enrichment, index, cfg.Enrichment.TTL)
	enricher := enrich.NewEnricher(
		launches.NewClient(cfg.Launches.Endpoint, cfg.Launches.Timeout),
		enrich.NewSynthesizer(llmClient, search, cfg.Search.InterQueryDelay),
		knowledge,
		enrich.EnricherConfig{UpcomingLimit: cfg.Launches.UpcomingLimit, MaxPerRun: cfg.Enrichment.MaxPerRun},
	)

	news := collector.New(repos.News, index, providers(cfg.Sources)...)
	analyzer := intel.NewAnalyzer(repos.News, repos.Insight, llmClient)
	engine := chat.NewEngine(llmClient, index, repos.Insight, repos.News, repos.Chat)

	sched := scheduler.NewScheduler(scheduler.Params{
		Collector:      news,
		Analyzer:       analyzer,
		Enricher:       enricher,
		Index:          index,
		Recorder:       repos.JobRun,
		EnrichmentCron: cfg.Schedule.Enrichment,
		CollectCron:    cfg.Schedule.Collect,
		AnalyzeCron:    cfg.Schedule.Analyze,
		AnalyzeDays:    cfg.Schedule.AnalyzeDays,
	})

	if opts.RunOnce != "" {
		summary, err := sched.RunOnce(ctx, opts.RunOnce)
		if err != nil {
			return fmt.Errorf("failed to run %s: %w", opts.RunOnce, err)
		}
		log.Printf("[INFO] %s: %s", opts.RunOnce, summary)
		return nil
	}

	srv := server.New(server.Params{
		News:        news,
		Intel:       analyzer,
		Chat:        engine,
		Enrichment:  enricher,
		Status:      &statusAdapter{repos: repos, index: index},
		Listen:      cfg.Server.Listen,
		Timeout:     cfg.Server.Timeout,
		BaseURL:     cfg.Server.BaseURL,
		AnalyzeDays: cfg.Schedule.AnalyzeDays,
		Version:     revision,
		Debug:       opts.Debug,
	})

	g, gctx := errgroup.WithContext(ctx)
	if err := sched.Start(gctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	g.Go(func() error {
		<-gctx.Done()
		sched.Stop()
		return nil
	})
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// providers makes the enabled news providers, extra feeds go last
func providers(cfg config.SourcesConfig) []collector.Provider {
	var res []collector.Provider
	if cfg.Webb {
		res = append(res, collector.NewWebbProvider(cfg.PageSize, cfg.Timeout))
	}
	if cfg.Images {
		res = append(res, collector.NewImagesProvider("", cfg.PageSize, cfg.Timeout))
	}
	if cfg.APOD {
		res = append(res, collector.NewAPODProvider(cfg.NASAAPIKey, providerDays, cfg.Timeout))
	}
	if cfg.DONKI {
		res = append(res, collector.NewDONKIProvider(cfg.NASAAPIKey, providerDays, cfg.Timeout))
	}
	if len(cfg.Feeds) == 0 {
		return res
	}

	parser := feed.NewParser(cfg.Timeout, "spacescope/"+revision)
	var extractor collector.Extractor
	if cfg.ExtractContent {
		extractor = content.NewHTTPExtractor(cfg.Timeout)
	}
	for _, f := range cfg.Feeds {
		res = append(res, collector.NewRSSProvider(f.Name, f.URL, parser, extractor))
	}
	return res
}

// secrets returns configured api keys to be masked in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.LLM.APIKey, cfg.Embedding.APIKey, cfg.Sources.NASAAPIKey} {
		if s != "" && s != "DEMO_KEY" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

