package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/spacescope/pkg/chat"
	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/enrich"
	"github.com/umputun/spacescope/pkg/intel"
)

//go:generate moq -out mocks/news_service.go -pkg mocks -skip-ensure -fmt goimports . NewsService
//go:generate moq -out mocks/intel_service.go -pkg mocks -skip-ensure -fmt goimports . IntelService
//go:generate moq -out mocks/chat_service.go -pkg mocks -skip-ensure -fmt goimports . ChatService
//go:generate moq -out mocks/enrichment_service.go -pkg mocks -skip-ensure -fmt goimports . EnrichmentService
//go:generate moq -out mocks/status_source.go -pkg mocks -skip-ensure -fmt goimports . StatusSource

// NewsService lists and collects news
type NewsService interface {
	CollectAll(ctx context.Context) domain.CollectSummary
	GetRecentNews(ctx context.Context, filter domain.NewsFilter) ([]domain.NewsItem, error)
}

// IntelService runs pattern analysis and serves insights and alerts
type IntelService interface {
	AnalyzePatterns(ctx context.Context, days int) intel.AnalysisResult
	GetInsights(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, error)
	RecentInsights(ctx context.Context, minConfidence float64, limit int) ([]domain.Insight, error)
	GetInsightByID(ctx context.Context, id string) (*domain.InsightDetail, error)
	GetAlerts(ctx context.Context, unreadOnly bool, limit int) ([]domain.Alert, error)
	MarkAlertSeen(ctx context.Context, id string) (bool, error)
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

// ChatService answers questions
type ChatService interface {
	Chat(ctx context.Context, query string, history []domain.ChatMessage) chat.Response
	GetChatHistory(ctx context.Context, limit int) ([]domain.ChatConversation, error)
	GetSuggestedQuestions(ctx context.Context) []string
}

// EnrichmentService runs and serves entity enrichment
type EnrichmentService interface {
	TriggerEnrichment(ctx context.Context, entityType, entityID string) (enrich.LaunchResult, error)
	RunDailyEnrichment(ctx context.Context) enrich.RunSummary
	GetEnrichmentForLaunch(ctx context.Context, launchID string) (map[domain.ContentType]map[string]any, error)
}

// StatusSource reports health of the stores and background jobs
type StatusSource interface {
	Ping(ctx context.Context) error
	JobRuns(ctx context.Context) ([]domain.JobRun, error)
	IndexedDocuments(ctx context.Context) (int, error)
}

// Params groups server dependencies and settings
type Params struct {
	News        NewsService
	Intel       IntelService
	Chat        ChatService
	Enrichment  EnrichmentService
	Status      StatusSource
	Listen      string
	Timeout     time.Duration
	BaseURL     string
	AnalyzeDays int
	Version     string
	Debug       bool
}

// Server represents HTTP server instance
type Server struct {
	Params

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(params Params) *Server {
	if params.Timeout == 0 {
		params.Timeout = 30 * time.Second
	}
	if params.AnalyzeDays <= 0 {
		params.AnalyzeDays = 7
	}
	s := &Server{Params: params, router: routegroup.New(http.NewServeMux())}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.Listen)

	s.lock.Lock()
	// chat and analysis wait on the llm, the write timeout leaves room for that
	s.httpServer = &http.Server{
		Addr:              s.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.Timeout,
		ReadTimeout:       s.Timeout,
		WriteTimeout:      5 * s.Timeout,
		IdleTimeout:       s.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("spacescope", "umputun", s.Version))
	s.router.Use(rest.Ping)

	if s.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("GET /news", s.listNewsHandler)
		r.HandleFunc("POST /news/collect", s.collectNewsHandler)

		r.HandleFunc("GET /insights", s.listInsightsHandler)
		r.HandleFunc("GET /insights/{id}", s.getInsightHandler)
		r.HandleFunc("POST /insights/analyze", s.analyzeHandler)

		r.HandleFunc("GET /alerts", s.listAlertsHandler)
		r.HandleFunc("PUT /alerts/{id}/seen", s.markAlertSeenHandler)

		r.HandleFunc("POST /chat", s.chatHandler)
		r.HandleFunc("GET /chat/history", s.chatHistoryHandler)
		r.HandleFunc("GET /chat/suggestions", s.suggestionsHandler)

		r.HandleFunc("POST /enrichment/trigger/{type}/{id}", s.triggerEnrichmentHandler)
		r.HandleFunc("POST /enrichment/run", s.runEnrichmentHandler)
		r.HandleFunc("GET /enrichment/launch/{id}", s.launchEnrichmentHandler)
	})

	s.router.HandleFunc("GET /rss/insights", s.insightsRSSHandler)
}
