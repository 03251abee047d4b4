package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/enrich"
)

const maxListLimit = 100

type chatRequest struct {
	Query   string               `json:"query"`
	History []domain.ChatMessage `json:"conversation_history"`
}

// statusHandler returns server status with the last run of each job
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := map[string]any{
		"status":  "ok",
		"version": s.Version,
		"time":    time.Now().UTC(),
	}
	if err := s.Status.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
	}
	if runs, err := s.Status.JobRuns(ctx); err == nil {
		status["jobs"] = runs
	} else {
		log.Printf("[WARN] can't load job runs: %v", err)
	}
	if count, err := s.Status.IndexedDocuments(ctx); err == nil {
		status["indexed_documents"] = count
	}
	renderJSON(w, r, http.StatusOK, status)
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Intel.GetDashboardStats(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get dashboard stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

func (s *Server) listNewsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.NewsFilter{Source: q.Get("source"), Category: q.Get("category"), Limit: queryLimit(r, 50)}
	items, err := s.News.GetRecentNews(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to get news: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

func (s *Server) collectNewsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.News.CollectAll(r.Context()))
}

func (s *Server) listInsightsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.InsightFilter{Category: q.Get("category"), Limit: queryLimit(r, 20)}
	if t := q.Get("type"); t != "" {
		filter.Type = domain.InsightType(t)
	}
	insights, err := s.Intel.GetInsights(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to get insights: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, insights)
}

func (s *Server) getInsightHandler(w http.ResponseWriter, r *http.Request) {
	insight, err := s.Intel.GetInsightByID(r.Context(), r.PathValue("id"))
	if err != nil {
		renderServiceError(w, r, "get insight", err)
		return
	}
	renderJSON(w, r, http.StatusOK, insight)
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	days := s.AnalyzeDays
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			renderError(w, r, fmt.Errorf("invalid days %q", v), http.StatusBadRequest)
			return
		}
		days = n
	}
	renderJSON(w, r, http.StatusOK, s.Intel.AnalyzePatterns(r.Context(), days))
}

func (s *Server) listAlertsHandler(w http.ResponseWriter, r *http.Request) {
	unreadOnly := true
	if v := r.URL.Query().Get("unread_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid unread_only %q", v), http.StatusBadRequest)
			return
		}
		unreadOnly = b
	}
	alerts, err := s.Intel.GetAlerts(r.Context(), unreadOnly, queryLimit(r, 20))
	if err != nil {
		log.Printf("[ERROR] failed to get alerts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, alerts)
}

func (s *Server) markAlertSeenHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ok, err := s.Intel.MarkAlertSeen(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to mark alert %s seen: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !ok {
		renderError(w, r, fmt.Errorf("alert %s: %w", id, domain.ErrNotFound), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "seen": true})
}

func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		renderError(w, r, errors.New("query is required"), http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.Chat.Chat(r.Context(), req.Query, req.History))
}

func (s *Server) chatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	convs, err := s.Chat.GetChatHistory(r.Context(), queryLimit(r, 20))
	if err != nil {
		log.Printf("[ERROR] failed to get chat history: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, convs)
}

func (s *Server) suggestionsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{"questions": s.Chat.GetSuggestedQuestions(r.Context())})
}

func (s *Server) triggerEnrichmentHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.Enrichment.TriggerEnrichment(r.Context(), r.PathValue("type"), r.PathValue("id"))
	if err != nil {
		renderServiceError(w, r, "trigger enrichment", err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) runEnrichmentHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.Enrichment.RunDailyEnrichment(r.Context()))
}

func (s *Server) launchEnrichmentHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	content, err := s.Enrichment.GetEnrichmentForLaunch(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, "get launch enrichment", err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"launch_id": id, "content": content})
}

// queryLimit reads the limit parameter, falling back to def for missing or invalid values
func queryLimit(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 1 {
		return def
	}
	return min(n, maxListLimit)
}

// renderServiceError maps not found and unsupported input to 4xx, anything else is logged as 500
func renderServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, enrich.ErrUnsupportedEntity):
		renderError(w, r, err, http.StatusBadRequest)
	default:
		log.Printf("[ERROR] %s failed: %v", op, err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
