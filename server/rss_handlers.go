package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/umputun/spacescope/pkg/feed"
)

const (
	defaultRSSConfidence = 0.7
	defaultRSSLimit      = 50
)

// insightsRSSHandler serves the newest confident insights as RSS, min_confidence is optional
func (s *Server) insightsRSSHandler(w http.ResponseWriter, r *http.Request) {
	minConfidence := defaultRSSConfidence
	if v := r.URL.Query().Get("min_confidence"); v != "" {
		if c, err := strconv.ParseFloat(v, 64); err == nil && c >= 0 && c <= 1 {
			minConfidence = c
		}
	}

	insights, err := s.Intel.RecentInsights(r.Context(), minConfidence, defaultRSSLimit)
	if err != nil {
		log.Printf("[ERROR] failed to get insights for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(s.BaseURL).InsightsRSS(insights, minConfidence)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
