package chat

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/domain"
)

const defaultHistoryLimit = 20

// suggestion settings
const (
	maxSuggestions       = 6
	suggestionConfidence = 0.7
)

var baseSuggestions = []string{
	"What are the latest discoveries from the James Webb Space Telescope?",
	"Are there any new findings about exoplanet atmospheres?",
	"What connections have been found between recent observations?",
	"What are the emerging trends in space science this week?",
	"Are there any research gaps that need attention?",
}

// GetChatHistory returns stored conversations, newest first
func (e *Engine) GetChatHistory(ctx context.Context, limit int) ([]domain.ChatConversation, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	convs, err := e.convs.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}
	return convs, nil
}

// GetSuggestedQuestions returns starter questions, led by the latest confident insight if there is one
func (e *Engine) GetSuggestedQuestions(ctx context.Context) []string {
	res := make([]string, 0, maxSuggestions)
	latest, err := e.insights.RecentConfident(ctx, suggestionConfidence, 1)
	switch {
	case err != nil:
		log.Printf("[WARN] can't load insight for suggestions: %v", err)
	case len(latest) > 0:
		res = append(res, "Tell me more about: "+latest[0].Title)
	}
	for _, s := range baseSuggestions {
		if len(res) == maxSuggestions {
			break
		}
		res = append(res, s)
	}
	return res
}
