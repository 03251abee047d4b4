// Package chat answers questions over the collected news and detected patterns
// using retrieval from the semantic index.
package chat

import (
	"context"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/llm"
)

//go:generate moq -out mocks/retriever.go -pkg mocks -skip-ensure -fmt goimports . Retriever
//go:generate moq -out mocks/insight_source.go -pkg mocks -skip-ensure -fmt goimports . InsightSource
//go:generate moq -out mocks/news_lookup.go -pkg mocks -skip-ensure -fmt goimports . NewsLookup
//go:generate moq -out mocks/conversation_store.go -pkg mocks -skip-ensure -fmt goimports . ConversationStore

// Retriever returns the documents most similar to text
type Retriever interface {
	Query(ctx context.Context, text string, k int) ([]domain.ScoredDocument, error)
}

// InsightSource returns recent confident insights
type InsightSource interface {
	RecentConfident(ctx context.Context, minConfidence float64, limit int) ([]domain.Insight, error)
}

// NewsLookup resolves news items by id
type NewsLookup interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.NewsItem, error)
}

// ConversationStore keeps the chat log
type ConversationStore interface {
	Create(ctx context.Context, conv *domain.ChatConversation) error
	Recent(ctx context.Context, limit int) ([]domain.ChatConversation, error)
}

// retrieval and context limits
const (
	retrieveDocs      = 10
	contextInsights   = 5
	minInsightScore   = 0.6
	historyTurns      = 6
	maxSourcesUsed    = 5
	responseMaxTokens = 2048
)

// degraded replies
const (
	UnavailableResponse = "Chat is not available. Please configure an LLM api key."
	FailureResponse     = "Sorry, I couldn't answer that right now. Please try again later."
)

// Response is the answer to one chat query. ConversationID is nil when the exchange was not stored.
type Response struct {
	Response       string           `json:"response"`
	Sources        []domain.NewsRef `json:"sources"`
	ConversationID *string          `json:"conversation_id"`
}

// Engine runs retrieval augmented chat
type Engine struct {
	llm      *llm.Lazy
	index    Retriever
	insights InsightSource
	news     NewsLookup
	convs    ConversationStore
	now      func() time.Time
}

// NewEngine makes a chat engine
func NewEngine(client *llm.Lazy, index Retriever, insights InsightSource, news NewsLookup, convs ConversationStore) *Engine {
	return &Engine{llm: client, index: index, insights: insights, news: news, convs: convs, now: time.Now}
}

// Chat answers query with the prior turns of history. It never fails, upstream problems
// produce a degraded response.
func (e *Engine) Chat(ctx context.Context, query string, history []domain.ChatMessage) Response {
	client, err := e.llm.Get()
	if err != nil {
		return Response{Response: UnavailableResponse, Sources: []domain.NewsRef{}}
	}

	docs, err := e.index.Query(ctx, query, retrieveDocs)
	if err != nil {
		log.Printf("[WARN] semantic query failed, answering without documents: %v", err)
		docs = nil
	}
	insights, err := e.insights.RecentConfident(ctx, minInsightScore, contextInsights)
	if err != nil {
		log.Printf("[WARN] can't load insights for chat context: %v", err)
		insights = nil
	}

	msgs := priorTurns(history)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: userMessage(contextBlock(docs, insights), query)})
	reply, err := client.Complete(ctx, llm.Request{System: systemPrompt, Messages: msgs, MaxTokens: responseMaxTokens})
	if err != nil {
		log.Printf("[WARN] chat completion failed: %v", err)
		return Response{Response: FailureResponse, Sources: []domain.NewsRef{}}
	}

	used := make([]string, 0, maxSourcesUsed)
	for i := 0; i < len(docs) && i < maxSourcesUsed; i++ {
		used = append(used, docs[i].ID)
	}

	res := Response{Response: reply, Sources: []domain.NewsRef{}}
	conv := domain.ChatConversation{UserQuery: query, AssistantResponse: reply, SourcesUsed: used, CreatedAt: e.now()}
	if err := e.convs.Create(ctx, &conv); err != nil {
		log.Printf("[WARN] can't store chat conversation: %v", err)
	} else {
		res.ConversationID = &conv.ID
	}

	// documents not backed by a news item, like enrichment records, have no source entry
	items, err := e.news.GetByIDs(ctx, used)
	if err != nil {
		log.Printf("[WARN] can't resolve chat sources: %v", err)
		return res
	}
	for _, item := range items {
		res.Sources = append(res.Sources, item.Ref())
	}
	return res
}

// priorTurns keeps the last turns with a known role and some content
func priorTurns(history []domain.ChatMessage) []llm.Message {
	valid := make([]llm.Message, 0, len(history))
	for _, m := range history {
		if m.Content == "" || (m.Role != domain.RoleUser && m.Role != domain.RoleAssistant) {
			continue
		}
		valid = append(valid, llm.Message{Role: m.Role, Content: m.Content})
	}
	if len(valid) > historyTurns {
		valid = valid[len(valid)-historyTurns:]
	}
	return valid
}
