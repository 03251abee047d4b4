package domain

import "time"

// chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one prior turn of a conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatConversation is a persisted question and answer pair
type ChatConversation struct {
	ID                string    `json:"id"`
	UserQuery         string    `json:"user_query"`
	AssistantResponse string    `json:"assistant_response"`
	SourcesUsed       []string  `json:"sources_used"`
	CreatedAt         time.Time `json:"created_at"`
}

// Document is a semantic index entry, ID is shared with the owning record
type Document struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata"`
}

// ScoredDocument is a document returned by a similarity query
type ScoredDocument struct {
	Document
	Score float64 `json:"score"`
}

// JobRun records the last outcome of a scheduled job
type JobRun struct {
	Name       string    `json:"name"`
	FinishedAt time.Time `json:"finished_at"`
	Summary    string    `json:"summary"`
}

// StoredDocument is a document with its embedding as persisted by the semantic index
type StoredDocument struct {
	Document
	Embedding []float32 `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
