package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/spacescope/pkg/domain"
)

// ChatRepository handles the chat log
type ChatRepository struct {
	db *sqlx.DB
}

type chatSQL struct {
	ID                string     `db:"id"`
	UserQuery         string     `db:"user_query"`
	AssistantResponse string     `db:"assistant_response"`
	SourcesUsed       stringsSQL `db:"sources_used"`
	CreatedAt         time.Time  `db:"created_at"`
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create appends a conversation, ID and CreatedAt are assigned when empty
func (r *ChatRepository) Create(ctx context.Context, conv *domain.ChatConversation) error {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now()
	}
	row := chatSQL{
		ID:                conv.ID,
		UserQuery:         conv.UserQuery,
		AssistantResponse: conv.AssistantResponse,
		SourcesUsed:       stringsSQL(conv.SourcesUsed),
		CreatedAt:         utc(conv.CreatedAt),
	}
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO chat_conversations (id, user_query, assistant_response, sources_used, created_at)
			VALUES (:id, :user_query, :assistant_response, :sources_used, :created_at)`, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("create chat conversation: %w", err)
	}
	return nil
}

// Recent returns conversations newest first
func (r *ChatRepository) Recent(ctx context.Context, limit int) ([]domain.ChatConversation, error) {
	var rows []chatSQL
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, user_query, assistant_response, sources_used, created_at
		FROM chat_conversations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("get chat history: %w", err)
	}
	res := make([]domain.ChatConversation, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ChatConversation{
			ID:                row.ID,
			UserQuery:         row.UserQuery,
			AssistantResponse: row.AssistantResponse,
			SourcesUsed:       []string(row.SourcesUsed),
			CreatedAt:         row.CreatedAt,
		})
	}
	return res, nil
}
