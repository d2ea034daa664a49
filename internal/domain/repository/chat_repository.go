package repository

import (
	"context"

	"scrappix-admin/internal/domain/entity"
)

type ChatRepository interface {
	// ListMessages returns all messages of a chat ordered by timestamp
	// ascending.
	ListMessages(ctx context.Context, chatID string) ([]*entity.ChatMessage, error)
}
