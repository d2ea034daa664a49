package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/pkg/errors"
)

type fakeChatRepo struct {
	messages map[string][]*entity.ChatMessage
}

func (r *fakeChatRepo) ListMessages(ctx context.Context, chatID string) ([]*entity.ChatMessage, error) {
	messages, ok := r.messages[chatID]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return messages, nil
}

func TestGetTranscriptDecoratesSenderAvatars(t *testing.T) {
	base := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	chatRepo := &fakeChatRepo{messages: map[string][]*entity.ChatMessage{
		"chat-1": {
			{ID: "m1", SenderID: "user-1", Text: "Is this still available?", Timestamp: base},
			{ID: "m2", SenderID: "user-2", Text: "Yes it is", Timestamp: base.Add(time.Minute)},
			{ID: "m3", SenderID: "user-1", Text: "Great", Timestamp: base.Add(2 * time.Minute)},
		},
	}}
	userRepo := newFakeUserRepo(
		&entity.User{ID: "user-1", ImageURL: "https://img/andi.png"},
	)
	uc := NewChatUseCase(chatRepo, userRepo)

	messages, err := uc.GetTranscript(context.Background(), "chat-1")
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "https://img/andi.png", messages[0].SenderImage)
	assert.Empty(t, messages[1].SenderImage)
	assert.Equal(t, "https://img/andi.png", messages[2].SenderImage)
}

func TestGetTranscriptUnknownChat(t *testing.T) {
	uc := NewChatUseCase(&fakeChatRepo{messages: map[string][]*entity.ChatMessage{}}, newFakeUserRepo())

	_, err := uc.GetTranscript(context.Background(), "ghost")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
