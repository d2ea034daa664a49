package usecase

import (
	"context"
	"sync"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/logger"
)

// ChatUseCase loads reported chat transcripts for moderator review.
type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// GetTranscript returns a chat's messages oldest first, each decorated with
// the sender's current avatar. Avatars are fetched once per distinct sender;
// a missing sender just leaves the avatar empty.
func (uc *ChatUseCase) GetTranscript(ctx context.Context, chatID string) ([]*entity.ChatMessage, error) {
	messages, err := uc.chatRepo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	senderIDs := make(map[string]struct{})
	for _, message := range messages {
		if message.SenderID != "" {
			senderIDs[message.SenderID] = struct{}{}
		}
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		avatars = make(map[string]string, len(senderIDs))
	)
	for senderID := range senderIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			user, err := uc.userRepo.GetByID(ctx, id)
			if err != nil {
				logger.Debug("Transcript avatar lookup failed for %s: %v", id, err)
				return
			}
			mu.Lock()
			avatars[id] = user.ImageURL
			mu.Unlock()
		}(senderID)
	}
	wg.Wait()

	for _, message := range messages {
		message.SenderImage = avatars[message.SenderID]
	}
	return messages, nil
}
