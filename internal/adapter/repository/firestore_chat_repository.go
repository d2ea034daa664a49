package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
)

const chatsCollection = "chats"

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, chatID string) ([]*entity.ChatMessage, error) {
	iter := r.client.Collection(chatsCollection).Doc(chatID).Collection("messages").
		OrderBy("timestamp", firestore.Asc).Documents(ctx)

	var messages []*entity.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chat messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse chat message data", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}
	return messages, nil
}
