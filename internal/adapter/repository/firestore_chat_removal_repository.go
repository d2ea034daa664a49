package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
)

const chatRemovalsCollection = "chatRemovals"

type firestoreChatRemovalRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRemovalRepository(client *firestore.Client) repository.ChatRemovalRepository {
	return &firestoreChatRemovalRepository{
		client: client,
	}
}

func (r *firestoreChatRemovalRepository) GetByID(ctx context.Context, id string) (*entity.ChatRemoval, error) {
	doc, err := r.client.Collection(chatRemovalsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat removal", err)
		}
		return nil, errors.Internal("Failed to get chat removal", err)
	}

	var removal entity.ChatRemoval
	if err := doc.DataTo(&removal); err != nil {
		return nil, errors.Internal("Failed to parse chat removal data", err)
	}
	removal.ID = doc.Ref.ID

	return &removal, nil
}

func (r *firestoreChatRemovalRepository) List(ctx context.Context) ([]*entity.ChatRemoval, error) {
	iter := r.client.Collection(chatRemovalsCollection).OrderBy("timestamp", firestore.Desc).Documents(ctx)

	var removals []*entity.ChatRemoval
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chat removals", err)
		}

		var removal entity.ChatRemoval
		if err := doc.DataTo(&removal); err != nil {
			return nil, errors.Internal("Failed to parse chat removal data", err)
		}
		removal.ID = doc.Ref.ID
		removals = append(removals, &removal)
	}
	return removals, nil
}

func (r *firestoreChatRemovalRepository) SetAcknowledged(ctx context.Context, id string, at time.Time, by string) error {
	_, err := r.client.Collection(chatRemovalsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: entity.RemovalStatusAcknowledged},
		{Path: "acknowledgedAt", Value: at},
		{Path: "acknowledgedBy", Value: by},
	})
	if err != nil {
		return errors.Internal("Failed to acknowledge chat removal", err)
	}
	return nil
}
