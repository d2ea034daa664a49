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
	"scrappix-admin/pkg/logger"
)

const marketplaceCollection = "marketplaceItems"

type firestoreMarketplaceItemRepository struct {
	client *firestore.Client
}

func NewFirestoreMarketplaceItemRepository(client *firestore.Client) repository.MarketplaceItemRepository {
	return &firestoreMarketplaceItemRepository{
		client: client,
	}
}

func (r *firestoreMarketplaceItemRepository) GetByID(ctx context.Context, id string) (*entity.MarketplaceItem, error) {
	doc, err := r.client.Collection(marketplaceCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Marketplace item", err)
		}
		return nil, errors.Internal("Failed to get marketplace item", err)
	}

	var item entity.MarketplaceItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse marketplace item data", err)
	}
	item.ID = doc.Ref.ID

	return &item, nil
}

func (r *firestoreMarketplaceItemRepository) ListByStatus(ctx context.Context, itemStatus string) ([]*entity.MarketplaceItem, error) {
	query := r.client.Collection(marketplaceCollection).Where("status", "==", itemStatus)
	return r.collectItems(ctx, query.Documents(ctx))
}

func (r *firestoreMarketplaceItemRepository) ListAll(ctx context.Context) ([]*entity.MarketplaceItem, error) {
	return r.collectItems(ctx, r.client.Collection(marketplaceCollection).Documents(ctx))
}

func (r *firestoreMarketplaceItemRepository) CountByStatus(ctx context.Context, itemStatus string) (int, error) {
	docs, err := r.client.Collection(marketplaceCollection).Where("status", "==", itemStatus).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count marketplace items", err)
	}
	return len(docs), nil
}

func (r *firestoreMarketplaceItemRepository) collectItems(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.MarketplaceItem, error) {
	var items []*entity.MarketplaceItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate marketplace items", err)
		}

		var item entity.MarketplaceItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse marketplace item data", err)
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}
	return items, nil
}

// approvalUpdates builds the pending→available transition write.
func approvalUpdates(at time.Time, by string) []firestore.Update {
	return []firestore.Update{
		{Path: "status", Value: entity.ItemStatusAvailable},
		{Path: "approvedAt", Value: at},
		{Path: "approvedBy", Value: by},
	}
}

// rejectionUpdates builds the →rejected transition write. When the item was
// previously approved, the approval fields are deleted so that a rejection
// from pending and a rejection from available converge on the same document
// shape.
func rejectionUpdates(message string, at time.Time, by string, clearApproval bool) []firestore.Update {
	updates := []firestore.Update{
		{Path: "status", Value: entity.ItemStatusRejected},
		{Path: "rejectedMessage", Value: message},
		{Path: "rejectedAt", Value: at},
		{Path: "rejectedBy", Value: by},
	}
	if clearApproval {
		updates = append(updates,
			firestore.Update{Path: "approvedAt", Value: firestore.Delete},
			firestore.Update{Path: "approvedBy", Value: firestore.Delete},
		)
	}
	return updates
}

// removalUpdates builds the available→removed transition write. Removal
// always strips the approval fields.
func removalUpdates(message string, at time.Time, by string) []firestore.Update {
	return []firestore.Update{
		{Path: "status", Value: entity.ItemStatusRemoved},
		{Path: "removedMessage", Value: message},
		{Path: "removedAt", Value: at},
		{Path: "removedBy", Value: by},
		{Path: "approvedAt", Value: firestore.Delete},
		{Path: "approvedBy", Value: firestore.Delete},
	}
}

func (r *firestoreMarketplaceItemRepository) SetApproved(ctx context.Context, id string, at time.Time, by string) error {
	_, err := r.client.Collection(marketplaceCollection).Doc(id).Update(ctx, approvalUpdates(at, by))
	if err != nil {
		return errors.Internal("Failed to approve marketplace item", err)
	}
	return nil
}

func (r *firestoreMarketplaceItemRepository) SetRejected(ctx context.Context, id, message string, at time.Time, by string, clearApproval bool) error {
	_, err := r.client.Collection(marketplaceCollection).Doc(id).Update(ctx, rejectionUpdates(message, at, by, clearApproval))
	if err != nil {
		return errors.Internal("Failed to reject marketplace item", err)
	}
	return nil
}

func (r *firestoreMarketplaceItemRepository) SetRemoved(ctx context.Context, id, message string, at time.Time, by string) error {
	_, err := r.client.Collection(marketplaceCollection).Doc(id).Update(ctx, removalUpdates(message, at, by))
	if err != nil {
		return errors.Internal("Failed to remove marketplace item", err)
	}
	return nil
}

func (r *firestoreMarketplaceItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(marketplaceCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete marketplace item", err)
	}
	return nil
}

func (r *firestoreMarketplaceItemRepository) WatchByStatus(ctx context.Context, itemStatus string) (<-chan []*entity.MarketplaceItem, func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	snapshots := r.client.Collection(marketplaceCollection).Where("status", "==", itemStatus).Snapshots(watchCtx)

	ch := make(chan []*entity.MarketplaceItem, 1)
	go func() {
		defer close(ch)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Marketplace watch (%s) failed: %v", itemStatus, err)
				}
				return
			}

			items, err := r.collectItems(watchCtx, snapshot.Documents)
			if err != nil {
				logger.Error("Marketplace watch (%s) snapshot read failed: %v", itemStatus, err)
				continue
			}
			if items == nil {
				items = []*entity.MarketplaceItem{}
			}

			select {
			case ch <- items:
			case <-watchCtx.Done():
				return
			}
		}
	}()

	return ch, cancel, nil
}
