package usecase

import (
	"context"
	"fmt"
	"time"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
)

// MarketplaceUseCase drives the listing moderation flows: approval queue,
// rejection with seller feedback, takedown of live listings and permanent
// deletion from the archive. Every transition notifies the seller and lands
// in the acting admin's activity log.
type MarketplaceUseCase struct {
	itemRepo  repository.MarketplaceItemRepository
	notifRepo repository.NotificationRepository
	activity  *ActivityLogger
}

func NewMarketplaceUseCase(
	itemRepo repository.MarketplaceItemRepository,
	notifRepo repository.NotificationRepository,
	activity *ActivityLogger,
) *MarketplaceUseCase {
	return &MarketplaceUseCase{
		itemRepo:  itemRepo,
		notifRepo: notifRepo,
		activity:  activity,
	}
}

func validItemStatus(status string) bool {
	switch status {
	case entity.ItemStatusPending, entity.ItemStatusAvailable,
		entity.ItemStatusRejected, entity.ItemStatusRemoved:
		return true
	}
	return false
}

// ListItems returns the items in one status bucket, narrowed by the filter
// and free-text search term.
func (uc *MarketplaceUseCase) ListItems(ctx context.Context, status, term string, filter ItemFilter) ([]*entity.MarketplaceItem, error) {
	if !validItemStatus(status) {
		return nil, errors.BadRequest(fmt.Sprintf("Unknown item status: %s", status), nil)
	}

	items, err := uc.itemRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return FilterAndSearchItems(items, term, filter), nil
}

func (uc *MarketplaceUseCase) GetItem(ctx context.Context, id string) (*entity.MarketplaceItem, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// WatchItems opens a standing watch over one status bucket for the live
// stream endpoint.
func (uc *MarketplaceUseCase) WatchItems(ctx context.Context, status string) (<-chan []*entity.MarketplaceItem, func(), error) {
	if !validItemStatus(status) {
		return nil, nil, errors.BadRequest(fmt.Sprintf("Unknown item status: %s", status), nil)
	}
	return uc.itemRepo.WatchByStatus(ctx, status)
}

// Approve publishes a pending item to the marketplace.
func (uc *MarketplaceUseCase) Approve(ctx context.Context, admin AdminIdentity, itemID string) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := uc.itemRepo.SetApproved(ctx, itemID, now, admin.Email); err != nil {
		return err
	}

	if err := uc.notifySeller(ctx, item, entity.NotificationStatusApproved,
		"Congratulations! Your item has been approved and is now live in the marketplace."); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityItemApproved,
		Description: fmt.Sprintf("Approved marketplace item: %s", item.ProductName),
		Page:        entity.PageMarketplaceApproval,
		Details: map[string]interface{}{
			"itemId":      itemID,
			"productName": item.ProductName,
			"sellerName":  item.SellerName,
		},
	})
	return nil
}

// Reject declines an item with a message for the seller. When the item had
// already been approved, the approval fields are deleted so the document
// carries no stale approval metadata.
func (uc *MarketplaceUseCase) Reject(ctx context.Context, admin AdminIdentity, itemID, message string) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	wasApproved := item.WasApproved()
	now := time.Now()
	if err := uc.itemRepo.SetRejected(ctx, itemID, message, now, admin.Email, wasApproved); err != nil {
		return err
	}

	if err := uc.notifySeller(ctx, item, entity.NotificationStatusRejected, message); err != nil {
		return err
	}

	details := map[string]interface{}{
		"itemId":      itemID,
		"productName": item.ProductName,
		"sellerName":  item.SellerName,
		"reason":      message,
	}
	if wasApproved {
		details["wasApproved"] = true
	}
	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityItemRejected,
		Description: fmt.Sprintf("Rejected marketplace item: %s", item.ProductName),
		Page:        entity.PageMarketplaceApproval,
		Details:     details,
	})
	return nil
}

// Remove takes a listing off the marketplace. The approval fields are always
// deleted on removal.
func (uc *MarketplaceUseCase) Remove(ctx context.Context, admin AdminIdentity, itemID, message string) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := uc.itemRepo.SetRemoved(ctx, itemID, message, now, admin.Email); err != nil {
		return err
	}

	if err := uc.notifySeller(ctx, item, entity.NotificationStatusRemoved, message); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityItemRemoved,
		Description: fmt.Sprintf("Removed marketplace item: %s", item.ProductName),
		Page:        entity.PageMarketplaceApproval,
		Details: map[string]interface{}{
			"itemId":      itemID,
			"productName": item.ProductName,
			"sellerName":  item.SellerName,
			"reason":      message,
		},
	})
	return nil
}

// PermanentDelete erases an archived item document entirely. The caller must
// have confirmed the action; there is no undo.
func (uc *MarketplaceUseCase) PermanentDelete(ctx context.Context, admin AdminIdentity, itemID string) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if item.Status != entity.ItemStatusRejected && item.Status != entity.ItemStatusRemoved {
		return errors.BadRequest("Only rejected or removed items can be permanently deleted", nil)
	}

	if err := uc.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityItemDeleted,
		Description: fmt.Sprintf("Permanently deleted marketplace item: %s", item.ProductName),
		Page:        entity.PageMarketplaceArchive,
		Details: map[string]interface{}{
			"itemId":      itemID,
			"productName": item.ProductName,
			"sellerName":  item.SellerName,
			"status":      item.Status,
		},
	})
	return nil
}

func (uc *MarketplaceUseCase) notifySeller(ctx context.Context, item *entity.MarketplaceItem, status, message string) error {
	return uc.notifRepo.Create(ctx, &entity.ItemNotification{
		UserID:      item.SellerID,
		ItemID:      item.ID,
		ProductName: item.ProductName,
		Status:      status,
		Message:     message,
	})
}
