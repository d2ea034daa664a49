package repository

import (
	"context"
	"time"

	"scrappix-admin/internal/domain/entity"
)

type MarketplaceItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.MarketplaceItem, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.MarketplaceItem, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	ListAll(ctx context.Context) ([]*entity.MarketplaceItem, error)

	SetApproved(ctx context.Context, id string, at time.Time, by string) error
	// SetRejected transitions the item to rejected. When clearApproval is
	// true the approval fields are deleted from the document, not nulled.
	SetRejected(ctx context.Context, id, message string, at time.Time, by string, clearApproval bool) error
	SetRemoved(ctx context.Context, id, message string, at time.Time, by string) error
	Delete(ctx context.Context, id string) error

	// WatchByStatus opens a standing watch over all items with the given
	// status. Every change delivers a full replacement snapshot on the
	// returned channel. The stop function must be called when the watcher
	// goes away; the channel closes after stop or on watch failure.
	WatchByStatus(ctx context.Context, status string) (<-chan []*entity.MarketplaceItem, func(), error)
}
