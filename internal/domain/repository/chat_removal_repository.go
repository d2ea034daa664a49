package repository

import (
	"context"
	"time"

	"scrappix-admin/internal/domain/entity"
)

type ChatRemovalRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ChatRemoval, error)
	// List returns all removal records ordered by timestamp descending.
	List(ctx context.Context) ([]*entity.ChatRemoval, error)

	SetAcknowledged(ctx context.Context, id string, at time.Time, by string) error
}
