package repository

import (
	"context"

	"scrappix-admin/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.ItemNotification) error
}
