package repository

import (
	"context"

	"scrappix-admin/internal/domain/entity"
)

type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*entity.AdminUser, error)

	// LogActivity appends an entry to the admin's recentActivities
	// subcollection. Entries are never updated or deleted.
	LogActivity(ctx context.Context, adminID string, activity *entity.AdminActivity) error
	ListActivities(ctx context.Context, adminID string, limit int) ([]*entity.AdminActivity, error)
	// WatchActivities delivers full snapshots of the admin's recent
	// activity feed, newest first, capped at limit.
	WatchActivities(ctx context.Context, adminID string, limit int) (<-chan []*entity.AdminActivity, func(), error)
}
