package usecase

import (
	"context"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
)

// AdminUseCase resolves console operators and their audit trail.
type AdminUseCase struct {
	adminRepo repository.AdminRepository
	feedLimit int
}

func NewAdminUseCase(adminRepo repository.AdminRepository, feedLimit int) *AdminUseCase {
	return &AdminUseCase{
		adminRepo: adminRepo,
		feedLimit: feedLimit,
	}
}

// GetAdmin loads an operator and enforces the console access rule: only
// userAdmin documents with role "admin" and isActive true may proceed.
func (uc *AdminUseCase) GetAdmin(ctx context.Context, uid string) (*entity.AdminUser, error) {
	admin, err := uc.adminRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if admin.Role != "admin" || !admin.IsActive {
		return nil, errors.Forbidden("Account is not an active console admin", nil)
	}
	return admin, nil
}

// RecentActivities returns the operator's own audit feed, newest first.
// A non-positive or oversized limit falls back to the configured cap.
func (uc *AdminUseCase) RecentActivities(ctx context.Context, adminID string, limit int) ([]*entity.AdminActivity, error) {
	if limit <= 0 || limit > uc.feedLimit {
		limit = uc.feedLimit
	}
	return uc.adminRepo.ListActivities(ctx, adminID, limit)
}

// WatchActivities opens a live feed of the operator's audit entries for the
// stream endpoint.
func (uc *AdminUseCase) WatchActivities(ctx context.Context, adminID string) (<-chan []*entity.AdminActivity, func(), error) {
	return uc.adminRepo.WatchActivities(ctx, adminID, uc.feedLimit)
}
