package repository

import (
	"context"

	"scrappix-admin/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	ListAll(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)

	SetActive(ctx context.Context, id string, active bool) error
	SetDisabled(ctx context.Context, id string) error
}
