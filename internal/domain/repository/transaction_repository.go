package repository

import (
	"context"

	"scrappix-admin/internal/domain/entity"
)

type TransactionRepository interface {
	ListAll(ctx context.Context) ([]*entity.Transaction, error)
}
