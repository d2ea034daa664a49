package repository

import (
	"context"
)

type ScannedMaterialRepository interface {
	Count(ctx context.Context) (int, error)
}
