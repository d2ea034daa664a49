package repository

import (
	"context"
	"time"

	"scrappix-admin/internal/domain/entity"
)

type ChatReportRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ChatReport, error)
	// List returns all reports ordered by timestamp descending.
	List(ctx context.Context) ([]*entity.ChatReport, error)
	CountByStatus(ctx context.Context, status string) (int, error)

	SetApproved(ctx context.Context, id string, at time.Time, by string) error
	SetRejected(ctx context.Context, id string, at time.Time, by string) error
	// ResetToPending clears the rejection fields (field delete) and sets the
	// status back to pending.
	ResetToPending(ctx context.Context, id string) error
}
