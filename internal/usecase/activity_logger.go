package usecase

import (
	"context"
	"time"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/logger"
)

// ActivityLogger appends audit entries to the acting admin's
// recentActivities subcollection. Logging is best-effort: a failed write is
// recorded locally and never propagated, so it cannot abort the moderation
// action it accompanies.
type ActivityLogger struct {
	adminRepo repository.AdminRepository
}

func NewActivityLogger(adminRepo repository.AdminRepository) *ActivityLogger {
	return &ActivityLogger{
		adminRepo: adminRepo,
	}
}

type ActivityInput struct {
	Type        string
	Description string
	Page        string
	Details     map[string]interface{}
}

func (l *ActivityLogger) Log(ctx context.Context, admin AdminIdentity, input ActivityInput) {
	activity := &entity.AdminActivity{
		AdminID:      admin.UID,
		AdminEmail:   admin.Email,
		ActivityType: input.Type,
		Description:  input.Description,
		Details:      input.Details,
		Page:         input.Page,
		Timestamp:    time.Now(),
	}

	if err := l.adminRepo.LogActivity(ctx, admin.UID, activity); err != nil {
		logger.Warn("Activity log write failed: type=%s admin=%s error=%v", input.Type, admin.UID, err)
	}
}
