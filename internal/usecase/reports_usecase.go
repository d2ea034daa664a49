package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
	"scrappix-admin/pkg/logger"
)

// ReportsUseCase covers the moderation queue for chat reports and the
// acknowledgement flow for chats users removed themselves.
//
// Listings on the approval page ride a live snapshot stream, but this page
// intentionally stays a one-shot fetch: reports arrive slowly and moderators
// work them top to bottom, so a refresh button is enough.
type ReportsUseCase struct {
	reportRepo  repository.ChatReportRepository
	removalRepo repository.ChatRemovalRepository
	userRepo    repository.UserRepository
	itemRepo    repository.MarketplaceItemRepository
	activity    *ActivityLogger
}

func NewReportsUseCase(
	reportRepo repository.ChatReportRepository,
	removalRepo repository.ChatRemovalRepository,
	userRepo repository.UserRepository,
	itemRepo repository.MarketplaceItemRepository,
	activity *ActivityLogger,
) *ReportsUseCase {
	return &ReportsUseCase{
		reportRepo:  reportRepo,
		removalRepo: removalRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		activity:    activity,
	}
}

// ListReports returns every chat report, newest first, decorated with the
// avatars of both parties and the reported product's images. Enrichment is
// best-effort per field: a missing user or product leaves that field empty
// without failing the page.
func (uc *ReportsUseCase) ListReports(ctx context.Context) ([]*entity.ChatReport, error) {
	reports, err := uc.reportRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	for _, report := range reports {
		wg.Add(1)
		go func(r *entity.ChatReport) {
			defer wg.Done()
			r.ReportedByUserImage = uc.userImage(ctx, r.ReportedByUserID)
			r.ReportedPersonImage = uc.userImage(ctx, r.ReportedPersonID)
			if r.ProductID != "" {
				if item, err := uc.itemRepo.GetByID(ctx, r.ProductID); err == nil {
					r.ProductImages = item.ImageURLs
				}
			}
		}(report)
	}
	wg.Wait()

	return reports, nil
}

// ListRemovals returns every chat removal record, newest first, decorated
// like ListReports plus the product's current status ("not found" when the
// listing has since been deleted).
func (uc *ReportsUseCase) ListRemovals(ctx context.Context) ([]*entity.ChatRemoval, error) {
	removals, err := uc.removalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	for _, removal := range removals {
		wg.Add(1)
		go func(r *entity.ChatRemoval) {
			defer wg.Done()
			r.RemovedByUserImage = uc.userImage(ctx, r.RemovedByUserID)
			r.RemovedPersonImage = uc.userImage(ctx, r.RemovedPersonID)
			if r.ProductID == "" {
				return
			}
			item, err := uc.itemRepo.GetByID(ctx, r.ProductID)
			if err != nil {
				if errors.Is(err, "NOT_FOUND") {
					r.ProductStatus = "not found"
				}
				return
			}
			r.ProductImages = item.ImageURLs
			r.ProductStatus = item.Status
		}(removal)
	}
	wg.Wait()

	return removals, nil
}

func (uc *ReportsUseCase) userImage(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Debug("Report enrichment skipped user %s: %v", userID, err)
		return ""
	}
	return user.ImageURL
}

// ApproveReport upholds a report against the reported user.
func (uc *ReportsUseCase) ApproveReport(ctx context.Context, admin AdminIdentity, reportID string) error {
	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}

	if err := uc.reportRepo.SetApproved(ctx, reportID, time.Now(), admin.Email); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityChatReportResolved,
		Description: fmt.Sprintf("Approved chat report against: %s", report.ReportedPersonName),
		Page:        entity.PageReportsModeration,
		Details: map[string]interface{}{
			"reportId":       reportID,
			"reportedPerson": report.ReportedPersonName,
			"reportCategory": report.ReportCategory,
		},
	})
	return nil
}

// RejectReport dismisses a report without consequence for the reported user.
func (uc *ReportsUseCase) RejectReport(ctx context.Context, admin AdminIdentity, reportID string) error {
	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}

	if err := uc.reportRepo.SetRejected(ctx, reportID, time.Now(), admin.Email); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityChatReportDismissed,
		Description: fmt.Sprintf("Dismissed chat report against: %s", report.ReportedPersonName),
		Page:        entity.PageReportsModeration,
		Details: map[string]interface{}{
			"reportId":       reportID,
			"reportedPerson": report.ReportedPersonName,
			"reportCategory": report.ReportCategory,
		},
	})
	return nil
}

// UndoRejectReport puts a dismissed report back into the pending queue. The
// rejection fields are deleted from the document, not nulled. Calling it on
// a report that is already pending is a no-op.
func (uc *ReportsUseCase) UndoRejectReport(ctx context.Context, admin AdminIdentity, reportID string) error {
	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}

	if report.Status == entity.ReportStatusPending {
		return nil
	}
	if report.Status != entity.ReportStatusRejected {
		return errors.BadRequest("Only rejected reports can be reopened", nil)
	}

	if err := uc.reportRepo.ResetToPending(ctx, reportID); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityChatReportReviewed,
		Description: fmt.Sprintf("Reopened chat report against: %s", report.ReportedPersonName),
		Page:        entity.PageReportsModeration,
		Details: map[string]interface{}{
			"reportId":       reportID,
			"reportedPerson": report.ReportedPersonName,
		},
	})
	return nil
}

// AcknowledgeRemoval marks a user-initiated chat removal as seen by an admin.
func (uc *ReportsUseCase) AcknowledgeRemoval(ctx context.Context, admin AdminIdentity, removalID string) error {
	removal, err := uc.removalRepo.GetByID(ctx, removalID)
	if err != nil {
		return err
	}
	if removal.Status == entity.RemovalStatusAcknowledged {
		return nil
	}

	if err := uc.removalRepo.SetAcknowledged(ctx, removalID, time.Now(), admin.Email); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityChatRemovedByAdmin,
		Description: fmt.Sprintf("Acknowledged chat removal for product: %s", removal.ProductName),
		Page:        entity.PageReportsModeration,
		Details: map[string]interface{}{
			"removalId":   removalID,
			"productName": removal.ProductName,
		},
	})
	return nil
}
