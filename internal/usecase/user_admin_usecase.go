package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/logger"
)

// UserAdminUseCase builds the user management page: every consumer account
// decorated with moderation counters and a risk band, plus the suspend /
// reinstate / ban actions.
type UserAdminUseCase struct {
	userRepo    repository.UserRepository
	reportRepo  repository.ChatReportRepository
	removalRepo repository.ChatRemovalRepository
	itemRepo    repository.MarketplaceItemRepository
	txnRepo     repository.TransactionRepository
	authClient  FirebaseAuthClient
	activity    *ActivityLogger
}

func NewUserAdminUseCase(
	userRepo repository.UserRepository,
	reportRepo repository.ChatReportRepository,
	removalRepo repository.ChatRemovalRepository,
	itemRepo repository.MarketplaceItemRepository,
	txnRepo repository.TransactionRepository,
	authClient FirebaseAuthClient,
	activity *ActivityLogger,
) *UserAdminUseCase {
	return &UserAdminUseCase{
		userRepo:    userRepo,
		reportRepo:  reportRepo,
		removalRepo: removalRepo,
		itemRepo:    itemRepo,
		txnRepo:     txnRepo,
		authClient:  authClient,
		activity:    activity,
	}
}

// ListUsers returns risk profiles for all users, riskiest first. The five
// source collections are fetched concurrently; if a counter source fails the
// page still renders with that counter at zero.
func (uc *UserAdminUseCase) ListUsers(ctx context.Context, search string) ([]*entity.UserRiskProfile, error) {
	var (
		wg       sync.WaitGroup
		users    []*entity.User
		usersErr error
		reports  []*entity.ChatReport
		removals []*entity.ChatRemoval
		items    []*entity.MarketplaceItem
		txns     []*entity.Transaction
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		users, usersErr = uc.userRepo.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		var err error
		if reports, err = uc.reportRepo.List(ctx); err != nil {
			logger.Warn("User page: report counters unavailable: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if removals, err = uc.removalRepo.List(ctx); err != nil {
			logger.Warn("User page: removal counters unavailable: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if items, err = uc.itemRepo.ListAll(ctx); err != nil {
			logger.Warn("User page: listing counters unavailable: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if txns, err = uc.txnRepo.ListAll(ctx); err != nil {
			logger.Warn("User page: transaction counters unavailable: %v", err)
		}
	}()
	wg.Wait()

	if usersErr != nil {
		return nil, usersErr
	}

	approvedReports := make(map[string]int)
	for _, report := range reports {
		if report.Status == entity.ReportStatusApproved {
			approvedReports[report.ReportedPersonID]++
		}
	}
	// A removal counts against both participants, once per record.
	chatRemovals := make(map[string]int)
	for _, removal := range removals {
		chatRemovals[removal.RemovedPersonID]++
		if removal.RemovedByUserID != removal.RemovedPersonID {
			chatRemovals[removal.RemovedByUserID]++
		}
	}
	postedItems := make(map[string]int)
	for _, item := range items {
		postedItems[item.SellerID]++
	}
	soldItems := make(map[string]int)
	for _, txn := range txns {
		if txn.Status == entity.TransactionStatusCompleted {
			soldItems[txn.SellerID]++
		}
	}

	search = strings.ToLower(strings.TrimSpace(search))
	profiles := make([]*entity.UserRiskProfile, 0, len(users))
	for _, user := range users {
		if search != "" && !matchesUser(user, search) {
			continue
		}
		profile := &entity.UserRiskProfile{
			User:            *user,
			ApprovedReports: approvedReports[user.ID],
			ChatRemovals:    chatRemovals[user.ID],
			PostedItems:     postedItems[user.ID],
			SoldItems:       soldItems[user.ID],
		}
		profile.RiskLevel = entity.RiskLevel(profile.ApprovedReports)
		profiles = append(profiles, profile)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].ApprovedReports != profiles[j].ApprovedReports {
			return profiles[i].ApprovedReports > profiles[j].ApprovedReports
		}
		return profiles[i].ChatRemovals > profiles[j].ChatRemovals
	})
	return profiles, nil
}

func matchesUser(user *entity.User, term string) bool {
	return strings.Contains(strings.ToLower(user.FullName), term) ||
		strings.Contains(strings.ToLower(user.Email), term) ||
		strings.Contains(strings.ToLower(user.Nickname), term)
}

// Suspend deactivates a user account and blocks sign-in.
func (uc *UserAdminUseCase) Suspend(ctx context.Context, admin AdminIdentity, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.userRepo.SetActive(ctx, userID, false); err != nil {
		return err
	}
	if err := uc.authClient.SetUserDisabled(ctx, userID, true); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityUserAccountDisabled,
		Description: fmt.Sprintf("Suspended user account: %s", user.FullName),
		Page:        entity.PageUserManagement,
		Details: map[string]interface{}{
			"userId":    userID,
			"userEmail": user.Email,
		},
	})
	return nil
}

// Reinstate lifts a suspension.
func (uc *UserAdminUseCase) Reinstate(ctx context.Context, admin AdminIdentity, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.userRepo.SetActive(ctx, userID, true); err != nil {
		return err
	}
	if err := uc.authClient.SetUserDisabled(ctx, userID, false); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityUserAccountEnabled,
		Description: fmt.Sprintf("Reinstated user account: %s", user.FullName),
		Page:        entity.PageUserManagement,
		Details: map[string]interface{}{
			"userId":    userID,
			"userEmail": user.Email,
		},
	})
	return nil
}

// Ban permanently disables a user account. The user document is kept so the
// moderation history stays attributable.
func (uc *UserAdminUseCase) Ban(ctx context.Context, admin AdminIdentity, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.userRepo.SetDisabled(ctx, userID); err != nil {
		return err
	}
	if err := uc.authClient.SetUserDisabled(ctx, userID, true); err != nil {
		return err
	}

	uc.activity.Log(ctx, admin, ActivityInput{
		Type:        entity.ActivityUserAccountDeleted,
		Description: fmt.Sprintf("Banned user account: %s", user.FullName),
		Page:        entity.PageUserManagement,
		Details: map[string]interface{}{
			"userId":    userID,
			"userEmail": user.Email,
			"permanent": true,
		},
	})
	return nil
}
