package usecase

import (
	"context"
	"sync"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/logger"
)

type DashboardStats struct {
	TotalUsers         int `json:"total_users"`
	PendingReports     int `json:"pending_reports"`
	PendingMarketplace int `json:"pending_marketplace"`
	TotalScans         int `json:"total_scans"`
}

// DashboardUseCase aggregates the landing-page counters. Each counter is
// fetched concurrently and degrades to zero on failure so one bad collection
// cannot blank the whole dashboard.
type DashboardUseCase struct {
	userRepo   repository.UserRepository
	reportRepo repository.ChatReportRepository
	itemRepo   repository.MarketplaceItemRepository
	scanRepo   repository.ScannedMaterialRepository
}

func NewDashboardUseCase(
	userRepo repository.UserRepository,
	reportRepo repository.ChatReportRepository,
	itemRepo repository.MarketplaceItemRepository,
	scanRepo repository.ScannedMaterialRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		itemRepo:   itemRepo,
		scanRepo:   scanRepo,
	}
}

func (uc *DashboardUseCase) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		stats.TotalUsers = uc.count(func() (int, error) { return uc.userRepo.Count(ctx) }, "users")
	}()
	go func() {
		defer wg.Done()
		stats.PendingReports = uc.count(func() (int, error) {
			return uc.reportRepo.CountByStatus(ctx, entity.ReportStatusPending)
		}, "pending reports")
	}()
	go func() {
		defer wg.Done()
		stats.PendingMarketplace = uc.count(func() (int, error) {
			return uc.itemRepo.CountByStatus(ctx, entity.ItemStatusPending)
		}, "pending items")
	}()
	go func() {
		defer wg.Done()
		stats.TotalScans = uc.count(func() (int, error) { return uc.scanRepo.Count(ctx) }, "scans")
	}()
	wg.Wait()

	return stats, nil
}

func (uc *DashboardUseCase) count(fetch func() (int, error), what string) int {
	n, err := fetch()
	if err != nil {
		logger.Warn("Dashboard counter %s unavailable: %v", what, err)
		return 0
	}
	return n
}
