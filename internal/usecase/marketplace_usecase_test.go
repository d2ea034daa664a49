package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrappix-admin/internal/domain/entity"
)

var testAdmin = AdminIdentity{UID: "admin-1", Email: "admin@scrappix.app"}

func newMarketplaceFixture(items ...*entity.MarketplaceItem) (*MarketplaceUseCase, *fakeItemRepo, *fakeNotifRepo, *fakeAdminRepo) {
	itemRepo := newFakeItemRepo(items...)
	notifRepo := &fakeNotifRepo{}
	adminRepo := newFakeAdminRepo()
	uc := NewMarketplaceUseCase(itemRepo, notifRepo, NewActivityLogger(adminRepo))
	return uc, itemRepo, notifRepo, adminRepo
}

func pendingItem() *entity.MarketplaceItem {
	return &entity.MarketplaceItem{
		ID:          "item-1",
		SellerID:    "seller-1",
		SellerName:  "Andi Recycling",
		ProductName: "Copper Wire Bundle",
		Status:      entity.ItemStatusPending,
		PostedAt:    time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestApprovePublishesItemAndNotifiesSeller(t *testing.T) {
	uc, itemRepo, notifRepo, adminRepo := newMarketplaceFixture(pendingItem())

	err := uc.Approve(context.Background(), testAdmin, "item-1")
	require.NoError(t, err)

	item, err := itemRepo.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
	require.NotNil(t, item.ApprovedAt)
	assert.Equal(t, testAdmin.Email, item.ApprovedBy)

	require.Len(t, notifRepo.created, 1)
	notif := notifRepo.created[0]
	assert.Equal(t, "seller-1", notif.UserID)
	assert.Equal(t, "item-1", notif.ItemID)
	assert.Equal(t, entity.NotificationStatusApproved, notif.Status)

	require.Len(t, adminRepo.activities, 1)
	assert.Equal(t, entity.ActivityItemApproved, adminRepo.activities[0].ActivityType)
	assert.Equal(t, entity.PageMarketplaceApproval, adminRepo.activities[0].Page)
}

func TestRejectPendingItemKeepsNoApprovalFields(t *testing.T) {
	uc, itemRepo, notifRepo, _ := newMarketplaceFixture(pendingItem())

	err := uc.Reject(context.Background(), testAdmin, "item-1", "Photos too blurry")
	require.NoError(t, err)

	item, err := itemRepo.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusRejected, item.Status)
	assert.Equal(t, "Photos too blurry", item.RejectedMessage)
	assert.Nil(t, item.ApprovedAt)
	assert.Empty(t, item.ApprovedBy)

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, entity.NotificationStatusRejected, notifRepo.created[0].Status)
	assert.Equal(t, "Photos too blurry", notifRepo.created[0].Message)
}

func TestRejectApprovedItemClearsApprovalMetadata(t *testing.T) {
	approvedAt := time.Date(2025, 5, 11, 8, 0, 0, 0, time.UTC)
	item := pendingItem()
	item.Status = entity.ItemStatusAvailable
	item.ApprovedAt = &approvedAt
	item.ApprovedBy = "other-admin@scrappix.app"

	uc, itemRepo, _, adminRepo := newMarketplaceFixture(item)

	err := uc.Reject(context.Background(), testAdmin, "item-1", "Reported as counterfeit")
	require.NoError(t, err)

	got, err := itemRepo.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusRejected, got.Status)
	assert.Nil(t, got.ApprovedAt)
	assert.Empty(t, got.ApprovedBy)
	assert.False(t, got.WasApproved())

	require.Len(t, adminRepo.activities, 1)
	assert.Equal(t, true, adminRepo.activities[0].Details["wasApproved"])
}

func TestRemoveAlwaysClearsApprovalMetadata(t *testing.T) {
	approvedAt := time.Now()
	item := pendingItem()
	item.Status = entity.ItemStatusAvailable
	item.ApprovedAt = &approvedAt
	item.ApprovedBy = testAdmin.Email

	uc, itemRepo, notifRepo, _ := newMarketplaceFixture(item)

	err := uc.Remove(context.Background(), testAdmin, "item-1", "Violates listing policy")
	require.NoError(t, err)

	got, err := itemRepo.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusRemoved, got.Status)
	assert.Nil(t, got.ApprovedAt)
	assert.Empty(t, got.ApprovedBy)
	assert.Equal(t, "Violates listing policy", got.RemovedMessage)

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, entity.NotificationStatusRemoved, notifRepo.created[0].Status)
}

func TestPermanentDeleteOnlyAllowsArchivedItems(t *testing.T) {
	live := pendingItem()
	live.Status = entity.ItemStatusAvailable

	uc, itemRepo, _, adminRepo := newMarketplaceFixture(live)

	err := uc.PermanentDelete(context.Background(), testAdmin, "item-1")
	require.Error(t, err)
	assert.Empty(t, itemRepo.deleted)
	assert.Empty(t, adminRepo.activities)
}

func TestPermanentDeleteErasesArchivedItem(t *testing.T) {
	archived := pendingItem()
	archived.Status = entity.ItemStatusRemoved

	uc, itemRepo, _, adminRepo := newMarketplaceFixture(archived)

	err := uc.PermanentDelete(context.Background(), testAdmin, "item-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1"}, itemRepo.deleted)

	_, err = uc.GetItem(context.Background(), "item-1")
	assert.Error(t, err)

	require.Len(t, adminRepo.activities, 1)
	assert.Equal(t, entity.ActivityItemDeleted, adminRepo.activities[0].ActivityType)
	assert.Equal(t, entity.PageMarketplaceArchive, adminRepo.activities[0].Page)
}

func TestActivityLogFailureDoesNotFailModeration(t *testing.T) {
	uc, itemRepo, _, adminRepo := newMarketplaceFixture(pendingItem())
	adminRepo.logErr = assert.AnError

	err := uc.Approve(context.Background(), testAdmin, "item-1")
	require.NoError(t, err)

	item, err := itemRepo.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
}

func TestListItemsRejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := newMarketplaceFixture()

	_, err := uc.ListItems(context.Background(), "archived", "", ItemFilter{})
	assert.Error(t, err)
}

func TestListItemsAppliesFilterAndSearch(t *testing.T) {
	first := pendingItem()
	second := pendingItem()
	second.ID = "item-2"
	second.ProductName = "Glass Bottles"
	second.SellerName = "Citra Daur Ulang"

	uc, _, _, _ := newMarketplaceFixture(first, second)

	items, err := uc.ListItems(context.Background(), entity.ItemStatusPending, "copper", ItemFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
}
