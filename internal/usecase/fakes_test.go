package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/pkg/errors"
)

// In-memory repository fakes shared by the usecase tests. They record every
// transition the way the Firestore adapters would persist it.

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.MarketplaceItem

	deleted []string
}

func newFakeItemRepo(items ...*entity.MarketplaceItem) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.MarketplaceItem)}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.MarketplaceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Marketplace item", nil)
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) ListByStatus(ctx context.Context, status string) ([]*entity.MarketplaceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MarketplaceItem
	for _, item := range r.items {
		if item.Status == status {
			copied := *item
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeItemRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	items, _ := r.ListByStatus(ctx, status)
	return len(items), nil
}

func (r *fakeItemRepo) ListAll(ctx context.Context) ([]*entity.MarketplaceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MarketplaceItem
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeItemRepo) SetApproved(ctx context.Context, id string, at time.Time, by string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return errors.NotFound("Marketplace item", nil)
	}
	item.Status = entity.ItemStatusAvailable
	item.ApprovedAt = &at
	item.ApprovedBy = by
	return nil
}

func (r *fakeItemRepo) SetRejected(ctx context.Context, id, message string, at time.Time, by string, clearApproval bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return errors.NotFound("Marketplace item", nil)
	}
	item.Status = entity.ItemStatusRejected
	item.RejectedAt = &at
	item.RejectedBy = by
	item.RejectedMessage = message
	if clearApproval {
		item.ApprovedAt = nil
		item.ApprovedBy = ""
	}
	return nil
}

func (r *fakeItemRepo) SetRemoved(ctx context.Context, id, message string, at time.Time, by string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return errors.NotFound("Marketplace item", nil)
	}
	item.Status = entity.ItemStatusRemoved
	item.RemovedAt = &at
	item.RemovedBy = by
	item.RemovedMessage = message
	item.ApprovedAt = nil
	item.ApprovedBy = ""
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Marketplace item", nil)
	}
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeItemRepo) WatchByStatus(ctx context.Context, status string) (<-chan []*entity.MarketplaceItem, func(), error) {
	ch := make(chan []*entity.MarketplaceItem, 1)
	items, _ := r.ListByStatus(ctx, status)
	ch <- items
	var once sync.Once
	stop := func() { once.Do(func() { close(ch) }) }
	return ch, stop, nil
}

type fakeNotifRepo struct {
	mu       sync.Mutex
	created  []*entity.ItemNotification
	failWith error
}

func (r *fakeNotifRepo) Create(ctx context.Context, n *entity.ItemNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.created = append(r.created, n)
	return nil
}

type fakeAdminRepo struct {
	mu         sync.Mutex
	admins     map[string]*entity.AdminUser
	activities []*entity.AdminActivity
	logErr     error
}

func newFakeAdminRepo(admins ...*entity.AdminUser) *fakeAdminRepo {
	r := &fakeAdminRepo{admins: make(map[string]*entity.AdminUser)}
	for _, a := range admins {
		r.admins[a.ID] = a
	}
	return r
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, errors.NotFound("Admin user", nil)
	}
	return admin, nil
}

func (r *fakeAdminRepo) LogActivity(ctx context.Context, adminID string, activity *entity.AdminActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.logErr != nil {
		return r.logErr
	}
	r.activities = append(r.activities, activity)
	return nil
}

func (r *fakeAdminRepo) ListActivities(ctx context.Context, adminID string, limit int) ([]*entity.AdminActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AdminActivity
	for _, a := range r.activities {
		if a.AdminID == adminID {
			out = append(out, a)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAdminRepo) WatchActivities(ctx context.Context, adminID string, limit int) (<-chan []*entity.AdminActivity, func(), error) {
	ch := make(chan []*entity.AdminActivity, 1)
	activities, _ := r.ListActivities(ctx, adminID, limit)
	ch <- activities
	var once sync.Once
	stop := func() { once.Do(func() { close(ch) }) }
	return ch, stop, nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]*entity.ChatReport
}

func newFakeReportRepo(reports ...*entity.ChatReport) *fakeReportRepo {
	r := &fakeReportRepo{reports: make(map[string]*entity.ChatReport)}
	for _, rep := range reports {
		r.reports[rep.ID] = rep
	}
	return r
}

func (r *fakeReportRepo) GetByID(ctx context.Context, id string) (*entity.ChatReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Chat report", nil)
	}
	copied := *report
	return &copied, nil
}

func (r *fakeReportRepo) List(ctx context.Context) ([]*entity.ChatReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ChatReport
	for _, report := range r.reports {
		copied := *report
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *fakeReportRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, report := range r.reports {
		if report.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeReportRepo) SetApproved(ctx context.Context, id string, at time.Time, by string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return errors.NotFound("Chat report", nil)
	}
	report.Status = entity.ReportStatusApproved
	report.ApprovedAt = &at
	report.ApprovedBy = by
	return nil
}

func (r *fakeReportRepo) SetRejected(ctx context.Context, id string, at time.Time, by string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return errors.NotFound("Chat report", nil)
	}
	report.Status = entity.ReportStatusRejected
	report.RejectedAt = &at
	report.RejectedBy = by
	return nil
}

func (r *fakeReportRepo) ResetToPending(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return errors.NotFound("Chat report", nil)
	}
	report.Status = entity.ReportStatusPending
	report.RejectedAt = nil
	report.RejectedBy = ""
	return nil
}

type fakeRemovalRepo struct {
	mu       sync.Mutex
	removals map[string]*entity.ChatRemoval
}

func newFakeRemovalRepo(removals ...*entity.ChatRemoval) *fakeRemovalRepo {
	r := &fakeRemovalRepo{removals: make(map[string]*entity.ChatRemoval)}
	for _, rem := range removals {
		r.removals[rem.ID] = rem
	}
	return r
}

func (r *fakeRemovalRepo) GetByID(ctx context.Context, id string) (*entity.ChatRemoval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removal, ok := r.removals[id]
	if !ok {
		return nil, errors.NotFound("Chat removal", nil)
	}
	copied := *removal
	return &copied, nil
}

func (r *fakeRemovalRepo) List(ctx context.Context) ([]*entity.ChatRemoval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ChatRemoval
	for _, removal := range r.removals {
		copied := *removal
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *fakeRemovalRepo) SetAcknowledged(ctx context.Context, id string, at time.Time, by string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	removal, ok := r.removals[id]
	if !ok {
		return errors.NotFound("Chat removal", nil)
	}
	removal.Status = entity.RemovalStatusAcknowledged
	removal.AcknowledgedAt = &at
	removal.AcknowledgedBy = by
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, user := range r.users {
		copied := *user
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.IsActive = active
	return nil
}

func (r *fakeUserRepo) SetDisabled(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.IsDisabled = true
	user.IsActive = false
	return nil
}

type fakeTxnRepo struct {
	txns []*entity.Transaction
	err  error
}

func (r *fakeTxnRepo) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.txns, nil
}

type fakeAuthClient struct {
	mu       sync.Mutex
	disabled map[string]bool
	err      error
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{disabled: make(map[string]bool)}
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	return "", errors.Unauthorized("not implemented in fake", nil)
}

func (c *fakeAuthClient) SetUserDisabled(ctx context.Context, uid string, disabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.disabled[uid] = disabled
	return nil
}
