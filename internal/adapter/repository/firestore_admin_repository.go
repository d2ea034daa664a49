package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
	"scrappix-admin/pkg/logger"
)

const (
	adminCollection      = "userAdmin"
	activitiesCollection = "recentActivities"
)

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) GetByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	doc, err := r.client.Collection(adminCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin", err)
	}

	var admin entity.AdminUser
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin data", err)
	}
	admin.ID = doc.Ref.ID

	return &admin, nil
}

func (r *firestoreAdminRepository) LogActivity(ctx context.Context, adminID string, activity *entity.AdminActivity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}

	_, err := r.client.Collection(adminCollection).Doc(adminID).Collection(activitiesCollection).Doc(activity.ID).Set(ctx, activity)
	if err != nil {
		return errors.Internal("Failed to log admin activity", err)
	}
	return nil
}

func (r *firestoreAdminRepository) ListActivities(ctx context.Context, adminID string, limit int) ([]*entity.AdminActivity, error) {
	iter := r.activitiesQuery(adminID, limit).Documents(ctx)
	return collectActivities(iter)
}

func (r *firestoreAdminRepository) WatchActivities(ctx context.Context, adminID string, limit int) (<-chan []*entity.AdminActivity, func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	snapshots := r.activitiesQuery(adminID, limit).Snapshots(watchCtx)

	ch := make(chan []*entity.AdminActivity, 1)
	go func() {
		defer close(ch)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Activity watch failed for admin %s: %v", adminID, err)
				}
				return
			}

			activities, err := collectActivities(snapshot.Documents)
			if err != nil {
				logger.Error("Activity watch snapshot read failed: %v", err)
				continue
			}
			if activities == nil {
				activities = []*entity.AdminActivity{}
			}

			select {
			case ch <- activities:
			case <-watchCtx.Done():
				return
			}
		}
	}()

	return ch, cancel, nil
}

func (r *firestoreAdminRepository) activitiesQuery(adminID string, limit int) firestore.Query {
	query := r.client.Collection(adminCollection).Doc(adminID).Collection(activitiesCollection).
		OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query
}

func collectActivities(iter *firestore.DocumentIterator) ([]*entity.AdminActivity, error) {
	var activities []*entity.AdminActivity
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate admin activities", err)
		}

		var activity entity.AdminActivity
		if err := doc.DataTo(&activity); err != nil {
			return nil, errors.Internal("Failed to parse admin activity data", err)
		}
		activity.ID = doc.Ref.ID
		activities = append(activities, &activity)
	}
	return activities, nil
}
