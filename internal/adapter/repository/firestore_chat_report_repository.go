package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
)

const chatReportsCollection = "chatReports"

type firestoreChatReportRepository struct {
	client *firestore.Client
}

func NewFirestoreChatReportRepository(client *firestore.Client) repository.ChatReportRepository {
	return &firestoreChatReportRepository{
		client: client,
	}
}

func (r *firestoreChatReportRepository) GetByID(ctx context.Context, id string) (*entity.ChatReport, error) {
	doc, err := r.client.Collection(chatReportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat report", err)
		}
		return nil, errors.Internal("Failed to get chat report", err)
	}

	var report entity.ChatReport
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse chat report data", err)
	}
	report.ID = doc.Ref.ID

	return &report, nil
}

func (r *firestoreChatReportRepository) List(ctx context.Context) ([]*entity.ChatReport, error) {
	iter := r.client.Collection(chatReportsCollection).OrderBy("timestamp", firestore.Desc).Documents(ctx)

	var reports []*entity.ChatReport
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chat reports", err)
		}

		var report entity.ChatReport
		if err := doc.DataTo(&report); err != nil {
			return nil, errors.Internal("Failed to parse chat report data", err)
		}
		report.ID = doc.Ref.ID
		reports = append(reports, &report)
	}
	return reports, nil
}

func (r *firestoreChatReportRepository) CountByStatus(ctx context.Context, reportStatus string) (int, error) {
	docs, err := r.client.Collection(chatReportsCollection).Where("status", "==", reportStatus).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count chat reports", err)
	}
	return len(docs), nil
}

func (r *firestoreChatReportRepository) SetApproved(ctx context.Context, id string, at time.Time, by string) error {
	_, err := r.client.Collection(chatReportsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: entity.ReportStatusApproved},
		{Path: "approvedAt", Value: at},
		{Path: "approvedBy", Value: by},
	})
	if err != nil {
		return errors.Internal("Failed to approve chat report", err)
	}
	return nil
}

func (r *firestoreChatReportRepository) SetRejected(ctx context.Context, id string, at time.Time, by string) error {
	_, err := r.client.Collection(chatReportsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: entity.ReportStatusRejected},
		{Path: "rejectedAt", Value: at},
		{Path: "rejectedBy", Value: by},
	})
	if err != nil {
		return errors.Internal("Failed to reject chat report", err)
	}
	return nil
}

// undoRejectionUpdates resets a rejected report to pending. The rejection
// fields are deleted rather than nulled.
func undoRejectionUpdates() []firestore.Update {
	return []firestore.Update{
		{Path: "status", Value: entity.ReportStatusPending},
		{Path: "rejectedAt", Value: firestore.Delete},
		{Path: "rejectedBy", Value: firestore.Delete},
	}
}

func (r *firestoreChatReportRepository) ResetToPending(ctx context.Context, id string) error {
	_, err := r.client.Collection(chatReportsCollection).Doc(id).Update(ctx, undoRejectionUpdates())
	if err != nil {
		return errors.Internal("Failed to reset chat report", err)
	}
	return nil
}
