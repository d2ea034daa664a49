package entity

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusApproved = "approved"
	ReportStatusRejected = "rejected"
)

type ChatReport struct {
	ID                 string     `json:"id" firestore:"id"`
	ReportedPersonID   string     `json:"reported_person_id" firestore:"reportedPersonId"`
	ReportedPersonName string     `json:"reported_person_name" firestore:"reportedPersonName"`
	ReportedPersonRole string     `json:"reported_person_role" firestore:"reportedPersonRole"`
	ReportedByUserID   string     `json:"reported_by_user_id" firestore:"reportedByUserId"`
	ReportedByUserName string     `json:"reported_by_user_name" firestore:"reportedByUserName"`
	ProductID          string     `json:"product_id" firestore:"productId"`
	ProductName        string     `json:"product_name" firestore:"productName"`
	ReportCategory     string     `json:"report_category" firestore:"reportCategory"`
	ChatID             string     `json:"chat_id" firestore:"chatId"`
	Status             string     `json:"status" firestore:"status"`
	Timestamp          time.Time  `json:"timestamp" firestore:"timestamp"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
	ApprovedBy         string     `json:"approved_by,omitempty" firestore:"approvedBy,omitempty"`
	RejectedAt         *time.Time `json:"rejected_at,omitempty" firestore:"rejectedAt,omitempty"`
	RejectedBy         string     `json:"rejected_by,omitempty" firestore:"rejectedBy,omitempty"`

	// Denormalized per request, never persisted.
	ReportedByUserImage string   `json:"reported_by_user_image,omitempty" firestore:"-"`
	ReportedPersonImage string   `json:"reported_person_image,omitempty" firestore:"-"`
	ProductImages       []string `json:"product_images,omitempty" firestore:"-"`
}
