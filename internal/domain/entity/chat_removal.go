package entity

import (
	"time"
)

const (
	RemovalStatusPending      = "pending"
	RemovalStatusAcknowledged = "acknowledged"
)

type ChatRemoval struct {
	ID                string     `json:"id" firestore:"id"`
	RemovedPersonID   string     `json:"removed_person_id" firestore:"removedPersonId"`
	RemovedPersonName string     `json:"removed_person_name" firestore:"removedPersonName"`
	RemovedPersonRole string     `json:"removed_person_role" firestore:"removedPersonRole"`
	RemovedByUserID   string     `json:"removed_by_user_id" firestore:"removedByUserId"`
	RemovedByUserName string     `json:"removed_by_user_name" firestore:"removedByUserName"`
	ProductID         string     `json:"product_id" firestore:"productId"`
	ProductName       string     `json:"product_name" firestore:"productName"`
	ChatID            string     `json:"chat_id" firestore:"chatId"`
	Status            string     `json:"status" firestore:"status"`
	Timestamp         time.Time  `json:"timestamp" firestore:"timestamp"`
	AcknowledgedAt    *time.Time `json:"acknowledged_at,omitempty" firestore:"acknowledgedAt,omitempty"`
	AcknowledgedBy    string     `json:"acknowledged_by,omitempty" firestore:"acknowledgedBy,omitempty"`

	// Denormalized per request, never persisted.
	RemovedByUserImage string   `json:"removed_by_user_image,omitempty" firestore:"-"`
	RemovedPersonImage string   `json:"removed_person_image,omitempty" firestore:"-"`
	ProductImages      []string `json:"product_images,omitempty" firestore:"-"`
	ProductStatus      string   `json:"product_status,omitempty" firestore:"-"`
}
