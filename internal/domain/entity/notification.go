package entity

import (
	"time"
)

// ItemNotification is a seller-facing record written to the
// marketplaceItemsNotifications collection whenever an admin transitions a
// marketplace item.
type ItemNotification struct {
	ID          string    `json:"id" firestore:"-"`
	UserID      string    `json:"user_id" firestore:"userId"`
	ItemID      string    `json:"item_id" firestore:"itemId"`
	ProductName string    `json:"product_name" firestore:"productName"`
	Status      string    `json:"status" firestore:"status"`
	Message     string    `json:"message" firestore:"message"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
	IsRead      bool      `json:"is_read" firestore:"isRead"`
}

const (
	NotificationStatusApproved = "approved"
	NotificationStatusRejected = "rejected"
	NotificationStatusRemoved  = "removed"
)
