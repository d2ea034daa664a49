package entity

import (
	"time"
)

// Marketplace item status values. These strings are part of the persisted
// contract shared with the consumer app.
const (
	ItemStatusPending   = "pending"
	ItemStatusAvailable = "available"
	ItemStatusRejected  = "rejected"
	ItemStatusRemoved   = "removed"
)

type MarketplaceItem struct {
	ID          string   `json:"id" firestore:"id"`
	SellerID    string   `json:"seller_id" firestore:"sellerId"`
	SellerName  string   `json:"seller_name" firestore:"sellerName"`
	ProductName string   `json:"product_name" firestore:"productName"`
	Category    string   `json:"category" firestore:"category"`
	Price       string   `json:"price" firestore:"price"`
	Location    string   `json:"location" firestore:"location"`
	Description string   `json:"description" firestore:"description"`
	Tags        []string `json:"tags,omitempty" firestore:"tags,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty" firestore:"imageUrls,omitempty"`
	Status      string   `json:"status" firestore:"status"`

	PostedAt time.Time `json:"posted_at" firestore:"postedAt"`

	ApprovedAt      *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty" firestore:"approvedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty" firestore:"rejectedAt,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty" firestore:"rejectedBy,omitempty"`
	RejectedMessage string     `json:"rejected_message,omitempty" firestore:"rejectedMessage,omitempty"`
	RemovedAt       *time.Time `json:"removed_at,omitempty" firestore:"removedAt,omitempty"`
	RemovedBy       string     `json:"removed_by,omitempty" firestore:"removedBy,omitempty"`
	RemovedMessage  string     `json:"removed_message,omitempty" firestore:"removedMessage,omitempty"`
}

// WasApproved reports whether approval metadata is still present on the
// item. Regressing transitions must clear these fields entirely.
func (i *MarketplaceItem) WasApproved() bool {
	return i.ApprovedBy != "" || i.ApprovedAt != nil
}
