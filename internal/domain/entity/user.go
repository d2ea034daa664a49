package entity

import (
	"time"
)

type User struct {
	ID         string    `json:"id" firestore:"id"`
	FullName   string    `json:"full_name" firestore:"fullName"`
	Email      string    `json:"email" firestore:"email"`
	Nickname   string    `json:"nickname,omitempty" firestore:"nickname,omitempty"`
	ImageURL   string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	IsActive   bool      `json:"is_active" firestore:"isActive"`
	IsDisabled bool      `json:"is_disabled" firestore:"isDisabled"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

// UserRiskProfile decorates a user with per-page-load counters derived from
// the moderation collections. None of the counters is stored.
type UserRiskProfile struct {
	User

	ApprovedReports int    `json:"approved_reports" firestore:"-"`
	ChatRemovals    int    `json:"chat_removals" firestore:"-"`
	PostedItems     int    `json:"posted_items" firestore:"-"`
	SoldItems       int    `json:"sold_items" firestore:"-"`
	RiskLevel       string `json:"risk_level" firestore:"-"`
}
