package entity

import (
	"time"
)

// AdminUser is a document in the userAdmin collection. Only documents with
// role "admin" and isActive true may use the console.
type AdminUser struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	FullName string `json:"full_name" firestore:"fullName"`
	Role     string `json:"role" firestore:"role"`
	IsActive bool   `json:"is_active" firestore:"isActive"`
}

// AdminActivity is an append-only audit entry stored under
// userAdmin/{adminId}/recentActivities.
type AdminActivity struct {
	// The document ID is the identity; it is never duplicated into a field.
	ID           string                 `json:"id" firestore:"-"`
	AdminID      string                 `json:"admin_id" firestore:"adminId"`
	AdminEmail   string                 `json:"admin_email" firestore:"adminEmail"`
	ActivityType string                 `json:"activity_type" firestore:"activityType"`
	Description  string                 `json:"description" firestore:"description"`
	Details      map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
	Page         string                 `json:"page" firestore:"page"`
	Timestamp    time.Time              `json:"timestamp" firestore:"timestamp"`
}

// Activity types recorded by the console.
const (
	ActivityUserAccountDisabled = "user_account_disabled"
	ActivityUserAccountEnabled  = "user_account_enabled"
	ActivityUserAccountDeleted  = "user_account_deleted"

	ActivityChatReportReviewed  = "chat_report_reviewed"
	ActivityChatReportResolved  = "chat_report_resolved"
	ActivityChatReportDismissed = "chat_report_dismissed"
	ActivityChatRemovedByAdmin  = "chat_removed_by_admin"

	ActivityItemApproved = "marketplace_item_approved"
	ActivityItemRejected = "marketplace_item_rejected"
	ActivityItemRemoved  = "marketplace_item_removed"
	ActivityItemDeleted  = "marketplace_item_deleted"
)

// Console pages, recorded on each activity entry.
const (
	PageUserManagement      = "User Management"
	PageReportsModeration   = "Reports Moderation"
	PageMarketplaceApproval = "Marketplace Approval"
	PageMarketplaceArchive  = "Marketplace Archive"
	PageDashboard           = "Dashboard"
)
