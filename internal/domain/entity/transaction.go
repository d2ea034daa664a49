package entity

import (
	"time"
)

const TransactionStatusCompleted = "completed"

// Transaction is a productTransactions document. The console only counts
// completed transactions per seller.
type Transaction struct {
	ID        string    `json:"id" firestore:"id"`
	SellerID  string    `json:"seller_id" firestore:"sellerId"`
	BuyerID   string    `json:"buyer_id" firestore:"buyerId"`
	ProductID string    `json:"product_id" firestore:"productId"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
