package entity

import (
	"time"
)

// ScannedMaterial is a scannedMaterials document produced by the consumer
// app's scanner. The dashboard only counts them.
type ScannedMaterial struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Material  string    `json:"material,omitempty" firestore:"material,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
