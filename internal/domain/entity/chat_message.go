package entity

import (
	"time"
)

// ChatMessage lives in the chats/{chatId}/messages subcollection. The admin
// console only ever reads these.
type ChatMessage struct {
	ID         string    `json:"id" firestore:"id"`
	SenderID   string    `json:"sender_id" firestore:"senderId"`
	SenderName string    `json:"sender_name,omitempty" firestore:"senderName,omitempty"`
	Text       string    `json:"text,omitempty" firestore:"text,omitempty"`
	ImageURL   string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`

	// Filled per request from the sender's user document.
	SenderImage string `json:"sender_image,omitempty" firestore:"-"`
}
