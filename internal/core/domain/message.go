package domain

import "time"

// Message is a directed note between two users. It is immutable once created
// except for the Read flag, which flips when the receiver fetches the thread.
type Message struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SenderID   string    `json:"sender_id" bson:"sender_id"`
	ReceiverID string    `json:"receiver_id" bson:"receiver_id"`
	Content    string    `json:"content" bson:"content"`
	Attachment string    `json:"attachment,omitempty" bson:"attachment,omitempty"`
	Read       bool      `json:"read" bson:"read"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
