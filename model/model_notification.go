package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	NotificationFollow  = "follow"
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationReply   = "reply"
)

// Notification document stored in "notifications". Append-only; the
// recipient may delete them, nothing else mutates them besides the
// read flag.
type Notification struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	From      bson.ObjectID `json:"from"      bson:"from_id"`
	To        bson.ObjectID `json:"to"        bson:"to_id"`
	Type      string        `json:"type"      bson:"type"`
	Read      bool          `json:"read"      bson:"read"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
