package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotificationView struct {
	ID        bson.ObjectID `json:"id"`
	From      UserRef       `json:"from"`
	To        bson.ObjectID `json:"to"`
	Type      string        `json:"type"`
	Read      bool          `json:"read"`
	CreatedAt time.Time     `json:"createdAt"`
}
