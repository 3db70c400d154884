package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User document stored in "users".
//
// Only the outgoing follow edge is stored; followers are derived by
// querying users whose following set contains this id.
type User struct {
	ID             bson.ObjectID   `json:"id"             bson:"_id,omitempty"`
	Username       string          `json:"username"       bson:"username"`
	FullName       string          `json:"fullName"       bson:"full_name"`
	Email          string          `json:"email"          bson:"email"`
	PasswordHash   string          `json:"-"              bson:"password_hash"`
	Bio            string          `json:"bio"            bson:"bio"`
	Link           string          `json:"link"           bson:"link"`
	ProfileImg     string          `json:"profileImg"     bson:"profile_img"`
	CoverImg       string          `json:"coverImg"       bson:"cover_img"`
	Following      []bson.ObjectID `json:"following"      bson:"following"`
	LikedPosts     []bson.ObjectID `json:"likedPosts"     bson:"liked_posts"`
	FavouritePosts []bson.ObjectID `json:"favouritePosts" bson:"favourite_posts"`
	CreatedAt      time.Time       `json:"createdAt"      bson:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt"      bson:"updated_at"`
}
