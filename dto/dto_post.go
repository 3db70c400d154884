package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CreatePostReq struct {
	Text string `json:"text" validate:"max=5000"`
	Img  string `json:"img"`
}

type UpdatePostReq struct {
	Text string `json:"text" validate:"max=5000"`
	Img  string `json:"img"`
}

// UserRef is the public slice of a user embedded in feed views.
type UserRef struct {
	ID         bson.ObjectID `json:"id"`
	Username   string        `json:"username"`
	FullName   string        `json:"fullName"`
	ProfileImg string        `json:"profileImg"`
}

type ReplyView struct {
	ID        bson.ObjectID   `json:"id"`
	User      UserRef         `json:"user"`
	Text      string          `json:"text"`
	Likes     []bson.ObjectID `json:"likes"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CommentView struct {
	ID        bson.ObjectID   `json:"id"`
	User      UserRef         `json:"user"`
	Text      string          `json:"text"`
	Likes     []bson.ObjectID `json:"likes"`
	Replies   []ReplyView     `json:"replies"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PostView is a post with its owner and comment/reply authors resolved
// to public profile fields.
type PostView struct {
	ID         bson.ObjectID   `json:"id"`
	User       UserRef         `json:"user"`
	Text       string          `json:"text"`
	Img        string          `json:"img"`
	Likes      []bson.ObjectID `json:"likes"`
	Favourites []bson.ObjectID `json:"favourites"`
	Comments   []CommentView   `json:"comments"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
