package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post document stored in "posts". Comments are embedded in insertion
// order, and each comment embeds its replies the same way.
type Post struct {
	ID         bson.ObjectID   `json:"id"         bson:"_id,omitempty"`
	UserID     bson.ObjectID   `json:"user"       bson:"user_id"`
	Text       string          `json:"text"       bson:"text"`
	Img        string          `json:"img"        bson:"img"`
	Likes      []bson.ObjectID `json:"likes"      bson:"likes"`
	Favourites []bson.ObjectID `json:"favourites" bson:"favourites"`
	Comments   []Comment       `json:"comments"   bson:"comments"`
	CreatedAt  time.Time       `json:"createdAt"  bson:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt"  bson:"updated_at"`
}

type Comment struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id"`
	UserID    bson.ObjectID   `json:"user"      bson:"user_id"`
	Text      string          `json:"text"      bson:"text"`
	Likes     []bson.ObjectID `json:"likes"     bson:"likes"`
	Replies   []Reply         `json:"replies"   bson:"replies"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
}

type Reply struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id"`
	UserID    bson.ObjectID   `json:"user"      bson:"user_id"`
	Text      string          `json:"text"      bson:"text"`
	Likes     []bson.ObjectID `json:"likes"     bson:"likes"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
}

// FindComment returns the embedded comment with the given id, or nil.
func (p *Post) FindComment(id bson.ObjectID) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i]
		}
	}
	return nil
}

// FindReply returns the embedded reply with the given id, or nil.
func (c *Comment) FindReply(id bson.ObjectID) *Reply {
	for i := range c.Replies {
		if c.Replies[i].ID == id {
			return &c.Replies[i]
		}
	}
	return nil
}

// HasID reports whether id is a member of the given id set.
func HasID(set []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

// WithoutID returns the set with id removed. The result is never nil so
// it serializes as an empty JSON array.
func WithoutID(set []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	out := make([]bson.ObjectID, 0, len(set))
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
