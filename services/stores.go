package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/model"
)

// Store interfaces are declared on the consumer side; the Mongo
// implementations live in internal/repository and the tests substitute
// in-memory fakes.

type PostStore interface {
	Insert(ctx context.Context, p *model.Post) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByOwner(ctx context.Context, userID bson.ObjectID) ([]model.Post, error)
	FindByOwners(ctx context.Context, userIDs []bson.ObjectID) ([]model.Post, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Post, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, text, img string) error
	Delete(ctx context.Context, id bson.ObjectID) error

	AddLike(ctx context.Context, postID, userID bson.ObjectID) error
	RemoveLike(ctx context.Context, postID, userID bson.ObjectID) error
	AddFavourite(ctx context.Context, postID, userID bson.ObjectID) error
	RemoveFavourite(ctx context.Context, postID, userID bson.ObjectID) error

	AppendComment(ctx context.Context, postID bson.ObjectID, c model.Comment) error
	UpdateComment(ctx context.Context, postID, commentID bson.ObjectID, text string) error
	DeleteComment(ctx context.Context, postID, commentID bson.ObjectID) error
	AddCommentLike(ctx context.Context, postID, commentID, userID bson.ObjectID) error
	RemoveCommentLike(ctx context.Context, postID, commentID, userID bson.ObjectID) error

	AppendReply(ctx context.Context, postID, commentID bson.ObjectID, reply model.Reply) error
	UpdateReply(ctx context.Context, postID, commentID, replyID bson.ObjectID, text string) error
	DeleteReply(ctx context.Context, postID, commentID, replyID bson.ObjectID) error
	AddReplyLike(ctx context.Context, postID, commentID, replyID, userID bson.ObjectID) error
	RemoveReplyLike(ctx context.Context, postID, commentID, replyID, userID bson.ObjectID) error
}

type UserStore interface {
	Insert(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.User, error)
	FindFollowers(ctx context.Context, id bson.ObjectID) ([]model.User, error)
	FindSuggestions(ctx context.Context, exclude []bson.ObjectID, limit int64) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error

	AddLikedPost(ctx context.Context, userID, postID bson.ObjectID) error
	RemoveLikedPost(ctx context.Context, userID, postID bson.ObjectID) error
	AddFavouritePost(ctx context.Context, userID, postID bson.ObjectID) error
	RemoveFavouritePost(ctx context.Context, userID, postID bson.ObjectID) error
	AddFollowing(ctx context.Context, userID, targetID bson.ObjectID) error
	RemoveFollowing(ctx context.Context, userID, targetID bson.ObjectID) error
}

type NotificationStore interface {
	Insert(ctx context.Context, n *model.Notification) error
	FindByRecipient(ctx context.Context, to bson.ObjectID) ([]model.Notification, error)
	MarkAllRead(ctx context.Context, to bson.ObjectID) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Notification, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteAllFor(ctx context.Context, to bson.ObjectID) error
}
