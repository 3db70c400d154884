package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"flocknet/model"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) Insert(ctx context.Context, p *model.Post) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns every post, newest first.
func (r *PostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	return r.findAll(ctx, bson.M{}, newestFirst())
}

func (r *PostRepository) FindByOwner(ctx context.Context, userID bson.ObjectID) ([]model.Post, error) {
	return r.findAll(ctx, bson.M{"user_id": userID}, newestFirst())
}

func (r *PostRepository) FindByOwners(ctx context.Context, userIDs []bson.ObjectID) ([]model.Post, error) {
	return r.findAll(ctx, bson.M{"user_id": bson.M{"$in": userIDs}}, newestFirst())
}

func (r *PostRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Post, error) {
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func newestFirst() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

func (r *PostRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.Post, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []model.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) UpdateContent(ctx context.Context, id bson.ObjectID, text, img string) error {
	return r.update(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"text":       text,
		"img":        img,
		"updated_at": time.Now().UTC(),
	}}, nil)
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Membership toggles are single atomic document updates; $addToSet and
// $pull keep the sets idempotent under concurrent requests.

func (r *PostRepository) AddLike(ctx context.Context, postID, userID bson.ObjectID) error {
	return r.update(ctx, bson.M{"_id": postID}, bson.M{"$addToSet": bson.M{"likes": userID}}, nil)
}

func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID bson.ObjectID) error {
	return r.update(ctx, bson.M{"_id": postID}, bson.M{"$pull": bson.M{"likes": userID}}, nil)
}

func (r *PostRepository) AddFavourite(ctx context.Context, postID, userID bson.ObjectID) error {
	return r.update(ctx, bson.M{"_id": postID}, bson.M{"$addToSet": bson.M{"favourites": userID}}, nil)
}

func (r *PostRepository) RemoveFavourite(ctx context.Context, postID, userID bson.ObjectID) error {
	return r.update(ctx, bson.M{"_id": postID}, bson.M{"$pull": bson.M{"favourites": userID}}, nil)
}

func (r *PostRepository) AppendComment(ctx context.Context, postID bson.ObjectID, c model.Comment) error {
	return r.update(ctx, bson.M{"_id": postID}, bson.M{"$push": bson.M{"comments": c}}, nil)
}

func (r *PostRepository) UpdateComment(ctx context.Context, postID, commentID bson.ObjectID, text string) error {
	return r.update(ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		bson.M{"$set": bson.M{"comments.$.text": text}}, nil)
}

func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID bson.ObjectID) error {
	return r.update(ctx, bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}}, nil)
}

func (r *PostRepository) AddCommentLike(ctx context.Context, postID, commentID, userID bson.ObjectID) error {
	return r.update(ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		bson.M{"$addToSet": bson.M{"comments.$.likes": userID}}, nil)
}

func (r *PostRepository) RemoveCommentLike(ctx context.Context, postID, commentID, userID bson.ObjectID) error {
	return r.update(ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		bson.M{"$pull": bson.M{"comments.$.likes": userID}}, nil)
}

func (r *PostRepository) AppendReply(ctx context.Context, postID, commentID bson.ObjectID, reply model.Reply) error {
	return r.update(ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		bson.M{"$push": bson.M{"comments.$.replies": reply}}, nil)
}

func (r *PostRepository) UpdateReply(ctx context.Context, postID, commentID, replyID bson.ObjectID, text string) error {
	return r.update(ctx,
		bson.M{"_id": postID},
		bson.M{"$set": bson.M{"comments.$[c].replies.$[r].text": text}},
		replyFilters(commentID, replyID))
}

func (r *PostRepository) DeleteReply(ctx context.Context, postID, commentID, replyID bson.ObjectID) error {
	return r.update(ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		bson.M{"$pull": bson.M{"comments.$.replies": bson.M{"_id": replyID}}}, nil)
}

func (r *PostRepository) AddReplyLike(ctx context.Context, postID, commentID, replyID, userID bson.ObjectID) error {
	return r.update(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"comments.$[c].replies.$[r].likes": userID}},
		replyFilters(commentID, replyID))
}

func (r *PostRepository) RemoveReplyLike(ctx context.Context, postID, commentID, replyID, userID bson.ObjectID) error {
	return r.update(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments.$[c].replies.$[r].likes": userID}},
		replyFilters(commentID, replyID))
}

// replyFilters addresses one reply nested two levels deep.
func replyFilters(commentID, replyID bson.ObjectID) []any {
	return bson.A{
		bson.M{"c._id": commentID},
		bson.M{"r._id": replyID},
	}
}

func (r *PostRepository) update(ctx context.Context, filter, update bson.M, arrayFilters []any) error {
	if arrayFilters != nil {
		_, err := r.col.UpdateOne(ctx, filter, update,
			options.UpdateOne().SetArrayFilters(arrayFilters))
		return err
	}
	_, err := r.col.UpdateOne(ctx, filter, update)
	return err
}
