package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"flocknet/model"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) Insert(ctx context.Context, u *model.User) error {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.User, error) {
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindFollowers derives the followers of id: every user whose following
// set contains it.
func (r *UserRepository) FindFollowers(ctx context.Context, id bson.ObjectID) ([]model.User, error) {
	return r.findAll(ctx, bson.M{"following": id}, nil)
}

// FindSuggestions returns up to limit users outside the given id set.
func (r *UserRepository) FindSuggestions(ctx context.Context, exclude []bson.ObjectID, limit int64) ([]model.User, error) {
	filter := bson.M{"_id": bson.M{"$nin": exclude}}
	return r.findAll(ctx, filter, options.Find().SetLimit(limit))
}

func (r *UserRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.User, error) {
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

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	return err
}

func (r *UserRepository) AddLikedPost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"liked_posts": postID}})
}

func (r *UserRepository) RemoveLikedPost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"liked_posts": postID}})
}

func (r *UserRepository) AddFavouritePost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"favourite_posts": postID}})
}

func (r *UserRepository) RemoveFavouritePost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"favourite_posts": postID}})
}

func (r *UserRepository) AddFollowing(ctx context.Context, userID, targetID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"following": targetID}})
}

func (r *UserRepository) RemoveFollowing(ctx context.Context, userID, targetID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"following": targetID}})
}

func (r *UserRepository) update(ctx context.Context, id bson.ObjectID, update bson.M) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
