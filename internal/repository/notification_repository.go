package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"flocknet/model"
)

type NotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{col: db.Collection("notifications")}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *model.Notification) error {
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		n.ID = oid
	}
	return nil
}

func (r *NotificationRepository) FindByRecipient(ctx context.Context, to bson.ObjectID) ([]model.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"to_id": to}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.Notification
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, to bson.ObjectID) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"to_id": to}, bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *NotificationRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Notification, error) {
	var n model.Notification
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *NotificationRepository) DeleteAllFor(ctx context.Context, to bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"to_id": to})
	return err
}
