package services

import (
	"context"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/dto"
	"flocknet/internal/apperr"
	"flocknet/model"
)

// NotificationService reads and deletes the recipient's notifications.
// Listing marks everything read as a side effect.
type NotificationService struct {
	notifications NotificationStore
	users         UserStore
}

func NewNotificationService(notifications NotificationStore, users UserStore) *NotificationService {
	return &NotificationService{notifications: notifications, users: users}
}

func (s *NotificationService) List(ctx context.Context, userID bson.ObjectID) ([]dto.NotificationView, error) {
	items, err := s.notifications.FindByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.notifications.MarkAllRead(ctx, userID); err != nil {
		return nil, err
	}

	byID := map[bson.ObjectID]model.User{}
	if len(items) > 0 {
		froms := lo.Uniq(lo.Map(items, func(n model.Notification, _ int) bson.ObjectID { return n.From }))
		users, err := s.users.FindByIDs(ctx, froms)
		if err != nil {
			return nil, err
		}
		byID = lo.KeyBy(users, func(u model.User) bson.ObjectID { return u.ID })
	}

	return lo.Map(items, func(n model.Notification, _ int) dto.NotificationView {
		return dto.NotificationView{
			ID:        n.ID,
			From:      userRef(n.From, byID),
			To:        n.To,
			Type:      n.Type,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}), nil
}

func (s *NotificationService) DeleteAll(ctx context.Context, userID bson.ObjectID) error {
	return s.notifications.DeleteAllFor(ctx, userID)
}

// DeleteOne removes a single notification; only its recipient may do so.
func (s *NotificationService) DeleteOne(ctx context.Context, userID, id bson.ObjectID) error {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return apperr.NotFound("Notification")
	}
	if n.To != userID {
		return apperr.Forbidden("you are not allowed to delete this notification")
	}
	return s.notifications.Delete(ctx, id)
}
