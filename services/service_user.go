package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"flocknet/dto"
	"flocknet/internal/apperr"
	"flocknet/internal/storage"
	"flocknet/model"
)

const suggestedUsersLimit = 4

// UserService covers the follow graph, profiles and profile updates.
type UserService struct {
	users         UserStore
	notifications NotificationStore
	uploader      storage.Uploader
}

func NewUserService(users UserStore, notifications NotificationStore, uploader storage.Uploader) *UserService {
	return &UserService{users: users, notifications: notifications, uploader: uploader}
}

// ToggleFollow toggles targetID in the actor's following set and reports
// whether the actor now follows the target. Only the outgoing edge is
// stored; a follow notification is emitted on the follow transition only.
func (s *UserService) ToggleFollow(ctx context.Context, actorID, targetID bson.ObjectID) (bool, error) {
	if actorID == targetID {
		return false, apperr.Validation("you can't follow/unfollow yourself")
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, apperr.NotFound("User")
	}
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return false, err
	}
	if actor == nil {
		return false, apperr.NotFound("User")
	}

	if model.HasID(actor.Following, targetID) {
		if err := s.users.RemoveFollowing(ctx, actorID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.users.AddFollowing(ctx, actorID, targetID); err != nil {
		return false, err
	}
	err = s.notifications.Insert(ctx, &model.Notification{
		From:      actorID,
		To:        targetID,
		Type:      model.NotificationFollow,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) Profile(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

// Followers derives the named user's followers by querying the following
// sets of all other users.
func (s *UserService) Followers(ctx context.Context, username string) ([]model.User, error) {
	user, err := s.Profile(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.users.FindFollowers(ctx, user.ID)
}

func (s *UserService) Following(ctx context.Context, username string) ([]model.User, error) {
	user, err := s.Profile(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(user.Following) == 0 {
		return []model.User{}, nil
	}
	return s.users.FindByIDs(ctx, user.Following)
}

// Suggested returns a handful of users the actor does not follow yet.
func (s *UserService) Suggested(ctx context.Context, actorID bson.ObjectID) ([]model.User, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.NotFound("User")
	}
	exclude := append(append([]bson.ObjectID{}, actor.Following...), actorID)
	return s.users.FindSuggestions(ctx, exclude, suggestedUsersLimit)
}

// UpdateProfile applies a partial profile update. A password change
// requires the current password to match.
func (s *UserService) UpdateProfile(ctx context.Context, actorID bson.ObjectID, req dto.UpdateUserReq) (*model.User, error) {
	user, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	if req.NewPassword != "" || req.CurrentPassword != "" {
		if req.NewPassword == "" || req.CurrentPassword == "" {
			return nil, apperr.Validation("please provide both current password and new password")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return nil, apperr.Validation("current password is incorrect")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if req.ProfileImg != "" {
		img, err := s.replaceImage(user.ProfileImg, req.ProfileImg)
		if err != nil {
			return nil, err
		}
		user.ProfileImg = img
	}
	if req.CoverImg != "" {
		img, err := s.replaceImage(user.CoverImg, req.CoverImg)
		if err != nil {
			return nil, err
		}
		user.CoverImg = img
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Link != "" {
		user.Link = req.Link
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) replaceImage(old, next string) (string, error) {
	if s.uploader == nil || !storage.IsDataURI(next) {
		return next, nil
	}
	if old != "" {
		if err := s.uploader.Delete(old); err != nil {
			return "", err
		}
	}
	return s.uploader.UploadDataURI(next)
}
