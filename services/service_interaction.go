package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/internal/apperr"
	"flocknet/model"
)

// InteractionService applies the toggle semantics for likes and favourites
// on posts, comments and replies, and appends comments and replies.
//
// Cross-collection pairs (Post.likes and User.likedPosts) are written as
// two sequential single-document updates, post side first. Each update is
// atomic on its own document but the pair is not transactional.
//
// Notifications are emitted only on positive transitions, never on
// toggle-off. Comment and reply likes never notify, and reply
// notifications go to the post owner, not the comment author.
type InteractionService struct {
	posts         PostStore
	users         UserStore
	notifications NotificationStore
}

func NewInteractionService(posts PostStore, users UserStore, notifications NotificationStore) *InteractionService {
	return &InteractionService{posts: posts, users: users, notifications: notifications}
}

func (s *InteractionService) notify(ctx context.Context, from, to bson.ObjectID, kind string) error {
	return s.notifications.Insert(ctx, &model.Notification{
		From:      from,
		To:        to,
		Type:      kind,
		CreatedAt: time.Now().UTC(),
	})
}

// ToggleLike adds or removes actorID from the post's likes set together
// with the mirrored entry in the actor's likedPosts, and returns the
// updated likes set.
func (s *InteractionService) ToggleLike(ctx context.Context, actorID, postID bson.ObjectID) ([]bson.ObjectID, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}

	if model.HasID(post.Likes, actorID) {
		if err := s.posts.RemoveLike(ctx, postID, actorID); err != nil {
			return nil, err
		}
		if err := s.users.RemoveLikedPost(ctx, actorID, postID); err != nil {
			return nil, err
		}
		return model.WithoutID(post.Likes, actorID), nil
	}

	if err := s.posts.AddLike(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.users.AddLikedPost(ctx, actorID, postID); err != nil {
		return nil, err
	}
	if err := s.notify(ctx, actorID, post.UserID, model.NotificationLike); err != nil {
		return nil, err
	}
	return append(post.Likes, actorID), nil
}

// ToggleFavourite mirrors ToggleLike on the favourites sets. Favouriting
// never notifies.
func (s *InteractionService) ToggleFavourite(ctx context.Context, actorID, postID bson.ObjectID) ([]bson.ObjectID, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}

	if model.HasID(post.Favourites, actorID) {
		if err := s.posts.RemoveFavourite(ctx, postID, actorID); err != nil {
			return nil, err
		}
		if err := s.users.RemoveFavouritePost(ctx, actorID, postID); err != nil {
			return nil, err
		}
		return model.WithoutID(post.Favourites, actorID), nil
	}

	if err := s.posts.AddFavourite(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.users.AddFavouritePost(ctx, actorID, postID); err != nil {
		return nil, err
	}
	return append(post.Favourites, actorID), nil
}

// AddComment appends a comment and returns the updated post.
func (s *InteractionService) AddComment(ctx context.Context, actorID, postID bson.ObjectID, text string) (*model.Post, error) {
	if text == "" {
		return nil, apperr.Validation("text field is required")
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}

	comment := model.Comment{
		ID:        bson.NewObjectID(),
		UserID:    actorID,
		Text:      text,
		Likes:     []bson.ObjectID{},
		Replies:   []model.Reply{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	if err := s.notify(ctx, actorID, post.UserID, model.NotificationComment); err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments, comment)
	return post, nil
}

// ToggleCommentLike toggles actorID in a comment's likes set. There is no
// mirrored array on the user and no notification either way.
func (s *InteractionService) ToggleCommentLike(ctx context.Context, actorID, postID, commentID bson.ObjectID) ([]bson.ObjectID, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, apperr.NotFound("Comment")
	}

	if model.HasID(comment.Likes, actorID) {
		if err := s.posts.RemoveCommentLike(ctx, postID, commentID, actorID); err != nil {
			return nil, err
		}
		return model.WithoutID(comment.Likes, actorID), nil
	}
	if err := s.posts.AddCommentLike(ctx, postID, commentID, actorID); err != nil {
		return nil, err
	}
	return append(comment.Likes, actorID), nil
}

// AddReply appends a reply to a comment and returns the new reply. The
// notification goes to the post owner.
func (s *InteractionService) AddReply(ctx context.Context, actorID, postID, commentID bson.ObjectID, text string) (*model.Reply, error) {
	if text == "" {
		return nil, apperr.Validation("text field is required")
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}
	if post.FindComment(commentID) == nil {
		return nil, apperr.NotFound("Comment")
	}

	reply := model.Reply{
		ID:        bson.NewObjectID(),
		UserID:    actorID,
		Text:      text,
		Likes:     []bson.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.AppendReply(ctx, postID, commentID, reply); err != nil {
		return nil, err
	}
	if err := s.notify(ctx, actorID, post.UserID, model.NotificationReply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ToggleReplyLike toggles actorID in a reply's likes set. No notification
// either way.
func (s *InteractionService) ToggleReplyLike(ctx context.Context, actorID, postID, commentID, replyID bson.ObjectID) ([]bson.ObjectID, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, apperr.NotFound("Comment")
	}
	reply := comment.FindReply(replyID)
	if reply == nil {
		return nil, apperr.NotFound("Reply")
	}

	if model.HasID(reply.Likes, actorID) {
		if err := s.posts.RemoveReplyLike(ctx, postID, commentID, replyID, actorID); err != nil {
			return nil, err
		}
		return model.WithoutID(reply.Likes, actorID), nil
	}
	if err := s.posts.AddReplyLike(ctx, postID, commentID, replyID, actorID); err != nil {
		return nil, err
	}
	return append(reply.Likes, actorID), nil
}

// UpdateComment edits a comment's text. Author only.
func (s *InteractionService) UpdateComment(ctx context.Context, actorID, postID, commentID bson.ObjectID, text string) (*model.Comment, error) {
	if text == "" {
		return nil, apperr.Validation("text field is required")
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, apperr.NotFound("Comment")
	}
	if comment.UserID != actorID {
		return nil, apperr.Forbidden("you are not authorized to edit this comment")
	}

	if err := s.posts.UpdateComment(ctx, postID, commentID, text); err != nil {
		return nil, err
	}
	comment.Text = text
	return comment, nil
}

// DeleteComment removes a comment and its replies. Author only.
func (s *InteractionService) DeleteComment(ctx context.Context, actorID, postID, commentID bson.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.NotFound("Post")
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return apperr.NotFound("Comment")
	}
	if comment.UserID != actorID {
		return apperr.Forbidden("you are not authorized to delete this comment")
	}
	return s.posts.DeleteComment(ctx, postID, commentID)
}

// UpdateReply edits a reply's text. Author only.
func (s *InteractionService) UpdateReply(ctx context.Context, actorID, postID, commentID, replyID bson.ObjectID, text string) (*model.Reply, error) {
	if text == "" {
		return nil, apperr.Validation("text field is required")
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, apperr.NotFound("Comment")
	}
	reply := comment.FindReply(replyID)
	if reply == nil {
		return nil, apperr.NotFound("Reply")
	}
	if reply.UserID != actorID {
		return nil, apperr.Forbidden("you are not authorized to edit this reply")
	}

	if err := s.posts.UpdateReply(ctx, postID, commentID, replyID, text); err != nil {
		return nil, err
	}
	reply.Text = text
	return reply, nil
}

// DeleteReply removes a reply. Author only.
func (s *InteractionService) DeleteReply(ctx context.Context, actorID, postID, commentID, replyID bson.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.NotFound("Post")
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return apperr.NotFound("Comment")
	}
	reply := comment.FindReply(replyID)
	if reply == nil {
		return apperr.NotFound("Reply")
	}
	if reply.UserID != actorID {
		return apperr.Forbidden("you are not authorized to delete this reply")
	}
	return s.posts.DeleteReply(ctx, postID, commentID, replyID)
}
