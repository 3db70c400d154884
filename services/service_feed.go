package services

import (
	"context"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/dto"
	"flocknet/internal/apperr"
	"flocknet/model"
)

// FeedService builds ordered post listings with owner and comment-author
// references resolved to public profile fields. All queries are read-only.
type FeedService struct {
	posts PostStore
	users UserStore
}

func NewFeedService(posts PostStore, users UserStore) *FeedService {
	return &FeedService{posts: posts, users: users}
}

// Global returns every post, newest first.
func (s *FeedService) Global(ctx context.Context) ([]dto.PostView, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts)
}

// Following returns posts whose owner is in the user's following set.
// A user following nobody gets an empty feed, not an error.
func (s *FeedService) Following(ctx context.Context, userID bson.ObjectID) ([]dto.PostView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	if len(user.Following) == 0 {
		return []dto.PostView{}, nil
	}
	posts, err := s.posts.FindByOwners(ctx, user.Following)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts)
}

// ByUser returns the named user's posts, newest first.
func (s *FeedService) ByUser(ctx context.Context, username string) ([]dto.PostView, error) {
	user, err := s.resolveUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts)
}

// Liked returns the posts referenced by the named user's likedPosts set.
func (s *FeedService) Liked(ctx context.Context, username string) ([]dto.PostView, error) {
	user, err := s.resolveUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByIDs(ctx, user.LikedPosts)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts)
}

// Favourited returns the posts referenced by the named user's
// favouritePosts set.
func (s *FeedService) Favourited(ctx context.Context, username string) ([]dto.PostView, error) {
	user, err := s.resolveUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByIDs(ctx, user.FavouritePosts)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts)
}

// Get returns a single post with references resolved.
func (s *FeedService) Get(ctx context.Context, postID bson.ObjectID) (*dto.PostView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}
	views, err := s.assemble(ctx, []model.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Replies lists a comment's replies with their authors resolved.
func (s *FeedService) Replies(ctx context.Context, postID, commentID bson.ObjectID) ([]dto.ReplyView, error) {
	view, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	for i := range view.Comments {
		if view.Comments[i].ID == commentID {
			return view.Comments[i].Replies, nil
		}
	}
	return nil, apperr.NotFound("Comment")
}

func (s *FeedService) resolveUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

// assemble resolves every user reference in the given posts with a single
// batched lookup.
func (s *FeedService) assemble(ctx context.Context, posts []model.Post) ([]dto.PostView, error) {
	var refs []bson.ObjectID
	for _, p := range posts {
		refs = append(refs, p.UserID)
		for _, c := range p.Comments {
			refs = append(refs, c.UserID)
			for _, r := range c.Replies {
				refs = append(refs, r.UserID)
			}
		}
	}

	byID := map[bson.ObjectID]model.User{}
	if len(refs) > 0 {
		users, err := s.users.FindByIDs(ctx, lo.Uniq(refs))
		if err != nil {
			return nil, err
		}
		byID = lo.KeyBy(users, func(u model.User) bson.ObjectID { return u.ID })
	}

	return lo.Map(posts, func(p model.Post, _ int) dto.PostView {
		return postView(p, byID)
	}), nil
}

func postView(p model.Post, users map[bson.ObjectID]model.User) dto.PostView {
	return dto.PostView{
		ID:         p.ID,
		User:       userRef(p.UserID, users),
		Text:       p.Text,
		Img:        p.Img,
		Likes:      idSet(p.Likes),
		Favourites: idSet(p.Favourites),
		Comments: lo.Map(p.Comments, func(c model.Comment, _ int) dto.CommentView {
			return commentView(c, users)
		}),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func commentView(c model.Comment, users map[bson.ObjectID]model.User) dto.CommentView {
	return dto.CommentView{
		ID:    c.ID,
		User:  userRef(c.UserID, users),
		Text:  c.Text,
		Likes: idSet(c.Likes),
		Replies: lo.Map(c.Replies, func(r model.Reply, _ int) dto.ReplyView {
			return replyView(r, users)
		}),
		CreatedAt: c.CreatedAt,
	}
}

func replyView(r model.Reply, users map[bson.ObjectID]model.User) dto.ReplyView {
	return dto.ReplyView{
		ID:        r.ID,
		User:      userRef(r.UserID, users),
		Text:      r.Text,
		Likes:     idSet(r.Likes),
		CreatedAt: r.CreatedAt,
	}
}

// userRef keeps the id even when the referenced user no longer exists.
func userRef(id bson.ObjectID, users map[bson.ObjectID]model.User) dto.UserRef {
	u, ok := users[id]
	if !ok {
		return dto.UserRef{ID: id}
	}
	return dto.UserRef{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		ProfileImg: u.ProfileImg,
	}
}

func idSet(ids []bson.ObjectID) []bson.ObjectID {
	if ids == nil {
		return []bson.ObjectID{}
	}
	return ids
}
