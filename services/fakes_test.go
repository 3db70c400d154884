package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/model"
)

// In-memory stores standing in for the Mongo repositories. Reads hand out
// deep copies so service-side slice math never leaks into stored state,
// mirroring the read-then-write behavior against a real database.

func clonePost(p *model.Post) *model.Post {
	cp := *p
	cp.Likes = append([]bson.ObjectID{}, p.Likes...)
	cp.Favourites = append([]bson.ObjectID{}, p.Favourites...)
	cp.Comments = make([]model.Comment, len(p.Comments))
	for i, c := range p.Comments {
		cc := c
		cc.Likes = append([]bson.ObjectID{}, c.Likes...)
		cc.Replies = make([]model.Reply, len(c.Replies))
		for j, r := range c.Replies {
			rr := r
			rr.Likes = append([]bson.ObjectID{}, r.Likes...)
			cc.Replies[j] = rr
		}
		cp.Comments[i] = cc
	}
	return &cp
}

func cloneUser(u *model.User) *model.User {
	cu := *u
	cu.Following = append([]bson.ObjectID{}, u.Following...)
	cu.LikedPosts = append([]bson.ObjectID{}, u.LikedPosts...)
	cu.FavouritePosts = append([]bson.ObjectID{}, u.FavouritePosts...)
	return &cu
}

type fakePostStore struct {
	posts map[bson.ObjectID]*model.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[bson.ObjectID]*model.Post{}}
}

func (s *fakePostStore) Insert(_ context.Context, p *model.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	s.posts[p.ID] = clonePost(p)
	return nil
}

func (s *fakePostStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return clonePost(p), nil
}

func (s *fakePostStore) FindAll(ctx context.Context) ([]model.Post, error) {
	return s.find(func(*model.Post) bool { return true }, true), nil
}

func (s *fakePostStore) FindByOwner(_ context.Context, userID bson.ObjectID) ([]model.Post, error) {
	return s.find(func(p *model.Post) bool { return p.UserID == userID }, true), nil
}

func (s *fakePostStore) FindByOwners(_ context.Context, userIDs []bson.ObjectID) ([]model.Post, error) {
	return s.find(func(p *model.Post) bool { return model.HasID(userIDs, p.UserID) }, true), nil
}

func (s *fakePostStore) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]model.Post, error) {
	var out []model.Post
	for _, id := range ids {
		if p, ok := s.posts[id]; ok {
			out = append(out, *clonePost(p))
		}
	}
	return out, nil
}

func (s *fakePostStore) find(match func(*model.Post) bool, newestFirst bool) []model.Post {
	var out []model.Post
	for _, p := range s.posts {
		if match(p) {
			out = append(out, *clonePost(p))
		}
	}
	if newestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

func (s *fakePostStore) UpdateContent(_ context.Context, id bson.ObjectID, text, img string) error {
	if p, ok := s.posts[id]; ok {
		p.Text = text
		p.Img = img
	}
	return nil
}

func (s *fakePostStore) Delete(_ context.Context, id bson.ObjectID) error {
	delete(s.posts, id)
	return nil
}

func (s *fakePostStore) AddLike(_ context.Context, postID, userID bson.ObjectID) error {
	if p, ok := s.posts[postID]; ok && !model.HasID(p.Likes, userID) {
		p.Likes = append(p.Likes, userID)
	}
	return nil
}

func (s *fakePostStore) RemoveLike(_ context.Context, postID, userID bson.ObjectID) error {
	if p, ok := s.posts[postID]; ok {
		p.Likes = model.WithoutID(p.Likes, userID)
	}
	return nil
}

func (s *fakePostStore) AddFavourite(_ context.Context, postID, userID bson.ObjectID) error {
	if p, ok := s.posts[postID]; ok && !model.HasID(p.Favourites, userID) {
		p.Favourites = append(p.Favourites, userID)
	}
	return nil
}

func (s *fakePostStore) RemoveFavourite(_ context.Context, postID, userID bson.ObjectID) error {
	if p, ok := s.posts[postID]; ok {
		p.Favourites = model.WithoutID(p.Favourites, userID)
	}
	return nil
}

func (s *fakePostStore) AppendComment(_ context.Context, postID bson.ObjectID, c model.Comment) error {
	if p, ok := s.posts[postID]; ok {
		p.Comments = append(p.Comments, c)
	}
	return nil
}

func (s *fakePostStore) UpdateComment(_ context.Context, postID, commentID bson.ObjectID, text string) error {
	if p, ok := s.posts[postID]; ok {
		if c := p.FindComment(commentID); c != nil {
			c.Text = text
		}
	}
	return nil
}

func (s *fakePostStore) DeleteComment(_ context.Context, postID, commentID bson.ObjectID) error {
	p, ok := s.posts[postID]
	if !ok {
		return nil
	}
	out := p.Comments[:0]
	for _, c := range p.Comments {
		if c.ID != commentID {
			out = append(out, c)
		}
	}
	p.Comments = out
	return nil
}

func (s *fakePostStore) AddCommentLike(_ context.Context, postID, commentID, userID bson.ObjectID) error {
	if p, ok := s.posts[postID]; ok {
		if c := p.FindComment(commentID); c != nil && !model.HasID(c.Likes, userID) {
			c.Likes = append(c.Likes, userID)
		}
	}
	return nil
}

func (s *fakePostStore) RemoveCommentLike(_ context.Context, postID, commentID, userID bson.ObjectID) error {
	if p, ok := s.posts[postID]; ok {
		if c := p.FindComment(commentID); c != nil {
			c.Likes = model.WithoutID(c.Likes, userID)
		}
	}
	return nil
}

func (s *fakePostStore) AppendReply(_ context.Context, postID, commentID bson.ObjectID, reply model.Reply) error {
	if p, ok := s.posts[postID]; ok {
		if c := p.FindComment(commentID); c != nil {
			c.Replies = append(c.Replies, reply)
		}
	}
	return nil
}

func (s *fakePostStore) UpdateReply(_ context.Context, postID, commentID, replyID bson.ObjectID, text string) error {
	if r := s.reply(postID, commentID, replyID); r != nil {
		r.Text = text
	}
	return nil
}

func (s *fakePostStore) DeleteReply(_ context.Context, postID, commentID, replyID bson.ObjectID) error {
	p, ok := s.posts[postID]
	if !ok {
		return nil
	}
	c := p.FindComment(commentID)
	if c == nil {
		return nil
	}
	out := c.Replies[:0]
	for _, r := range c.Replies {
		if r.ID != replyID {
			out = append(out, r)
		}
	}
	c.Replies = out
	return nil
}

func (s *fakePostStore) AddReplyLike(_ context.Context, postID, commentID, replyID, userID bson.ObjectID) error {
	if r := s.reply(postID, commentID, replyID); r != nil && !model.HasID(r.Likes, userID) {
		r.Likes = append(r.Likes, userID)
	}
	return nil
}

func (s *fakePostStore) RemoveReplyLike(_ context.Context, postID, commentID, replyID, userID bson.ObjectID) error {
	if r := s.reply(postID, commentID, replyID); r != nil {
		r.Likes = model.WithoutID(r.Likes, userID)
	}
	return nil
}

func (s *fakePostStore) reply(postID, commentID, replyID bson.ObjectID) *model.Reply {
	p, ok := s.posts[postID]
	if !ok {
		return nil
	}
	c := p.FindComment(commentID)
	if c == nil {
		return nil
	}
	return c.FindReply(replyID)
}

type fakeUserStore struct {
	users map[bson.ObjectID]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[bson.ObjectID]*model.User{}}
}

func (s *fakeUserStore) Insert(_ context.Context, u *model.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	s.users[u.ID] = cloneUser(u)
	return nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]model.User, error) {
	var out []model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (s *fakeUserStore) FindFollowers(_ context.Context, id bson.ObjectID) ([]model.User, error) {
	var out []model.User
	for _, u := range s.users {
		if model.HasID(u.Following, id) {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (s *fakeUserStore) FindSuggestions(_ context.Context, exclude []bson.ObjectID, limit int64) ([]model.User, error) {
	var out []model.User
	for _, u := range s.users {
		if !model.HasID(exclude, u.ID) {
			out = append(out, *cloneUser(u))
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, u *model.User) error {
	s.users[u.ID] = cloneUser(u)
	return nil
}

func (s *fakeUserStore) AddLikedPost(_ context.Context, userID, postID bson.ObjectID) error {
	if u, ok := s.users[userID]; ok && !model.HasID(u.LikedPosts, postID) {
		u.LikedPosts = append(u.LikedPosts, postID)
	}
	return nil
}

func (s *fakeUserStore) RemoveLikedPost(_ context.Context, userID, postID bson.ObjectID) error {
	if u, ok := s.users[userID]; ok {
		u.LikedPosts = model.WithoutID(u.LikedPosts, postID)
	}
	return nil
}

func (s *fakeUserStore) AddFavouritePost(_ context.Context, userID, postID bson.ObjectID) error {
	if u, ok := s.users[userID]; ok && !model.HasID(u.FavouritePosts, postID) {
		u.FavouritePosts = append(u.FavouritePosts, postID)
	}
	return nil
}

func (s *fakeUserStore) RemoveFavouritePost(_ context.Context, userID, postID bson.ObjectID) error {
	if u, ok := s.users[userID]; ok {
		u.FavouritePosts = model.WithoutID(u.FavouritePosts, postID)
	}
	return nil
}

func (s *fakeUserStore) AddFollowing(_ context.Context, userID, targetID bson.ObjectID) error {
	if u, ok := s.users[userID]; ok && !model.HasID(u.Following, targetID) {
		u.Following = append(u.Following, targetID)
	}
	return nil
}

func (s *fakeUserStore) RemoveFollowing(_ context.Context, userID, targetID bson.ObjectID) error {
	if u, ok := s.users[userID]; ok {
		u.Following = model.WithoutID(u.Following, targetID)
	}
	return nil
}

type fakeNotificationStore struct {
	items []model.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{}
}

func (s *fakeNotificationStore) Insert(_ context.Context, n *model.Notification) error {
	if n.ID.IsZero() {
		n.ID = bson.NewObjectID()
	}
	s.items = append(s.items, *n)
	return nil
}

func (s *fakeNotificationStore) FindByRecipient(_ context.Context, to bson.ObjectID) ([]model.Notification, error) {
	var out []model.Notification
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].To == to {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

func (s *fakeNotificationStore) MarkAllRead(_ context.Context, to bson.ObjectID) error {
	for i := range s.items {
		if s.items[i].To == to {
			s.items[i].Read = true
		}
	}
	return nil
}

func (s *fakeNotificationStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Notification, error) {
	for _, n := range s.items {
		if n.ID == id {
			cp := n
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeNotificationStore) Delete(_ context.Context, id bson.ObjectID) error {
	out := s.items[:0]
	for _, n := range s.items {
		if n.ID != id {
			out = append(out, n)
		}
	}
	s.items = out
	return nil
}

func (s *fakeNotificationStore) DeleteAllFor(_ context.Context, to bson.ObjectID) error {
	out := s.items[:0]
	for _, n := range s.items {
		if n.To != to {
			out = append(out, n)
		}
	}
	s.items = out
	return nil
}

// sent returns the notifications of a given type delivered to a user.
func (s *fakeNotificationStore) sent(to bson.ObjectID, kind string) []model.Notification {
	var out []model.Notification
	for _, n := range s.items {
		if n.To == to && n.Type == kind {
			out = append(out, n)
		}
	}
	return out
}
