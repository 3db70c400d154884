package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/internal/apperr"
	"flocknet/model"
)

type feedEnv struct {
	svc   *FeedService
	posts *fakePostStore
	users *fakeUserStore

	alice *model.User
	bob   *model.User
}

func newFeedEnv(t *testing.T) *feedEnv {
	t.Helper()
	ctx := context.Background()

	posts := newFakePostStore()
	users := newFakeUserStore()

	alice := &model.User{Username: "alice", FullName: "Alice A", ProfileImg: "a.png"}
	bob := &model.User{Username: "bob", FullName: "Bob B"}
	require.NoError(t, users.Insert(ctx, alice))
	require.NoError(t, users.Insert(ctx, bob))

	return &feedEnv{
		svc:   NewFeedService(posts, users),
		posts: posts,
		users: users,
		alice: alice,
		bob:   bob,
	}
}

func (e *feedEnv) addPost(t *testing.T, owner bson.ObjectID, text string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{
		UserID:     owner,
		Text:       text,
		Likes:      []bson.ObjectID{},
		Favourites: []bson.ObjectID{},
		Comments:   []model.Comment{},
		CreatedAt:  at,
		UpdatedAt:  at,
	}
	require.NoError(t, e.posts.Insert(context.Background(), p))
	return p
}

func TestFeedGlobalNewestFirst(t *testing.T) {
	env := newFeedEnv(t)
	now := time.Now().UTC()

	old := env.addPost(t, env.alice.ID, "old", now.Add(-2*time.Hour))
	mid := env.addPost(t, env.bob.ID, "mid", now.Add(-time.Hour))
	newest := env.addPost(t, env.alice.ID, "new", now)

	views, err := env.svc.Global(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, newest.ID, views[0].ID)
	assert.Equal(t, mid.ID, views[1].ID)
	assert.Equal(t, old.ID, views[2].ID)

	assert.Equal(t, "alice", views[0].User.Username)
	assert.Equal(t, "Alice A", views[0].User.FullName)
	assert.Equal(t, "bob", views[1].User.Username)
}

func TestFeedGlobalEmpty(t *testing.T) {
	env := newFeedEnv(t)

	views, err := env.svc.Global(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestFeedFollowing(t *testing.T) {
	env := newFeedEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()

	env.addPost(t, env.alice.ID, "own post", now)
	bobPost := env.addPost(t, env.bob.ID, "followed post", now.Add(-time.Minute))

	// alice follows bob but not herself
	require.NoError(t, env.users.AddFollowing(ctx, env.alice.ID, env.bob.ID))

	views, err := env.svc.Following(ctx, env.alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, bobPost.ID, views[0].ID)
}

func TestFeedFollowingNobody(t *testing.T) {
	env := newFeedEnv(t)
	env.addPost(t, env.bob.ID, "ignored", time.Now().UTC())

	views, err := env.svc.Following(context.Background(), env.alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	_, err = env.svc.Following(context.Background(), bson.NewObjectID())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFeedByUser(t *testing.T) {
	env := newFeedEnv(t)
	now := time.Now().UTC()

	env.addPost(t, env.bob.ID, "not hers", now)
	hers := env.addPost(t, env.alice.ID, "hers", now.Add(-time.Minute))

	views, err := env.svc.ByUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, hers.ID, views[0].ID)

	_, err = env.svc.ByUser(context.Background(), "nobody")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFeedLikedAndFavourited(t *testing.T) {
	env := newFeedEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()

	liked := env.addPost(t, env.bob.ID, "liked", now)
	faved := env.addPost(t, env.bob.ID, "faved", now.Add(-time.Minute))
	env.addPost(t, env.bob.ID, "neither", now.Add(-2*time.Minute))

	require.NoError(t, env.users.AddLikedPost(ctx, env.alice.ID, liked.ID))
	require.NoError(t, env.users.AddFavouritePost(ctx, env.alice.ID, faved.ID))

	views, err := env.svc.Liked(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, liked.ID, views[0].ID)

	views, err = env.svc.Favourited(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, faved.ID, views[0].ID)
}

func TestFeedGetResolvesAuthors(t *testing.T) {
	env := newFeedEnv(t)
	ctx := context.Background()
	ghost := bson.NewObjectID() // author with no user document

	p := env.addPost(t, env.alice.ID, "threaded", time.Now().UTC())
	p.Comments = []model.Comment{{
		ID:     bson.NewObjectID(),
		UserID: env.bob.ID,
		Text:   "a comment",
		Likes:  []bson.ObjectID{},
		Replies: []model.Reply{{
			ID:     bson.NewObjectID(),
			UserID: ghost,
			Text:   "a reply",
			Likes:  []bson.ObjectID{},
		}},
	}}
	require.NoError(t, env.posts.AppendComment(ctx, p.ID, p.Comments[0]))

	view, err := env.svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", view.User.Username)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "bob", view.Comments[0].User.Username)

	// a dangling author id yields a bare reference, not an error
	require.Len(t, view.Comments[0].Replies, 1)
	assert.Equal(t, ghost, view.Comments[0].Replies[0].User.ID)
	assert.Empty(t, view.Comments[0].Replies[0].User.Username)

	_, err = env.svc.Get(ctx, bson.NewObjectID())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFeedReplies(t *testing.T) {
	env := newFeedEnv(t)
	ctx := context.Background()

	p := env.addPost(t, env.alice.ID, "post", time.Now().UTC())
	comment := model.Comment{
		ID:     bson.NewObjectID(),
		UserID: env.alice.ID,
		Text:   "c",
		Likes:  []bson.ObjectID{},
		Replies: []model.Reply{
			{ID: bson.NewObjectID(), UserID: env.bob.ID, Text: "r1", Likes: []bson.ObjectID{}},
			{ID: bson.NewObjectID(), UserID: env.alice.ID, Text: "r2", Likes: []bson.ObjectID{}},
		},
	}
	require.NoError(t, env.posts.AppendComment(ctx, p.ID, comment))

	replies, err := env.svc.Replies(ctx, p.ID, comment.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "r1", replies[0].Text)
	assert.Equal(t, "bob", replies[0].User.Username)
	assert.Equal(t, "r2", replies[1].Text)

	_, err = env.svc.Replies(ctx, p.ID, bson.NewObjectID())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
