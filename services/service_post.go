package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/dto"
	"flocknet/internal/apperr"
	"flocknet/internal/storage"
	"flocknet/model"
)

// PostService owns post creation, owner-only edits and deletion. Inline
// image payloads go through the object store before the post is persisted,
// so upload latency sits on the request's critical path.
type PostService struct {
	posts    PostStore
	users    UserStore
	uploader storage.Uploader
}

// NewPostService accepts a nil uploader; image fields are then stored as
// given.
func NewPostService(posts PostStore, users UserStore, uploader storage.Uploader) *PostService {
	return &PostService{posts: posts, users: users, uploader: uploader}
}

func (s *PostService) Create(ctx context.Context, actorID bson.ObjectID, req dto.CreatePostReq) (*model.Post, error) {
	user, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	if req.Text == "" && req.Img == "" {
		return nil, apperr.Validation("post must have text or image")
	}

	img, err := s.resolveImage(req.Img)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &model.Post{
		UserID:     actorID,
		Text:       req.Text,
		Img:        img,
		Likes:      []bson.ObjectID{},
		Favourites: []bson.ObjectID{},
		Comments:   []model.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update edits a post's text and image. Omitting the image clears it;
// providing a new one replaces the stored object.
func (s *PostService) Update(ctx context.Context, actorID, postID bson.ObjectID, req dto.UpdatePostReq) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}
	if req.Text == "" && req.Img == "" {
		return nil, apperr.Validation("post must have text or image")
	}
	if post.UserID != actorID {
		return nil, apperr.Forbidden("you are not authorized to update this post")
	}

	img := ""
	if req.Img != "" {
		if post.Img != "" && s.uploader != nil {
			if err := s.uploader.Delete(post.Img); err != nil {
				return nil, err
			}
		}
		img, err = s.resolveImage(req.Img)
		if err != nil {
			return nil, err
		}
	}

	text := req.Text
	if text == "" {
		text = post.Text
	}
	if err := s.posts.UpdateContent(ctx, postID, text, img); err != nil {
		return nil, err
	}

	post.Text = text
	post.Img = img
	post.UpdatedAt = time.Now().UTC()
	return post, nil
}

// Delete removes a post, releasing its uploaded image. Owner only.
func (s *PostService) Delete(ctx context.Context, actorID, postID bson.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.NotFound("Post")
	}
	if post.UserID != actorID {
		return apperr.Forbidden("you are not authorized to delete this post")
	}

	if post.Img != "" && s.uploader != nil {
		if err := s.uploader.Delete(post.Img); err != nil {
			return err
		}
	}
	return s.posts.Delete(ctx, postID)
}

// resolveImage uploads inline payloads and passes hosted URLs through.
func (s *PostService) resolveImage(img string) (string, error) {
	if img == "" || s.uploader == nil || !storage.IsDataURI(img) {
		return img, nil
	}
	return s.uploader.UploadDataURI(img)
}
