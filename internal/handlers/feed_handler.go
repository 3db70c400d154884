package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/services"
)

type FeedHandler struct {
	Feed *services.FeedService
}

// GET /posts
func (h *FeedHandler) Global(c *fiber.Ctx) error {
	views, err := h.Feed.Global(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/following
func (h *FeedHandler) Following(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	views, err := h.Feed.Following(c.Context(), uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/user/:username
func (h *FeedHandler) ByUser(c *fiber.Ctx) error {
	views, err := h.Feed.ByUser(c.Context(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/liked/:username
func (h *FeedHandler) Liked(c *fiber.Ctx) error {
	views, err := h.Feed.Liked(c.Context(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/favourites/:username
func (h *FeedHandler) Favourited(c *fiber.Ctx) error {
	views, err := h.Feed.Favourited(c.Context(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/:id
func (h *FeedHandler) Get(c *fiber.Ctx) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	view, err := h.Feed.Get(c.Context(), postID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// GET /posts/:id/comments/:commentId/replies
func (h *FeedHandler) Replies(c *fiber.Ctx) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}
	replies, err := h.Feed.Replies(c.Context(), postID, commentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(replies)
}
