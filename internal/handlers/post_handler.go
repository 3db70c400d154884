package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/dto"
	"flocknet/services"
)

type PostHandler struct {
	Posts *services.PostService
}

// POST /posts
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	var body dto.CreatePostReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	post, err := h.Posts.Create(c.Context(), uid, body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// PUT /posts/:id
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var body dto.UpdatePostReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	post, err := h.Posts.Update(c.Context(), uid, postID, body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// DELETE /posts/:id
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.Posts.Delete(c.Context(), uid, postID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Post deleted successfully"})
}
