package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/dto"
	"flocknet/services"
)

type InteractionHandler struct {
	Interactions *services.InteractionService
	Feed         *services.FeedService
}

// POST /posts/:id/like
func (h *InteractionHandler) ToggleLike(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	likes, err := h.Interactions.ToggleLike(c.Context(), uid, postID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(likes)
}

// POST /posts/:id/favourite
func (h *InteractionHandler) ToggleFavourite(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	favourites, err := h.Interactions.ToggleFavourite(c.Context(), uid, postID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(favourites)
}

// POST /posts/:id/comments
//
// Responds with the whole updated post, authors resolved; clients read
// the last element of comments as the new comment.
func (h *InteractionHandler) AddComment(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var body dto.CreateCommentReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	if _, err := h.Interactions.AddComment(c.Context(), uid, postID, body.Text); err != nil {
		return fail(c, err)
	}
	view, err := h.Feed.Get(c.Context(), postID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// POST /posts/:id/comments/:commentId/like
func (h *InteractionHandler) ToggleCommentLike(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}

	likes, err := h.Interactions.ToggleCommentLike(c.Context(), uid, postID, commentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(likes)
}

// POST /posts/:id/comments/:commentId/replies
func (h *InteractionHandler) AddReply(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}
	var body dto.CreateReplyReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	reply, err := h.Interactions.AddReply(c.Context(), uid, postID, commentID, body.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reply)
}

// POST /posts/:id/comments/:commentId/replies/:replyId/like
func (h *InteractionHandler) ToggleReplyLike(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}
	replyID, err := paramID(c, "replyId")
	if err != nil {
		return fail(c, err)
	}

	likes, err := h.Interactions.ToggleReplyLike(c.Context(), uid, postID, commentID, replyID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(likes)
}

// PUT /posts/:id/comments/:commentId
func (h *InteractionHandler) UpdateComment(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}
	var body dto.UpdateCommentReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	comment, err := h.Interactions.UpdateComment(c.Context(), uid, postID, commentID, body.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(comment)
}

// DELETE /posts/:id/comments/:commentId
func (h *InteractionHandler) DeleteComment(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}

	if err := h.Interactions.DeleteComment(c.Context(), uid, postID, commentID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Comment deleted successfully"})
}

// PUT /posts/:id/comments/:commentId/replies/:replyId
func (h *InteractionHandler) UpdateReply(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}
	replyID, err := paramID(c, "replyId")
	if err != nil {
		return fail(c, err)
	}
	var body dto.UpdateReplyReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	reply, err := h.Interactions.UpdateReply(c.Context(), uid, postID, commentID, replyID, body.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reply)
}

// DELETE /posts/:id/comments/:commentId/replies/:replyId
func (h *InteractionHandler) DeleteReply(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}
	replyID, err := paramID(c, "replyId")
	if err != nil {
		return fail(c, err)
	}

	if err := h.Interactions.DeleteReply(c.Context(), uid, postID, commentID, replyID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Reply deleted successfully"})
}
