package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/dto"
	"flocknet/services"
)

type UserHandler struct {
	Users *services.UserService
}

// GET /users/profile/:username
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	user, err := h.Users.Profile(c.Context(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// GET /users/profile/:username/followers
func (h *UserHandler) Followers(c *fiber.Ctx) error {
	users, err := h.Users.Followers(c.Context(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// GET /users/profile/:username/following
func (h *UserHandler) Following(c *fiber.Ctx) error {
	users, err := h.Users.Following(c.Context(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// GET /users/suggested
func (h *UserHandler) Suggested(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	users, err := h.Users.Suggested(c.Context(), uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// POST /users/follow/:id
func (h *UserHandler) ToggleFollow(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	targetID, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	followed, err := h.Users.ToggleFollow(c.Context(), uid, targetID)
	if err != nil {
		return fail(c, err)
	}
	msg := "User unfollowed successfully"
	if followed {
		msg = "User followed successfully"
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

// PUT /users/update
func (h *UserHandler) Update(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	var body dto.UpdateUserReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	user, err := h.Users.UpdateProfile(c.Context(), uid, body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
