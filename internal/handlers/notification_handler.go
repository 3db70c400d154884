package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/dto"
	"flocknet/services"
)

type NotificationHandler struct {
	Notifications *services.NotificationService
}

// GET /notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.Notifications.List(c.Context(), uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// DELETE /notifications
func (h *NotificationHandler) DeleteAll(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.Notifications.DeleteAll(c.Context(), uid); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Notifications deleted successfully"})
}

// DELETE /notifications/:id
func (h *NotificationHandler) DeleteOne(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.Notifications.DeleteOne(c.Context(), uid, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Notification deleted successfully"})
}
