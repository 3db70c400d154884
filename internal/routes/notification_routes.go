package routes

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/internal/middleware"
)

func NotificationRoutes(app *fiber.App, d Deps) {
	notifications := app.Group("/notifications", middleware.RequireAuth())

	notifications.Get("/", d.Notifications.List)
	notifications.Delete("/", d.Notifications.DeleteAll)
	notifications.Delete("/:id", d.Notifications.DeleteOne)
}
