package routes

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/internal/handlers"
)

type Deps struct {
	Auth          *handlers.AuthHandler
	Feed          *handlers.FeedHandler
	Posts         *handlers.PostHandler
	Interactions  *handlers.InteractionHandler
	Users         *handlers.UserHandler
	Notifications *handlers.NotificationHandler
}

func Register(app *fiber.App, d Deps) {
	AuthRoutes(app, d)
	PostRoutes(app, d)
	UserRoutes(app, d)
	NotificationRoutes(app, d)
}
