package routes

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/internal/middleware"
)

func UserRoutes(app *fiber.App, d Deps) {
	users := app.Group("/users", middleware.RequireAuth())

	users.Get("/profile/:username", d.Users.Profile)
	users.Get("/profile/:username/followers", d.Users.Followers)
	users.Get("/profile/:username/following", d.Users.Following)
	users.Get("/suggested", d.Users.Suggested)
	users.Post("/follow/:id", d.Users.ToggleFollow)
	users.Put("/update", d.Users.Update)
}
