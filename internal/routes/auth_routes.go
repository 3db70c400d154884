package routes

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/internal/middleware"
)

func AuthRoutes(app *fiber.App, d Deps) {
	auth := app.Group("/auth")

	auth.Post("/signup", d.Auth.Signup)
	auth.Post("/login", d.Auth.Login)
	auth.Post("/logout", d.Auth.Logout)
	auth.Get("/me", middleware.RequireAuth(), d.Auth.Me)
}
