package routes

import (
	"github.com/gofiber/fiber/v2"

	"flocknet/internal/middleware"
)

func PostRoutes(app *fiber.App, d Deps) {
	posts := app.Group("/posts", middleware.RequireAuth())

	// feeds
	posts.Get("/", d.Feed.Global)
	posts.Get("/following", d.Feed.Following)
	posts.Get("/user/:username", d.Feed.ByUser)
	posts.Get("/liked/:username", d.Feed.Liked)
	posts.Get("/favourites/:username", d.Feed.Favourited)
	posts.Get("/:id", d.Feed.Get)

	// posts
	posts.Post("/", d.Posts.Create)
	posts.Put("/:id", d.Posts.Update)
	posts.Delete("/:id", d.Posts.Delete)

	// interactions
	posts.Post("/:id/like", d.Interactions.ToggleLike)
	posts.Post("/:id/favourite", d.Interactions.ToggleFavourite)

	// comments
	posts.Post("/:id/comments", d.Interactions.AddComment)
	posts.Post("/:id/comments/:commentId/like", d.Interactions.ToggleCommentLike)
	posts.Put("/:id/comments/:commentId", d.Interactions.UpdateComment)
	posts.Delete("/:id/comments/:commentId", d.Interactions.DeleteComment)

	// replies
	posts.Get("/:id/comments/:commentId/replies", d.Feed.Replies)
	posts.Post("/:id/comments/:commentId/replies", d.Interactions.AddReply)
	posts.Post("/:id/comments/:commentId/replies/:replyId/like", d.Interactions.ToggleReplyLike)
	posts.Put("/:id/comments/:commentId/replies/:replyId", d.Interactions.UpdateReply)
	posts.Delete("/:id/comments/:commentId/replies/:replyId", d.Interactions.DeleteReply)
}
