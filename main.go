package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"flocknet/bootstrap"
	"flocknet/database"
	"flocknet/internal/handlers"
	"flocknet/internal/middleware"
	"flocknet/internal/repository"
	"flocknet/internal/routes"
	"flocknet/internal/storage"
	"flocknet/services"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}
}

func main() {
	cfg := database.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	var uploader storage.Uploader
	if cfg.S3Bucket != "" {
		s3c, err := storage.NewS3Client(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize S3 client")
		}
		uploader = s3c
		log.Info().Str("bucket", cfg.S3Bucket).Msg("image uploads go to S3")
	} else {
		log.Info().Msg("S3_BUCKET not set, image fields are stored as given")
	}

	posts := repository.NewPostRepository(db)
	users := repository.NewUserRepository(db)
	notifications := repository.NewNotificationRepository(db)

	interactionSvc := services.NewInteractionService(posts, users, notifications)
	feedSvc := services.NewFeedService(posts, users)
	postSvc := services.NewPostService(posts, users, uploader)
	userSvc := services.NewUserService(users, notifications, uploader)
	notificationSvc := services.NewNotificationService(notifications, users)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Auth:          &handlers.AuthHandler{Users: users, Secret: cfg.JWTSecret},
		Feed:          &handlers.FeedHandler{Feed: feedSvc},
		Posts:         &handlers.PostHandler{Posts: postSvc},
		Interactions:  &handlers.InteractionHandler{Interactions: interactionSvc, Feed: feedSvc},
		Users:         &handlers.UserHandler{Users: userSvc},
		Notifications: &handlers.NotificationHandler{Notifications: notificationSvc},
	})

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
