package database

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	S3Region  string
	S3Bucket  string
}

func LoadConfig() Config {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		S3Region:  os.Getenv("S3_REGION"),
		S3Bucket:  os.Getenv("S3_BUCKET"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.DBName == "" {
		cfg.DBName = "flocknet"
	}
	return cfg
}

func ConnectMongo(cfg Config) *mongo.Client {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	log.Info().Str("db", cfg.DBName).Msg("connected to MongoDB")
	return client
}

func DisconnectMongo(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Error().Err(err).Msg("failed to disconnect from MongoDB")
	}
}
