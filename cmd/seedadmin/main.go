// Command seedadmin creates an admin login from environment variables.
//
// Usage:
//
//	SCHOLARHUB_MONGO_URI=... SCHOLARHUB_MONGO_DATABASE=... \
//	SCHOLARHUB_SEED_EMAIL=admin@example.com SCHOLARHUB_SEED_PASSWORD=... seedadmin
//
// Seeding is idempotent: an admin that already exists is left untouched.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	adminstore "github.com/dalemusser/scholarhub/internal/app/store/admins"
	"github.com/dalemusser/scholarhub/internal/domain/models"
)

const bcryptCost = 12

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	uri := os.Getenv("SCHOLARHUB_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("SCHOLARHUB_MONGO_DATABASE")
	if dbName == "" {
		dbName = "scholarhub"
	}
	email := os.Getenv("SCHOLARHUB_SEED_EMAIL")
	password := os.Getenv("SCHOLARHUB_SEED_PASSWORD")
	if email == "" || password == "" {
		return errors.New("SCHOLARHUB_SEED_EMAIL and SCHOLARHUB_SEED_PASSWORD must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	admins := adminstore.New(client.Database(dbName))

	if existing, err := admins.GetByEmail(ctx, email); err == nil {
		logger.Info("admin already exists, nothing to do",
			zap.String("email", existing.Email))
		return nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin, err := admins.Create(ctx, models.Admin{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	logger.Info("admin created",
		zap.String("email", admin.Email),
		zap.String("id", admin.ID.Hex()))
	return nil
}
