package main

import (
	"context"
	"errors"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"restaurant-backend/models"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// bootstrap seeds the admin user and the settings singleton on first run so a
// fresh database is immediately usable.
func bootstrap(ctx context.Context, s store.Store) error {
	if err := ensureAdminUser(ctx, s); err != nil {
		return err
	}
	return ensureSettings(ctx, s)
}

func ensureAdminUser(ctx context.Context, s store.Store) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	users := s.Collection("admin_users")
	var existing models.AdminUser
	err := users.FindOne(ctx, bson.M{"username": username}, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("Warning: ADMIN_PASSWORD not set, admin user created with default password")
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = models.DefaultAdminEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Printf("Creating admin user %q", username)
	return users.InsertOne(ctx, models.AdminUser{
		ID:           utils.NewID(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
	})
}

func ensureSettings(ctx context.Context, s store.Store) error {
	settings := s.Collection("admin_settings")
	var existing models.Settings
	err := settings.FindOne(ctx, bson.M{"id": models.SettingsID}, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return err
	}

	defaults := models.DefaultSettings()
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		defaults.AdminEmail = email
	}
	log.Println("Seeding default settings")
	return settings.InsertOne(ctx, defaults)
}
