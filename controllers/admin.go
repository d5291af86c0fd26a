package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"restaurant-backend/middleware"
	"restaurant-backend/models"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// AdminController handles admin authentication, settings and statistics
type AdminController struct {
	Users    store.Collection
	Settings store.Collection
}

// NewAdminController creates a new AdminController
func NewAdminController(s store.Store) *AdminController {
	return &AdminController{
		Users:    s.Collection("admin_users"),
		Settings: s.Collection("admin_settings"),
	}
}

// Login authenticates the admin and issues a bearer token. Unknown usernames
// and wrong passwords produce the identical response so neither is leaked.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.AdminUser
	err := ac.Users.FindOne(ctx, bson.M{"username": creds.Username}, &user)
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"access_token": token,
		"token_type":   "bearer",
		"username":     user.Username,
	})
}

// Verify confirms a bearer token and echoes its subject
func (ac *AdminController) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.AdminContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"username": claims.Username})
}

func (ac *AdminController) loadSettings(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	err := ac.Settings.FindOne(ctx, bson.M{"id": models.SettingsID}, &s)
	if errors.Is(err, store.ErrNoDocuments) {
		return models.DefaultSettings(), nil
	}
	return s, err
}

// GetSettings returns the full settings document, synthesizing defaults when
// none has been written yet (admin only)
func (ac *AdminController) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	settings, err := ac.loadSettings(ctx)
	if err != nil {
		http.Error(w, "Error fetching settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// UpdateSettings upserts the settings singleton (admin only)
func (ac *AdminController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var partial bson.M
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	delete(partial, "id")
	delete(partial, "_id")
	if len(partial) == 0 {
		http.Error(w, "No fields to update", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err := ac.Settings.UpsertOne(ctx, bson.M{"id": models.SettingsID}, bson.M{"$set": partial})
	if err != nil {
		http.Error(w, "Error updating settings", http.StatusInternalServerError)
		return
	}

	settings, err := ac.loadSettings(ctx)
	if err != nil {
		http.Error(w, "Error fetching settings", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// GetPublicSettings returns the public subset of the settings document
func (ac *AdminController) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	settings, err := ac.loadSettings(ctx)
	if err != nil {
		http.Error(w, "Error fetching settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings.Public())
}

// GetStatistics returns the displayed site counters, falling back per field
// to the defaults when unset
func (ac *AdminController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	settings, err := ac.loadSettings(ctx)
	if err != nil {
		http.Error(w, "Error fetching statistics", http.StatusInternalServerError)
		return
	}

	defaults := models.DefaultSettings()
	stats := map[string]int{
		"happy_customers":  settings.HappyCustomers,
		"dishes_served":    settings.DishesServed,
		"years_experience": settings.YearsExperience,
		"team_members":     settings.TeamMembers,
	}
	fallbacks := map[string]int{
		"happy_customers":  defaults.HappyCustomers,
		"dishes_served":    defaults.DishesServed,
		"years_experience": defaults.YearsExperience,
		"team_members":     defaults.TeamMembers,
	}
	for key, value := range stats {
		if value == 0 {
			stats[key] = fallbacks[key]
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
