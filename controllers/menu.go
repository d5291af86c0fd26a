package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"restaurant-backend/models"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// Listings are unpaginated; this cap keeps them bounded.
const maxListResults = 1000

// MenuController handles menu item and category requests
type MenuController struct {
	Items store.Collection
}

// NewMenuController creates a new MenuController
func NewMenuController(s store.Store) *MenuController {
	return &MenuController{Items: s.Collection("menu_items")}
}

// GetMenuItems retrieves menu items, optionally filtered by category,
// featured flag and menu type
func (mc *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}
	if menuType := r.URL.Query().Get("menu_type"); menuType != "" {
		filter["menu_type"] = menuType
	}
	if featured := r.URL.Query().Get("featured"); featured != "" {
		value, err := strconv.ParseBool(featured)
		if err != nil {
			http.Error(w, "Invalid featured value", http.StatusBadRequest)
			return
		}
		filter["featured"] = value
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	items := []models.MenuItem{}
	err := mc.Items.Find(ctx, filter, &items, &store.FindOptions{Limit: maxListResults})
	if err != nil {
		http.Error(w, "Error fetching menu items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// GetMenuItem retrieves a single menu item by ID
func (mc *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.MenuItem
	err := mc.Items.FindOne(ctx, bson.M{"id": id}, &item)
	if errors.Is(err, store.ErrNoDocuments) {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// CreateMenuItem handles adding a new menu item (admin only)
func (mc *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if item.Price < 0 {
		http.Error(w, "Price must be non-negative", http.StatusBadRequest)
		return
	}

	item.ID = utils.NewID()
	item.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := mc.Items.InsertOne(ctx, item); err != nil {
		http.Error(w, "Error creating menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// UpdateMenuItem applies a partial update to a menu item (admin only)
func (mc *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var partial bson.M
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	delete(partial, "id")
	delete(partial, "_id")
	delete(partial, "created_at")
	if len(partial) == 0 {
		http.Error(w, "No fields to update", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	matched, err := mc.Items.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": partial})
	if err != nil {
		http.Error(w, "Error updating menu item", http.StatusInternalServerError)
		return
	}
	if matched == 0 {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	var item models.MenuItem
	if err := mc.Items.FindOne(ctx, bson.M{"id": id}, &item); err != nil {
		http.Error(w, "Error fetching menu item", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteMenuItem removes a menu item (admin only)
func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	deleted, err := mc.Items.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		http.Error(w, "Error deleting menu item", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Menu item deleted"})
}

// GetCategories returns the distinct category values, optionally scoped to a
// menu type
func (mc *MenuController) GetCategories(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if menuType := r.URL.Query().Get("menu_type"); menuType != "" {
		filter["menu_type"] = menuType
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	categories, err := mc.Items.Distinct(ctx, "category", filter)
	if err != nil {
		http.Error(w, "Error fetching categories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"categories": categories})
}
