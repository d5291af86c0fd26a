package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"restaurant-backend/models"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// CartController handles per-visitor cart and wishlist state. The user id is
// caller-supplied and unauthenticated; the caller is the trust boundary.
//
// Reads and writes here are plain find/modify/write-back with no locking, so
// concurrent requests for the same user id can race. That mirrors the
// observed behavior of the system this replaces.
type CartController struct {
	Carts     store.Collection
	Wishlists store.Collection
}

// NewCartController creates a new CartController
func NewCartController(s store.Store) *CartController {
	return &CartController{
		Carts:     s.Collection("carts"),
		Wishlists: s.Collection("wishlists"),
	}
}

// GetCart returns the visitor's cart, creating an empty one on first read
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := cc.Carts.FindOne(ctx, bson.M{"user_id": userID}, &cart)
	if errors.Is(err, store.ErrNoDocuments) {
		cart = models.Cart{
			ID:        utils.NewID(),
			UserID:    userID,
			Items:     []models.CartItem{},
			UpdatedAt: time.Now().UTC(),
		}
		if err := cc.Carts.InsertOne(ctx, cart); err != nil {
			http.Error(w, "Error creating cart", http.StatusInternalServerError)
			return
		}
	} else if err != nil {
		http.Error(w, "Error fetching cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

// AddToCart adds a line item, merging quantity into an existing line for the
// same menu item
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if item.MenuItemID == "" || item.Quantity <= 0 {
		http.Error(w, "menu_item_id and a positive quantity are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := cc.Carts.FindOne(ctx, bson.M{"user_id": userID}, &cart)
	if errors.Is(err, store.ErrNoDocuments) {
		cart = models.Cart{
			ID:        utils.NewID(),
			UserID:    userID,
			Items:     []models.CartItem{item},
			UpdatedAt: time.Now().UTC(),
		}
		if err := cc.Carts.InsertOne(ctx, cart); err != nil {
			http.Error(w, "Error creating cart", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Item added to cart"})
		return
	}
	if err != nil {
		http.Error(w, "Error fetching cart", http.StatusInternalServerError)
		return
	}

	merged := false
	for i, existing := range cart.Items {
		if existing.MenuItemID == item.MenuItemID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	_, err = cc.Carts.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$set": bson.M{"items": cart.Items, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Item added to cart"})
}

// RemoveFromCart drops all lines for a menu item. Missing carts and missing
// lines are not errors.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	menuItemID := vars["item_id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := cc.Carts.FindOne(ctx, bson.M{"user_id": userID}, &cart)
	if err == nil {
		kept := []models.CartItem{}
		for _, item := range cart.Items {
			if item.MenuItemID != menuItemID {
				kept = append(kept, item)
			}
		}
		_, err = cc.Carts.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
			"$set": bson.M{"items": kept, "updated_at": time.Now().UTC()},
		})
		if err != nil {
			http.Error(w, "Error updating cart", http.StatusInternalServerError)
			return
		}
	} else if !errors.Is(err, store.ErrNoDocuments) {
		http.Error(w, "Error fetching cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Item removed from cart"})
}

// ClearCart empties the cart. A missing cart document is left missing, the
// same asymmetry the original system has: get and add create, clear does not.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	_, err := cc.Carts.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$set": bson.M{"items": []models.CartItem{}, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		http.Error(w, "Error clearing cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Cart cleared"})
}

// GetWishlist returns the visitor's wishlist, creating an empty one on first read
func (cc *CartController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var wishlist models.Wishlist
	err := cc.Wishlists.FindOne(ctx, bson.M{"user_id": userID}, &wishlist)
	if errors.Is(err, store.ErrNoDocuments) {
		wishlist = models.Wishlist{
			ID:          utils.NewID(),
			UserID:      userID,
			MenuItemIDs: []string{},
			UpdatedAt:   time.Now().UTC(),
		}
		if err := cc.Wishlists.InsertOne(ctx, wishlist); err != nil {
			http.Error(w, "Error creating wishlist", http.StatusInternalServerError)
			return
		}
	} else if err != nil {
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wishlist)
}

// AddToWishlist adds a menu item id; adding an id already present is a no-op
func (cc *CartController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	menuItemID := vars["item_id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var wishlist models.Wishlist
	err := cc.Wishlists.FindOne(ctx, bson.M{"user_id": userID}, &wishlist)
	if errors.Is(err, store.ErrNoDocuments) {
		wishlist = models.Wishlist{
			ID:          utils.NewID(),
			UserID:      userID,
			MenuItemIDs: []string{menuItemID},
			UpdatedAt:   time.Now().UTC(),
		}
		if err := cc.Wishlists.InsertOne(ctx, wishlist); err != nil {
			http.Error(w, "Error creating wishlist", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Item added to wishlist"})
		return
	}
	if err != nil {
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}

	present := false
	for _, id := range wishlist.MenuItemIDs {
		if id == menuItemID {
			present = true
			break
		}
	}
	if !present {
		wishlist.MenuItemIDs = append(wishlist.MenuItemIDs, menuItemID)
		_, err = cc.Wishlists.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
			"$set": bson.M{"menu_item_ids": wishlist.MenuItemIDs, "updated_at": time.Now().UTC()},
		})
		if err != nil {
			http.Error(w, "Error updating wishlist", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Item added to wishlist"})
}

// RemoveFromWishlist filters a menu item id out; tolerant of missing documents
func (cc *CartController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	menuItemID := vars["item_id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var wishlist models.Wishlist
	err := cc.Wishlists.FindOne(ctx, bson.M{"user_id": userID}, &wishlist)
	if err == nil {
		kept := []string{}
		for _, id := range wishlist.MenuItemIDs {
			if id != menuItemID {
				kept = append(kept, id)
			}
		}
		_, err = cc.Wishlists.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
			"$set": bson.M{"menu_item_ids": kept, "updated_at": time.Now().UTC()},
		})
		if err != nil {
			http.Error(w, "Error updating wishlist", http.StatusInternalServerError)
			return
		}
	} else if !errors.Is(err, store.ErrNoDocuments) {
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Item removed from wishlist"})
}
