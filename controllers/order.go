package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"restaurant-backend/models"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// OrderController handles online orders
type OrderController struct {
	Orders   store.Collection
	Settings store.Collection
	Notifier Notifier
}

// NewOrderController creates a new OrderController
func NewOrderController(s store.Store, notifier Notifier) *OrderController {
	return &OrderController{
		Orders:   s.Collection("orders"),
		Settings: s.Collection("admin_settings"),
		Notifier: notifier,
	}
}

// CreateOrder persists a client-computed order and sends the confirmation and
// admin-alert emails. The line items and amounts are stored exactly as given;
// there is no recomputation against current menu prices. Both sends are
// best-effort and never fail the request.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if order.CustomerName == "" || order.CustomerEmail == "" {
		http.Error(w, "Customer name and email are required", http.StatusBadRequest)
		return
	}
	if !strings.Contains(order.CustomerEmail, "@") {
		http.Error(w, "Invalid email address", http.StatusBadRequest)
		return
	}
	if len(order.Items) == 0 {
		http.Error(w, "Order has no items", http.StatusBadRequest)
		return
	}

	order.ID = utils.NewID()
	order.OrderID = utils.NewOrderID()
	order.Status = models.StatusPending
	order.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	if err := oc.Orders.InsertOne(ctx, order); err != nil {
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	oc.Notifier.SendOrderConfirmation(order)
	oc.Notifier.SendNewOrderNotification(adminEmailFromSettings(ctx, oc.Settings), order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GetOrders lists all orders, newest first (admin only)
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	orders := []models.Order{}
	err := oc.Orders.Find(ctx, bson.M{}, &orders, &store.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: maxListResults,
	})
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatus sets an order's status (admin only). No transition rules
// are enforced.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if update.Status == "" {
		http.Error(w, "Status is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	matched, err := oc.Orders.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"status": update.Status},
	})
	if err != nil {
		http.Error(w, "Error updating order", http.StatusInternalServerError)
		return
	}
	if matched == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order status updated"})
}
