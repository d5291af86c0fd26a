package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"restaurant-backend/models"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// Notifier sends the transactional emails triggered by intake and order
// writes. Implementations report delivery as a boolean and never propagate
// transport errors; the callers here ignore the result for response purposes.
type Notifier interface {
	SendContactNotification(adminEmail string, contact models.ContactForm) bool
	SendReservationNotification(adminEmail string, res models.Reservation) bool
	SendOrderConfirmation(order models.Order) bool
	SendNewOrderNotification(adminEmail string, order models.Order) bool
}

// adminEmailFromSettings reads the alert address from the settings singleton,
// falling back to the built-in default when no settings document exists.
func adminEmailFromSettings(ctx context.Context, settings store.Collection) string {
	var s models.Settings
	if err := settings.FindOne(ctx, bson.M{"id": models.SettingsID}, &s); err == nil && s.AdminEmail != "" {
		return s.AdminEmail
	}
	return models.DefaultAdminEmail
}

// IntakeController handles contact form and reservation submissions
type IntakeController struct {
	Contacts     store.Collection
	Reservations store.Collection
	Settings     store.Collection
	Notifier     Notifier
}

// NewIntakeController creates a new IntakeController
func NewIntakeController(s store.Store, notifier Notifier) *IntakeController {
	return &IntakeController{
		Contacts:     s.Collection("contact_forms"),
		Reservations: s.Collection("reservations"),
		Settings:     s.Collection("admin_settings"),
		Notifier:     notifier,
	}
}

// SubmitContact persists a contact form and alerts the admin by email.
// The notification is best-effort: its failure never fails the submission.
func (ic *IntakeController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var contact models.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		http.Error(w, "Name, email and message are required", http.StatusBadRequest)
		return
	}
	if !strings.Contains(contact.Email, "@") {
		http.Error(w, "Invalid email address", http.StatusBadRequest)
		return
	}

	contact.ID = utils.NewID()
	contact.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := ic.Contacts.InsertOne(ctx, contact); err != nil {
		http.Error(w, "Error saving contact form", http.StatusInternalServerError)
		return
	}

	ic.Notifier.SendContactNotification(adminEmailFromSettings(ctx, ic.Settings), contact)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(contact)
}

// SubmitReservation persists a reservation and alerts the admin by email
func (ic *IntakeController) SubmitReservation(w http.ResponseWriter, r *http.Request) {
	var res models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if res.Name == "" || res.Email == "" || res.Date == "" || res.Time == "" {
		http.Error(w, "Name, email, date and time are required", http.StatusBadRequest)
		return
	}
	if !strings.Contains(res.Email, "@") {
		http.Error(w, "Invalid email address", http.StatusBadRequest)
		return
	}
	if res.Guests <= 0 {
		http.Error(w, "Guests must be positive", http.StatusBadRequest)
		return
	}

	res.ID = utils.NewID()
	res.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := ic.Reservations.InsertOne(ctx, res); err != nil {
		http.Error(w, "Error saving reservation", http.StatusInternalServerError)
		return
	}

	ic.Notifier.SendReservationNotification(adminEmailFromSettings(ctx, ic.Settings), res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

// GetContacts lists contact form submissions, newest first (admin only)
func (ic *IntakeController) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	contacts := []models.ContactForm{}
	err := ic.Contacts.Find(ctx, bson.M{}, &contacts, &store.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: maxListResults,
	})
	if err != nil {
		http.Error(w, "Error fetching contact forms", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contacts)
}

// GetReservations lists reservations, newest first (admin only)
func (ic *IntakeController) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	reservations := []models.Reservation{}
	err := ic.Reservations.Find(ctx, bson.M{}, &reservations, &store.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: maxListResults,
	})
	if err != nil {
		http.Error(w, "Error fetching reservations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reservations)
}
