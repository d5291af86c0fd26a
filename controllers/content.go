package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"restaurant-backend/models"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// ContentController handles testimonials, gallery images and banners
type ContentController struct {
	Testimonials store.Collection
	Gallery      store.Collection
	Banners      store.Collection
}

// NewContentController creates a new ContentController
func NewContentController(s store.Store) *ContentController {
	return &ContentController{
		Testimonials: s.Collection("testimonials"),
		Gallery:      s.Collection("gallery_images"),
		Banners:      s.Collection("banners"),
	}
}

// GetTestimonials lists all testimonials
func (cc *ContentController) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	testimonials := []models.Testimonial{}
	err := cc.Testimonials.Find(ctx, bson.M{}, &testimonials, &store.FindOptions{Limit: maxListResults})
	if err != nil {
		http.Error(w, "Error fetching testimonials", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(testimonials)
}

// CreateTestimonial adds a testimonial (admin only)
func (cc *ContentController) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if t.Name == "" || t.Comment == "" {
		http.Error(w, "Name and comment are required", http.StatusBadRequest)
		return
	}

	t.ID = utils.NewID()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := cc.Testimonials.InsertOne(ctx, t); err != nil {
		http.Error(w, "Error creating testimonial", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// UpdateTestimonial applies a partial update (admin only)
func (cc *ContentController) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	cc.updateByID(w, r, cc.Testimonials, "Testimonial")
}

// DeleteTestimonial removes a testimonial (admin only)
func (cc *ContentController) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	cc.deleteByID(w, r, cc.Testimonials, "Testimonial")
}

// GetGallery lists all gallery images
func (cc *ContentController) GetGallery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	images := []models.GalleryImage{}
	err := cc.Gallery.Find(ctx, bson.M{}, &images, &store.FindOptions{Limit: maxListResults})
	if err != nil {
		http.Error(w, "Error fetching gallery", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(images)
}

// CreateGalleryImage adds a gallery image (admin only)
func (cc *ContentController) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var img models.GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&img); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if img.URL == "" {
		http.Error(w, "URL is required", http.StatusBadRequest)
		return
	}

	img.ID = utils.NewID()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := cc.Gallery.InsertOne(ctx, img); err != nil {
		http.Error(w, "Error creating gallery image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(img)
}

// UpdateGalleryImage applies a partial update (admin only)
func (cc *ContentController) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	cc.updateByID(w, r, cc.Gallery, "Gallery image")
}

// DeleteGalleryImage removes a gallery image (admin only)
func (cc *ContentController) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	cc.deleteByID(w, r, cc.Gallery, "Gallery image")
}

// GetBanners lists active banners ordered for public display
func (cc *ContentController) GetBanners(w http.ResponseWriter, r *http.Request) {
	cc.listBanners(w, r, bson.M{"active": true})
}

// GetBannersAdmin lists all banners regardless of active state (admin only)
func (cc *ContentController) GetBannersAdmin(w http.ResponseWriter, r *http.Request) {
	cc.listBanners(w, r, bson.M{})
}

func (cc *ContentController) listBanners(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	banners := []models.Banner{}
	err := cc.Banners.Find(ctx, filter, &banners, &store.FindOptions{
		Sort:  bson.D{{Key: "order", Value: 1}},
		Limit: maxListResults,
	})
	if err != nil {
		http.Error(w, "Error fetching banners", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(banners)
}

// CreateBanner adds a banner (admin only)
func (cc *ContentController) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var banner models.Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if banner.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	banner.ID = utils.NewID()
	banner.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := cc.Banners.InsertOne(ctx, banner); err != nil {
		http.Error(w, "Error creating banner", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(banner)
}

// UpdateBanner applies a partial update (admin only)
func (cc *ContentController) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	cc.updateByID(w, r, cc.Banners, "Banner")
}

// DeleteBanner removes a banner (admin only)
func (cc *ContentController) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	cc.deleteByID(w, r, cc.Banners, "Banner")
}

// updateByID is the shared partial-update path: empty partials are rejected,
// unmatched ids are a 404.
func (cc *ContentController) updateByID(w http.ResponseWriter, r *http.Request, coll store.Collection, label string) {
	id := mux.Vars(r)["id"]

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
	matched, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": partial})
	if err != nil {
		http.Error(w, "Error updating "+label, http.StatusInternalServerError)
		return
	}
	if matched == 0 {
		http.Error(w, label+" not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": label + " updated"})
}

func (cc *ContentController) deleteByID(w http.ResponseWriter, r *http.Request, coll store.Collection, label string) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	deleted, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		http.Error(w, "Error deleting "+label, http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		http.Error(w, label+" not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": label + " deleted"})
}
