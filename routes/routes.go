// routes/routes.go
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"restaurant-backend/controllers"
	"restaurant-backend/middleware"
)

// RegisterRoutes sets up all the routes for the application under /api.
// Everything below /api/admin except login requires a valid bearer token.
func RegisterRoutes(router *mux.Router,
	menu *controllers.MenuController,
	cart *controllers.CartController,
	intake *controllers.IntakeController,
	content *controllers.ContentController,
	order *controllers.OrderController,
	admin *controllers.AdminController,
	upload *controllers.UploadController,
) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Lakeside Indian Restaurant API"})
	}).Methods("GET")

	// Public catalog
	api.HandleFunc("/menu", menu.GetMenuItems).Methods("GET")
	api.HandleFunc("/menu/{id}", menu.GetMenuItem).Methods("GET")
	api.HandleFunc("/categories", menu.GetCategories).Methods("GET")

	// Visitor cart and wishlist
	api.HandleFunc("/cart/{user_id}", cart.GetCart).Methods("GET")
	api.HandleFunc("/cart/{user_id}/add", cart.AddToCart).Methods("POST")
	api.HandleFunc("/cart/{user_id}/remove/{item_id}", cart.RemoveFromCart).Methods("DELETE")
	api.HandleFunc("/cart/{user_id}/clear", cart.ClearCart).Methods("DELETE")
	api.HandleFunc("/wishlist/{user_id}", cart.GetWishlist).Methods("GET")
	api.HandleFunc("/wishlist/{user_id}/add/{item_id}", cart.AddToWishlist).Methods("POST")
	api.HandleFunc("/wishlist/{user_id}/remove/{item_id}", cart.RemoveFromWishlist).Methods("DELETE")

	// Public intake and orders
	api.HandleFunc("/contact", intake.SubmitContact).Methods("POST")
	api.HandleFunc("/reservation", intake.SubmitReservation).Methods("POST")
	api.HandleFunc("/order", order.CreateOrder).Methods("POST")

	// Public content
	api.HandleFunc("/testimonials", content.GetTestimonials).Methods("GET")
	api.HandleFunc("/gallery", content.GetGallery).Methods("GET")
	api.HandleFunc("/banners", content.GetBanners).Methods("GET")
	api.HandleFunc("/settings", admin.GetPublicSettings).Methods("GET")
	api.HandleFunc("/statistics", admin.GetStatistics).Methods("GET")
	api.HandleFunc("/uploads/{filename}", upload.ServeUpload).Methods("GET")

	// Login stays outside the guarded subrouter
	api.HandleFunc("/admin/login", admin.Login).Methods("POST")

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/verify", admin.Verify).Methods("GET")

	protected.HandleFunc("/menu", menu.CreateMenuItem).Methods("POST")
	protected.HandleFunc("/menu/{id}", menu.UpdateMenuItem).Methods("PUT")
	protected.HandleFunc("/menu/{id}", menu.DeleteMenuItem).Methods("DELETE")

	protected.HandleFunc("/contacts", intake.GetContacts).Methods("GET")
	protected.HandleFunc("/reservations", intake.GetReservations).Methods("GET")

	protected.HandleFunc("/testimonials", content.CreateTestimonial).Methods("POST")
	protected.HandleFunc("/testimonials/{id}", content.UpdateTestimonial).Methods("PUT")
	protected.HandleFunc("/testimonials/{id}", content.DeleteTestimonial).Methods("DELETE")

	protected.HandleFunc("/gallery", content.CreateGalleryImage).Methods("POST")
	protected.HandleFunc("/gallery/upload", upload.UploadImage).Methods("POST")
	protected.HandleFunc("/gallery/{id}", content.UpdateGalleryImage).Methods("PUT")
	protected.HandleFunc("/gallery/{id}", content.DeleteGalleryImage).Methods("DELETE")

	protected.HandleFunc("/banners", content.GetBannersAdmin).Methods("GET")
	protected.HandleFunc("/banners", content.CreateBanner).Methods("POST")
	protected.HandleFunc("/banners/upload", upload.UploadImage).Methods("POST")
	protected.HandleFunc("/banners/{id}", content.UpdateBanner).Methods("PUT")
	protected.HandleFunc("/banners/{id}", content.DeleteBanner).Methods("DELETE")

	protected.HandleFunc("/orders", order.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", order.UpdateOrderStatus).Methods("PUT")

	protected.HandleFunc("/settings", admin.GetSettings).Methods("GET")
	protected.HandleFunc("/settings", admin.UpdateSettings).Methods("PUT")
	protected.HandleFunc("/settings/upload-logo", upload.UploadLogo).Methods("POST")
}
