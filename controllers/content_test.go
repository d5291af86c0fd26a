package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/models"
)

func TestBannerListingFiltersInactive(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	banners := []map[string]any{
		{"title": "Second", "image": "/api/uploads/b.jpg", "order": 2, "active": true},
		{"title": "Hidden", "image": "/api/uploads/c.jpg", "order": 1, "active": false},
		{"title": "First", "image": "/api/uploads/a.jpg", "order": 0, "active": true},
	}
	for _, banner := range banners {
		w := env.do(t, "POST", "/api/admin/banners", banner, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, "GET", "/api/banners", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	public := decodeJSON[[]models.Banner](t, w)
	require.Len(t, public, 2)
	assert.Equal(t, "First", public[0].Title)
	assert.Equal(t, "Second", public[1].Title)

	w = env.do(t, "GET", "/api/admin/banners", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeJSON[[]models.Banner](t, w)
	require.Len(t, all, 3)
	assert.Equal(t, "First", all[0].Title)
	assert.Equal(t, "Hidden", all[1].Title)
	assert.Equal(t, "Second", all[2].Title)
}

func TestBannerUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, "POST", "/api/admin/banners", map[string]any{
		"title": "Promo", "image": "/api/uploads/p.jpg", "order": 0, "active": true,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	banner := decodeJSON[models.Banner](t, w)

	w = env.do(t, "PUT", "/api/admin/banners/"+banner.ID, map[string]any{"active": false}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/banners", nil, "")
	assert.Empty(t, decodeJSON[[]models.Banner](t, w))

	w = env.do(t, "DELETE", "/api/admin/banners/"+banner.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "DELETE", "/api/admin/banners/"+banner.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTestimonialCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, "POST", "/api/admin/testimonials", map[string]any{
		"name": "Priya", "rating": 5, "comment": "Wonderful food",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.Testimonial](t, w)
	assert.NotEmpty(t, created.ID)

	w = env.do(t, "GET", "/api/testimonials", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	listed := decodeJSON[[]models.Testimonial](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, 5, listed[0].Rating)

	w = env.do(t, "PUT", "/api/admin/testimonials/"+created.ID, map[string]any{"rating": 4}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "PUT", "/api/admin/testimonials/"+created.ID, map[string]any{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "DELETE", "/api/admin/testimonials/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGalleryCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, "POST", "/api/admin/gallery", map[string]any{
		"url": "/api/uploads/dish.jpg", "title": "Tandoori platter",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.GalleryImage](t, w)

	w = env.do(t, "POST", "/api/admin/gallery", map[string]any{"title": "no url"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "GET", "/api/gallery", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeJSON[[]models.GalleryImage](t, w), 1)

	w = env.do(t, "DELETE", "/api/admin/gallery/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/gallery", nil, "")
	assert.Empty(t, decodeJSON[[]models.GalleryImage](t, w))
}
