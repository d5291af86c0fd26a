package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/models"
)

func TestCreateAndGetMenuItem(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	payload := map[string]any{
		"name":        "Butter Chicken",
		"description": "Creamy tomato curry",
		"price":       18.95,
		"category":    "Mains",
		"menu_type":   "dine-in",
		"featured":    true,
	}
	w := env.do(t, "POST", "/api/admin/menu", payload, token)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeJSON[models.MenuItem](t, w)
	assert.NotEmpty(t, created.ID)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, 5*time.Second)

	w = env.do(t, "GET", "/api/menu/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeJSON[models.MenuItem](t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Butter Chicken", got.Name)
	assert.Equal(t, "Creamy tomato curry", got.Description)
	assert.Equal(t, 18.95, got.Price)
	assert.Equal(t, "Mains", got.Category)
	assert.Equal(t, "dine-in", got.MenuType)
	assert.True(t, got.Featured)
}

func TestGetMenuItemNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/menu/no-such-id", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuFilters(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	items := []map[string]any{
		{"name": "Samosa", "category": "Starters", "menu_type": "dine-in", "featured": true, "price": 8.0},
		{"name": "Lamb Rogan Josh", "category": "Mains", "menu_type": "dine-in", "featured": false, "price": 21.0},
		{"name": "Garlic Naan", "category": "Breads", "menu_type": "takeaway", "featured": false, "price": 4.5},
	}
	for _, item := range items {
		w := env.do(t, "POST", "/api/admin/menu", item, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, "GET", "/api/menu", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]models.MenuItem](t, w), 3)

	w = env.do(t, "GET", "/api/menu?category=Mains", nil, "")
	got := decodeJSON[[]models.MenuItem](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Lamb Rogan Josh", got[0].Name)

	w = env.do(t, "GET", "/api/menu?featured=true", nil, "")
	got = decodeJSON[[]models.MenuItem](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Samosa", got[0].Name)

	w = env.do(t, "GET", "/api/menu?menu_type=takeaway", nil, "")
	got = decodeJSON[[]models.MenuItem](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Garlic Naan", got[0].Name)

	w = env.do(t, "GET", "/api/menu?featured=maybe", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMenuItem(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, "POST", "/api/admin/menu", map[string]any{
		"name": "Dal Makhani", "category": "Mains", "menu_type": "dine-in", "price": 16.0,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[models.MenuItem](t, w)

	w = env.do(t, "PUT", "/api/admin/menu/"+created.ID, map[string]any{"price": 17.5}, token)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeJSON[models.MenuItem](t, w)
	assert.Equal(t, 17.5, updated.Price)
	assert.Equal(t, "Dal Makhani", updated.Name)
}

func TestUpdateMenuItemEmptyPayload(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, "PUT", "/api/admin/menu/some-id", map[string]any{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, "PUT", "/api/admin/menu/no-such-id", map[string]any{"price": 9.0}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMenuItem(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, "POST", "/api/admin/menu", map[string]any{
		"name": "Mango Lassi", "category": "Drinks", "menu_type": "dine-in", "price": 6.0,
	}, token)
	created := decodeJSON[models.MenuItem](t, w)

	w = env.do(t, "DELETE", "/api/admin/menu/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/menu/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, "DELETE", "/api/admin/menu/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategories(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	for _, item := range []map[string]any{
		{"name": "Samosa", "category": "Starters", "menu_type": "dine-in", "price": 8.0},
		{"name": "Pakora", "category": "Starters", "menu_type": "dine-in", "price": 7.0},
		{"name": "Naan", "category": "Breads", "menu_type": "takeaway", "price": 4.0},
	} {
		w := env.do(t, "POST", "/api/admin/menu", item, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, "GET", "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJSON[map[string][]string](t, w)
	assert.ElementsMatch(t, []string{"Starters", "Breads"}, got["categories"])

	w = env.do(t, "GET", "/api/categories?menu_type=takeaway", nil, "")
	got = decodeJSON[map[string][]string](t, w)
	assert.Equal(t, []string{"Breads"}, got["categories"])
}

func TestAdminMenuRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/admin/menu", map[string]any{"name": "X", "price": 1.0}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
