package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"restaurant-backend/controllers"
	"restaurant-backend/models"
	"restaurant-backend/routes"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

// fakeNotifier records notification calls and can simulate transport failure.
type fakeNotifier struct {
	mu            sync.Mutex
	fail          bool
	contacts      []models.ContactForm
	reservations  []models.Reservation
	confirmations []models.Order
	orderAlerts   []models.Order
	adminEmails   []string
}

func (f *fakeNotifier) SendContactNotification(adminEmail string, contact models.ContactForm) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = append(f.contacts, contact)
	f.adminEmails = append(f.adminEmails, adminEmail)
	return !f.fail
}

func (f *fakeNotifier) SendReservationNotification(adminEmail string, res models.Reservation) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations = append(f.reservations, res)
	f.adminEmails = append(f.adminEmails, adminEmail)
	return !f.fail
}

func (f *fakeNotifier) SendOrderConfirmation(order models.Order) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, order)
	return !f.fail
}

func (f *fakeNotifier) SendNewOrderNotification(adminEmail string, order models.Order) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orderAlerts = append(f.orderAlerts, order)
	f.adminEmails = append(f.adminEmails, adminEmail)
	return !f.fail
}

type testEnv struct {
	router   *mux.Router
	store    *store.MemoryStore
	notifier *fakeNotifier
	files    *utils.FileStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	utils.JwtKey = []byte("test-secret")

	s := store.NewMemoryStore()
	notifier := &fakeNotifier{}
	files, err := utils.NewFileStore(t.TempDir())
	require.NoError(t, err)

	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewMenuController(s),
		controllers.NewCartController(s),
		controllers.NewIntakeController(s, notifier),
		controllers.NewContentController(s),
		controllers.NewOrderController(s, notifier),
		controllers.NewAdminController(s),
		controllers.NewUploadController(files),
	)

	return &testEnv{router: router, store: s, notifier: notifier, files: files}
}

// do performs a JSON request against the test router. An empty token leaves
// the Authorization header unset.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT("admin")
	require.NoError(t, err)
	return token
}

// seedAdminUser inserts the admin identity the login tests authenticate against.
func (e *testEnv) seedAdminUser(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	err = e.store.Collection("admin_users").InsertOne(context.Background(), models.AdminUser{
		ID:           utils.NewID(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        "admin@example.com",
	})
	require.NoError(t, err)
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
