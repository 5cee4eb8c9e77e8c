package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/auth"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.CreateProduct(ctx, &models.Product{Name: "Oak Table", Price: 72000, Category: "furniture", Featured: true, Available: true}))
	require.NoError(t, st.CreateProduct(ctx, &models.Product{Name: "Brass Lamp", Price: 32000, Category: "lighting", Available: true}))
	require.NoError(t, st.CreateProduct(ctx, &models.Product{Name: "Marble Side Table", Price: 54000, Category: "furniture", Available: false}))

	cfg := &config.Config{Env: "test", AllowedOrigins: "*"}
	log := logger.New("error", "")
	sessions := session.NewManager("test-secret", 3600, false)
	authSvc := auth.NewService(st)
	checkoutSvc := checkout.NewService(st, events.NopPublisher{}, log)

	srv := New(cfg, log, st, authSvc, checkoutSvc, sessions)
	return srv.Router(), st
}

func doJSON(router *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser creates an account and returns its session cookies.
func registerUser(t *testing.T, router *gin.Engine, email string) []*http.Cookie {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"email":     email,
		"password":  "a long password",
		"firstName": "Test",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestProducts_List(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["products"], 3)

	w = doJSON(router, http.MethodGet, "/api/products?category=lighting", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Len(t, body["products"], 1)
}

func TestProducts_Featured(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/products/featured", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Len(t, body["products"], 1)
}

func TestProducts_GetNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/products/999", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "product not found", decode(t, w)["message"])
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	router, _ := newTestServer(t)
	registerUser(t, router, "amira@example.com")

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "amira@example.com",
		"password": "another password",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", decode(t, w)["message"])
}

func TestAuth_RegisterValidationDetails(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{"password": "short"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "validation failed", body["message"])
	assert.NotEmpty(t, body["details"])
}

func TestAuth_LoginInvalidCredentials(t *testing.T) {
	router, _ := newTestServer(t)
	registerUser(t, router, "amira@example.com")

	wrongPassword := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "amira@example.com", "password": "wrong password",
	}, nil)
	unknownEmail := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "nobody@example.com", "password": "a long password",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// Same status, same message: no way to probe which emails exist.
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuth_MeLifecycle(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/auth/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cookies := registerUser(t, router, "amira@example.com")

	w = doJSON(router, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "amira@example.com", user["email"])
	_, leaked := user["passwordHash"]
	assert.False(t, leaked, "password hash must never serialize")

	// Logout invalidates the cookie.
	w = doJSON(router, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	loggedOut := w.Result().Cookies()

	w = doJSON(router, http.MethodGet, "/api/auth/me", nil, loggedOut)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckout_RequiresSession(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/checkout", gin.H{
		"customerEmail":   "amira@example.com",
		"customerName":    "Amira Haddad",
		"shippingAddress": "12 Rue des Oliviers, Lyon",
		"items":           []gin.H{{"productId": 1, "quantity": 1}},
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, decode(t, w)["message"])
}

func TestCheckout_FullFlow(t *testing.T) {
	router, _ := newTestServer(t)
	cookies := registerUser(t, router, "amira@example.com")

	// Build up a server-side cart.
	w := doJSON(router, http.MethodPost, "/api/cart/items", gin.H{"productId": 1, "quantity": 2}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(router, http.MethodPost, "/api/cart/items", gin.H{"productId": 2, "quantity": 1}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/checkout", gin.H{
		"customerEmail":   "amira@example.com",
		"customerName":    "Amira Haddad",
		"shippingAddress": "12 Rue des Oliviers, Lyon",
		"items":           []gin.H{{"productId": 1, "quantity": 2}, {"productId": 2, "quantity": 1}},
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	order := decode(t, w)["order"].(map[string]interface{})
	assert.Equal(t, float64(2*72000+32000), order["totalAmount"])
	assert.Equal(t, "confirmed", order["status"])
	assert.NotEmpty(t, order["createdAt"])

	// Cart is empty after a successful checkout.
	w = doJSON(router, http.MethodGet, "/api/cart", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])

	// The order shows up in history with its line items.
	w = doJSON(router, http.MethodGet, "/api/orders", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode(t, w)["orders"].([]interface{})
	require.Len(t, orders, 1)

	orderID := int64(order["id"].(float64))
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	full := decode(t, w)["order"].(map[string]interface{})
	items := full["items"].([]interface{})
	require.Len(t, items, 2)
	firstItem := items[0].(map[string]interface{})
	assert.Equal(t, "72000", firstItem["price"])
}

func TestCheckout_UnknownProduct(t *testing.T) {
	router, _ := newTestServer(t)
	cookies := registerUser(t, router, "amira@example.com")

	w := doJSON(router, http.MethodPost, "/api/checkout", gin.H{
		"customerEmail":   "amira@example.com",
		"customerName":    "Amira Haddad",
		"shippingAddress": "12 Rue des Oliviers, Lyon",
		"items":           []gin.H{{"productId": 999, "quantity": 1}},
	}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["message"], "999")

	// No order became visible.
	w = doJSON(router, http.MethodGet, "/api/orders", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["orders"])
}

func TestCheckout_EmptyItems(t *testing.T) {
	router, _ := newTestServer(t)
	cookies := registerUser(t, router, "amira@example.com")

	w := doJSON(router, http.MethodPost, "/api/checkout", gin.H{
		"customerEmail":   "amira@example.com",
		"customerName":    "Amira Haddad",
		"shippingAddress": "12 Rue des Oliviers, Lyon",
		"items":           []gin.H{},
	}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrders_OwnershipIsNotFound(t *testing.T) {
	router, _ := newTestServer(t)
	owner := registerUser(t, router, "owner@example.com")

	w := doJSON(router, http.MethodPost, "/api/checkout", gin.H{
		"customerEmail":   "owner@example.com",
		"customerName":    "Olivia Owner",
		"shippingAddress": "1 Ownership Lane, Dublin",
		"items":           []gin.H{{"productId": 1, "quantity": 1}},
	}, owner)
	require.Equal(t, http.StatusOK, w.Code)
	orderID := int64(decode(t, w)["order"].(map[string]interface{})["id"].(float64))

	other := registerUser(t, router, "other@example.com")
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, other)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "order not found", decode(t, w)["message"])
}

func TestWishlist_AddToggleRemove(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/wishlist", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cookies := registerUser(t, router, "amira@example.com")

	// Adding twice keeps a single record.
	w = doJSON(router, http.MethodPost, "/api/wishlist", gin.H{"productId": 1}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPost, "/api/wishlist", gin.H{"productId": 1}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/wishlist", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)

	// Toggle removes, then restores.
	w = doJSON(router, http.MethodPost, "/api/wishlist/toggle", gin.H{"productId": 1}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["wishlisted"])

	w = doJSON(router, http.MethodPost, "/api/wishlist/toggle", gin.H{"productId": 1}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["wishlisted"])

	w = doJSON(router, http.MethodDelete, "/api/wishlist/1", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/wishlist", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestCart_MergeAndUpdate(t *testing.T) {
	router, _ := newTestServer(t)
	cookies := registerUser(t, router, "amira@example.com")

	w := doJSON(router, http.MethodPost, "/api/cart/items", gin.H{"productId": 1, "quantity": 1}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPost, "/api/cart/items", gin.H{"productId": 1, "quantity": 2}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	item := decode(t, w)["item"].(map[string]interface{})
	assert.Equal(t, float64(3), item["quantity"], "same product merges into one line")

	w = doJSON(router, http.MethodPut, "/api/cart/items/1", gin.H{"quantity": 5}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	item = decode(t, w)["item"].(map[string]interface{})
	assert.Equal(t, float64(5), item["quantity"])

	w = doJSON(router, http.MethodDelete, "/api/cart/items/1", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/cart", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestCart_AddUnknownProduct(t *testing.T) {
	router, _ := newTestServer(t)
	cookies := registerUser(t, router, "amira@example.com")

	w := doJSON(router, http.MethodPost, "/api/cart/items", gin.H{"productId": 999, "quantity": 1}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
